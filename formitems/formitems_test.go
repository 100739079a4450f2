package formitems

import (
	"testing"

	"github.com/daedaleanai/testspec/diagnostics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadFixture(t *testing.T) *Store {
	store, err := Load("../testdata/settings.yml")
	require.NoError(t, err)
	return store
}

func TestLoad_FieldOrderAndAttributes(t *testing.T) {
	store := loadFixture(t)

	fields := store.FieldsFor("customers")
	require.Len(t, fields, 3)

	assert.Equal(t, []string{"name", "note", "corporation_number"}, []string{fields[0].ID, fields[1].ID, fields[2].ID})
	assert.Equal(t, Field{ID: "name", Label: "顧客名", Mode: Always, TestData: []string{"株式会社テスト"}}, fields[0])
	assert.Equal(t, Optional, fields[1].Mode)

	conditional := fields[2]
	assert.Equal(t, Conditional, conditional.Mode)
	assert.Equal(t, []Clause{
		{Condition: "顧客種別が法人", Required: true},
		{Condition: "顧客種別が個人", Required: false},
	}, conditional.Clauses)
	// numbered test data is ordered by number, not by declaration
	assert.Equal(t, []string{"1234567890123", "9876543210987"}, conditional.TestData)

	assert.Equal(t, []string{"customers"}, store.Functions())
}

func TestAudiencesFor_DirectMatch(t *testing.T) {
	store := loadFixture(t)

	audiences := store.AudiencesFor("customers")
	require.Len(t, audiences, 1)
	assert.Equal(t, "", audiences[0].LoginUser)
	assert.Len(t, audiences[0].Fields, 3)
}

func TestAudiencesFor_KeyContainment(t *testing.T) {
	store := loadFixture(t)

	audiences := store.AudiencesFor("place_managers")
	require.Len(t, audiences, 2)
	assert.Equal(t, "本社ユーザー", audiences[0].LoginUser)
	assert.Equal(t, "設置先ユーザー", audiences[1].LoginUser)
	assert.Len(t, audiences[0].Fields, 2)
	assert.Len(t, audiences[1].Fields, 1)

	// "places" is a substring of neither group key
	assert.Empty(t, store.AudiencesFor("places"))
}

func TestAudiencesFor_ExplicitFunctions(t *testing.T) {
	store := loadFixture(t)

	audiences := store.AudiencesFor("contracts")
	require.Len(t, audiences, 1)
	assert.Equal(t, "営業ユーザー", audiences[0].LoginUser)
	fields := audiences[0].Fields
	require.Len(t, fields, 2)
	assert.Equal(t, Always, fields[0].Mode)
	assert.Equal(t, []Clause{{Condition: "契約種別が有償", Required: true}}, fields[1].Clauses)
	assert.Equal(t, []string{"10000"}, fields[1].TestData)

	// the explicit list replaces key containment: "contract" is in the key but not listed
	assert.Empty(t, store.AudiencesFor("contract"))
}

func TestAudiencesFor_EveryMatchingGroup(t *testing.T) {
	data := []byte(`
sub_users:
  customers_head_office:
    users:
      head: {name: {label: Name, required: always}}
  customers_branch:
    users:
      branch: {name: {label: Name}}
`)
	store, err := Parse(data, "inline.yml")
	require.NoError(t, err)

	audiences := store.AudiencesFor("customers")
	require.Len(t, audiences, 2)
	assert.Equal(t, "head", audiences[0].LoginUser)
	assert.Equal(t, "branch", audiences[1].LoginUser)
	assert.Nil(t, store.AudiencesFor("users"))
}

func TestParse_Empty(t *testing.T) {
	store, err := Parse([]byte("permissions: {}\n"), "inline.yml")
	require.NoError(t, err)
	assert.Nil(t, store.AudiencesFor("customers"))
	assert.Empty(t, store.FieldsFor("customers"))

	store, err = Parse(nil, "inline.yml")
	require.NoError(t, err)
	assert.Empty(t, store.Groups())
}

func TestParse_Malformed(t *testing.T) {
	for name, data := range map[string]string{
		"not a mapping":          "- a\n- b\n",
		"fields not a mapping":   "form_items:\n  customers: [name]\n",
		"missing label":          "form_items:\n  customers:\n    name: {required: always}\n",
		"bad requiredness":       "form_items:\n  customers:\n    name: {label: Name, required: sometimes}\n",
		"condition missing":      "form_items:\n  customers:\n    name: {label: Name, required: conditional}\n",
		"clause without arrow":   "form_items:\n  customers:\n    name: {label: Name, required: conditional, condition: corporation}\n",
		"condition on optional":  "form_items:\n  customers:\n    name: {label: Name, condition: a => required}\n",
		"unknown field key":      "form_items:\n  customers:\n    name: {label: Name, width: 3}\n",
		"bad test data key":      "form_items:\n  customers:\n    name: {label: Name, test_data_x: 3}\n",
		"unknown group key":      "sub_users:\n  g:\n    members: []\n",
		"functions not a list":   "sub_users:\n  g:\n    functions: customers\n",
		"nested test data value": "form_items:\n  customers:\n    name: {label: Name, test_data: [1, 2]}\n",
	} {
		_, err := Parse([]byte(data), "inline.yml")
		assert.True(t, diagnostics.Is(err, diagnostics.ErrorKindConfigMalformed), "%s: %v", name, err)
	}
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load("../testdata/does-not-exist.yml")
	assert.True(t, diagnostics.Is(err, diagnostics.ErrorKindConfigNotFound))
}

func TestParseClauses(t *testing.T) {
	clauses, err := ParseClauses("type is corporation => required, type is individual => optional；旧契約 ⇒ 任意")
	require.NoError(t, err)
	assert.Equal(t, []Clause{
		{Condition: "type is corporation", Required: true},
		{Condition: "type is individual", Required: false},
		{Condition: "旧契約", Required: false},
	}, clauses)

	_, err = ParseClauses(" ; ")
	assert.Error(t, err)
	_, err = ParseClauses("=> required")
	assert.Error(t, err)
	_, err = ParseClauses("a => maybe")
	assert.Error(t, err)
}

func TestGroup_Applies(t *testing.T) {
	legacy := Group{Key: "place_managers_by_office"}
	assert.True(t, legacy.Applies("place_managers"))
	assert.True(t, legacy.Applies("place"))
	assert.False(t, legacy.Applies(""))

	explicit := Group{Key: "place_managers_by_office", Functions: []string{"places"}}
	assert.True(t, explicit.Applies("places"))
	assert.False(t, explicit.Applies("place_managers"))
}
