/*
Form field metadata used to build the write flow and input validation test cases.

Fields are declared per function, in the order they appear on the form:

	form_items:
	  customers:
	    name:
	      label: 顧客名
	      required: always
	      test_data: 株式会社テスト
	    corporation_number:
	      label: 法人番号
	      required: conditional
	      condition: 顧客種別が法人 => required; 顧客種別が個人 => optional
	      test_data_1: "1234567890123"
	      test_data_2: "9876543210987"

Functions used by several kinds of login users declare one field set per login user in a sub user
group instead:

	sub_users:
	  place_staff:
	    functions: [places, place_managers]
	    users:
	      本社ユーザー:
	        name: {label: 設置先名, required: always}
	      設置先ユーザー:
	        name: {label: 設置先名, required: optional}

A group without a `functions` list applies to every function whose identifier is contained in the
group key.
*/
package formitems

import (
	"os"
	"strings"

	"github.com/daedaleanai/testspec/diagnostics"
)

// Requiredness tells whether a field must be filled in before the form can be submitted.
type Requiredness int

const (
	Optional Requiredness = iota
	Always
	Conditional
)

func (r Requiredness) String() string {
	switch r {
	case Optional:
		return "optional"
	case Always:
		return "always"
	case Conditional:
		return "conditional"
	}
	return "unknown"
}

// Clause is one condition of a conditionally required field and whether the field is required
// when it holds.
type Clause struct {
	Condition string
	Required  bool
}

// Field describes one input of a form.
type Field struct {
	ID        string
	Label     string
	Mode      Requiredness
	Condition string
	Clauses   []Clause
	TestData  []string
}

// Audience is the field set a group of login users sees. The login user is empty for functions with
// a single field set.
type Audience struct {
	LoginUser string
	Fields    []Field
}

// Group is a sub user grouping of field sets.
type Group struct {
	Key       string
	Functions []string
	Audiences []Audience
}

// Applies returns true if the group holds field sets for the function: the function is listed
// explicitly or, without an explicit list, the group key contains the function identifier.
func (g *Group) Applies(function string) bool {
	if g.Functions != nil {
		for _, f := range g.Functions {
			if f == function {
				return true
			}
		}
		return false
	}
	return function != "" && strings.Contains(g.Key, function)
}

// Store holds the form fields of every function.
type Store struct {
	direct map[string][]Field
	order  []string
	groups []Group
}

// Load reads the `form_items` and `sub_users` sections of a YAML file. Both sections are optional.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, diagnostics.ConfigNotFound(path, err)
	}
	return Parse(data, path)
}

// Empty returns a store without any fields.
func Empty() *Store {
	return &Store{direct: make(map[string][]Field)}
}

// Functions returns the functions with a direct field declaration, in file order.
func (s *Store) Functions() []string {
	return append([]string(nil), s.order...)
}

// Groups returns the sub user groups in file order.
func (s *Store) Groups() []Group {
	return append([]Group(nil), s.groups...)
}

// FieldsFor returns the fields declared directly for a function, in declaration order.
func (s *Store) FieldsFor(function string) []Field {
	return append([]Field(nil), s.direct[function]...)
}

// AudiencesFor returns the field sets of a function. A direct declaration wins and yields a single
// audience without login user. Otherwise every group that applies to the function contributes its
// audiences in file order. Functions without fields return nil.
func (s *Store) AudiencesFor(function string) []Audience {
	if fields, ok := s.direct[function]; ok {
		return []Audience{{LoginUser: "", Fields: append([]Field(nil), fields...)}}
	}
	var audiences []Audience
	for i := range s.groups {
		if s.groups[i].Applies(function) {
			audiences = append(audiences, s.groups[i].Audiences...)
		}
	}
	return audiences
}
