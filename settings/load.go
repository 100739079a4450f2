package settings

import (
	"bytes"
	"io"
	"os"

	"github.com/daedaleanai/testspec/diagnostics"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

/// Internal types for parsing yaml files

type yamlUserType struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

type yamlFunction struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	LeftMenu    bool   `yaml:"left_menu"`
	CustomerTab bool   `yaml:"customer_tab"`
	PlaceTab    bool   `yaml:"place_tab"`
}

type yamlSettings struct {
	AppName         string            `yaml:"app_name"`
	DefaultTestUser string            `yaml:"default_test_user"`
	UserTypes       []yamlUserType    `yaml:"user_types"`
	Functions       []yamlFunction    `yaml:"functions"`
	ColumnNames     map[string]string `yaml:"column_names"`
}

// Load reads application settings from a YAML file. Keys missing from the file keep the compiled-in
// defaults, so a file may only override, for example, the function table.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, diagnostics.ConfigNotFound(path, err)
	}
	return Parse(data, path)
}

// Parse reads application settings from YAML data. Path is only used in error messages.
func Parse(data []byte, path string) (*Settings, error) {
	var raw yamlSettings
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, diagnostics.ConfigMalformed(path, 0, "%s", err)
	}

	defaults := Default()
	appName := defaults.appName
	if raw.AppName != "" {
		appName = raw.AppName
	}
	defaultTestUser := defaults.defaultTestUser
	if raw.DefaultTestUser != "" {
		defaultTestUser = raw.DefaultTestUser
	}

	userTypes := defaults.userTypes
	if raw.UserTypes != nil {
		userTypes = make([]UserType, 0, len(raw.UserTypes))
		for _, u := range raw.UserTypes {
			userTypes = append(userTypes, UserType{ID: u.ID, Name: u.Name})
		}
	}

	functions := defaults.functions
	if raw.Functions != nil {
		functions = make([]Function, 0, len(raw.Functions))
		for _, f := range raw.Functions {
			functions = append(functions, Function(f))
		}
	}

	columnNames := defaults.columnNames
	if raw.ColumnNames != nil {
		columnNames = raw.ColumnNames
	}

	s, err := New(appName, defaultTestUser, userTypes, functions, columnNames)
	if err != nil {
		return nil, diagnostics.ConfigMalformed(path, 0, "%s", err)
	}
	return s, nil
}

// Marshal renders the settings in the format read by Load.
func Marshal(s *Settings) ([]byte, error) {
	raw := yamlSettings{
		AppName:         s.appName,
		DefaultTestUser: s.defaultTestUser,
		ColumnNames:     s.ColumnNames(),
	}
	for _, u := range s.userTypes {
		raw.UserTypes = append(raw.UserTypes, yamlUserType(u))
	}
	for _, f := range s.functions {
		raw.Functions = append(raw.Functions, yamlFunction(f))
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(&raw); err != nil {
		return nil, errors.Wrap(err, "encode settings")
	}
	if err := encoder.Close(); err != nil {
		return nil, errors.Wrap(err, "encode settings")
	}
	return buf.Bytes(), nil
}
