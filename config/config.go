// Reads the tool configuration from defaults, an optional testspec.yaml file and TESTSPEC_*
// environment variables, in increasing order of precedence.

package config

import (
	"os"
	"strings"

	"github.com/daedaleanai/testspec/diagnostics"
	"github.com/spf13/viper"
)

// Config is the complete tool configuration.
type Config struct {
	Paths  PathsConfig  `mapstructure:"paths" yaml:"paths"`
	Locale string       `mapstructure:"locale" yaml:"locale"`
	Report ReportConfig `mapstructure:"report" yaml:"report"`
	Log    LogConfig    `mapstructure:"log" yaml:"log"`
}

// PathsConfig locates the input and output files.
type PathsConfig struct {
	// Settings is the application settings file. Empty uses the compiled-in settings.
	Settings    string `mapstructure:"settings" yaml:"settings"`
	Permissions string `mapstructure:"permissions" yaml:"permissions"`
	FormItems   string `mapstructure:"form_items" yaml:"form_items"`
	Output      string `mapstructure:"output" yaml:"output"`
	HTML        string `mapstructure:"html" yaml:"html"`
}

type ReportConfig struct {
	BOM                bool `mapstructure:"bom" yaml:"bom"`
	CollapseConditions bool `mapstructure:"collapse_conditions" yaml:"collapse_conditions"`
}

type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
}

var defaults = map[string]interface{}{
	"paths.settings":             "",
	"paths.permissions":          "settings.yml",
	"paths.form_items":           "settings.yml",
	"paths.output":               "output.csv",
	"paths.html":                 "output.html",
	"locale":                     "ja",
	"report.bom":                 false,
	"report.collapse_conditions": false,
	"log.level":                  "info",
}

// Keys returns every configuration key.
func Keys() []string {
	keys := make([]string, 0, len(defaults))
	for key := range defaults {
		keys = append(keys, key)
	}
	return keys
}

// Load returns the configuration. When path is empty the default file is read if it exists in the
// working directory; a path given explicitly must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	file := path
	if file == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			file = DefaultFile
		}
	}
	if file != "" {
		if _, err := os.Stat(file); err != nil {
			return nil, diagnostics.ConfigNotFound(file, err)
		}
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, diagnostics.ConfigMalformed(file, 0, "%s", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, diagnostics.ConfigMalformed(file, 0, "%s", err)
	}
	return cfg, nil
}
