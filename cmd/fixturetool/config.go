package main

import (
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

const (
	envConfigPath = "FIXTURETOOL_CONFIG"
	defaultIndent = 2
)

// Config represents the fixturetool configuration file
// (~/.config/fixturetool/config.yaml). Pointer fields distinguish "not set"
// from false or zero.
type Config struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogFile   string `yaml:"log_file"`

	ExtractImages *bool  `yaml:"extract_images"`
	BundleImages  *bool  `yaml:"bundle_images"`
	GLTFIndent    *int64 `yaml:"gltf_indent"`
}

func configPath() string {
	if p := os.Getenv(envConfigPath); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "fixturetool", "config.yaml")
}

// LoadConfig reads the config file. Returns a zero Config if the file doesn't
// exist or cannot be parsed.
func LoadConfig() Config {
	return loadConfigFile(configPath())
}

func loadConfigFile(path string) Config {
	if path == "" {
		return Config{}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}
	}
	return cfg
}

// applyLogConfig fills logging options from the config file when the
// corresponding flag was not set.
func applyLogConfig(c *cli.Command, cfg Config, o *logOptions) {
	if cfg.LogLevel != "" && !c.IsSet("log-level") {
		o.level = cfg.LogLevel
	}
	if cfg.LogFormat != "" && !c.IsSet("log-format") {
		o.format = cfg.LogFormat
	}
	if cfg.LogFile != "" && !c.IsSet("log-file") {
		o.file = cfg.LogFile
	}
}

func applyBool(c *cli.Command, flag string, v *bool, dst *bool) {
	if v != nil && !c.IsSet(flag) {
		*dst = *v
	}
}

func applyIndent(c *cli.Command, cfg Config, dst *int64) {
	if cfg.GLTFIndent != nil && !c.IsSet("indent") {
		*dst = *cfg.GLTFIndent
	}
}
