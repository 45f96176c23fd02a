package main

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/ava12/jargon"
	"github.com/ava12/jargon/diag"
)

const (
	ConfigError = jargon.CommandErrors + iota
	InputError
	OutputError
)

const envPrefix = "jargon"

const (
	textLogFormat = "text"
	jsonLogFormat = "json"
)

// Config holds command settings. Values are consolidated from defaults, config file,
// environment and explicitly set flags, later sources win.
// Environment variables are prefixed, e.g. JARGON_FATAL_LEVEL.
type Config struct {
	Output          string        `yaml:"output" split_words:"true"`
	Template        string        `yaml:"template" split_words:"true"`
	Styles          []string      `yaml:"styles" split_words:"true"`
	DiagnosticLevel diag.Severity `yaml:"diagnostic-level" split_words:"true"`
	FatalLevel      diag.Severity `yaml:"fatal-level" split_words:"true"`
	LogFormat       string        `yaml:"log-format" split_words:"true"`
	NoColor         bool          `yaml:"no-color" split_words:"true"`
}

func defaultConfig() Config {
	return Config{
		DiagnosticLevel: diag.DefaultMinLevel,
		FatalLevel:      diag.DefaultFatalLevel,
		LogFormat:       textLogFormat,
	}
}

func configFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("", pflag.ContinueOnError)
	flags.SortFlags = false
	flags.StringP("config", "c", "", "YAML config file")
	flags.StringP("output", "o", "", "output file name, default is the input name with .html suffix")
	flags.StringP("template", "t", "", "page template file, default is the built-in template")
	flags.StringSlice("style", nil, "stylesheet `url` linked from the page, can be repeated")
	flags.String("diagnostic-level", diag.DefaultMinLevel.String(), "lowest reported severity: trace, note, warning, error or fatal")
	flags.String("fatal-level", diag.DefaultFatalLevel.String(), "severity that stops compilation")
	flags.String("log-format", textLogFormat, "log format: text or json")
	flags.Bool("no-color", false, "disable colored output")
	return flags
}

// readConfigFile merges YAML file into conf, keys missing in the file keep their values.
func readConfigFile(fs afero.Fs, name string, conf *Config) error {
	data, e := afero.ReadFile(fs, name)
	if e != nil {
		return jargon.FormatError(ConfigError, "cannot read config file: %s", e.Error())
	}
	if e = yaml.Unmarshal(data, conf); e != nil {
		return jargon.FormatError(ConfigError, "invalid config file %s: %s", name, e.Error())
	}
	return nil
}

func readEnvConfig(conf *Config) error {
	if e := envconfig.Process(envPrefix, conf); e != nil {
		return jargon.FormatError(ConfigError, "invalid environment: %s", e.Error())
	}
	return nil
}

func applyFlags(flags *pflag.FlagSet, conf *Config) error {
	if flags.Changed("output") {
		conf.Output, _ = flags.GetString("output")
	}
	if flags.Changed("template") {
		conf.Template, _ = flags.GetString("template")
	}
	if flags.Changed("style") {
		conf.Styles, _ = flags.GetStringSlice("style")
	}
	if flags.Changed("log-format") {
		conf.LogFormat, _ = flags.GetString("log-format")
	}
	if flags.Changed("no-color") {
		conf.NoColor, _ = flags.GetBool("no-color")
	}

	levels := []struct {
		flag   string
		target *diag.Severity
	}{
		{"diagnostic-level", &conf.DiagnosticLevel},
		{"fatal-level", &conf.FatalLevel},
	}
	for _, l := range levels {
		if !flags.Changed(l.flag) {
			continue
		}
		name, _ := flags.GetString(l.flag)
		sev, e := diag.ParseSeverity(name)
		if e != nil {
			return jargon.FormatError(ConfigError, "invalid --%s: %s", l.flag, e.Error())
		}
		*l.target = sev
	}
	return nil
}

func (c Config) validate() error {
	if c.LogFormat != textLogFormat && c.LogFormat != jsonLogFormat {
		return jargon.FormatError(ConfigError, "unknown log format %q", c.LogFormat)
	}
	return nil
}

// loadConfig consolidates configuration for a command.
func loadConfig(fs afero.Fs, flags *pflag.FlagSet) (Config, error) {
	conf := defaultConfig()
	if name, _ := flags.GetString("config"); name != "" {
		if e := readConfigFile(fs, name, &conf); e != nil {
			return conf, e
		}
	}
	if e := readEnvConfig(&conf); e != nil {
		return conf, e
	}
	if e := applyFlags(flags, &conf); e != nil {
		return conf, e
	}
	return conf, conf.validate()
}
