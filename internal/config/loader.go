package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultConfigFile is the config file searched for when none is given.
const DefaultConfigFile = "tqr.yaml"

// Load reads configuration with viper precedence: defaults, then the config
// file, then TQR_* environment variables. An empty path searches the working
// directory and ./config; a missing file is only an error when the path was
// given explicitly. A .env file, if present, is loaded first so its values
// are visible to viper's env binding.
func Load(path string) (*Config, error) {
	cfg, err := LoadUnvalidated(path)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// LoadUnvalidated reads configuration without validating it, for callers
// that apply flag overrides before running validation themselves.
func LoadUnvalidated(path string) (*Config, error) {
	// Missing .env is the normal case, not an error.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("TQR")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	bindEnvironmentVariables(v)

	if path != "" {
		if err := checkConfigPath(path); err != nil {
			return nil, err
		}
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error parsing config file '%s': %w", path, err)
		}
	} else {
		v.SetConfigName("tqr")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
			// No file found: defaults and environment still apply.
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults installs the canonical end-of-term query plan. Order matters:
// the sequencer runs queries exactly as listed.
func setDefaults(v *viper.Viper) {
	v.SetDefault("tool.program", "python3")
	v.SetDefault("tool.script", "cli.py")

	v.SetDefault("runner.stop_on_failure", false)
	v.SetDefault("runner.auto_confirm", false)
	v.SetDefault("runner.verbose", false)

	v.SetDefault("queries", []map[string]any{
		{"name": "perweek"},
		{"name": "perroom", "head": 30},
		{"name": "perbuilding", "head": 30},
		{"name": "perrequestor", "head": 30},
		{"name": "perdiagnosis"},
	})
}

// bindEnvironmentVariables binds keys that have no default, so TQR_* values
// survive Unmarshal even without a config file.
func bindEnvironmentVariables(v *viper.Viper) {
	v.BindEnv("term.start", "TQR_TERM_START")
	v.BindEnv("term.end", "TQR_TERM_END")
	v.BindEnv("report", "TQR_REPORT")
	v.BindEnv("tool.program", "TQR_TOOL_PROGRAM")
	v.BindEnv("tool.script", "TQR_TOOL_SCRIPT")
	v.BindEnv("runner.stop_on_failure", "TQR_RUNNER_STOP_ON_FAILURE")
	v.BindEnv("runner.auto_confirm", "TQR_RUNNER_AUTO_CONFIRM")
	v.BindEnv("runner.verbose", "TQR_RUNNER_VERBOSE")
}

func checkConfigPath(path string) error {
	cleanPath := filepath.Clean(path)

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("config file '%s' does not exist", cleanPath)
		}
		if os.IsPermission(err) {
			return fmt.Errorf("permission denied reading config file '%s'", cleanPath)
		}
		return fmt.Errorf("failed to access config file '%s': %w", cleanPath, err)
	}

	if fileInfo.IsDir() {
		return fmt.Errorf("'%s' is a directory, not a file", cleanPath)
	}

	if fileInfo.Size() == 0 {
		return fmt.Errorf("config file '%s' is empty", cleanPath)
	}

	return nil
}
