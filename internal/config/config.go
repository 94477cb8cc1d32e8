package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mattmezza/noticeack/internal/state"
)

const (
	DefaultStateFileName = "notifications.json"
	DefaultLogLevel      = "info"
)

type Config struct {
	StateFile    string              `yaml:"state_file"`
	LogLevel     string              `yaml:"log_level"`
	InitialState state.Notifications `yaml:"initial_state"`
}

// Default returns the configuration used when no config file exists.
func Default() (*Config, error) {
	cfg := &Config{InitialState: state.Default()}
	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func LoadConfig(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", filePath, err)
	}

	// Flags left out of initial_state keep their built-in default.
	cfg := Config{InitialState: state.Default()}
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal config YAML from %s: %w", filePath, err)
	}
	// Expired flags always start true; only the active flags are configurable.
	cfg.InitialState.LegacyFlags = state.Default().LegacyFlags

	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() error {
	// Env overrides the file: NOTICEACK_STATE_FILE, NOTICEACK_LOG_LEVEL
	if v := strings.TrimSpace(os.Getenv("NOTICEACK_STATE_FILE")); v != "" {
		c.StateFile = v
	}
	if v := strings.TrimSpace(os.Getenv("NOTICEACK_LOG_LEVEL")); v != "" {
		c.LogLevel = v
	}

	if strings.TrimSpace(c.StateFile) == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return fmt.Errorf("failed to resolve user config directory: %w", err)
		}
		c.StateFile = filepath.Join(dir, "noticeack", DefaultStateFileName)
	}

	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	switch c.LogLevel {
	case "":
		c.LogLevel = DefaultLogLevel
	case "debug", "info", "warn", "error":
		// OK
	default:
		return fmt.Errorf("invalid log_level '%s'", c.LogLevel)
	}
	return nil
}
