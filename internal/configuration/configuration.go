package configuration

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	StorageBackendMemory = "memory"
	StorageBackendBolt   = "bolt"
)

// AppConfig represents the complete application configuration.
type AppConfig struct {
	// Logger — logger component configuration
	Logger LoggerConfig `mapstructure:"logger"`
	// Server — HTTP server configuration
	Server ServerConfig `mapstructure:"server"`
	// Storage — receipt store configuration
	Storage StorageConfig `mapstructure:"storage"`
	// Audit — audit trail configuration
	Audit AuditConfig `mapstructure:"audit"`
	// Journal — recent-submissions journal configuration
	Journal JournalConfig `mapstructure:"journal"`
}

// LoggerConfig defines logging settings.
type LoggerConfig struct {
	// Level — log level: debug, info, warn, warning, error.
	// Value is case-insensitive but checked in lowercase.
	Level string `mapstructure:"level"`
}

// ServerConfig contains HTTP server parameters.
type ServerConfig struct {
	// Address — address and port where the server will listen (e.g., ":8080").
	Address string `mapstructure:"address"`
}

// StorageConfig defines where scored receipts are kept.
type StorageConfig struct {
	// Backend — store backend: "memory" (default) or "bolt".
	Backend string `mapstructure:"backend"`
	// Path — path to the database file. Required for the bolt backend.
	Path string `mapstructure:"path"`
}

// AuditConfig defines the audit trail parameters.
type AuditConfig struct {
	// File — audit file path. Empty disables the audit trail.
	File string `mapstructure:"file"`
	// Size — maximal audit file size in MB before rotation (default 100).
	Size int `mapstructure:"size"`
	// Amount — number of rotated audit files to keep (default 20).
	Amount int `mapstructure:"amount"`
}

// JournalConfig defines the recent-submissions journal parameters.
type JournalConfig struct {
	// Length — number of recent submissions kept for /stats (default 100).
	Length int `mapstructure:"length"`
}

// Validate checks the correctness of the entire application configuration.
// Calls validation for each nested structure and returns the first detected
// error. Returns nil if the configuration is valid.
func (c *AppConfig) Validate() error {
	if err := c.Logger.Validate(); err != nil {
		return err
	}

	if err := c.Server.Validate(); err != nil {
		return err
	}

	if err := c.Storage.Validate(); err != nil {
		return err
	}

	if err := c.Audit.Validate(); err != nil {
		return err
	}

	return c.Journal.Validate()
}

// Validate checks the correctness of the logger configuration.
// Verifies that the log level is set and is one of the supported values.
// Supported values: debug, info, warn, warning, error (case-insensitive).
func (l *LoggerConfig) Validate() error {
	if l.Level == "" {
		return errors.New("logger.level: must be specified")
	}

	valid := map[string]bool{"debug": true, "info": true, "warn": true, "warning": true, "error": true}
	if !valid[strings.ToLower(l.Level)] {
		return fmt.Errorf("logger.level: unsupported level '%s'", l.Level)
	}

	return nil
}

// Validate checks the correctness of the server configuration.
// Verifies that the server address is set.
func (n *ServerConfig) Validate() error {
	if n.Address == "" {
		return errors.New("server.address: must be specified")
	}

	return nil
}

// Validate checks the correctness of the storage configuration.
// An empty backend defaults to "memory"; the bolt backend requires a path.
func (s *StorageConfig) Validate() error {
	if s.Backend == "" {
		s.Backend = StorageBackendMemory
	}

	switch s.Backend {
	case StorageBackendMemory:
	case StorageBackendBolt:
		if s.Path == "" {
			return errors.New("storage.path: must be specified for the bolt backend")
		}
	default:
		return fmt.Errorf("storage.backend: unsupported backend '%s'", s.Backend)
	}

	return nil
}

// Validate fills audit parameter defaults. An empty file is valid and
// simply disables the trail.
func (a *AuditConfig) Validate() error {
	if a.Size == 0 {
		a.Size = 100
	}

	if a.Amount == 0 {
		a.Amount = 20
	}

	return nil
}

// Validate fills journal parameter defaults.
func (j *JournalConfig) Validate() error {
	if j.Length == 0 {
		j.Length = 100
	}

	return nil
}

// LoadConfig loads configuration from the specified file using Viper.
// Supports YAML format. Also includes environment variable loading
// (AutomaticEnv), which can override values from the file.
//
// Parameter configPath — path to the configuration file.
//
// Returns a pointer to AppConfig or an error if:
// - the file is not found or inaccessible
// - the configuration has invalid format
// - one of the sections fails validation
func LoadConfig(configPath string) (*AppConfig, error) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config AppConfig
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}
