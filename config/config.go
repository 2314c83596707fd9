package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable that overrides the config location.
const EnvPath = "HAMLOG_CONFIG"

// Config represents the complete logger configuration
type Config struct {
	Station StationConfig `yaml:"station"`
	Storage StorageConfig `yaml:"storage"`
	Export  ExportConfig  `yaml:"export"`
	Archive ArchiveConfig `yaml:"archive"`
	Logging LoggingConfig `yaml:"logging"`
	Dupes   DupesConfig   `yaml:"dupes"`

	// LoadedFrom is the file the configuration was read from, empty for
	// built-in defaults.
	LoadedFrom string `yaml:"-"`
}

// StationConfig holds defaults for new logs; flags override them.
type StationConfig struct {
	Callsign   string `yaml:"callsign"`
	Operator   string `yaml:"operator"`
	GridSquare string `yaml:"grid_square"`
}

// StorageConfig locates the JSONL log files.
type StorageConfig struct {
	LogDir string `yaml:"log_dir"`
}

// ExportConfig controls where ADIF files land by default.
type ExportConfig struct {
	Dir string `yaml:"dir"`
}

// ArchiveConfig controls the optional SQLite contact archive.
type ArchiveConfig struct {
	Enabled bool   `yaml:"enabled"`
	DBPath  string `yaml:"db_path"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level         string `yaml:"level"`
	Dir           string `yaml:"dir"`
	RetentionDays int    `yaml:"retention_days"`
	// Console forces console output even when stderr is not a terminal.
	Console bool `yaml:"console"`
}

// DupesConfig tunes the advisory duplicate checks.
type DupesConfig struct {
	// SimilarCallDistance is the Levenshtein distance below which a call is
	// reported as a possible bust of an earlier one; 0 disables the check.
	SimilarCallDistance int `yaml:"similar_call_distance"`
}

// DataDir returns the default root for logs, exports and the archive.
func DataDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "hamlog")
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return filepath.Join(home, ".local", "share", "hamlog")
	}
	return "data"
}

// DefaultPath is where Load looks when neither a flag nor EnvPath is set.
func DefaultPath() string {
	if dir, err := os.UserConfigDir(); err == nil && dir != "" {
		return filepath.Join(dir, "hamlog", "config.yaml")
	}
	return filepath.Join("config", "hamlog.yaml")
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	base := DataDir()
	if strings.TrimSpace(c.Storage.LogDir) == "" {
		c.Storage.LogDir = filepath.Join(base, "logs")
	}
	if strings.TrimSpace(c.Export.Dir) == "" {
		c.Export.Dir = base
	}
	if strings.TrimSpace(c.Archive.DBPath) == "" {
		c.Archive.DBPath = filepath.Join(base, "archive.db")
	}
	if strings.TrimSpace(c.Logging.Level) == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.RetentionDays <= 0 {
		c.Logging.RetentionDays = 7
	}
	if c.Dupes.SimilarCallDistance < 0 {
		c.Dupes.SimilarCallDistance = 0
	}
}

// Load loads configuration from a YAML file and fills unset fields with
// defaults.
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.applyDefaults()
	cfg.LoadedFrom = filename
	return &cfg, nil
}

// LoadOrDefault loads filename when it exists and returns the defaults when
// it does not. An explicitly requested file that is missing is an error.
func LoadOrDefault(filename string, explicit bool) (*Config, error) {
	if _, err := os.Stat(filename); err != nil {
		if os.IsNotExist(err) && !explicit {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Load(filename)
}

// Print displays the configuration
func (c *Config) Print(w io.Writer) {
	source := c.LoadedFrom
	if source == "" {
		source = "built-in defaults"
	}
	fmt.Fprintf(w, "Config: %s\n", source)
	if c.Station.Callsign != "" {
		fmt.Fprintf(w, "Station: %s (grid %s)\n", c.Station.Callsign, c.Station.GridSquare)
	}
	fmt.Fprintf(w, "Logs: %s\n", c.Storage.LogDir)
	fmt.Fprintf(w, "Exports: %s\n", c.Export.Dir)
	if c.Archive.Enabled {
		fmt.Fprintf(w, "Archive: %s\n", c.Archive.DBPath)
	}
	logDest := "console"
	if c.Logging.Dir != "" {
		logDest = fmt.Sprintf("%s (keep %d days)", c.Logging.Dir, c.Logging.RetentionDays)
	}
	fmt.Fprintf(w, "Logging: %s -> %s\n", c.Logging.Level, logDest)
	if c.Dupes.SimilarCallDistance > 0 {
		fmt.Fprintf(w, "Similar-call distance: %d\n", c.Dupes.SimilarCallDistance)
	}
}
