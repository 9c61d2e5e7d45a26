package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds everything the application reads at startup
type Config struct {
	ArraySize       int      `toml:"array_size"`
	GridColumns     int      `toml:"grid_columns"`
	GridWidth       int      `toml:"grid_width"`
	GridHeight      int      `toml:"grid_height"`
	RefreshInterval Duration `toml:"refresh_interval"`
	ProgressRange   int      `toml:"progress_range"`
	Seed            int64    `toml:"seed"`

	LogLevel string `toml:"log_level"`
	JSONLogs bool   `toml:"json_logs"`

	Headless      bool `toml:"headless"`
	CloseWhenDone bool `toml:"close_when_done"`
}

// Duration lets TOML carry values like "150ms"
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the stock window: 50 000 values on a 250 column grid,
// repainted every 150 ms.
func Default() Config {
	return Config{
		ArraySize:       50000,
		GridColumns:     250,
		GridWidth:       1000,
		GridHeight:      800,
		RefreshInterval: Duration{150 * time.Millisecond},
		ProgressRange:   1000,
		LogLevel:        "info",
	}
}

// Load applies an optional TOML file and then environment overrides on top
// of the defaults. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// FromEnvironment loads the file named by SORTVIS_CONFIG, if any
func FromEnvironment() (Config, error) {
	return Load(os.Getenv("SORTVIS_CONFIG"))
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	ints := map[string]*int{
		"SORTVIS_ARRAY_SIZE":     &c.ArraySize,
		"SORTVIS_GRID_COLUMNS":   &c.GridColumns,
		"SORTVIS_GRID_WIDTH":     &c.GridWidth,
		"SORTVIS_GRID_HEIGHT":    &c.GridHeight,
		"SORTVIS_PROGRESS_RANGE": &c.ProgressRange,
	}
	for key, dst := range ints {
		if raw, ok := lookup(key); ok {
			v, err := strconv.Atoi(raw)
			if err != nil {
				return fmt.Errorf("invalid %s: %w", key, err)
			}
			*dst = v
		}
	}

	if raw, ok := lookup("SORTVIS_SEED"); ok {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid SORTVIS_SEED: %w", err)
		}
		c.Seed = v
	}

	if raw, ok := lookup("SORTVIS_REFRESH_INTERVAL"); ok {
		if err := c.RefreshInterval.UnmarshalText([]byte(raw)); err != nil {
			return fmt.Errorf("invalid SORTVIS_REFRESH_INTERVAL: %w", err)
		}
	}

	bools := map[string]*bool{
		"SORTVIS_JSON_LOGS":       &c.JSONLogs,
		"SORTVIS_HEADLESS":        &c.Headless,
		"SORTVIS_CLOSE_WHEN_DONE": &c.CloseWhenDone,
	}
	for key, dst := range bools {
		if raw, ok := lookup(key); ok {
			v, err := strconv.ParseBool(raw)
			if err != nil {
				return fmt.Errorf("invalid %s: %w", key, err)
			}
			*dst = v
		}
	}

	if raw, ok := lookup("LOG_LEVEL"); ok && raw != "" {
		c.LogLevel = raw
	} else if raw, ok := lookup("DEBUG"); ok && raw == "1" {
		c.LogLevel = "debug"
	}

	return nil
}

// Validate rejects sizes the worker or the grid cannot use
func (c Config) Validate() error {
	var errs []error
	if c.ArraySize < 1 {
		errs = append(errs, fmt.Errorf("array_size must be at least 1, got %d", c.ArraySize))
	}
	if c.GridColumns < 1 {
		errs = append(errs, fmt.Errorf("grid_columns must be at least 1, got %d", c.GridColumns))
	}
	if c.GridWidth < 1 || c.GridHeight < 1 {
		errs = append(errs, fmt.Errorf("grid size must be positive, got %dx%d", c.GridWidth, c.GridHeight))
	}
	if c.RefreshInterval.Duration <= 0 {
		errs = append(errs, fmt.Errorf("refresh_interval must be positive, got %s", c.RefreshInterval))
	}
	if c.ProgressRange < 1 {
		errs = append(errs, fmt.Errorf("progress_range must be at least 1, got %d", c.ProgressRange))
	}
	return errors.Join(errs...)
}

// SeedOrNow returns Seed, or a time based seed when it is zero
func (c Config) SeedOrNow() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
