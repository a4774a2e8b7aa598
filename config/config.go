// Package config provide the geometry compiler configuration, read from an
// optional YAML file with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/vbiancacci/legend-pygeom-hades/runs"
)

// Config is the full compiler configuration.
type Config struct {
	// Detector is the detector name, eg "V99000A".
	Detector string `yaml:"detector" env:"HADES_DETECTOR"`
	// Measurement is the measurement identifier, eg "am_HS1_top_dlt".
	Measurement string `yaml:"measurement" env:"HADES_MEASUREMENT"`
	// Campaign names the measurement campaign in the run database.
	Campaign string `yaml:"campaign" env:"HADES_CAMPAIGN"`
	// Assemblies selects the sub-assemblies to build; empty builds the
	// default set.
	Assemblies []string `yaml:"assemblies" env:"HADES_ASSEMBLIES"`
	// LeadCastleTable is the measurement table, 1 or 2.
	LeadCastleTable int `yaml:"lead_castle_table" env:"HADES_LEAD_CASTLE_TABLE"`
	// AllowUnverified unlocks geometry branches not verified for
	// production use.
	AllowUnverified bool `yaml:"allow_unverified" env:"HADES_ALLOW_UNVERIFIED"`

	// Run selects the source run by numeric id.
	Run string `yaml:"run" env:"HADES_RUN"`
	// Position selects the source run by its table position instead.
	Position *runs.SourcePosition `yaml:"position"`

	// PublicMetadata switches the metadata store to the bundled public
	// sample records.
	PublicMetadata bool `yaml:"public_metadata" env:"HADES_PUBLIC_METADATA"`
	// MetadataURL is the mongodb url of the internal metadata store.
	MetadataURL string `yaml:"metadata_url" env:"HADES_METADATA_URL"`
	// RunDBPath points at a run database file; empty uses the bundled
	// sample database.
	RunDBPath string `yaml:"run_db" env:"HADES_RUN_DB"`

	// Output is the GDML file the composed registry is written to.
	Output string `yaml:"output" env:"HADES_OUTPUT"`
	// LoggingLevel is one of panic, fatal, error, warn, info, debug.
	LoggingLevel string `yaml:"logging_level" env:"HADES_LOGGING_LEVEL"`
}

// Default returns the configuration defaults applied before any file or
// environment override.
func Default() Config {
	return Config{
		Campaign:        "vendor",
		LeadCastleTable: 1,
		PublicMetadata:  true,
		LoggingLevel:    "info",
	}
}

// Load reads the configuration: defaults, then the YAML file at path if
// path is non-empty, then environment overrides. Callers apply their own
// overrides on top and then Validate.
func Load(path string) (Config, error) {
	conf := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(b, &conf); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := env.Parse(&conf); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return conf, nil
}

var availableLoggingLevels = []string{"panic", "fatal", "error", "warn", "info", "debug"}

// Validate checks every field and reports all invalid ones at once.
func (c Config) Validate() error {
	var invalid []string

	if c.Detector == "" {
		invalid = append(invalid, "detector must be set")
	}
	if c.Measurement == "" {
		invalid = append(invalid, "measurement must be set")
	}
	if c.LeadCastleTable != 1 && c.LeadCastleTable != 2 {
		invalid = append(invalid,
			fmt.Sprintf("lead_castle_table %d invalid, must be 1 or 2", c.LeadCastleTable))
	}
	if c.Run != "" && c.Position != nil {
		invalid = append(invalid, "run and position are mutually exclusive")
	}
	if !c.PublicMetadata && c.MetadataURL == "" {
		invalid = append(invalid, "metadata_url must be set unless public_metadata is enabled")
	}
	if !validLoggingLevel(c.LoggingLevel) {
		invalid = append(invalid,
			fmt.Sprintf("logging_level %q invalid, one of: %s",
				c.LoggingLevel, strings.Join(availableLoggingLevels, ", ")))
	}

	if len(invalid) > 0 {
		return fmt.Errorf("invalid configuration:\n  %s", strings.Join(invalid, "\n  "))
	}
	return nil
}

func validLoggingLevel(level string) bool {
	for _, l := range availableLoggingLevels {
		if l == level {
			return true
		}
	}
	return false
}
