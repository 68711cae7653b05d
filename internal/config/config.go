// SPDX-FileCopyrightText: 2026 The aespower Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kingpin/v2"
	"gopkg.in/yaml.v3"
)

// Config represents the complete application configuration
type (
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	}

	// Bench configures a measurement run. Iterations and TDPWatts were
	// process wide constants in the original benchmark; they are
	// explicit configuration here so runs with different assumptions
	// can coexist.
	Bench struct {
		Iterations int     `yaml:"iterations"`
		TDPWatts   float64 `yaml:"tdpWatts"`
		Plaintext  string  `yaml:"plaintext"`
	}

	Host struct {
		ProcFS string `yaml:"procfs"`
	}

	Export struct {
		CSVFile  string `yaml:"csvFile"`
		PromFile string `yaml:"promFile"`
	}

	Config struct {
		Log    Log    `yaml:"log"`
		Bench  Bench  `yaml:"bench"`
		Host   Host   `yaml:"host"`
		Export Export `yaml:"export"`
	}
)

const (
	// Flags
	LogLevelFlag  = "log.level"
	LogFormatFlag = "log.format"

	IterationsFlag = "bench.iterations"
	TDPWattsFlag   = "bench.tdp-watts"
	PlaintextFlag  = "bench.plaintext"

	ProcFSFlag = "host.procfs"

	ExportCSVFlag  = "export.csv-file"
	ExportPromFlag = "export.prom-file"
)

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		Log: Log{
			Level:  "info",
			Format: "text",
		},
		Bench: Bench{
			Iterations: 1000,
			TDPWatts:   15,
		},
		Host: Host{
			ProcFS: "/proc",
		},
	}
}

// Load loads configuration from an io.Reader
func Load(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.sanitize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// FromFile loads configuration from a file
func FromFile(filePath string) (*Config, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	return Load(file)
}

type ConfigUpdaterFn func(*Config) error

// RegisterFlags registers command-line flags with the kingpin app
// and returns a ConfigUpdaterFn that updates the config from parsed
// flags, as command line arguments override config file settings
func RegisterFlags(app *kingpin.Application) ConfigUpdaterFn {
	// track flags that were explicitly set
	flagsSet := map[string]bool{}

	app.PreAction(func(ctx *kingpin.ParseContext) error {
		// Clear the map in case this function is called multiple times
		flagsSet = map[string]bool{}

		for _, element := range ctx.Elements {
			if flag, ok := element.Clause.(*kingpin.FlagClause); ok && element.Value != nil {
				flagsSet[flag.Model().Name] = true
			}
		}
		return nil
	})

	// Logging
	logLevel := app.Flag(LogLevelFlag, "Logging level: debug, info, warn, error").Default("info").Enum("debug", "info", "warn", "error")
	logFormat := app.Flag(LogFormatFlag, "Logging format: text or json").Default("text").Enum("text", "json")

	// Benchmark
	iterations := app.Flag(IterationsFlag, "Number of cipher calls per measurement window").Default("1000").Int()
	tdpWatts := app.Flag(TDPWattsFlag, "CPU thermal design power in watts used to scale CPU utilization into power").Default("15").Float64()
	plaintext := app.Flag(PlaintextFlag, "Plaintext to encrypt; read from stdin when empty").Default("").String()

	// Host
	procfs := app.Flag(ProcFSFlag, "Path to procfs mount point").Default("/proc").String()

	// Export
	csvFile := app.Flag(ExportCSVFlag, "Append measurement results to this CSV file").Default("").String()
	promFile := app.Flag(ExportPromFlag, "Write measurement results to this Prometheus textfile-collector file").Default("").String()

	return func(cfg *Config) error {
		if flagsSet[LogLevelFlag] {
			cfg.Log.Level = *logLevel
		}
		if flagsSet[LogFormatFlag] {
			cfg.Log.Format = *logFormat
		}

		if flagsSet[IterationsFlag] {
			cfg.Bench.Iterations = *iterations
		}
		if flagsSet[TDPWattsFlag] {
			cfg.Bench.TDPWatts = *tdpWatts
		}
		if flagsSet[PlaintextFlag] {
			cfg.Bench.Plaintext = *plaintext
		}

		if flagsSet[ProcFSFlag] {
			cfg.Host.ProcFS = *procfs
		}

		if flagsSet[ExportCSVFlag] {
			cfg.Export.CSVFile = *csvFile
		}
		if flagsSet[ExportPromFlag] {
			cfg.Export.PromFile = *promFile
		}

		cfg.sanitize()
		return cfg.Validate()
	}
}

func (c *Config) sanitize() {
	c.Log.Level = strings.TrimSpace(c.Log.Level)
	c.Log.Format = strings.TrimSpace(c.Log.Format)
	c.Host.ProcFS = strings.TrimSpace(c.Host.ProcFS)
	c.Export.CSVFile = strings.TrimSpace(c.Export.CSVFile)
	c.Export.PromFile = strings.TrimSpace(c.Export.PromFile)
}

// Validate checks for configuration errors
func (c *Config) Validate() error {
	var errs []string

	{ // log level
		validLogLevels := map[string]bool{
			"debug": true,
			"info":  true,
			"warn":  true,
			"error": true,
		}
		if _, valid := validLogLevels[c.Log.Level]; !valid {
			errs = append(errs, fmt.Sprintf("invalid log level: %s", c.Log.Level))
		}
	}
	{ // log format
		validFormats := map[string]bool{
			"text": true,
			"json": true,
		}
		if _, valid := validFormats[c.Log.Format]; !valid {
			errs = append(errs, fmt.Sprintf("invalid log format: %s", c.Log.Format))
		}
	}
	{ // benchmark
		if c.Bench.Iterations <= 0 {
			errs = append(errs, fmt.Sprintf("iterations must be greater than zero: %d", c.Bench.Iterations))
		}
		if c.Bench.TDPWatts <= 0 {
			errs = append(errs, fmt.Sprintf("tdp watts must be greater than zero: %v", c.Bench.TDPWatts))
		}
	}
	{ // host
		if c.Host.ProcFS == "" {
			errs = append(errs, "procfs mount point must not be empty")
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(errs, ", "))
	}

	return nil
}

func (c *Config) String() string {
	bytes, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Sprintf("<unprintable config: %v>", err)
	}
	return string(bytes)
}
