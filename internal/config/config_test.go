// SPDX-FileCopyrightText: 2026 The aespower Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"strings"
	"testing"

	"github.com/alecthomas/kingpin/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, 1000, cfg.Bench.Iterations)
	assert.Equal(t, 15.0, cfg.Bench.TDPWatts)
	assert.Equal(t, "/proc", cfg.Host.ProcFS)
	assert.Empty(t, cfg.Export.CSVFile)
	assert.Empty(t, cfg.Export.PromFile)

	assert.NoError(t, cfg.Validate())
}

func TestLoadYAML(t *testing.T) {
	yamlData := `
log:
  level: debug
  format: json
bench:
  iterations: 5000
  tdpWatts: 28.5
  plaintext: HELLO
host:
  procfs: /custom/proc
export:
  csvFile: /tmp/results.csv
`
	cfg, err := Load(strings.NewReader(yamlData))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 5000, cfg.Bench.Iterations)
	assert.Equal(t, 28.5, cfg.Bench.TDPWatts)
	assert.Equal(t, "HELLO", cfg.Bench.Plaintext)
	assert.Equal(t, "/custom/proc", cfg.Host.ProcFS)
	assert.Equal(t, "/tmp/results.csv", cfg.Export.CSVFile)
}

func TestLoadPartialYAMLKeepsDefaults(t *testing.T) {
	cfg, err := Load(strings.NewReader("bench:\n  iterations: 42\n"))
	require.NoError(t, err)

	assert.Equal(t, 42, cfg.Bench.Iterations)
	assert.Equal(t, 15.0, cfg.Bench.TDPWatts)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadInvalidYAML(t *testing.T) {
	_, err := Load(strings.NewReader("log: ["))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "Valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "BadLogLevel",
			mutate:  func(c *Config) { c.Log.Level = "verbose" },
			wantErr: "invalid log level",
		},
		{
			name:    "BadLogFormat",
			mutate:  func(c *Config) { c.Log.Format = "xml" },
			wantErr: "invalid log format",
		},
		{
			name:    "ZeroIterations",
			mutate:  func(c *Config) { c.Bench.Iterations = 0 },
			wantErr: "iterations must be greater than zero",
		},
		{
			name:    "NegativeIterations",
			mutate:  func(c *Config) { c.Bench.Iterations = -5 },
			wantErr: "iterations must be greater than zero",
		},
		{
			name:    "ZeroTDP",
			mutate:  func(c *Config) { c.Bench.TDPWatts = 0 },
			wantErr: "tdp watts must be greater than zero",
		},
		{
			name:    "EmptyProcFS",
			mutate:  func(c *Config) { c.Host.ProcFS = "" },
			wantErr: "procfs mount point must not be empty",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestRegisterFlagsOverride(t *testing.T) {
	app := kingpin.New("test", "test app")
	update := RegisterFlags(app)

	_, err := app.Parse([]string{
		"--log.level=debug",
		"--bench.iterations=250",
		"--bench.tdp-watts=45",
		"--export.prom-file=/tmp/aespower.prom",
	})
	require.NoError(t, err)

	cfg := DefaultConfig()
	require.NoError(t, update(cfg))

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 250, cfg.Bench.Iterations)
	assert.Equal(t, 45.0, cfg.Bench.TDPWatts)
	assert.Equal(t, "/tmp/aespower.prom", cfg.Export.PromFile)

	// flags not given keep their config values
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "/proc", cfg.Host.ProcFS)
}

func TestRegisterFlagsUnsetLeavesConfigAlone(t *testing.T) {
	app := kingpin.New("test", "test app")
	update := RegisterFlags(app)

	_, err := app.Parse(nil)
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.Bench.Iterations = 9999
	require.NoError(t, update(cfg))

	assert.Equal(t, 9999, cfg.Bench.Iterations)
}

func TestRegisterFlagsInvalidValue(t *testing.T) {
	app := kingpin.New("test", "test app")
	update := RegisterFlags(app)

	_, err := app.Parse([]string{"--bench.iterations=0"})
	require.NoError(t, err)

	cfg := DefaultConfig()
	assert.Error(t, update(cfg))
}

func TestConfigString(t *testing.T) {
	s := DefaultConfig().String()
	assert.Contains(t, s, "log:")
	assert.Contains(t, s, "bench:")
	assert.Contains(t, s, "iterations: 1000")
}
