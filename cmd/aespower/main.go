// SPDX-FileCopyrightText: 2026 The aespower Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bufio"
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kingpin/v2"

	"github.com/secusilicon/aespower/internal/codec"
	"github.com/secusilicon/aespower/internal/config"
	"github.com/secusilicon/aespower/internal/export"
	"github.com/secusilicon/aespower/internal/logger"
	"github.com/secusilicon/aespower/internal/meter"
	"github.com/secusilicon/aespower/internal/payload"
	"github.com/secusilicon/aespower/internal/resource"
	"github.com/secusilicon/aespower/internal/units"
	"github.com/secusilicon/aespower/internal/version"
)

func main() {
	cfg, err := parseArgsAndConfig()
	if err != nil {
		os.Exit(1)
	}

	logger := logger.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	logVersionInfo(logger)
	printConfigInfo(logger, cfg)

	if err := run(logger, cfg); err != nil {
		logger.Error("aespower terminated with an error", "error", err)
		os.Exit(1)
	}
}

func parseArgsAndConfig() (*config.Config, error) {
	const appName = "aespower"
	app := kingpin.New(appName, "Software-side power and energy estimator for AES-128 block encryption.")

	configFile := app.Flag("config.file", "Path to YAML configuration file").String()
	updateConfig := config.RegisterFlags(app)
	kingpin.MustParse(app.Parse(os.Args[1:]))

	logger := logger.New("info", "text", os.Stderr)
	cfg := config.DefaultConfig()
	if *configFile != "" {
		logger.Info("Loading configuration file", "path", *configFile)
		loadedCfg, err := config.FromFile(*configFile)
		if err != nil {
			logger.Error("Error loading config file", "error", err.Error())
			return nil, err
		}
		cfg = loadedCfg
	}

	// Apply command line flags (these override config file settings)
	if err := updateConfig(cfg); err != nil {
		logger.Error("Error applying command line flags", "error", err.Error())
		return nil, err
	}

	return cfg, nil
}

func logVersionInfo(logger *slog.Logger) {
	v := version.Info()
	logger.Info("aespower version information",
		"version", v.Version,
		"buildTime", v.BuildTime,
		"gitBranch", v.GitBranch,
		"gitCommit", v.GitCommit,
		"goVersion", v.GoVersion,
		"goOS", v.GoOS,
		"goArch", v.GoArch,
	)
}

func printConfigInfo(logger *slog.Logger, cfg *config.Config) {
	if !logger.Enabled(context.Background(), slog.LevelInfo) || cfg.Log.Format == "json" {
		return
	}

	fmt.Printf(`
Configuration
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
%s
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
`, cfg)
}

func run(logger *slog.Logger, cfg *config.Config) error {
	plaintext := []byte(cfg.Bench.Plaintext)
	if len(plaintext) == 0 {
		var err error
		if plaintext, err = promptPlaintext(); err != nil {
			return err
		}
	}

	key := make([]byte, codec.KeySize)
	if _, err := rand.Read(key); err != nil {
		return fmt.Errorf("failed to generate key: %w", err)
	}

	cpu, err := resource.NewProcFSReader(cfg.Host.ProcFS)
	if err != nil {
		return err
	}
	m := meter.NewMeter(cpu, meter.WithLogger(logger))

	tagged := payload.Tag(plaintext)
	tdp := units.Power(cfg.Bench.TDPWatts) * units.Watt

	ciphertext, encReport, err := m.Measure(func() ([]byte, error) {
		return codec.Encrypt(tagged, key)
	}, cfg.Bench.Iterations, tdp)
	if err != nil {
		return fmt.Errorf("encryption measurement failed: %w", err)
	}

	fmt.Println("\nENCRYPTION RESULT")
	fmt.Println("Ciphertext (hex):", hex.EncodeToString(ciphertext))
	printReport(encReport)

	recovered, decReport, err := m.Measure(func() ([]byte, error) {
		return codec.Decrypt(ciphertext, key)
	}, cfg.Bench.Iterations, tdp)
	if err != nil {
		return fmt.Errorf("decryption measurement failed: %w", err)
	}

	decrypted, err := payload.UntagVerify(recovered)
	if err != nil {
		return fmt.Errorf("round trip corrupted the payload: %w", err)
	}

	fmt.Println("\nDECRYPTION RESULT")
	fmt.Println("Decrypted text:", string(decrypted))
	printReport(decReport)

	fmt.Println("\nSOFTWARE POWER SUMMARY")
	fmt.Printf("Encryption energy: %s\n", encReport.AvgEnergy)
	fmt.Printf("Decryption energy: %s\n", decReport.AvgEnergy)

	return exportReports(logger, cfg, len(tagged), encReport, decReport)
}

func promptPlaintext() ([]byte, error) {
	fmt.Print("Enter plaintext to encrypt: ")
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("failed to read plaintext: %w", err)
		}
		return nil, fmt.Errorf("no plaintext supplied")
	}
	return scanner.Bytes(), nil
}

func printReport(rep meter.Report) {
	fmt.Printf("Avg time: %.4f ms\n", rep.AvgLatency.Seconds()*1000)
	fmt.Printf("CPU load: %.2f%%\n", rep.CPUPercent)
	fmt.Printf("Power: %.6f W\n", rep.AvgPower.Watts())
	fmt.Printf("Energy per operation: %.10f J\n", rep.AvgEnergy.Joules())
}

func exportReports(logger *slog.Logger, cfg *config.Config, payloadBytes int, encReport, decReport meter.Report) error {
	if cfg.Export.CSVFile == "" && cfg.Export.PromFile == "" {
		return nil
	}

	now := time.Now()
	records := []export.Record{
		export.NewRecord(now, "encrypt", payloadBytes, encReport),
		export.NewRecord(now, "decrypt", payloadBytes, decReport),
	}

	if cfg.Export.CSVFile != "" {
		if err := export.AppendCSV(cfg.Export.CSVFile, records); err != nil {
			return err
		}
		logger.Info("Appended results to CSV file", "path", cfg.Export.CSVFile)
	}

	if cfg.Export.PromFile != "" {
		if err := export.WritePromFile(cfg.Export.PromFile, records); err != nil {
			return err
		}
		logger.Info("Wrote results to Prometheus textfile", "path", cfg.Export.PromFile)
	}

	return nil
}
