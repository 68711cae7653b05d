// SPDX-FileCopyrightText: 2026 The aespower Authors
// SPDX-License-Identifier: Apache-2.0

package export

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// WritePromFile renders records as Prometheus gauges in text exposition
// format and writes them to path, for pickup by a node_exporter style
// textfile collector. The file is replaced atomically via a rename so a
// collector never sees a partial write.
func WritePromFile(path string, records []Record) error {
	reg := prometheus.NewPedanticRegistry()

	labels := []string{"direction"}
	avgLatency := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "aespower_avg_latency_seconds",
		Help: "Average wall clock time of a single cipher operation.",
	}, labels)
	cpuPercent := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "aespower_cpu_percent",
		Help: "Process CPU time as a percentage of wall time during the measurement window.",
	}, labels)
	avgPower := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "aespower_avg_power_watts",
		Help: "Estimated power draw derived from CPU utilization and the configured TDP.",
	}, labels)
	avgEnergy := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "aespower_avg_energy_joules",
		Help: "Estimated energy cost of a single cipher operation.",
	}, labels)
	iterations := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "aespower_iterations",
		Help: "Number of cipher calls in the measurement window.",
	}, labels)

	reg.MustRegister(avgLatency, cpuPercent, avgPower, avgEnergy, iterations)

	for _, r := range records {
		avgLatency.WithLabelValues(r.Direction).Set(r.AvgLatencySeconds)
		cpuPercent.WithLabelValues(r.Direction).Set(r.CPUPercent)
		avgPower.WithLabelValues(r.Direction).Set(r.AvgPowerWatts)
		avgEnergy.WithLabelValues(r.Direction).Set(r.AvgEnergyJoules)
		iterations.WithLabelValues(r.Direction).Set(float64(r.Iterations))
	}

	mfs, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	var buf bytes.Buffer
	enc := expfmt.NewEncoder(&buf, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range mfs {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("failed to encode metric family %s: %w", mf.GetName(), err)
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write metrics: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
