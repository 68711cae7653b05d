// SPDX-FileCopyrightText: 2026 The aespower Authors
// SPDX-License-Identifier: Apache-2.0

// Package export writes finished measurement results to files. Exports
// run strictly after the measurement windows close, so they never
// disturb the timed region.
package export

import (
	"time"

	"github.com/secusilicon/aespower/internal/meter"
)

// Record is one measurement result flattened for export.
type Record struct {
	Timestamp         string  `csv:"timestamp"`
	Direction         string  `csv:"direction"`
	PayloadBytes      int     `csv:"payload_bytes"`
	Iterations        int     `csv:"iterations"`
	WallSeconds       float64 `csv:"wall_seconds"`
	CPUSeconds        float64 `csv:"cpu_seconds"`
	CPUPercent        float64 `csv:"cpu_percent"`
	AvgLatencySeconds float64 `csv:"avg_latency_seconds"`
	AvgPowerWatts     float64 `csv:"avg_power_watts"`
	AvgEnergyJoules   float64 `csv:"avg_energy_joules"`
}

// NewRecord flattens a meter.Report into a Record.
func NewRecord(at time.Time, direction string, payloadBytes int, rep meter.Report) Record {
	return Record{
		Timestamp:         at.UTC().Format(time.RFC3339),
		Direction:         direction,
		PayloadBytes:      payloadBytes,
		Iterations:        rep.Iterations,
		WallSeconds:       rep.WallTime.Seconds(),
		CPUSeconds:        rep.CPUTime.Seconds(),
		CPUPercent:        rep.CPUPercent,
		AvgLatencySeconds: rep.AvgLatency.Seconds(),
		AvgPowerWatts:     rep.AvgPower.Watts(),
		AvgEnergyJoules:   rep.AvgEnergy.Joules(),
	}
}
