// SPDX-FileCopyrightText: 2026 The aespower Authors
// SPDX-License-Identifier: Apache-2.0

// Package meter quantifies the average cost of an operation by running
// it many times back to back and sampling wall clock and process CPU
// time around the whole loop. CPU utilization is converted into an
// estimated power draw by scaling a caller supplied TDP figure, so the
// result is a coarse software side estimate, not a hardware measurement.
package meter

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"k8s.io/utils/clock"

	"github.com/secusilicon/aespower/internal/resource"
	"github.com/secusilicon/aespower/internal/units"
)

var (
	ErrZeroIterations   = errors.New("iterations must be greater than zero")
	ErrDegenerateTiming = errors.New("wall clock did not advance during measurement")
)

// Operation is a single run of the workload under measurement. It
// captures its own input and key; the meter only keeps the output of
// the final iteration.
type Operation func() ([]byte, error)

// Report holds the quantities derived from one measurement window.
type Report struct {
	Iterations int

	// WallTime is the elapsed wall clock time of the whole loop and
	// CPUTime the user+system CPU time the process accumulated in it.
	WallTime time.Duration
	CPUTime  time.Duration

	// CPUPercent is this process's CPU time as a percentage of wall
	// time, not system wide core occupancy.
	CPUPercent float64

	AvgLatency time.Duration
	AvgPower   units.Power
	AvgEnergy  units.Energy
}

// Meter runs measurement windows. The zero value is not usable; create
// one with NewMeter.
type Meter struct {
	logger *slog.Logger
	clock  clock.PassiveClock
	cpu    resource.CPUTimeReader
}

// NewMeter creates a Meter that samples process CPU time from cpu.
func NewMeter(cpu resource.CPUTimeReader, applyOpts ...OptionFn) *Meter {
	opts := DefaultOpts()
	for _, apply := range applyOpts {
		apply(&opts)
	}

	return &Meter{
		logger: opts.logger.With("service", "meter"),
		clock:  opts.clock,
		cpu:    cpu,
	}
}

// Measure runs op exactly iterations times in a tight sequential loop
// and derives per call latency, CPU utilization and, scaled by tdp,
// estimated power and energy. It returns the output of the final
// iteration together with the derived Report.
//
// The loop performs no I/O and no allocation beyond what op itself
// does. An error from op aborts the measurement; the window is then
// invalid and nothing is reported.
func (m *Meter) Measure(op Operation, iterations int, tdp units.Power) ([]byte, Report, error) {
	if iterations <= 0 {
		return nil, Report{}, fmt.Errorf("%w: got %d", ErrZeroIterations, iterations)
	}

	cpuBefore, err := m.cpu.CPUTime()
	if err != nil {
		return nil, Report{}, fmt.Errorf("failed to sample CPU time before run: %w", err)
	}
	start := m.clock.Now()

	var out []byte
	for i := 0; i < iterations; i++ {
		out, err = op()
		if err != nil {
			return nil, Report{}, fmt.Errorf("operation failed on iteration %d: %w", i, err)
		}
	}

	wall := m.clock.Since(start)
	cpuAfter, err := m.cpu.CPUTime()
	if err != nil {
		return nil, Report{}, fmt.Errorf("failed to sample CPU time after run: %w", err)
	}

	if wall <= 0 {
		// coarse clocks can report a zero width window for cheap
		// operations at low iteration counts; raise iterations
		return nil, Report{}, fmt.Errorf("%w: %d iterations took %v", ErrDegenerateTiming, iterations, wall)
	}

	cpuUsed := cpuAfter - cpuBefore
	cpuPercent := cpuUsed / wall.Seconds() * 100

	avgLatency := wall / time.Duration(iterations)
	avgPower := units.Power(cpuPercent / 100 * float64(tdp))
	avgEnergy := units.Energy(avgPower.MicroWatts() * avgLatency.Seconds())

	m.logger.Debug("Measurement window complete",
		"iterations", iterations,
		"wall", wall,
		"cpu.used", cpuUsed,
		"cpu.percent", cpuPercent,
		"avg.latency", avgLatency,
		"avg.power", avgPower,
		"avg.energy", avgEnergy,
	)

	return out, Report{
		Iterations: iterations,
		WallTime:   wall,
		CPUTime:    time.Duration(cpuUsed * float64(time.Second)),
		CPUPercent: cpuPercent,
		AvgLatency: avgLatency,
		AvgPower:   avgPower,
		AvgEnergy:  avgEnergy,
	}, nil
}
