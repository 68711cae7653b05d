// SPDX-FileCopyrightText: 2026 The aespower Authors
// SPDX-License-Identifier: Apache-2.0

package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnergyConversions(t *testing.T) {
	tests := []struct {
		name        string
		energy      Energy
		microJoules float64
		milliJoules float64
		joules      float64
	}{
		{"Zero", 0, 0, 0, 0},
		{"One Joule", 1_000_000, 1_000_000, 1_000, 1.0},
		{"1.5 Joule", 1.5 * Joule, 1_500_000, 1_500, 1.5},
		{"Sub MicroJoule", 0.25 * MicroJoule, 0.25, 0.00025, 0.00000025},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.microJoules, tt.energy.MicroJoules())
			assert.Equal(t, tt.milliJoules, tt.energy.MilliJoules())
			assert.Equal(t, tt.joules, tt.energy.Joules())
		})
	}
}

func TestEnergyString(t *testing.T) {
	tests := []struct {
		name   string
		energy Energy
		want   string
	}{
		{"Zero", 0, "0.0000000000J"},
		{"Regular", 1_250_000, "1.2500000000J"},
		{"Tiny", 0.5 * MicroJoule, "0.0000005000J"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.energy.String())
		})
	}
}

func TestPowerConversions(t *testing.T) {
	tests := []struct {
		name       string
		power      Power
		microWatts float64
		milliWatts float64
		watts      float64
	}{
		{"Zero", 0, 0, 0, 0},
		{"One Watt", Watt, 1_000_000, 1_000, 1.0},
		{"Five MilliWatts", 5 * MilliWatt, 5_000, 5, 0.005},
		{"1.5 Watts", 1.5 * Watt, 1_500_000, 1_500, 1.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.microWatts, tt.power.MicroWatts())
			assert.Equal(t, tt.milliWatts, tt.power.MilliWatts())
			assert.Equal(t, tt.watts, tt.power.Watts())
		})
	}
}

func TestPowerString(t *testing.T) {
	tests := []struct {
		name  string
		power Power
		want  string
	}{
		{"Zero", 0, "0.000000W"},
		{"Regular", 1_250_000, "1.250000W"},
		{"TDP", 15 * Watt, "15.000000W"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.power.String())
		})
	}
}
