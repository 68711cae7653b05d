// SPDX-FileCopyrightText: 2026 The aespower Authors
// SPDX-License-Identifier: Apache-2.0

package units

import (
	"fmt"
)

// Energy represents an energy amount as a float64 MicroJoule count.
// A float is used rather than an integer counter since the energy of a
// single cipher operation is routinely a fraction of a MicroJoule.
// Use Joules, MilliJoules and MicroJoules to get the energy value as
// Joule, MilliJoule or MicroJoule respectively
type Energy float64

const (
	MicroJoule Energy = 1.0
	MilliJoule        = 1000 * MicroJoule
	Joule             = 1000 * MilliJoule
)

func (e Energy) MicroJoules() float64 {
	return float64(e)
}

func (e Energy) MilliJoules() float64 {
	return float64(e / MilliJoule)
}

func (e Energy) Joules() float64 {
	return float64(e / Joule)
}

func (e Energy) String() string {
	return fmt.Sprintf("%.10fJ", e.Joules())
}

// Power represents power usage as a float64 MicroWatts.
// Use Watts, MilliWatts and MicroWatts to get the power value as
// Watts, MilliWatts or MicroWatts respectively
type Power float64

const (
	MicroWatt Power = 1.0
	MilliWatt       = 1000 * MicroWatt
	Watt            = 1000 * MilliWatt
)

func (p Power) MicroWatts() float64 {
	return float64(p)
}

func (p Power) MilliWatts() float64 {
	return float64(p / MilliWatt)
}

func (p Power) Watts() float64 {
	return float64(p / Watt)
}

func (p Power) String() string {
	return fmt.Sprintf("%.6fW", p.Watts())
}
