// SPDX-FileCopyrightText: 2026 The aespower Authors
// SPDX-License-Identifier: Apache-2.0

package resource

import (
	"sync"
)

// NOTE: This fake reader is not intended to be used in production and is for testing only

// FakeCPUTimeReader implements CPUTimeReader with a counter that tests
// advance explicitly, so derived quantities become deterministic.
type FakeCPUTimeReader struct {
	mu    sync.Mutex
	total float64
	err   error
}

var _ CPUTimeReader = (*FakeCPUTimeReader)(nil)

// NewFakeCPUTimeReader creates a fake reader starting at zero CPU seconds.
func NewFakeCPUTimeReader() *FakeCPUTimeReader {
	return &FakeCPUTimeReader{}
}

// Advance adds seconds of fake CPU time to the counter.
func (f *FakeCPUTimeReader) Advance(seconds float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.total += seconds
}

// SetError makes all subsequent CPUTime calls fail with err.
func (f *FakeCPUTimeReader) SetError(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

func (f *FakeCPUTimeReader) CPUTime() (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	return f.total, nil
}
