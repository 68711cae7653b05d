// SPDX-FileCopyrightText: 2026 The aespower Authors
// SPDX-License-Identifier: Apache-2.0

// Package resource reads the accumulated CPU time of the calling process
// from procfs. The harness samples it before and after a measurement
// loop to attribute CPU usage to the operation under test.
package resource

import (
	"fmt"

	"github.com/prometheus/procfs"
)

// CPUTimeReader reports the accumulated user+system CPU time, in
// seconds, consumed by the calling process. Readings are monotonically
// non-decreasing.
type CPUTimeReader interface {
	CPUTime() (float64, error)
}

// procFSReader is the default implementation of CPUTimeReader using procfs
type procFSReader struct {
	proc procfs.Proc
}

var _ CPUTimeReader = (*procFSReader)(nil)

// NewProcFSReader creates a CPUTimeReader for the calling process that
// reads from the specified procfs mount point.
func NewProcFSReader(procfsPath string) (*procFSReader, error) {
	fs, err := procfs.NewFS(procfsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open procfs at %s: %w", procfsPath, err)
	}

	proc, err := fs.Self()
	if err != nil {
		return nil, fmt.Errorf("failed to locate calling process in procfs: %w", err)
	}

	return &procFSReader{proc: proc}, nil
}

func (r *procFSReader) CPUTime() (float64, error) {
	st, err := r.proc.Stat()
	if err != nil {
		return 0, fmt.Errorf("failed to read process stat: %w", err)
	}

	// user + system clock ticks converted to seconds by procfs
	return st.CPUTime(), nil
}
