// SPDX-FileCopyrightText: 2026 The aespower Authors
// SPDX-License-Identifier: Apache-2.0

package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/jszwec/csvutil"
)

// AppendCSV appends records to the CSV file at path, creating it with a
// header row when it does not exist or is empty. Successive runs build
// up a result history in the same file.
func AppendCSV(path string, records []Record) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat CSV file: %w", err)
	}

	w := csv.NewWriter(f)
	enc := csvutil.NewEncoder(w)
	// only the first write to a file carries the header
	enc.AutoHeader = info.Size() == 0

	for _, r := range records {
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("failed to encode CSV record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV file: %w", err)
	}
	return nil
}
