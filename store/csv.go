// SPDX-License-Identifier: MIT

package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// csvHeader is the column order written by WriteCSV.
var csvHeader = []string{"r", "c", "t", "h", "g"}

// WriteCSV writes p as a header line followed by one row per grid point.
func WriteCSV(w io.Writer, p Profile) error {
	n, err := p.Len()
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("store: write csv header: %w", err)
	}
	row := make([]string, len(csvHeader))
	for i := 0; i < n; i++ {
		for j, v := range []float64{p.R[i], p.C[i], p.T[i], p.H[i], p.G[i]} {
			row[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("store: write csv row %d: %w", i, err)
		}
	}
	cw.Flush()

	return cw.Error()
}
