// SPDX-License-Identifier: MIT

package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// missingTokens are the cell contents read as a missing value.
var missingTokens = map[string]struct{}{"": {}, "NA": {}, "NaN": {}, "nan": {}, "null": {}}

// ReadCSV loads a comma separated file whose first record holds the column
// names. Cells must parse as floats. Every column with non-numeric or
// missing cells is reported in a single ErrConstruction error.
func ReadCSV(name string, r io.Reader, opts ...Option) (*Database, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("ReadCSV: %w: empty input", ErrConstruction)
		}

		return nil, fmt.Errorf("ReadCSV: %w", err)
	}

	cols := make([]Column, len(header))
	for j, h := range header {
		cols[j].Name = strings.TrimSpace(h)
	}
	nonNumeric := make([]int, len(header))
	firstBad := make([]string, len(header))

	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ReadCSV: %w", err)
		}
		for j, cell := range rec {
			cell = strings.TrimSpace(cell)
			if _, missing := missingTokens[cell]; missing {
				cols[j].Values = append(cols[j].Values, math.NaN())

				continue
			}
			v, perr := strconv.ParseFloat(cell, 64)
			if perr != nil {
				if nonNumeric[j] == 0 {
					firstBad[j] = cell
				}
				nonNumeric[j]++
				v = 0
			}
			cols[j].Values = append(cols[j].Values, v)
		}
	}

	var diags []Diagnostic
	for j, n := range nonNumeric {
		if n > 0 {
			diags = append(diags, Diagnostic{
				Column:  cols[j].Name,
				Message: fmt.Sprintf("contains %d non-numeric value(s), first %q", n, firstBad[j]),
			})
		}
	}
	diags = append(diags, auditColumns(cols)...)
	if len(diags) > 0 {
		return nil, constructionError("ReadCSV", diags)
	}

	return New(name, cols, opts...)
}

// WriteTSV writes t as tab separated values. The first column holds the
// row number and has an empty header.
func (t *Table) WriteTSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'

	rec := make([]string, len(t.names)+1)
	copy(rec[1:], t.names)
	if err := cw.Write(rec); err != nil {
		return fmt.Errorf("WriteTSV: %w", err)
	}
	for i := 0; i < t.rows; i++ {
		rec[0] = strconv.Itoa(i)
		for j, c := range t.cols {
			rec[j+1] = strconv.FormatFloat(c[i], 'g', -1, 64)
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("WriteTSV: %w", err)
		}
	}
	cw.Flush()

	if err := cw.Error(); err != nil {
		return fmt.Errorf("WriteTSV: %w", err)
	}

	return nil
}
