// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"

	"github.com/apache/arrow/go/v18/arrow"
	"github.com/apache/arrow/go/v18/arrow/array"
)

// FromArrow loads an Arrow record. Integer, floating point and boolean
// columns are converted to float64 (booleans as 0 and 1). Other column
// types and null entries are reported in a single ErrConstruction error.
// The record is only read; the caller keeps ownership.
func FromArrow(name string, rec arrow.Record, opts ...Option) (*Database, error) {
	var diags []Diagnostic
	cols := make([]Column, 0, rec.NumCols())
	for j := 0; j < int(rec.NumCols()); j++ {
		colName := rec.ColumnName(j)
		arr := rec.Column(j)
		if n := arr.NullN(); n > 0 {
			diags = append(diags, Diagnostic{Column: colName, Message: fmt.Sprintf("contains %d missing value(s)", n)})
		}
		values, ok := arrowFloats(arr)
		if !ok {
			diags = append(diags, Diagnostic{
				Column:  colName,
				Message: fmt.Sprintf("has non-numeric type %s", arr.DataType()),
			})
		}
		cols = append(cols, Column{Name: colName, Values: values})
	}
	if len(diags) > 0 {
		return nil, constructionError("FromArrow", diags)
	}

	return New(name, cols, opts...)
}

// arrowFloats converts a numeric Arrow array to float64 values.
func arrowFloats(arr arrow.Array) ([]float64, bool) {
	out := make([]float64, arr.Len())
	switch a := arr.(type) {
	case *array.Float64:
		copy(out, a.Float64Values())
	case *array.Float32:
		fill(out, a.Value)
	case *array.Int64:
		fill(out, a.Value)
	case *array.Int32:
		fill(out, a.Value)
	case *array.Int16:
		fill(out, a.Value)
	case *array.Int8:
		fill(out, a.Value)
	case *array.Uint64:
		fill(out, a.Value)
	case *array.Uint32:
		fill(out, a.Value)
	case *array.Uint16:
		fill(out, a.Value)
	case *array.Uint8:
		fill(out, a.Value)
	case *array.Boolean:
		for i := range out {
			if a.Value(i) {
				out[i] = 1
			}
		}
	default:
		return nil, false
	}

	return out, true
}

type number interface {
	~float32 | ~int64 | ~int32 | ~int16 | ~int8 | ~uint64 | ~uint32 | ~uint16 | ~uint8
}

func fill[T number](out []float64, at func(int) T) {
	for i := range out {
		out[i] = float64(at(i))
	}
}
