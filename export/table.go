// Package export lines up filtered peaks and troughs into a rectangular table
// and writes it out as a spreadsheet.
package export

import (
	"strconv"

	"github.com/andareed/siftly-peaks/extrema"
	"github.com/andareed/siftly-peaks/faults"
	"github.com/andareed/siftly-peaks/series"
)

var Header = []string{"peakX", "peakY", "troughX", "troughY"}

// Cell is a table value. The zero Cell is the missing-value marker, which is
// never confused with a real 0.
type Cell struct {
	Value float64
	Valid bool
}

var Missing = Cell{}

func Val(v float64) Cell { return Cell{Value: v, Valid: true} }

// Format renders the cell, using marker for a missing value.
func (c Cell) Format(marker string) string {
	if !c.Valid {
		return marker
	}
	return strconv.FormatFloat(c.Value, 'g', -1, 64)
}

type Table struct {
	PeakX   []Cell
	PeakY   []Cell
	TroughX []Cell
	TroughY []Cell
}

func (t Table) Len() int { return len(t.PeakX) }

// Row returns the i-th row in Header order.
func (t Table) Row(i int) []Cell {
	return []Cell{t.PeakX[i], t.PeakY[i], t.TroughX[i], t.TroughY[i]}
}

func (t Table) Rows() [][]Cell {
	rows := make([][]Cell, t.Len())
	for i := range rows {
		rows[i] = t.Row(i)
	}
	return rows
}

// Assemble pads the shorter of the peak and trough column pairs with Missing.
// A nil filtered means nothing has been plotted yet.
func Assemble(filtered *extrema.Filtered, s series.Series) (Table, error) {
	if filtered == nil {
		return Table{}, faults.Export("assemble", "no filtered extrema available")
	}
	peaks := s.Points(filtered.Peaks)
	troughs := s.Points(filtered.Troughs)

	n := max(len(peaks), len(troughs))
	t := Table{
		PeakX:   make([]Cell, n),
		PeakY:   make([]Cell, n),
		TroughX: make([]Cell, n),
		TroughY: make([]Cell, n),
	}
	for i, p := range peaks {
		t.PeakX[i] = Val(p.X)
		t.PeakY[i] = Val(p.Y)
	}
	for i, p := range troughs {
		t.TroughX[i] = Val(p.X)
		t.TroughY[i] = Val(p.Y)
	}
	return t, nil
}
