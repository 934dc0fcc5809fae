// Package extrema finds strict local peaks and troughs in a series and narrows
// them with user thresholds.
package extrema

import (
	"math"
	"strconv"
	"strings"

	"github.com/andareed/siftly-peaks/faults"
	"github.com/andareed/siftly-peaks/series"
)

// Set holds ascending indices into the series it was detected on.
type Set struct {
	Peaks   []int
	Troughs []int
}

// Detect compares every interior sample with its two neighbours. Equal
// neighbours never qualify, so flat runs yield nothing.
func Detect(s series.Series) Set {
	return DetectValues(s.Ys())
}

func DetectValues(ys []float64) Set {
	var set Set
	if len(ys) < 3 {
		return set
	}
	for i := 1; i < len(ys)-1; i++ {
		prev, cur, next := ys[i-1], ys[i], ys[i+1]
		switch {
		case cur > prev && cur > next:
			set.Peaks = append(set.Peaks, i)
		case cur < prev && cur < next:
			set.Troughs = append(set.Troughs, i)
		}
	}
	return set
}

// Bounds keeps peaks at or above PeakMin and troughs at or below TroughMax.
type Bounds struct {
	PeakMin   float64
	TroughMax float64
}

func Unbounded() Bounds {
	return Bounds{PeakMin: math.Inf(-1), TroughMax: math.Inf(1)}
}

func (b Bounds) PeakSet() bool   { return !math.IsInf(b.PeakMin, -1) }
func (b Bounds) TroughSet() bool { return !math.IsInf(b.TroughMax, 1) }

// ParseBounds reads the two threshold fields. Blank means unconstrained.
func ParseBounds(peakText, troughText string) (Bounds, error) {
	b := Unbounded()
	if v, set, err := parseBound(peakText); err != nil {
		return Bounds{}, faults.Newf(faults.KindValidation, "bounds", "peak minimum %q is not a number", strings.TrimSpace(peakText))
	} else if set {
		b.PeakMin = v
	}
	if v, set, err := parseBound(troughText); err != nil {
		return Bounds{}, faults.Newf(faults.KindValidation, "bounds", "trough maximum %q is not a number", strings.TrimSpace(troughText))
	} else if set {
		b.TroughMax = v
	}
	return b, nil
}

func parseBound(text string) (float64, bool, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, false, err
	}
	if math.IsNaN(v) {
		return 0, false, strconv.ErrSyntax
	}
	return v, true, nil
}

// FormatBound renders a bound for an input field; unconstrained renders blank.
func FormatBound(v float64) string {
	if math.IsInf(v, 0) {
		return ""
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

type Filtered struct {
	Peaks   []int
	Troughs []int
}

func (f Filtered) Empty() bool { return len(f.Peaks) == 0 && len(f.Troughs) == 0 }

// Filter always returns fresh slices; set is never modified.
func Filter(s series.Series, set Set, b Bounds) Filtered {
	out := Filtered{
		Peaks:   make([]int, 0, len(set.Peaks)),
		Troughs: make([]int, 0, len(set.Troughs)),
	}
	for _, i := range set.Peaks {
		if i < 0 || i >= s.Len() {
			continue
		}
		if s.At(i).Y >= b.PeakMin {
			out.Peaks = append(out.Peaks, i)
		}
	}
	for _, i := range set.Troughs {
		if i < 0 || i >= s.Len() {
			continue
		}
		if s.At(i).Y <= b.TroughMax {
			out.Troughs = append(out.Troughs, i)
		}
	}
	return out
}
