// Package series turns line-oriented text into an ordered numeric series.
//
// Parsing is lenient on purpose: a line that does not carry two finite numbers
// in its first two fields is dropped without complaint.
package series

import (
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/andareed/siftly-peaks/faults"
	"github.com/montanaflynn/stats"
)

const DefaultDelimiter = ","

type Sample struct {
	X float64
	Y float64
}

// Series is immutable once built; accessors hand out copies.
type Series struct {
	samples []Sample
}

func New(samples []Sample) Series {
	return Series{samples: append([]Sample(nil), samples...)}
}

func (s Series) Len() int { return len(s.samples) }

func (s Series) At(i int) Sample { return s.samples[i] }

func (s Series) Samples() []Sample { return append([]Sample(nil), s.samples...) }

func (s Series) Xs() []float64 {
	out := make([]float64, len(s.samples))
	for i, p := range s.samples {
		out[i] = p.X
	}
	return out
}

func (s Series) Ys() []float64 {
	out := make([]float64, len(s.samples))
	for i, p := range s.samples {
		out[i] = p.Y
	}
	return out
}

// Points picks the samples at the given indices, in the order given.
func (s Series) Points(indices []int) []Sample {
	out := make([]Sample, 0, len(indices))
	for _, i := range indices {
		if i < 0 || i >= len(s.samples) {
			continue
		}
		out = append(out, s.samples[i])
	}
	return out
}

func (s Series) Equal(o Series) bool {
	if len(s.samples) != len(o.samples) {
		return false
	}
	for i := range s.samples {
		if s.samples[i] != o.samples[i] {
			return false
		}
	}
	return true
}

type Summary struct {
	Count int
	MinY  float64
	MaxY  float64
	MeanY float64
}

func (s Series) Summary() Summary {
	sum := Summary{Count: len(s.samples)}
	if sum.Count == 0 {
		return sum
	}
	ys := stats.Float64Data(s.Ys())
	sum.MinY, _ = ys.Min()
	sum.MaxY, _ = ys.Max()
	sum.MeanY, _ = ys.Mean()
	return sum
}

// Source names where a plot action takes its data from.
type Source struct {
	Text string
	Path string
}

func (src Source) HasText() bool { return strings.TrimSpace(src.Text) != "" }

// Label is a short description for status lines.
func (src Source) Label() string {
	switch {
	case src.HasText():
		return "(inline data)"
	case src.Path != "":
		return src.Path
	default:
		return ""
	}
}

type Parser struct {
	Delimiter string
}

func (p Parser) delimiter() string {
	if p.Delimiter == "" {
		return DefaultDelimiter
	}
	return p.Delimiter
}

// Parse converts text into a series using the default comma delimiter.
func Parse(text string) Series {
	return Parser{}.Parse(text)
}

func (p Parser) Parse(text string) Series {
	text = strings.TrimPrefix(text, "\ufeff")
	delim := p.delimiter()

	var samples []Sample
	for _, line := range strings.Split(text, "\n") {
		parts := strings.Split(strings.TrimSpace(line), delim)
		if len(parts) < 2 {
			continue
		}
		x, ok := parseFinite(parts[0])
		if !ok {
			continue
		}
		y, ok := parseFinite(parts[1])
		if !ok {
			continue
		}
		samples = append(samples, Sample{X: x, Y: y})
	}
	return Series{samples: samples}
}

// parseFinite accepts decimal numbers only; hex floats such as 0x1p4 are
// skipped like any other non-numeric field.
func parseFinite(field string) (float64, bool) {
	field = strings.TrimSpace(field)
	if digits := strings.ToLower(strings.TrimLeft(field, "+-")); strings.HasPrefix(digits, "0x") {
		return 0, false
	}
	v, err := strconv.ParseFloat(field, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func (p Parser) ParseFile(path string) (Series, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return Series{}, faults.Newf(faults.KindInput, "open", "file %q does not exist", path)
		}
		return Series{}, faults.IO("open", err, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Series{}, faults.IO("read", err, path)
	}
	return p.Parse(string(data)), nil
}

// Load prefers non-blank inline text and falls back to the file path.
func (p Parser) Load(src Source) (Series, error) {
	if src.HasText() {
		return p.Parse(src.Text), nil
	}
	if strings.TrimSpace(src.Path) == "" {
		return Series{}, faults.Input("load", "enter data or choose a file")
	}
	return p.ParseFile(strings.TrimSpace(src.Path))
}

// Format writes the series back out, one sample per line, so that
// Parse(Format(s)) reproduces s exactly.
func (p Parser) Format(s Series) string {
	var b strings.Builder
	delim := p.delimiter()
	for _, smp := range s.samples {
		b.WriteString(strconv.FormatFloat(smp.X, 'g', -1, 64))
		b.WriteString(delim)
		b.WriteString(strconv.FormatFloat(smp.Y, 'g', -1, 64))
		b.WriteByte('\n')
	}
	return b.String()
}
