package extrema

import (
	"math"
	"math/rand"
	"testing"

	"github.com/andareed/siftly-peaks/faults"
	"github.com/andareed/siftly-peaks/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scenario = "1,2\n2,5\n3,1\n4,6\n5,0"

func TestDetect(t *testing.T) {
	tests := []struct {
		name        string
		ys          []float64
		wantPeaks   []int
		wantTroughs []int
	}{
		{"empty", nil, nil, nil},
		{"one", []float64{1}, nil, nil},
		{"two", []float64{1, 2}, nil, nil},
		{"single peak", []float64{1, 3, 2}, []int{1}, nil},
		{"single trough", []float64{3, 1, 2}, nil, []int{1}},
		{"plateau", []float64{1, 1, 1}, nil, nil},
		{"flat top", []float64{0, 2, 2, 0}, nil, nil},
		{"flat bottom", []float64{3, 1, 1, 3}, nil, nil},
		{"monotonic", []float64{1, 2, 3, 4}, nil, nil},
		{"zigzag", []float64{0, 1, 0, 1, 0}, []int{1, 3}, []int{2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectValues(tt.ys)
			assert.Equal(t, tt.wantPeaks, got.Peaks)
			assert.Equal(t, tt.wantTroughs, got.Troughs)
		})
	}
}

func TestDetectScenario(t *testing.T) {
	got := Detect(series.Parse(scenario))
	assert.Equal(t, []int{1, 3}, got.Peaks)
	assert.Equal(t, []int{2}, got.Troughs)
}

func TestDetectDisjointAndInterior(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for n := 0; n < 60; n++ {
		ys := make([]float64, n)
		for i := range ys {
			// small integer range so ties are frequent
			ys[i] = float64(rng.Intn(4))
		}
		set := DetectValues(ys)
		seen := map[int]bool{}
		for _, i := range set.Peaks {
			seen[i] = true
			assert.True(t, i > 0 && i < n-1)
		}
		for _, i := range set.Troughs {
			assert.False(t, seen[i], "index %d is both peak and trough", i)
			assert.True(t, i > 0 && i < n-1)
		}
	}
}

func TestParseBounds(t *testing.T) {
	b, err := ParseBounds("", "  ")
	require.NoError(t, err)
	assert.True(t, math.IsInf(b.PeakMin, -1))
	assert.True(t, math.IsInf(b.TroughMax, 1))
	assert.False(t, b.PeakSet())
	assert.False(t, b.TroughSet())

	b, err = ParseBounds(" 5.5 ", "-1e2")
	require.NoError(t, err)
	assert.Equal(t, 5.5, b.PeakMin)
	assert.Equal(t, -100.0, b.TroughMax)

	_, err = ParseBounds("abc", "")
	assert.Equal(t, faults.KindValidation, faults.KindOf(err))
	assert.Contains(t, err.Error(), "peak minimum")

	_, err = ParseBounds("", "nan")
	assert.Equal(t, faults.KindValidation, faults.KindOf(err))
	assert.Contains(t, err.Error(), "trough maximum")
}

func TestFilterScenarios(t *testing.T) {
	s := series.Parse(scenario)
	set := Detect(s)

	t.Run("B: peak minimum drops the lower peak", func(t *testing.T) {
		b, err := ParseBounds("5.5", "")
		require.NoError(t, err)
		got := Filter(s, set, b)
		assert.Equal(t, []int{3}, got.Peaks)
		assert.Equal(t, []int{2}, got.Troughs)
	})

	t.Run("C: empty thresholds keep everything", func(t *testing.T) {
		b, err := ParseBounds("", "")
		require.NoError(t, err)
		got := Filter(s, set, b)
		assert.Equal(t, set.Peaks, got.Peaks)
		assert.Equal(t, set.Troughs, got.Troughs)
	})

	t.Run("bounds are inclusive", func(t *testing.T) {
		got := Filter(s, set, Bounds{PeakMin: 5, TroughMax: 1})
		assert.Equal(t, []int{1, 3}, got.Peaks)
		assert.Equal(t, []int{2}, got.Troughs)

		got = Filter(s, set, Bounds{PeakMin: 6.5, TroughMax: 0.5})
		assert.True(t, got.Empty())
	})
}

func TestFilterDoesNotAliasSet(t *testing.T) {
	s := series.Parse(scenario)
	set := Detect(s)
	got := Filter(s, set, Unbounded())
	got.Peaks[0] = 99
	assert.Equal(t, []int{1, 3}, set.Peaks)
}

func TestFilterMonotonic(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	samples := make([]series.Sample, 200)
	for i := range samples {
		samples[i] = series.Sample{X: float64(i), Y: rng.NormFloat64()}
	}
	s := series.New(samples)
	set := Detect(s)

	for k := 0; k < 50; k++ {
		narrow := Bounds{PeakMin: rng.NormFloat64(), TroughMax: rng.NormFloat64()}
		wide := Bounds{PeakMin: narrow.PeakMin - rng.Float64(), TroughMax: narrow.TroughMax + rng.Float64()}

		kept := Filter(s, set, narrow)
		widened := Filter(s, set, wide)
		assert.Subset(t, widened.Peaks, kept.Peaks)
		assert.Subset(t, widened.Troughs, kept.Troughs)
	}
}

func TestFormatBound(t *testing.T) {
	assert.Equal(t, "", FormatBound(math.Inf(-1)))
	assert.Equal(t, "", FormatBound(math.Inf(1)))
	assert.Equal(t, "5.5", FormatBound(5.5))
}
