package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/andareed/siftly-peaks/faults"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sfpeaks.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ",", cfg.Delimiter)
	assert.Equal(t, 0.05, cfg.View.FitMargin)
	assert.Equal(t, "extrema.xlsx", cfg.Export.DefaultName)
	assert.Equal(t, "plot.png", cfg.Image.DefaultName)
	assert.Equal(t, 1024, cfg.Image.Width)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
delimiter: ";"
thresholds:
  peak_min: "5.5"
view:
  fit_margin: 0.1
export:
  missing_marker: NA
image:
  width: 800
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ";", cfg.Delimiter)
	assert.Equal(t, "5.5", cfg.Thresholds.PeakMin)
	assert.Empty(t, cfg.Thresholds.TroughMax)
	assert.Equal(t, 0.1, cfg.View.FitMargin)
	assert.Equal(t, "NA", cfg.Export.MissingMarker)
	assert.Equal(t, 800, cfg.Image.Width)
	assert.Equal(t, 640, cfg.Image.Height)

	opts := cfg.SessionOptions()
	assert.Equal(t, ";", opts.Delimiter)
	assert.Equal(t, 0.1, opts.FitMargin)
}

func TestLoadKeepsExplicitZero(t *testing.T) {
	cfg, err := Load(writeConfig(t, "view:\n  fit_margin: 0\n  min_span_fraction: 0\n"))
	require.NoError(t, err)
	assert.Zero(t, cfg.View.FitMargin)
	assert.Zero(t, cfg.View.MinSpanFraction)

	cfg, err = Load(writeConfig(t, "delimiter: \";\"\n"))
	require.NoError(t, err)
	assert.Equal(t, 0.05, cfg.View.FitMargin)
	assert.Equal(t, 1e-3, cfg.View.MinSpanFraction)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		kind faults.Kind
	}{
		{"bad yaml", "delimiter: [", faults.KindValidation},
		{"long delimiter", `delimiter: "::"`, faults.KindValidation},
		{"negative margin", "view:\n  fit_margin: -1", faults.KindValidation},
		{"span fraction", "view:\n  min_span_fraction: 2", faults.KindValidation},
		{"negative size", "image:\n  height: -5", faults.KindValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Equal(t, tt.kind, faults.KindOf(err))
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Equal(t, faults.KindIO, faults.KindOf(err))
}
