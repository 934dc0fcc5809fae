package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	cleanup, err := Setup(path, "debug")
	require.NoError(t, err)

	assert.True(t, IsDebugMode())
	Infof("plotted %d samples", 7)
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "plotted 7 samples")
	assert.False(t, IsDebugMode())
}

func TestSetupBadLevel(t *testing.T) {
	_, err := Setup("", "loud")
	assert.Error(t, err)
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, logrus.WarnLevel)
	t.Cleanup(func() { logger = newDiscard() })

	Infof("quiet")
	Warnf("heads up")

	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "heads up")
}
