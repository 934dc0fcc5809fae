package clipboard

import (
	"bytes"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stub(t *testing.T, copyErr error, tty bool) *bytes.Buffer {
	t.Helper()
	var out bytes.Buffer
	oldCopy, oldTerm, oldSupported := systemCopy, terminal, osc52Supported
	t.Cleanup(func() { systemCopy, terminal, osc52Supported = oldCopy, oldTerm, oldSupported })

	systemCopy = func(string) error { return copyErr }
	terminal = &out
	osc52Supported = func() bool { return tty }
	t.Setenv("TMUX", "")
	return &out
}

func TestCopyFallsBackToOSC52(t *testing.T) {
	out := stub(t, errors.New("no xclip"), true)

	require.NoError(t, Copy("peakX\tpeakY"))
	assert.Contains(t, out.String(), "\x1b]52;c;"+base64.StdEncoding.EncodeToString([]byte("peakX\tpeakY")))
}

func TestCopyNoClipboardAtAll(t *testing.T) {
	out := stub(t, errors.New("no xclip"), false)

	assert.Error(t, Copy("x"))
	assert.Zero(t, out.Len())
}
