package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func withBuffer(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	SetOutput(buf)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetVerbose(false)
	})
	return buf
}

func TestDebug_OnlyWhenVerbose(t *testing.T) {
	buf := withBuffer(t)

	SetVerbose(false)
	Debug("hidden %s", "message")
	assert.Empty(t, buf.String())

	SetVerbose(true)
	Debug("shown %s", "message")
	assert.Contains(t, buf.String(), "[DEBUG] shown message")
}

func TestInfo_OnlyWhenVerbose(t *testing.T) {
	buf := withBuffer(t)

	SetVerbose(false)
	Info("quiet")
	assert.Empty(t, buf.String())

	SetVerbose(true)
	Info("loud")
	assert.Contains(t, buf.String(), "[INFO] loud")
}

func TestWarn_AlwaysShown(t *testing.T) {
	buf := withBuffer(t)

	SetVerbose(false)
	Warn("skipped %s", "file.txt")
	assert.Contains(t, buf.String(), "[WARN] skipped file.txt")
}

func TestIsVerbose(t *testing.T) {
	withBuffer(t)

	SetVerbose(true)
	assert.True(t, IsVerbose())
	SetVerbose(false)
	assert.False(t, IsVerbose())
}
