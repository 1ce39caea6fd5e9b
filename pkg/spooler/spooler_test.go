package spooler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMode(t *testing.T) {
	mode, err := ParseMode("shell")
	assert.NoError(t, err)
	assert.Equal(t, ModeShell, mode)

	mode, err = ParseMode("device")
	assert.NoError(t, err)
	assert.Equal(t, ModeDevice, mode)

	_, err = ParseMode("silent")
	assert.Error(t, err)
}
