package commands

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppContext(t *testing.T) {
	t.Setenv("PRINTQ_PRINTER", "FakePrinter")
	t.Setenv("PRINTQ_DELAY_MS", "250")

	appCtx, err := NewAppContext("", false)
	require.NoError(t, err)

	assert.Equal(t, "FakePrinter", appCtx.Config.Printer)
	assert.Equal(t, 250*time.Millisecond, appCtx.Config.Delay)
	assert.NotNil(t, appCtx.Logger)
}

func TestNormalizeExts(t *testing.T) {
	got := normalizeExts([]string{"pdf", ".PNG", " jpg ", ""})
	assert.Equal(t, []string{".pdf", ".png", ".jpg"}, got)
}
