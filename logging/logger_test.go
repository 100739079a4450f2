package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	lvl, err := parseLevel("")
	assert.NoError(t, err)
	assert.Equal(t, zapcore.InfoLevel, lvl)

	lvl, err = parseLevel(" WARN ")
	assert.NoError(t, err)
	assert.Equal(t, zapcore.WarnLevel, lvl)

	_, err = parseLevel("chatty")
	assert.Error(t, err)
}

func TestSetup(t *testing.T) {
	defer func() { logger = zap.NewNop() }()

	assert.NoError(t, Setup("error", true))
	assert.True(t, L().Core().Enabled(zapcore.DebugLevel))

	assert.NoError(t, Setup("error", false))
	assert.False(t, L().Core().Enabled(zapcore.WarnLevel))

	assert.Error(t, Setup("chatty", false))
}
