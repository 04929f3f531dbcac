package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel(" WARN "))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("chatty"))
}

func TestNewAppliesLevel(t *testing.T) {
	assert.Equal(t, zerolog.ErrorLevel, New("svc", "error").GetLevel())
	assert.Equal(t, zerolog.InfoLevel, NewConsole("svc", "").GetLevel())
}
