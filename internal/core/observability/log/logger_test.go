package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   LevelDebug,
		" INFO ":  LevelInfo,
		"warning": LevelWarn,
		"error":   LevelError,
		"off":     LevelSilent,
		"bogus":   LevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestSetLevelIsShared(t *testing.T) {
	l := New(LevelInfo)
	child := l.With(String("component", "test"))

	l.SetLevel(LevelError)
	assert.Equal(t, LevelError, l.GetLevel())
	assert.Equal(t, LevelError, child.GetLevel())
}

func TestNopLoggerDiscards(t *testing.T) {
	l := NewNop()
	l.Info("dropped", Int("n", 1))
	l.Log(LevelError, "dropped", Error(assert.AnError))
	assert.Equal(t, LevelSilent, l.GetLevel())
}

func TestProvideReturnsProcessLogger(t *testing.T) {
	first := Provide()
	assert.NotNil(t, first)
	assert.Same(t, first, Provide())
}
