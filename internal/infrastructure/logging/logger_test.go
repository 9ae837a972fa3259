package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	cases := []struct {
		name  string
		cfg   Config
		debug bool
		info  bool
	}{
		{name: "default", cfg: Config{}, debug: false, info: true},
		{name: "debug console", cfg: Config{Level: "DEBUG", Format: "console"}, debug: true, info: true},
		{name: "warn", cfg: Config{Level: "warn"}, debug: false, info: false},
		{name: "unknown level falls back", cfg: Config{Level: "verbose"}, debug: false, info: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := New(tc.cfg)
			assert.Equal(t, tc.debug, l.Core().Enabled(zapcore.DebugLevel))
			assert.Equal(t, tc.info, l.Core().Enabled(zapcore.InfoLevel))
		})
	}
}

func TestInit(t *testing.T) {
	restore := Init(Config{Level: "error"})
	assert.False(t, zap.L().Core().Enabled(zapcore.WarnLevel))
	restore()
	assert.NotNil(t, zap.L())
}
