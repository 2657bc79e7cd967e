package logger_test

import (
	"errors"
	"testing"
	"time"

	"github.com/plus3/minefx/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLevels(t *testing.T) {
	core, recorded := observer.New(zapcore.DebugLevel)
	log := logger.FromZap(zap.New(core))

	log.Debug("d")
	log.Info("i")
	log.Warn("w")
	log.Error("e")

	entries := recorded.All()
	require.Len(t, entries, 4)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
}

func TestFields(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	log := logger.FromZap(zap.New(core)).With(logger.F("session", "abc"))

	log.Info("revealed",
		logger.F("row", 3),
		logger.F("score", int64(700)),
		logger.F("ratio", 0.5),
		logger.F("exploded", false),
		logger.F("took", time.Millisecond),
		logger.F("err", errors.New("boom")),
		logger.F("cell", [2]int{1, 2}),
	)

	entries := recorded.All()
	require.Len(t, entries, 1)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "abc", ctx["session"])
	assert.Equal(t, int64(3), ctx["row"])
	assert.Equal(t, int64(700), ctx["score"])
	assert.Equal(t, 0.5, ctx["ratio"])
	assert.Equal(t, false, ctx["exploded"])
	assert.Equal(t, time.Millisecond, ctx["took"])
	assert.Equal(t, "boom", ctx["err"])
}

func TestNew(t *testing.T) {
	for _, cfg := range []logger.Config{
		logger.DefaultConfig(),
		{Level: "debug", Format: "json"},
		{Level: "nonsense", Format: "console", Development: true},
	} {
		log, err := logger.New(cfg)
		require.NoError(t, err)
		assert.NotNil(t, log)
	}
}

func TestNop(t *testing.T) {
	log := logger.Nop()
	assert.NotPanics(t, func() {
		log.With(logger.F("k", 1)).Info("dropped")
		_ = log.Sync()
	})
}
