package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewZapLoggerFallsBackToInfoOnBadLevel(t *testing.T) {
	l := NewZapLogger(&ZapLoggerConfig{Encoding: "json", Level: "loud"})
	zl := l.(*zapLogger)
	assert.False(t, zl.l.Core().Enabled(zap.DebugLevel))
	assert.True(t, zl.l.Core().Enabled(zap.InfoLevel))
}

func TestNewZapLoggerDevelopmentDebug(t *testing.T) {
	l := NewZapLogger(&ZapLoggerConfig{IsDevelopment: true, Encoding: "console", Level: "debug"})
	zl := l.(*zapLogger)
	assert.True(t, zl.l.Core().Enabled(zap.DebugLevel))
}

func TestWithCarriesFields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	l := Wrap(zap.New(core)).With(zap.String("component", "sale"))

	l.Info("sale created", zap.String("sale_id", "sale_1"))
	l.Debug("dropped")

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		ctx := entries[0].ContextMap()
		assert.Equal(t, "sale", ctx["component"])
		assert.Equal(t, "sale_1", ctx["sale_id"])
	}
}
