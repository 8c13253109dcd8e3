package logger_test

import (
	"context"
	"drills/pkg/logger"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		level       string
		wantDebug   bool
		wantErr     bool
	}{
		{name: "development defaults to debug", environment: logger.DevelopmentEnvironment, wantDebug: true},
		{name: "production defaults to info", environment: logger.ProductionEnvironment, wantDebug: false},
		{name: "level overrides environment", environment: logger.DevelopmentEnvironment, level: "warn", wantDebug: false},
		{name: "production at debug", environment: logger.ProductionEnvironment, level: "debug", wantDebug: true},
		{name: "invalid level", environment: logger.DevelopmentEnvironment, level: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := logger.Setup(tt.environment, tt.level)
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantDebug, logger.IsDebug(context.Background()))
		})
	}
}

func TestGet(t *testing.T) {
	require.NoError(t, logger.Setup(logger.DevelopmentEnvironment, ""))

	ctx := context.Background()
	require.NotNil(t, logger.Get(ctx), "should return default logger when context has no logger")

	custom := zap.NewNop()
	require.Equal(t, custom, logger.Get(logger.WithLogger(ctx, custom)))
}

func TestWithFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	ctx = logger.WithFields(ctx, zap.String("operation", "divide"))
	logger.Info(ctx, "computed", zap.Int64("floor", -3))

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "computed", entries[0].Message)
	fields := entries[0].ContextMap()
	require.Equal(t, "divide", fields["operation"])
	require.Equal(t, int64(-3), fields["floor"])
}

func TestLoggingFunctions(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	logger.Debug(ctx, "debug message")
	logger.Info(ctx, "info message")
	logger.Warn(ctx, "warn message")
	logger.Error(ctx, "error message")
	logger.Sync(ctx)

	levels := make([]zapcore.Level, 0, logs.Len())
	for _, e := range logs.All() {
		levels = append(levels, e.Level)
	}
	require.Equal(t, []zapcore.Level{zapcore.DebugLevel, zapcore.InfoLevel, zapcore.WarnLevel, zapcore.ErrorLevel}, levels)
}

func TestNew_ReportsCallSite(t *testing.T) {
	for _, environment := range []string{logger.DevelopmentEnvironment, logger.ProductionEnvironment} {
		t.Run(environment, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			l, err := logger.New(environment, "debug", zap.WrapCore(func(zapcore.Core) zapcore.Core { return core }))
			require.NoError(t, err)

			logger.Info(logger.WithLogger(context.Background(), l), "where am i")

			entries := logs.All()
			require.Len(t, entries, 1)
			require.True(t, entries[0].Caller.Defined)
			require.Equal(t, "logger_test.go", filepath.Base(entries[0].Caller.File))
		})
	}
}
