// Package logging builds the zap.Logger instances used by every pipeline
// stage, keyed by Stage so every log line is attributable to a phase of
// the pipeline.
package logging

import (
	"fmt"

	"etlcore/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Stage identifies which pipeline component a logger's entries came from.
type Stage string

const (
	StageNormalize Stage = "normalize"
	StagePartition Stage = "partition"
	StageDetect    Stage = "detect"
	StageReconcile Stage = "reconcile"
)

// New builds a zap.Logger from the logging section of cfg. Level defaults
// to info and format to text ("console" encoder) when unset or
// unrecognized.
func New(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.EncoderConfig.TimeKey = "ts"
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if cfg.Format != "json" {
		zcfg.Encoding = "console"
		zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zcfg.Encoding = "json"
	}

	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}

// ForStage returns a child logger tagged with its pipeline stage, so every
// log line can be filtered by which component emitted it. A nil base
// (no logger configured) yields a no-op logger rather than panicking.
func ForStage(base *zap.Logger, stage Stage) *zap.Logger {
	if base == nil {
		return zap.NewNop()
	}
	return base.With(zap.String("stage", string(stage)))
}
