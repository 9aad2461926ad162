// Copyright 2021 - 2022 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package logutil

import (
	"os"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogConfig configures the global logger. The zero value means console
// logging at info level.
type LogConfig struct {
	// Level is one of debug, info, warn, error, fatal, panic.
	Level string `toml:"level"`
	// Format is "console" or "json".
	Format string `toml:"format"`
	// Filename, when set, routes output to a rotating file instead of
	// stderr.
	Filename string `toml:"filename"`
	// MaxSize is the rotation size in megabytes.
	MaxSize int `toml:"max-size"`
	// MaxDays is how many days rotated files are retained.
	MaxDays int `toml:"max-days"`
	// MaxBackups is how many rotated files are retained.
	MaxBackups int `toml:"max-backups"`
}

var _globalLogger atomic.Value // *zap.Logger

func init() {
	_globalLogger.Store(zap.NewNop())
	_ = SetupLogger(&LogConfig{})
}

// SetupLogger rebuilds the global logger from cfg. It is meant to be called
// once at process start; the evaluation hot path never logs.
func SetupLogger(cfg *LogConfig) error {
	level := zap.InfoLevel
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return err
		}
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	var encoder zapcore.Encoder
	if cfg.Format == "json" {
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	} else {
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	}

	var sink zapcore.WriteSyncer
	if cfg.Filename != "" {
		sink = zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.Filename,
			MaxSize:    cfg.MaxSize,
			MaxAge:     cfg.MaxDays,
			MaxBackups: cfg.MaxBackups,
		})
	} else {
		sink = zapcore.AddSync(os.Stderr)
	}

	logger := zap.New(zapcore.NewCore(encoder, sink, level), zap.AddCaller(), zap.AddCallerSkip(1))
	_globalLogger.Store(logger)
	return nil
}

// GetGlobalLogger returns the process-wide logger.
func GetGlobalLogger() *zap.Logger {
	return _globalLogger.Load().(*zap.Logger)
}

func Debug(msg string, fields ...zap.Field) {
	GetGlobalLogger().Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	GetGlobalLogger().Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	GetGlobalLogger().Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	GetGlobalLogger().Error(msg, fields...)
}

func Debugf(msg string, args ...any) {
	GetGlobalLogger().Sugar().Debugf(msg, args...)
}

func Infof(msg string, args ...any) {
	GetGlobalLogger().Sugar().Infof(msg, args...)
}

func Warnf(msg string, args ...any) {
	GetGlobalLogger().Sugar().Warnf(msg, args...)
}

func Errorf(msg string, args ...any) {
	GetGlobalLogger().Sugar().Errorf(msg, args...)
}
