/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package logger provides the build progress logger. Output is plain text
// lines on stderr unless redirected with SetOutput.
package logger

import (
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu     sync.RWMutex
	level  = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	logger *zap.SugaredLogger
)

func init() {
	SetOutput(os.Stderr)
}

// SetOutput configures the logger output destination.
// Use io.Discard to silence all logging.
func SetOutput(w io.Writer) {
	encoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeDuration: zapcore.StringDurationEncoder,
	})
	core := zapcore.NewCore(encoder, zapcore.AddSync(w), level)

	mu.Lock()
	logger = zap.New(core).Sugar()
	mu.Unlock()
}

// SetVerbose enables debug messages.
func SetVerbose(verbose bool) {
	if verbose {
		level.SetLevel(zapcore.DebugLevel)
		return
	}
	level.SetLevel(zapcore.InfoLevel)
}

// Sync flushes buffered output.
func Sync() error {
	return current().Sync()
}

// Error logs an error message.
func Error(format string, args ...any) {
	current().Errorf(format, args...)
}

// Warn logs a warning message.
func Warn(format string, args ...any) {
	current().Warnf("warning: "+format, args...)
}

// Info logs an informational message.
func Info(format string, args ...any) {
	current().Infof(format, args...)
}

// Debug logs a message shown only in verbose mode.
func Debug(format string, args ...any) {
	current().Debugf(format, args...)
}

func current() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}
