// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

// Package mtlog is the ambient logging seam for integrators of mtframe and
// mtstream. Neither of those packages imports mtlog or calls into it —
// codec and reassembly stay observable only through their return values —
// this package exists for callers who want structured, leveled logging of
// frames as they cross a real serial link.
package mtlog

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// LogProvider is a small RFC5424-subset logging interface (Critical/Error/
// Warn/Debug only) so a caller can swap in any backend that implements it.
type LogProvider interface {
	Critical(msg string, fields ...zap.Field)
	Error(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
	Debug(msg string, fields ...zap.Field)
}

// Mlog is a zap-backed logger with a runtime enable/disable gate: four
// levels, structured fields instead of printf verbs.
type Mlog struct {
	provider LogProvider
	has      uint32
}

// NewLogger builds an Mlog backed by a zap production logger, named by
// the given component (e.g. "mtstream.parser").
func NewLogger(component string) Mlog {
	z, _ := zap.NewProduction()
	return Mlog{
		provider: defaultLogger{z.Sugar().Named(component)},
		has:      0,
	}
}

// LogMode enables or disables log output.
func (sf *Mlog) LogMode(enable bool) {
	if enable {
		atomic.StoreUint32(&sf.has, 1)
	} else {
		atomic.StoreUint32(&sf.has, 0)
	}
}

// SetLogProvider swaps in a caller-supplied provider, e.g. to route frame
// logs into an existing zap *Logger rather than mtlog's own default.
func (sf *Mlog) SetLogProvider(p LogProvider) {
	if p != nil {
		sf.provider = p
	}
}

// Critical logs a CRITICAL level message.
func (sf Mlog) Critical(msg string, fields ...zap.Field) {
	if atomic.LoadUint32(&sf.has) == 1 {
		sf.provider.Critical(msg, fields...)
	}
}

// Error logs an ERROR level message.
func (sf Mlog) Error(msg string, fields ...zap.Field) {
	if atomic.LoadUint32(&sf.has) == 1 {
		sf.provider.Error(msg, fields...)
	}
}

// Warn logs a WARN level message.
func (sf Mlog) Warn(msg string, fields ...zap.Field) {
	if atomic.LoadUint32(&sf.has) == 1 {
		sf.provider.Warn(msg, fields...)
	}
}

// Debug logs a DEBUG level message.
func (sf Mlog) Debug(msg string, fields ...zap.Field) {
	if atomic.LoadUint32(&sf.has) == 1 {
		sf.provider.Debug(msg, fields...)
	}
}

type defaultLogger struct {
	z *zap.SugaredLogger
}

var _ LogProvider = (*defaultLogger)(nil)

func (sf defaultLogger) Critical(msg string, fields ...zap.Field) {
	sf.z.Desugar().WithOptions().With(fields...).Error("[C] " + msg)
}

func (sf defaultLogger) Error(msg string, fields ...zap.Field) {
	sf.z.Desugar().With(fields...).Error(msg)
}

func (sf defaultLogger) Warn(msg string, fields ...zap.Field) {
	sf.z.Desugar().With(fields...).Warn(msg)
}

func (sf defaultLogger) Debug(msg string, fields ...zap.Field) {
	sf.z.Desugar().With(fields...).Debug(msg)
}

// FrameFields builds the structured fields mtlog expects integrators to
// attach when logging a decoded frame: subsystem, command id, and length.
func FrameFields(subsystem string, cmdID byte, length byte) []zap.Field {
	return []zap.Field{
		zap.String("subsystem", subsystem),
		zap.Uint8("cmd_id", cmdID),
		zap.Uint8("length", length),
	}
}
