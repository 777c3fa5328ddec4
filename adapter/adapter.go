// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

// Package adapter lets a zap logger stand in wherever a go-kit log.Logger is expected,
// such as resource.Loader.Logger.
package adapter

import (
	"fmt"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/xmidt-org/resourceloader/logging"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger adapts a *zap.Logger onto go-kit's log.Logger.  The go-kit level and message
// keys are translated into the zap level and message.  Everything else becomes a field.
type Logger struct {
	*zap.Logger
}

var _ log.Logger = Logger{}

// Log implements go-kit's log.Logger
func (l Logger) Log(keyvals ...interface{}) error {
	var (
		lvl     = zapcore.InfoLevel
		message string
		fields  = make([]zap.Field, 0, len(keyvals)/2)
	)

	for i := 0; i < len(keyvals); i += 2 {
		var value interface{} = "(MISSING)"
		if i+1 < len(keyvals) {
			value = keyvals[i+1]
		}

		switch key := keyvals[i]; {
		case key == level.Key():
			lvl = zapLevel(value)

		case key == logging.MessageKey():
			message = fmt.Sprint(value)

		default:
			fields = append(fields, zap.Any(fmt.Sprint(key), value))
		}
	}

	if ce := l.Logger.Check(lvl, message); ce != nil {
		ce.Write(fields...)
	}

	return nil
}

func zapLevel(v interface{}) zapcore.Level {
	switch v {
	case level.DebugValue():
		return zapcore.DebugLevel
	case level.WarnValue():
		return zapcore.WarnLevel
	case level.ErrorValue():
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
