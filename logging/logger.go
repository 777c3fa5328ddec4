// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"io"
	"os"
	"strings"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
)

var (
	defaultLogger = log.NewNopLogger()

	callerKey    interface{} = "caller"
	messageKey   interface{} = "msg"
	errorKey     interface{} = "error"
	timestampKey interface{} = "ts"

	// levelOptions maps the configured level names onto go-kit filters
	levelOptions = map[string]level.Option{
		"DEBUG": level.AllowDebug(),
		"INFO":  level.AllowInfo(),
		"WARN":  level.AllowWarn(),
		"ERROR": level.AllowError(),
	}
)

// CallerKey returns the logging key to be used for the stack location of the logging call
func CallerKey() interface{} {
	return callerKey
}

// MessageKey returns the logging key to be used for the textual message of the log entry
func MessageKey() interface{} {
	return messageKey
}

// ErrorKey returns the logging key to be used for error instances
func ErrorKey() interface{} {
	return errorKey
}

// TimestampKey returns the logging key to be used for the timestamp
func TimestampKey() interface{} {
	return timestampKey
}

// DefaultLogger returns a global singleton NOP logger, used by a resource.Loader with no Logger.
func DefaultLogger() log.Logger {
	return defaultLogger
}

// New is NewTo with os.Stdout as the console.
func New(o *Options) log.Logger {
	return NewTo(o, os.Stdout)
}

// NewTo creates a go-kit Logger from a (possibly nil) set of options.  Output goes to a rolling
// file when one is configured, and to console otherwise.  Executables that write data to stdout
// should pass os.Stderr as the console so log entries never mix with that data.
//
// Every entry carries a UTC timestamp and entries are filtered according to the Level field.
func NewTo(o *Options, console io.Writer) log.Logger {
	return NewFilter(
		log.WithPrefix(
			o.loggerFactory()(o.output(console)),
			TimestampKey(), log.DefaultTimestampUTC,
		),
		o,
	)
}

// NewFilter applies the Options level to an arbitrary go-kit Logger, such as a zap adapter.
// Any unrecognized level, including the empty string, allows only errors.
func NewFilter(next log.Logger, o *Options) log.Logger {
	allow, ok := levelOptions[strings.ToUpper(o.level())]
	if !ok {
		allow = level.AllowError()
	}

	return level.NewFilter(next, allow)
}

func withLevel(next log.Logger, value level.Value, keyvals []interface{}) log.Logger {
	return log.WithPrefix(
		next,
		append([]interface{}{CallerKey(), log.DefaultCaller, level.Key(), value}, keyvals...)...,
	)
}

// Error prefixes the caller and the error level, followed by any additional key/value pairs.
func Error(next log.Logger, keyvals ...interface{}) log.Logger {
	return withLevel(next, level.ErrorValue(), keyvals)
}

// Info prefixes the caller and the info level.
func Info(next log.Logger, keyvals ...interface{}) log.Logger {
	return withLevel(next, level.InfoValue(), keyvals)
}

// Debug prefixes the caller and the debug level.  Loaders report each successful load here.
func Debug(next log.Logger, keyvals ...interface{}) log.Logger {
	return withLevel(next, level.DebugValue(), keyvals)
}
