// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

// resourcecat loads each resource named on the command line and writes its contents to stdout.
//
//	resourcecat [flags] URL...
//
// A URL may be http://, https://, file://, or a plain filesystem path.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/go-kit/kit/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/pflag"
	"github.com/xmidt-org/resourceloader/adapter"
	"github.com/xmidt-org/resourceloader/logging"
	"github.com/xmidt-org/resourceloader/resource"
	"github.com/xmidt-org/resourceloader/xviper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	applicationName = "resourcecat"

	encodingFlag = "encoding"
	textFlag     = "text"
	timeoutFlag  = "timeout"
	tracingFlag  = "tracing"
	zapFlag      = "zap"
	levelFlag    = "log-level"
	metricsFlag  = "metrics"
)

func newFlagSet(stderr io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet(applicationName, pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringP(xviper.DefaultFileFlag, "f", "", "the fully qualified configuration file")
	fs.StringP(xviper.DefaultNameFlag, "n", applicationName, "the name of the configuration file to search for")
	fs.StringP(encodingFlag, "e", "", "the text encoding used with --text, e.g. utf8, latin1, hex")
	fs.BoolP(textFlag, "t", false, "decode each resource as text before writing it")
	fs.Duration(timeoutFlag, 0, "the HTTP request timeout")
	fs.Bool(tracingFlag, false, "instrument HTTP requests with OpenTelemetry")
	fs.Bool(zapFlag, false, "log through zap instead of logfmt")
	fs.StringP(levelFlag, "l", "", "the log level: ERROR, WARN, INFO, or DEBUG")
	fs.Bool(metricsFlag, false, "write the load metrics to stderr in the prometheus text format once all loads finish")
	return fs
}

// configure builds the logger and loader options from configuration, with any flags
// given on the command line taking precedence
func configure(fs *pflag.FlagSet) (*logging.Options, *resource.Options, error) {
	v, err := xviper.New(xviper.StdOptions(applicationName, fs)...)
	if err != nil {
		return nil, nil, err
	}

	if err := xviper.ReadInConfig(v); err != nil {
		return nil, nil, err
	}

	logOptions, err := logging.FromViper(logging.Sub(v))
	if err != nil {
		return nil, nil, err
	}

	if fs.Changed(levelFlag) {
		logOptions.Level, _ = fs.GetString(levelFlag)
	}

	resourceOptions, err := resource.FromViper(resource.Sub(v))
	if err != nil {
		return nil, nil, err
	}

	if fs.Changed(encodingFlag) {
		resourceOptions.Encoding, _ = fs.GetString(encodingFlag)
		if _, err := resource.Decode(nil, resourceOptions.Encoding); err != nil {
			return nil, nil, err
		}
	}

	if fs.Changed(timeoutFlag) {
		resourceOptions.HTTP.Timeout, _ = fs.GetDuration(timeoutFlag)
	}

	if fs.Changed(tracingFlag) {
		resourceOptions.HTTP.Tracing, _ = fs.GetBool(tracingFlag)
	}

	return logOptions, resourceOptions, nil
}

// newLogger writes log entries to stderr, or to the configured log file.  stdout carries
// only resource contents.
func newLogger(fs *pflag.FlagSet, o *logging.Options, stderr io.Writer) (log.Logger, func()) {
	if useZap, _ := fs.GetBool(zapFlag); useZap {
		zl := zap.New(
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.Lock(zapcore.AddSync(stderr)),
				zapcore.DebugLevel,
			),
		)

		return logging.NewFilter(adapter.Logger{Logger: zl}, o), func() { zl.Sync() }
	}

	return logging.NewTo(o, stderr), func() {}
}

// newMeasures returns nil measures, which discard, unless metrics were requested
func newMeasures(fs *pflag.FlagSet) (*prometheus.Registry, *resource.Measures, error) {
	if enabled, _ := fs.GetBool(metricsFlag); !enabled {
		return nil, nil, nil
	}

	registry := prometheus.NewRegistry()
	m, err := resource.NewMeasures(registry)
	if err != nil {
		return nil, nil, err
	}

	return registry, m, nil
}

func writeMetrics(g prometheus.Gatherer, w io.Writer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}

	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}

	return nil
}

func run(arguments []string, stdout, stderr io.Writer) int {
	fs := newFlagSet(stderr)
	if err := fs.Parse(arguments); err != nil {
		return 2
	}

	if fs.NArg() == 0 {
		fmt.Fprintf(stderr, "Usage: %s [flags] URL...\n", applicationName)
		fs.PrintDefaults()
		return 2
	}

	logOptions, resourceOptions, err := configure(fs)
	if err != nil {
		fmt.Fprintf(stderr, "Unable to configure %s: %s\n", applicationName, err)
		return 1
	}

	logger, flush := newLogger(fs, logOptions, stderr)
	defer flush()

	registry, measures, err := newMeasures(fs)
	if err != nil {
		fmt.Fprintf(stderr, "Unable to create metrics: %s\n", err)
		return 1
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	var (
		loader   = resourceOptions.NewLoader(logger, measures)
		text, _  = fs.GetBool(textFlag)
		exitCode = 0
	)

	for _, url := range fs.Args() {
		var err error
		if text {
			var contents string
			if contents, err = loader.LoadTextResource(ctx, url, ""); err == nil {
				_, err = io.WriteString(stdout, contents)
			}
		} else {
			var contents []byte
			if contents, err = loader.LoadResource(ctx, url); err == nil {
				_, err = stdout.Write(contents)
			}
		}

		if err != nil {
			fmt.Fprintf(stderr, "%s: %s\n", url, err)
			exitCode = 1
		}
	}

	if registry != nil {
		if err := writeMetrics(registry, stderr); err != nil {
			fmt.Fprintf(stderr, "Unable to write metrics: %s\n", err)
			exitCode = 1
		}
	}

	return exitCode
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
