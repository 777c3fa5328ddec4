// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xhttp

import (
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Client is an interface implemented by net/http.Client
type Client interface {
	Do(*http.Request) (*http.Response, error)
}

var _ Client = (*http.Client)(nil)

// ClientOptions describes how to build the HTTP client used to fetch remote resources.
// Timeouts belong here rather than in the code issuing requests.
type ClientOptions struct {
	// Timeout is the overall request timeout.  Zero means no timeout.
	Timeout time.Duration `json:"timeout"`

	// MaxIdleConnsPerHost is passed to the transport.  Zero means the net/http default.
	MaxIdleConnsPerHost int `json:"maxIdleConnsPerHost"`

	// Tracing wraps the transport with OpenTelemetry instrumentation
	Tracing bool `json:"tracing"`
}

// NewClient creates an *http.Client from a (possibly nil) set of options
func NewClient(o *ClientOptions) *http.Client {
	if o == nil {
		o = new(ClientOptions)
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if o.MaxIdleConnsPerHost > 0 {
		transport.MaxIdleConnsPerHost = o.MaxIdleConnsPerHost
	}

	var roundTripper http.RoundTripper = transport
	if o.Tracing {
		roundTripper = otelhttp.NewTransport(transport)
	}

	return &http.Client{
		Transport: roundTripper,
		Timeout:   o.Timeout,
	}
}
