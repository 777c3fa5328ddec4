// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package resource

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/go-kit/kit/log"
	"github.com/spf13/afero"
	"github.com/xmidt-org/resourceloader/logging"
	"github.com/xmidt-org/resourceloader/xhttp"
)

var (
	osFs = afero.NewOsFs()

	defaultLoader = new(Loader)
)

// Loader fetches resources over HTTP(S) or from a filesystem.  The zero value is ready to use:
// it uses http.DefaultClient, the OS filesystem, no logging, and no metrics.
//
// A Loader keeps no state between calls.  It is safe for concurrent use as long as its
// collaborators are.
type Loader struct {
	// HTTPClient is used for http:// and https:// locations.  If not supplied, http.DefaultClient is used.
	// Timeouts, tracing, and any authentication are the concern of this client.
	HTTPClient xhttp.Client

	// Fs is used for file:// locations and bare paths.  If not supplied, the OS filesystem is used.
	Fs afero.Fs

	// Logger receives debug output for each load and error output for failures
	Logger log.Logger

	// Measures records load outcomes.  If not supplied, nothing is recorded.
	Measures *Measures

	// Encoding is used by LoadTextResource when no encoding is passed.  If not supplied, DefaultEncoding is used.
	Encoding string
}

func (l *Loader) httpClient() xhttp.Client {
	if l.HTTPClient != nil {
		return l.HTTPClient
	}

	return http.DefaultClient
}

func (l *Loader) fs() afero.Fs {
	if l.Fs != nil {
		return l.Fs
	}

	return osFs
}

func (l *Loader) logger() log.Logger {
	if l.Logger != nil {
		return l.Logger
	}

	return logging.DefaultLogger()
}

func (l *Loader) measures() *Measures {
	if l.Measures != nil {
		return l.Measures
	}

	return discardMeasures
}

// LoadResource reads the entire resource at the given location into memory.
//
// For http:// and https:// locations, a GET is issued and the response must have a 200 status
// and a non-empty body.  For file:// locations and strings without a scheme, the file is read from
// the filesystem.  Other schemes are rejected.
//
// Failures detected by this method are reported as *Error.  Errors from the HTTP client or the
// filesystem are returned unchanged.
func (l *Loader) LoadResource(ctx context.Context, url string) ([]byte, error) {
	var (
		target = Classify(url)
		data   []byte
		err    error
	)

	switch target.Kind {
	case Remote:
		data, err = l.loadRemote(ctx, target)

	case Local:
		data, err = l.loadLocal(target)

	default:
		err = &Error{
			Text: fmt.Sprintf("The URL scheme is not supported. Scheme:%s URL:%s", target.Scheme, url),
		}
	}

	scheme := target.metricScheme()
	if err != nil {
		l.measures().Loads.With(SchemeLabel, scheme, OutcomeLabel, FailureOutcome).Add(1.0)
		logging.Error(l.logger()).Log(
			logging.MessageKey(), "unable to load resource",
			"url", url,
			"kind", target.Kind,
			logging.ErrorKey(), err,
		)

		return nil, err
	}

	l.measures().Loads.With(SchemeLabel, scheme, OutcomeLabel, SuccessOutcome).Add(1.0)
	l.measures().LoadBytes.With(SchemeLabel, scheme).Add(float64(len(data)))
	logging.Debug(l.logger()).Log(
		logging.MessageKey(), "loaded resource",
		"url", url,
		"kind", target.Kind,
		"bytes", len(data),
	)

	return data, nil
}

// LoadTextResource loads a resource and decodes it as text under the named encoding.
// An empty encoding means the Loader's Encoding.  See Decode for the supported names.
func (l *Loader) LoadTextResource(ctx context.Context, url, encoding string) (string, error) {
	data, err := l.LoadResource(ctx, url)
	if err != nil {
		return "", err
	}

	if len(encoding) == 0 {
		encoding = l.Encoding
	}

	return Decode(data, encoding)
}

// LoadTemplate expands a URI template with the given value and loads the resulting location
func (l *Loader) LoadTemplate(ctx context.Context, t *Template, value interface{}) ([]byte, error) {
	url, err := t.Expand(value)
	if err != nil {
		return nil, err
	}

	return l.LoadResource(ctx, url)
}

func (l *Loader) loadRemote(ctx context.Context, target Target) ([]byte, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, target.URL, nil)
	if err != nil {
		return nil, err
	}

	response, err := l.httpClient().Do(request)
	if err != nil {
		return nil, err
	}

	var body []byte
	if response.Body != nil {
		defer response.Body.Close()
		if body, err = io.ReadAll(response.Body); err != nil {
			return nil, err
		}
	}

	if response.StatusCode != http.StatusOK {
		return nil, &Error{
			Text: fmt.Sprintf("An error occurred while downloading %s. Status:%d Body:%s", target.URL, response.StatusCode, body),
		}
	}

	if len(body) == 0 {
		return nil, &Error{
			Text: fmt.Sprintf("Resource data is empty. URL:%s", target.URL),
		}
	}

	return body, nil
}

func (l *Loader) loadLocal(target Target) ([]byte, error) {
	path, err := FileURLToPath(target.URL)
	if err != nil {
		return nil, err
	}

	return afero.ReadFile(l.fs(), path)
}

// LoadResource loads a resource using a default Loader
func LoadResource(ctx context.Context, url string) ([]byte, error) {
	return defaultLoader.LoadResource(ctx, url)
}

// LoadTextResource loads a resource using a default Loader and decodes it with the named encoding.
// An empty encoding means DefaultEncoding.
func LoadTextResource(ctx context.Context, url, encoding string) (string, error) {
	return defaultLoader.LoadTextResource(ctx, url, encoding)
}
