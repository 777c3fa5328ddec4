// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package resource

import (
	"regexp"
	"strings"
)

const (
	// NoScheme indicates the value of a URI without a scheme prefix, e.g. "/etc/appname/config.json"
	NoScheme = ""

	// FileScheme indicates a file URI according to https://en.wikipedia.org/wiki/File_URI_scheme.
	FileScheme = "file"

	// HttpScheme is plain old HTTP
	HttpScheme = "http"

	// HttpsScheme is secure HTTP
	HttpsScheme = "https"

	httpPrefix  = HttpScheme + "://"
	httpsPrefix = HttpsScheme + "://"
	filePrefix  = FileScheme + "://"
)

// schemePattern recognizes anything that looks like a URI scheme followed by an authority
var schemePattern = regexp.MustCompile(`^(\w+)://`)

// Kind identifies how a resource is obtained.
type Kind int

const (
	// Unsupported is a location whose scheme this package cannot load
	Unsupported Kind = iota

	// Remote is an http or https location
	Remote

	// Local is a file:// location or a bare filesystem path
	Local
)

func (k Kind) String() string {
	switch k {
	case Remote:
		return "remote"
	case Local:
		return "local"
	default:
		return "unsupported"
	}
}

// Target is the classified form of a location string.
type Target struct {
	// Kind is how the resource is obtained
	Kind Kind

	// Scheme is the scheme that was recognized.  Bare paths have NoScheme.
	Scheme string

	// URL is the original, unmodified location
	URL string
}

// Classify examines a location and determines how it should be loaded.  The rules are applied in order:
//
//   - http:// and https:// prefixes are Remote
//   - a file:// prefix, or no recognizable scheme:// prefix at all, is Local
//   - anything else is Unsupported
//
// Prefix matching is case sensitive.  Any string that does not look like scheme://, including
// malformed URLs, is treated as a filesystem path.
func Classify(url string) Target {
	switch {
	case strings.HasPrefix(url, httpPrefix):
		return Target{Kind: Remote, Scheme: HttpScheme, URL: url}

	case strings.HasPrefix(url, httpsPrefix):
		return Target{Kind: Remote, Scheme: HttpsScheme, URL: url}

	case strings.HasPrefix(url, filePrefix):
		return Target{Kind: Local, Scheme: FileScheme, URL: url}
	}

	if match := schemePattern.FindStringSubmatch(url); match != nil {
		return Target{Kind: Unsupported, Scheme: match[1], URL: url}
	}

	return Target{Kind: Local, Scheme: NoScheme, URL: url}
}

// metricScheme returns the label value used when recording loads of this target
func (t Target) metricScheme() string {
	switch {
	case t.Kind == Unsupported:
		return "unsupported"
	case t.Kind == Local:
		return FileScheme
	default:
		return t.Scheme
	}
}
