// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package resource

import (
	"fmt"
	"sort"

	"github.com/jtacoma/uritemplates"
)

// Template produces resource locations from an RFC 6570 URI template, e.g.
// "https://example.com/devices/{id}/config.json" or "/etc/appname/{name}.json".
type Template struct {
	URITemplate *uritemplates.UriTemplate
}

// NewTemplate parses a URI template.  If any requiredNames are supplied, an error is returned
// unless the template contains every one of those names.
func NewTemplate(uri string, requiredNames ...string) (*Template, error) {
	if len(uri) == 0 {
		return nil, ErrorURIRequired
	}

	uriTemplate, err := uritemplates.Parse(uri)
	if err != nil {
		return nil, err
	}

	if len(requiredNames) > 0 {
		missingNames := make([]string, 0, len(requiredNames))
		actualNames := sort.StringSlice(uriTemplate.Names())
		actualNames.Sort()

		for _, requiredName := range requiredNames {
			if position := actualNames.Search(requiredName); position >= actualNames.Len() || actualNames[position] != requiredName {
				missingNames = append(missingNames, requiredName)
			}
		}

		if len(missingNames) > 0 {
			return nil, fmt.Errorf("URI template %s does not contain names %s", uri, missingNames)
		}
	}

	return &Template{URITemplate: uriTemplate}, nil
}

func (t *Template) String() string {
	return t.URITemplate.String()
}

// Expand uses the supplied object as a source for name/value pairs, typically a
// map[string]interface{} or a struct, and returns the resulting location.
func (t *Template) Expand(value interface{}) (string, error) {
	return t.URITemplate.Expand(value)
}
