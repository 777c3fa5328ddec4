// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package resource

import (
	"context"
	"encoding/json"
	"fmt"
)

// Location is a configurable reference to an external resource.  It is typically embedded
// in JSON or viper configuration, e.g. {"schema": "https://example.com/schema.json"}.
type Location string

// Target classifies this location
func (l Location) Target() Target {
	return Classify(string(l))
}

// ReadAll loads all the bytes at this location.  If loader is nil, a default Loader is used.
func (l Location) ReadAll(ctx context.Context, loader *Loader) ([]byte, error) {
	if loader == nil {
		loader = defaultLoader
	}

	return loader.LoadResource(ctx, string(l))
}

// ReadText loads this location and decodes it as text.  If loader is nil, a default Loader is used.
func (l Location) ReadText(ctx context.Context, loader *Loader, encoding string) (string, error) {
	if loader == nil {
		loader = defaultLoader
	}

	return loader.LoadTextResource(ctx, string(l), encoding)
}

// UnmarshalJSON requires a non-empty JSON string
func (l *Location) UnmarshalJSON(data []byte) error {
	var location string
	if err := json.Unmarshal(data, &location); err != nil {
		return fmt.Errorf("Unable to read resource location %s: %v", data, err)
	}

	if len(location) == 0 {
		return ErrEmptyLocation
	}

	*l = Location(location)
	return nil
}
