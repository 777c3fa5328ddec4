// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package resource

import "errors"

var (
	// ErrEmptyLocation is returned when a Location is configured as the empty string
	ErrEmptyLocation = errors.New("The location cannot be empty")

	// ErrorURIRequired is returned by NewTemplate when no URI template is supplied
	ErrorURIRequired = errors.New("A URI is required")
)

// Error is the single kind of error produced by this package when a resource cannot be loaded.
// Failures reported by the HTTP client or the filesystem are not wrapped in an Error; they
// are returned as is.
type Error struct {
	Text string
}

func (e *Error) Error() string {
	return e.Text
}
