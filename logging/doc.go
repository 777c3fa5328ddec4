// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package logging configures go-kit loggers for resource loading code.  Output is logfmt or JSON,
written to stdout or to a rolling file, and filtered by level.
*/
package logging
