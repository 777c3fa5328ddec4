// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package resource loads external resources addressed by URL-like strings.

A location beginning with http:// or https:// is fetched with an HTTP GET.  A location beginning
with file://, or one that carries no scheme at all (e.g. "/etc/appname/config.json" or "data.bin"),
is read from the filesystem.  Any other scheme is rejected.  Loaded bytes are fully buffered and
may optionally be decoded as text under a named encoding.
*/
package resource
