// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package resource

import (
	"fmt"
	"net/url"
	"runtime"
	"strings"
)

// FileURLToPath converts a file:// URL into a native filesystem path.  Values without the file://
// prefix are assumed to already be paths and are returned unchanged.
//
// The URL path is percent-decoded.  The host must be empty or "localhost", except on windows
// where a host denotes a UNC share.  Encoded path separators are rejected.
func FileURLToPath(location string) (string, error) {
	return fileURLToPath(location, runtime.GOOS == "windows")
}

func fileURLToPath(location string, windows bool) (string, error) {
	if !strings.HasPrefix(location, filePrefix) {
		return location, nil
	}

	fileURL, err := url.Parse(location)
	if err != nil {
		return "", err
	}

	escaped := fileURL.EscapedPath()
	if strings.Contains(strings.ToUpper(escaped), "%2F") || (windows && strings.Contains(strings.ToUpper(escaped), "%5C")) {
		return "", &Error{
			Text: fmt.Sprintf("File URL path must not include encoded path separators. URL:%s", location),
		}
	}

	path := fileURL.Path
	host := fileURL.Host
	if host == "localhost" {
		host = ""
	}

	if windows {
		if len(host) > 0 {
			return `\\` + host + strings.ReplaceAll(path, "/", `\`), nil
		}

		// "/C:/dir/file" becomes "C:\dir\file"
		if len(path) >= 3 && path[0] == '/' && path[2] == ':' {
			path = path[1:]
		} else {
			return "", &Error{
				Text: fmt.Sprintf("File URL path must be absolute. URL:%s", location),
			}
		}

		return strings.ReplaceAll(path, "/", `\`), nil
	}

	if len(host) > 0 {
		return "", &Error{
			Text: fmt.Sprintf(`File URL host must be "localhost" or empty. URL:%s`, location),
		}
	}

	return path, nil
}
