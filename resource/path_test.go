// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package resource

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileURLToPath(t *testing.T) {
	testData := []struct {
		location     string
		windows      bool
		expectedPath string
		expectError  bool
	}{
		{"data.bin", false, "data.bin", false},
		{"./data.bin", false, "./data.bin", false},
		{"/tmp/a.txt", false, "/tmp/a.txt", false},
		{"file:///tmp/a.txt", false, "/tmp/a.txt", false},
		{"file://localhost/tmp/a.txt", false, "/tmp/a.txt", false},
		{"file:///tmp/hello%20world.txt", false, "/tmp/hello world.txt", false},
		{"file:///tmp/caf%C3%A9.txt", false, "/tmp/café.txt", false},
		{"file://remotehost/tmp/a.txt", false, "", true},
		{"file:///tmp/a%2Fb.txt", false, "", true},
		{"file:///tmp/%zz.txt", false, "", true},
		{"file:///C:/data/data.bin", true, `C:\data\data.bin`, false},
		{"file://localhost/C:/data/data.bin", true, `C:\data\data.bin`, false},
		{"file://server/share/data.bin", true, `\\server\share\data.bin`, false},
		{"file:///data/data.bin", true, "", true},
		{"file:///C:/data%5Cdata.bin", true, "", true},
	}

	for _, record := range testData {
		t.Run(record.location, func(t *testing.T) {
			assert := assert.New(t)
			path, err := fileURLToPath(record.location, record.windows)
			assert.Equal(record.expectedPath, path)
			assert.Equal(record.expectError, err != nil)
		})
	}
}

func TestFileURLToPathError(t *testing.T) {
	_, err := FileURLToPath("file://remotehost/tmp/a.txt")
	var loadErr *Error
	if assert.True(t, errors.As(err, &loadErr)) {
		assert.Contains(t, loadErr.Error(), "remotehost")
	}
}
