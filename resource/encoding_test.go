// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package resource

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	testData := []struct {
		name     string
		data     []byte
		expected string
	}{
		{"", []byte("hello"), "hello"},
		{"utf8", []byte("caf\xc3\xa9"), "café"},
		{"UTF-8", []byte("caf\xc3\xa9"), "café"},
		{"utf8", []byte{'a', 0xff, 'b'}, "a\uFFFDb"},
		{"latin1", []byte("caf\xc3\xa9"), "cafÃ©"},
		{"binary", []byte{0xe9}, "é"},
		{"ISO-8859-1", []byte{0xe9}, "é"},
		{"ascii", []byte{'h', 'i', 0xe9}, "hii"},
		{"utf16le", []byte{'h', 0, 'i', 0}, "hi"},
		{"ucs2", []byte{0xe9, 0}, "é"},
		{"base64", []byte("hello"), "aGVsbG8="},
		{"base64url", []byte{0xfb, 0xff}, "-_8"},
		{"hex", []byte{0x00, 0xab}, "00ab"},
		{"windows-1252", []byte{0x80}, "€"},
		{"koi8-r", []byte{0xc1}, "\u0430"},
		{"shift_jis", []byte{0x82, 0xa0}, "あ"},
	}

	for _, record := range testData {
		t.Run(record.name, func(t *testing.T) {
			assert := assert.New(t)
			text, err := Decode(record.data, record.name)
			assert.NoError(err)
			assert.Equal(record.expected, text)
		})
	}
}

func TestDecodeUnknownEncoding(t *testing.T) {
	assert := assert.New(t)
	text, err := Decode([]byte("hello"), "nosuchencoding")
	assert.Empty(text)

	var loadErr *Error
	if assert.True(errors.As(err, &loadErr)) {
		assert.Contains(loadErr.Text, "nosuchencoding")
	}
}

func TestDecodeLatin1FullRange(t *testing.T) {
	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i)
	}

	for _, name := range []string{"latin1", "binary", "iso-8859-1"} {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)
			text, err := Decode(data, name)
			assert.NoError(err)

			runes := []rune(text)
			if assert.Len(runes, 256) {
				for i, r := range runes {
					assert.Equal(rune(i), r)
				}
			}
		})
	}
}
