// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package resource

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

// DefaultEncoding is the text encoding used when none is specified
const DefaultEncoding = "utf8"

// binaryToText holds the encodings which render arbitrary bytes as printable text rather
// than interpreting them as characters.
var binaryToText = map[string]func([]byte) string{
	"base64":    base64.StdEncoding.EncodeToString,
	"base64url": base64.RawURLEncoding.EncodeToString,
	"hex":       hex.EncodeToString,
}

// characterEncodings holds the short names callers commonly use.  Anything not listed here is
// looked up as a WHATWG label, then as an IANA name.
var characterEncodings = map[string]encoding.Encoding{
	"utf8":       unicode.UTF8,
	"utf-8":      unicode.UTF8,
	"latin1":     charmap.ISO8859_1,
	"binary":     charmap.ISO8859_1,
	"iso-8859-1": charmap.ISO8859_1,
	"utf16le":    unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	"utf-16le":   unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	"ucs2":       unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	"ucs-2":      unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
}

// Decode converts raw resource bytes into a string using the named encoding.  The empty name
// means DefaultEncoding.  Names are case insensitive.
//
// Invalid byte sequences are handled however the chosen decoder handles them; for UTF-8 they
// become U+FFFD.  Any error from the decoder is returned unchanged.
func Decode(data []byte, name string) (string, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if len(name) == 0 {
		name = DefaultEncoding
	}

	if render, ok := binaryToText[name]; ok {
		return render(data), nil
	}

	if name == "ascii" {
		text := make([]byte, len(data))
		for i, b := range data {
			text[i] = b & 0x7f
		}

		return string(text), nil
	}

	e, err := lookupEncoding(name)
	if err != nil {
		return "", err
	}

	text, err := e.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}

	return string(text), nil
}

func lookupEncoding(name string) (encoding.Encoding, error) {
	if e, ok := characterEncodings[name]; ok {
		return e, nil
	}

	if e, err := htmlindex.Get(name); err == nil && e != nil {
		return e, nil
	}

	if e, err := ianaindex.IANA.Encoding(name); err == nil && e != nil {
		return e, nil
	}

	return nil, &Error{Text: fmt.Sprintf("Unknown encoding: %s", name)}
}
