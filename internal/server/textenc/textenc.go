// Package textenc converts text files of unknown encoding to UTF-8.
package textenc

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/transform"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ToUTF8 decodes data to a UTF-8 string. A byte order mark selects UTF-8 or
// UTF-16; valid UTF-8 is kept as is; anything else is decoded as
// windows-1252, the HTML5 default for unlabeled legacy text.
func ToUTF8(data []byte) (string, string, error) {
	if bytes.HasPrefix(data, utf8BOM) {
		return string(data[len(utf8BOM):]), "utf-8", nil
	}
	if utf8.Valid(data) {
		return string(data), "utf-8", nil
	}

	enc, name, _ := charset.DetermineEncoding(data, "text/plain")
	out, _, err := transform.Bytes(enc.NewDecoder(), data)
	if err != nil {
		return "", name, fmt.Errorf("failed to decode %s text: %w", name, err)
	}
	// декодер UTF-16 оставляет BOM как U+FEFF
	out = bytes.TrimPrefix(out, utf8BOM)
	return string(out), name, nil
}
