// Package encoding wraps the charset tables in golang.org/x/text so the
// rest of xmldom never deals with encoding names directly.
package encoding

import (
	"strings"

	enc "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

// Load returns the encoding to transcode from for the given charset
// name. It returns nil when no transcoding is required: for the empty
// name, for any spelling of UTF-8, and for names that no table knows.
func Load(name string) enc.Encoding {
	switch strings.ToLower(name) {
	case "", "utf8", "utf-8":
		return nil
	}

	e, err := htmlindex.Get(name)
	if err != nil {
		return nil
	}
	if e == unicode.UTF8 {
		return nil
	}
	return e
}
