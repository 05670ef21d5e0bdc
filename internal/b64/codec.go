// Package b64 guesses whether text is Base64 and converts text to and from
// standard padded Base64 with user facing error categories.
package b64

import (
	"encoding/base64"
	"github.com/pkg/errors"
	"unicode/utf8"
)

var encoding = base64.StdEncoding.Strict()

// Encode encodes the UTF-8 bytes of input using the standard alphabet with padding
func Encode(input string) string {
	return encoding.EncodeToString([]byte(input))
}

// Decode decodes standard padded Base64 back to text.
// The returned error is always a *Error of kind NotBase64, MalformedBase64 or NotUtf8.
func Decode(input string) (string, error) {
	if !IsLikelyBase64(input) {
		return "", NewError(NotBase64)
	}

	raw, err := encoding.DecodeString(input)
	if err != nil {
		return "", wrapError(MalformedBase64, errors.Wrap(err, "strict base64 decode"))
	}

	if !utf8.Valid(raw) {
		return "", NewError(NotUtf8)
	}
	return string(raw), nil
}
