package b64

import "strings"

// IsLikelyBase64 reports whether input looks like padded standard Base64.
// It is a cheap pre-filter, not a validator: any length that is not a multiple
// of four is accepted as long as the input ends with '='.
func IsLikelyBase64(input string) bool {
	validLength := len(input)%4 == 0 || (len(input)%4 > 0 && strings.HasSuffix(input, "="))
	if !validLength {
		return false
	}
	for _, c := range input {
		if !isAlphabetChar(c) {
			return false
		}
	}
	return true
}

func isAlphabetChar(c rune) bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	case c == '+', c == '/', c == '=':
		return true
	}
	return false
}
