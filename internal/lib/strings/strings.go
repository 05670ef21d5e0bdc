package strings

import "strings"

func AnyOf(testString string, variants ...string) bool {
	for _, s := range variants {
		if testString == s {
			return true
		}
	}
	return false
}

// Choices renders variants for flag usage, e.g. "text|json"
func Choices(variants ...string) string {
	return strings.Join(variants, "|")
}
