package dice

import "strings"

// quote wraps a string in literal quotation marks, used for error messages.
func quote(s string) string {
	return strings.Join([]string{"\"", s, "\""}, "")
}
