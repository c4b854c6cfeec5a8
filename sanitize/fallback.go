package sanitize

import (
	"regexp"
	"strings"
)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// fallbackStrip is the fail-safe path used when the sanitization
// primitive fails: a conservative regex tag strip followed by escaping
// of any angle bracket the regex could not pair up. Its output never
// contains raw markup characters, so it is at least as strict as the
// parser-based path it replaces.
func fallbackStrip(value string) string {
	value = tagPattern.ReplaceAllString(value, "")
	value = strings.ReplaceAll(value, "<", "&lt;")
	value = strings.ReplaceAll(value, ">", "&gt;")
	return value
}
