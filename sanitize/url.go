package sanitize

import (
	"regexp"
	"strings"

	"github.com/samber/lo"
)

// allowedSchemePrefixes are the only schemes a URL may carry and still
// pass through unchanged. Everything else, javascript: and data:
// included, is rejected: the posture is allowlist, not denylist.
var allowedSchemePrefixes = []string{"http://", "https://", "mailto:"}

// bareDomainPattern matches domain-shaped input with no scheme: at
// least one dot separating non-whitespace segments, and no colon
// before the first dot that could hide a scheme.
var bareDomainPattern = regexp.MustCompile(`^[^\s/:?#]+\.\S+$`)

// ValidateURL normalizes raw against the scheme allowlist. Allowed
// schemes pass unchanged, bare domains are promoted to https, and
// everything else, empty input included, becomes the fallback
// sentinel.
func (s *Sanitizer) ValidateURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return s.urlFallback
	}

	lower := strings.ToLower(raw)
	if lo.SomeBy(allowedSchemePrefixes, func(prefix string) bool {
		return strings.HasPrefix(lower, prefix)
	}) {
		return raw
	}

	if bareDomainPattern.MatchString(raw) {
		return "https://" + raw
	}

	return s.urlFallback
}

// URLFallback returns the sentinel used for rejected URLs.
func (s *Sanitizer) URLFallback() string {
	return s.urlFallback
}
