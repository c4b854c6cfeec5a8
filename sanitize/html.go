package sanitize

import (
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/rinsehq/rinse/policy"
)

var strictPrimitive = bluemonday.StrictPolicy()

// entityReplacements escape text for plain-text display contexts.
// Ampersand must come first so entities introduced by the later
// replacements are not escaped again.
var entityReplacements = [][2]string{
	{"&", "&amp;"},
	{"<", "&lt;"},
	{">", "&gt;"},
	{`"`, "&quot;"},
	{"'", "&#039;"},
}

// Escape replaces the HTML-significant characters in value with named
// entity codes. It is lossless: nothing is removed, and the original
// can be recovered by entity decoding. Numbers are stringified, nil
// yields the empty string.
func Escape(value any) string {
	if value == nil {
		return ""
	}

	var s string
	switch v := value.(type) {
	case string:
		s = v
	default:
		s = fmt.Sprint(v)
	}

	for _, r := range entityReplacements {
		s = strings.ReplaceAll(s, r[0], r[1])
	}

	return s
}

// StripText removes all markup from value, returning only the text a
// browser would display with tags removed. Output stays entity-escaped
// so it can never contain raw markup characters, which also makes the
// operation idempotent. If the underlying primitive fails, the strict
// regex fallback runs instead; the failure path is never less strict
// than the success path.
func StripText(value string) string {
	if value == "" {
		return ""
	}

	return safeSanitize(strictPrimitive, value)
}

// FilterHTML filters value through the named registry policy. Tags and
// attributes outside the policy allowlist are removed.
func (s *Sanitizer) FilterHTML(value, policyName string) (string, error) {
	if policyName == "" {
		policyName = s.defaultPolicy
	}

	bm, ok := s.compiled[policyName]
	if !ok {
		return "", fmt.Errorf("%w: %q", policy.ErrUnknownPolicy, policyName)
	}

	return s.filter(bm, s.raw[policyName], value), nil
}

// FilterHTMLWith filters value through an ad hoc policy that is not in
// the registry, compiling it on the spot.
func (s *Sanitizer) FilterHTMLWith(value string, p policy.Policy) string {
	return s.filter(compile(p), p, value)
}

// FilterHTMLTags filters value keeping only the given tags, with no
// attributes. Unknown tags are removed together with their contents.
func (s *Sanitizer) FilterHTMLTags(value string, tags ...string) string {
	return s.FilterHTMLWith(value, policy.Policy{
		AllowedTags:           tags,
		StripUnknownTags:      true,
		StripUnknownTagBodies: true,
	})
}

func (s *Sanitizer) filter(bm htmlPrimitive, p policy.Policy, value string) string {
	if value == "" {
		return ""
	}

	// bluemonday always promotes the children of removed elements, so
	// subtree removal and tag escaping need the parser pre-pass.
	if p.StripUnknownTagBodies || !p.StripUnknownTags {
		value = applyTagPolicy(value, p)
	}

	return safeSanitize(bm, value)
}

// htmlPrimitive is the slice of the bluemonday API the engine depends
// on. It exists so the fail-safe path can be exercised in tests with a
// failing primitive.
type htmlPrimitive interface {
	Sanitize(string) string
}

// safeSanitize runs the primitive and recovers a panic into the
// explicit fallback strip. Sanitization failure must never surface raw
// untrusted markup.
func safeSanitize(p htmlPrimitive, value string) (out string) {
	defer func() {
		if recover() != nil {
			out = fallbackStrip(value)
		}
	}()

	return p.Sanitize(value)
}
