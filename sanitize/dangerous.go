package sanitize

import (
	"regexp"

	"github.com/samber/lo"
)

// dangerousPatterns match content that is known to carry script
// execution: script tags, inline event handlers, javascript: URLs,
// eval calls and CSS expressions.
var dangerousPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)<\s*script\b`),
	regexp.MustCompile(`(?i)\bon\w+\s*=`),
	regexp.MustCompile(`(?i)javascript\s*:`),
	regexp.MustCompile(`(?i)\beval\s*\(`),
	regexp.MustCompile(`(?i)\bexpression\s*\(`),
}

// IsDangerous reports whether value matches a known-dangerous pattern.
// It is advisory only, used to annotate warnings: sanitization always
// runs regardless of what this returns.
func IsDangerous(value string) bool {
	return lo.SomeBy(dangerousPatterns, func(p *regexp.Regexp) bool {
		return p.MatchString(value)
	})
}
