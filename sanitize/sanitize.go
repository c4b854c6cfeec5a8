// Package sanitize implements the sanitization engine: scalar string
// and HTML cleaning, URL scheme validation, and recursive sanitization
// of JSON-like structures with sensitive-field exemption. Tree-level
// tag and attribute filtering is delegated to bluemonday; this package
// decides policy and orchestration only.
package sanitize

import (
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/rinsehq/rinse/policy"
)

// DefaultURLFallback is the sentinel returned for rejected URLs when
// no other fallback is configured. A bare hash is inert in every
// rendering context, unlike an empty href which re-navigates to the
// current page.
const DefaultURLFallback = "#"

// DefaultSensitiveFields are the keys exempt from sanitization unless
// the caller supplies its own set. Their values must reach password
// hashing and token verification unmodified, so they are neither
// inspected nor altered at any nesting depth.
var DefaultSensitiveFields = []string{
	"password",
	"passwordConfirm",
	"currentPassword",
	"newPassword",
	"token",
	"accessToken",
	"refreshToken",
	"apiKey",
	"api_key",
	"secret",
	"clientSecret",
	"authorization",
}

// Options configures a [Sanitizer]. The zero value selects the strict
// policy, the "#" URL fallback and [DefaultSensitiveFields].
type Options struct {
	// DefaultPolicy names the registry policy used when an operation
	// does not name one explicitly.
	DefaultPolicy string

	// URLFallback is returned by ValidateURL for rejected input.
	URLFallback string

	// SensitiveFields are the keys exempt from structural traversal.
	SensitiveFields []string
}

// Sanitizer is the sanitization engine. All named policies are
// compiled to bluemonday policies at construction; afterwards the
// engine holds only read-only state and is safe for concurrent use.
type Sanitizer struct {
	raw           map[string]policy.Policy
	compiled      map[string]*bluemonday.Policy
	sensitive     map[string]struct{}
	sensitiveKeys []string
	defaultPolicy string
	urlFallback   string
}

// New builds a Sanitizer from the given registry. A nil registry
// selects the built-in presets. Naming an unregistered default policy
// is a configuration error and fails immediately.
func New(reg *policy.Registry, opts Options) (*Sanitizer, error) {
	if reg == nil {
		reg = policy.NewRegistry()
	}

	if opts.DefaultPolicy == "" {
		opts.DefaultPolicy = policy.Strict
	}

	if opts.URLFallback == "" {
		opts.URLFallback = DefaultURLFallback
	}

	if opts.SensitiveFields == nil {
		opts.SensitiveFields = DefaultSensitiveFields
	}

	if !reg.Has(opts.DefaultPolicy) {
		return nil, fmt.Errorf("%w: %q", policy.ErrUnknownPolicy, opts.DefaultPolicy)
	}

	s := &Sanitizer{
		raw:           map[string]policy.Policy{},
		compiled:      map[string]*bluemonday.Policy{},
		sensitive:     map[string]struct{}{},
		sensitiveKeys: append([]string(nil), opts.SensitiveFields...),
		defaultPolicy: opts.DefaultPolicy,
		urlFallback:   opts.URLFallback,
	}

	for _, name := range reg.Names() {
		p, err := reg.Get(name)
		if err != nil {
			return nil, err
		}

		s.raw[name] = p
		s.compiled[name] = compile(p)
	}

	for _, key := range opts.SensitiveFields {
		s.sensitive[key] = struct{}{}
	}

	return s, nil
}

// DefaultPolicy returns the name of the policy used when none is given.
func (s *Sanitizer) DefaultPolicy() string {
	return s.defaultPolicy
}

// SensitiveFields returns the keys exempt from sanitization.
func (s *Sanitizer) SensitiveFields() []string {
	return append([]string(nil), s.sensitiveKeys...)
}

// compile binds a policy to the underlying sanitization primitive.
// Attributes remain scoped per element, which is at least as strict as
// allowing the flattened union on every element.
func compile(p policy.Policy) *bluemonday.Policy {
	bm := bluemonday.NewPolicy()
	bm.AllowElements(p.Tags()...)

	for tag, attrs := range p.AllowedAttributes {
		if len(attrs) == 0 {
			continue
		}
		if tag == "*" {
			bm.AllowAttrs(attrs...).Globally()
		} else {
			bm.AllowAttrs(attrs...).OnElements(tag)
		}
	}

	bm.AllowURLSchemes("http", "https", "mailto")
	return bm
}
