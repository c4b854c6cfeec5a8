package policy

import (
	"errors"
	"fmt"
	"sort"

	"github.com/samber/lo"
)

// ErrUnknownPolicy is returned by [Registry.Get] when the requested
// name has not been registered. Callers should treat this as a
// configuration mistake, not substitute a default silently.
var ErrUnknownPolicy = errors.New("unknown sanitization policy")

// Registry holds named policies. It is populated once at startup and
// must not be modified afterwards: the sanitize package compiles the
// registered policies at construction time and shares them read-only
// across all calls.
type Registry struct {
	policies map[string]Policy
}

// NewRegistry returns a registry pre-populated with the built-in
// presets: "strict", "inline" and "content".
func NewRegistry() *Registry {
	r := &Registry{
		policies: map[string]Policy{},
	}

	r.Register(Strict, StrictPolicy())
	r.Register(Inline, InlinePolicy())
	r.Register(Content, ContentPolicy())

	return r
}

// Register stores p under the given name, replacing any previous
// policy with that name. The policy is cloned so later changes to the
// caller's value cannot affect the registry.
func (r *Registry) Register(name string, p Policy) {
	r.policies[name] = p.Clone()
}

// Get returns the policy registered under name.
func (r *Registry) Get(name string) (Policy, error) {
	p, ok := r.policies[name]
	if !ok {
		return Policy{}, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}

	return p.Clone(), nil
}

// Has reports whether a policy is registered under name.
func (r *Registry) Has(name string) bool {
	_, ok := r.policies[name]
	return ok
}

// Names returns the registered policy names, sorted.
func (r *Registry) Names() []string {
	names := lo.Keys(r.policies)
	sort.Strings(names)
	return names
}
