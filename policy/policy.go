// Package policy defines the sanitization policies used by the engine:
// which HTML tags are permitted, which attributes each tag may carry,
// and how unknown markup is handled. Policies are pure data. Binding a
// policy to the underlying HTML sanitization primitive is the job of
// the sanitize package.
package policy

import (
	"sort"

	"github.com/samber/lo"
)

// Policy describes the markup a deployment considers safe. A Policy is
// never mutated after construction; Compose returns fresh copies.
type Policy struct {
	// AllowedTags lists the element names kept in output. Everything
	// else is removed or escaped depending on StripUnknownTags.
	AllowedTags []string

	// AllowedAttributes maps an element name to the attributes kept on
	// it. The pseudo-element "*" allows an attribute on every element.
	AllowedAttributes map[string][]string

	// StripUnknownTags removes the markers of disallowed elements.
	// When false, the markers are escaped into visible text instead.
	StripUnknownTags bool

	// StripUnknownTagBodies also removes the contents of disallowed
	// elements. When false, children are promoted to the parent.
	StripUnknownTagBodies bool
}

// Clone returns a deep copy of p.
func (p Policy) Clone() Policy {
	c := Policy{
		AllowedTags:           append([]string(nil), p.AllowedTags...),
		StripUnknownTags:      p.StripUnknownTags,
		StripUnknownTagBodies: p.StripUnknownTagBodies,
	}

	if p.AllowedAttributes != nil {
		c.AllowedAttributes = make(map[string][]string, len(p.AllowedAttributes))
		for tag, attrs := range p.AllowedAttributes {
			c.AllowedAttributes[tag] = append([]string(nil), attrs...)
		}
	}

	return c
}

// Tags returns the allowed tag names, deduplicated and sorted.
func (p Policy) Tags() []string {
	tags := lo.Uniq(p.AllowedTags)
	sort.Strings(tags)
	return tags
}

// Allows reports whether the given tag is in the allowlist.
func (p Policy) Allows(tag string) bool {
	return lo.Contains(p.AllowedTags, tag)
}

// Compose merges overrides on top of base and returns the result. Tag
// lists are merged by union. Attribute maps are merged key-wise with
// overrides winning on conflicting keys. The stripping flags are taken
// from overrides. Neither input is mutated.
func Compose(base, overrides Policy) Policy {
	merged := base.Clone()

	merged.AllowedTags = lo.Uniq(append(merged.AllowedTags, overrides.AllowedTags...))
	merged.StripUnknownTags = overrides.StripUnknownTags
	merged.StripUnknownTagBodies = overrides.StripUnknownTagBodies

	if len(overrides.AllowedAttributes) > 0 && merged.AllowedAttributes == nil {
		merged.AllowedAttributes = make(map[string][]string, len(overrides.AllowedAttributes))
	}
	for tag, attrs := range overrides.AllowedAttributes {
		merged.AllowedAttributes[tag] = append([]string(nil), attrs...)
	}

	return merged
}
