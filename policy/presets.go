package policy

// Names of the built-in presets.
const (
	// Strict allows no markup at all. Filtering with it yields the
	// text content only, with the contents of disallowed elements
	// promoted so visible text survives.
	Strict = "strict"

	// Inline allows basic inline formatting with no attributes,
	// suitable for comments and other short user-generated content.
	Inline = "inline"

	// Content allows a common safe subset for longer user-generated
	// content: formatting, lists, links, code and quotes.
	Content = "content"
)

// StrictPolicy returns the policy behind the "strict" preset.
func StrictPolicy() Policy {
	return Policy{
		StripUnknownTags: true,
	}
}

// InlinePolicy returns the policy behind the "inline" preset.
func InlinePolicy() Policy {
	return Policy{
		AllowedTags: []string{
			"b", "i", "em", "strong", "u", "s",
			"br", "p",
			"ul", "ol", "li",
		},
		StripUnknownTags:      true,
		StripUnknownTagBodies: true,
	}
}

// ContentPolicy returns the policy behind the "content" preset.
func ContentPolicy() Policy {
	return Policy{
		AllowedTags: []string{
			"h1", "h2", "h3", "h4", "h5", "h6",
			"p", "br", "hr",
			"b", "i", "em", "strong", "u", "s", "del", "ins",
			"ul", "ol", "li",
			"code", "pre", "kbd", "samp",
			"blockquote", "cite", "q",
			"sup", "sub",
			"a",
		},
		AllowedAttributes: map[string][]string{
			"a":          {"href", "title", "rel"},
			"blockquote": {"cite"},
			"q":          {"cite"},
		},
		StripUnknownTags:      true,
		StripUnknownTagBodies: true,
	}
}
