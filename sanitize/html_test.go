package sanitize

import (
	"testing"

	"github.com/rinsehq/rinse/policy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSanitizer(t *testing.T, opts Options) *Sanitizer {
	t.Helper()
	s, err := New(nil, opts)
	require.NoError(t, err)
	return s
}

func TestEscape(t *testing.T) {
	tests := []struct {
		title    string
		input    any
		expected string
	}{
		{
			title:    "Plain Text",
			input:    "Hello, World!",
			expected: "Hello, World!",
		},
		{
			title:    "All Significant Characters",
			input:    `<div>"'&</div>`,
			expected: "&lt;div&gt;&quot;&#039;&amp;&lt;/div&gt;",
		},
		{
			title:    "No Double Escaping",
			input:    "a & b",
			expected: "a &amp; b",
		},
		{
			title:    "Number",
			input:    42,
			expected: "42",
		},
		{
			title:    "Float",
			input:    4.5,
			expected: "4.5",
		},
		{
			title:    "Nil",
			input:    nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Escape(tt.input), "failed for title: %s", tt.title)
	}
}

func TestStripText(t *testing.T) {
	tests := []struct {
		title    string
		input    string
		expected string
	}{
		{
			title:    "Plain Text",
			input:    "Hello, World!",
			expected: "Hello, World!",
		},
		{
			title:    "Simple Markup",
			input:    "<b>Bold</b> and <i>italic</i>",
			expected: "Bold and italic",
		},
		{
			title:    "Script Tag And Body Removed",
			input:    "<script>evil()</script>Safe",
			expected: "Safe",
		},
		{
			title:    "Empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, StripText(tt.input), "failed for title: %s", tt.title)
	}
}

func TestStripTextIdempotent(t *testing.T) {
	inputs := []string{
		"Hello, World!",
		"<b>Bold</b><script>evil()</script>",
		"<p>Nested <em>markup</em></p>",
		"entities stay &amp; escaped",
	}

	for _, input := range inputs {
		once := StripText(input)
		assert.Equal(t, once, StripText(once), "failed for input: %s", input)
	}
}

func TestFilterHTMLTags(t *testing.T) {
	s := newTestSanitizer(t, Options{})

	out := s.FilterHTMLTags("<b>Bold</b><script>evil()</script>", "b")
	assert.Contains(t, out, "<b>Bold</b>")
	assert.NotContains(t, out, "<script")
	assert.NotContains(t, out, "evil()")
}

func TestFilterHTML(t *testing.T) {
	s := newTestSanitizer(t, Options{})

	tests := []struct {
		title    string
		input    string
		policy   string
		expected string
	}{
		{
			title:    "Inline Keeps Formatting",
			input:    "<p>Hi <em>there</em></p>",
			policy:   policy.Inline,
			expected: "<p>Hi <em>there</em></p>",
		},
		{
			title:    "Inline Drops Unknown Subtree",
			input:    "<p>ok</p><marquee>wow</marquee>",
			policy:   policy.Inline,
			expected: "<p>ok</p>",
		},
		{
			title:    "Strict Keeps Text Only",
			input:    "<b>Bold</b>",
			policy:   policy.Strict,
			expected: "Bold",
		},
		{
			title:    "Empty Input",
			input:    "",
			policy:   policy.Content,
			expected: "",
		},
	}

	for _, tt := range tests {
		out, err := s.FilterHTML(tt.input, tt.policy)
		assert.NoError(t, err, "failed for title: %s", tt.title)
		assert.Equal(t, tt.expected, out, "failed for title: %s", tt.title)
	}
}

func TestFilterHTMLUnknownPolicy(t *testing.T) {
	s := newTestSanitizer(t, Options{})

	_, err := s.FilterHTML("<b>hi</b>", "nope")
	assert.ErrorIs(t, err, policy.ErrUnknownPolicy)
}

func TestFilterHTMLAttributes(t *testing.T) {
	s := newTestSanitizer(t, Options{})

	out, err := s.FilterHTML(`<a href="https://example.com/" onclick="evil()">link</a>`, policy.Content)
	require.NoError(t, err)
	assert.Contains(t, out, `href="https://example.com/"`)
	assert.NotContains(t, out, "onclick")

	out, err = s.FilterHTML(`<a href="javascript:alert(1)">link</a>`, policy.Content)
	require.NoError(t, err)
	assert.NotContains(t, out, "javascript:")
}

func TestFilterHTMLIdempotent(t *testing.T) {
	s := newTestSanitizer(t, Options{})

	inputs := []string{
		"<p>Hi <em>there</em></p>",
		"<b>Bold</b><script>evil()</script>",
		"plain text",
	}

	for _, input := range inputs {
		once, err := s.FilterHTML(input, policy.Inline)
		require.NoError(t, err)
		twice, err := s.FilterHTML(once, policy.Inline)
		require.NoError(t, err)
		assert.Equal(t, once, twice, "failed for input: %s", input)
	}
}

func TestFilterHTMLWithEscapeMode(t *testing.T) {
	s := newTestSanitizer(t, Options{})

	// StripUnknownTags disabled keeps unknown markers as visible text.
	out := s.FilterHTMLWith("<blink>hey</blink>", policy.Policy{
		AllowedTags: []string{"b"},
	})
	assert.NotContains(t, out, "<blink>")
	assert.Contains(t, out, "hey")
	assert.Contains(t, out, "&lt;blink&gt;")
}
