package sanitize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructureShapePreserved(t *testing.T) {
	s := newTestSanitizer(t, Options{})

	when := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	input := map[string]any{
		"name":   "<script>alert(1)</script>John",
		"age":    30,
		"active": true,
		"score":  4.5,
		"bio":    nil,
		"when":   when,
		"tags":   []any{"<b>admin</b>", 7, "user"},
	}

	out, err := s.Structure(input)
	require.NoError(t, err)

	cleaned, ok := out.Value.(map[string]any)
	require.True(t, ok)

	// Same key set, only string leaves changed.
	assert.Len(t, cleaned, len(input))
	assert.Equal(t, "John", cleaned["name"])
	assert.Equal(t, 30, cleaned["age"])
	assert.Equal(t, true, cleaned["active"])
	assert.Equal(t, 4.5, cleaned["score"])
	assert.Nil(t, cleaned["bio"])
	assert.Equal(t, when, cleaned["when"])

	tags, ok := cleaned["tags"].([]any)
	require.True(t, ok)
	assert.Equal(t, []any{"admin", 7, "user"}, tags)

	assert.True(t, out.Modified)
}

func TestStructureUnmodified(t *testing.T) {
	s := newTestSanitizer(t, Options{})

	out, err := s.Structure(map[string]any{
		"name":  "John",
		"count": 3,
	})
	require.NoError(t, err)

	assert.False(t, out.Modified)
	assert.Empty(t, out.Warnings)
}

func TestStructureWarningsCarryPaths(t *testing.T) {
	s := newTestSanitizer(t, Options{})

	out, err := s.Structure(map[string]any{
		"comment": "<script>evil()</script>",
		"nested": map[string]any{
			"items": []any{"fine", "<img src=x onerror=alert(1)>"},
		},
	})
	require.NoError(t, err)

	require.Len(t, out.Warnings, 2)
	assert.Equal(t, "dangerous content removed at $.comment", out.Warnings[0])
	assert.Equal(t, "dangerous content removed at $.nested.items[1]", out.Warnings[1])
}

func TestStructureSensitiveKeysExemptAtDepth(t *testing.T) {
	s := newTestSanitizer(t, Options{})

	secret := "<script>steal()</script>hunter2"
	out, err := s.Structure(map[string]any{
		"name": "<b>John</b>",
		"auth": map[string]any{
			"password": secret,
			"note":     "<b>keep me</b>",
		},
	})
	require.NoError(t, err)

	cleaned := out.Value.(map[string]any)
	auth := cleaned["auth"].(map[string]any)

	assert.Equal(t, secret, auth["password"])
	assert.Equal(t, "keep me", auth["note"])
}

func TestStructureDoesNotMutateInput(t *testing.T) {
	s := newTestSanitizer(t, Options{})

	input := map[string]any{
		"name": "<b>John</b>",
		"tags": []any{"<i>x</i>"},
	}

	_, err := s.Structure(input)
	require.NoError(t, err)

	assert.Equal(t, "<b>John</b>", input["name"])
	assert.Equal(t, "<i>x</i>", input["tags"].([]any)[0])
}

func TestStructureStringSlicesAndMaps(t *testing.T) {
	s := newTestSanitizer(t, Options{})

	out, err := s.Structure(map[string]any{
		"labels": []string{"<b>one</b>", "two"},
		"meta":   map[string]string{"title": "<i>hey</i>"},
	})
	require.NoError(t, err)

	cleaned := out.Value.(map[string]any)
	assert.Equal(t, []string{"one", "two"}, cleaned["labels"])
	assert.Equal(t, map[string]string{"title": "hey"}, cleaned["meta"])
}

func TestStructureUnsupportedType(t *testing.T) {
	s := newTestSanitizer(t, Options{})

	_, err := s.Structure(map[string]any{
		"fn": func() {},
	})
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestStructureScalarRoot(t *testing.T) {
	s := newTestSanitizer(t, Options{})

	out, err := s.Structure("<b>Bold</b>")
	require.NoError(t, err)
	assert.Equal(t, "Bold", out.Value)
	assert.True(t, out.Modified)

	out, err = s.Structure(42)
	require.NoError(t, err)
	assert.Equal(t, 42, out.Value)
	assert.False(t, out.Modified)
}
