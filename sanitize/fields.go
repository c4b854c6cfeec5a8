package sanitize

import (
	"sort"

	"github.com/karlseguin/typed"
	"github.com/samber/lo"
)

// Fields sanitizes only the named top-level string fields of data,
// using the default policy. When no fields are named, every top-level
// string field is sanitized. Sensitive keys are always exempt.
// Non-string fields and fields that are absent are left untouched.
// The input map is not mutated.
func (s *Sanitizer) Fields(data map[string]any, fields ...string) map[string]any {
	if data == nil {
		return nil
	}

	out := make(map[string]any, len(data))
	for k, v := range data {
		out[k] = v
	}

	if len(fields) == 0 {
		fields = lo.Keys(data)
		sort.Strings(fields)
	}

	t := typed.New(out)
	bm := s.compiled[s.defaultPolicy]
	p := s.raw[s.defaultPolicy]

	for _, field := range fields {
		if _, sensitive := s.sensitive[field]; sensitive {
			continue
		}

		value, ok := t.StringIf(field)
		if !ok {
			continue
		}

		out[field] = s.filter(bm, p, value)
	}

	return out
}
