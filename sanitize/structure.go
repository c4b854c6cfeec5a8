package sanitize

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"time"

	"github.com/rinsehq/rinse/policy"
	"github.com/samber/lo"
)

// ErrUnsupportedType is returned when traversal meets a value that is
// not a recognized scalar, sequence or mapping. The engine does not
// guess at unknown shapes.
var ErrUnsupportedType = errors.New("unsupported value type")

// Outcome is the result of a structural sanitization pass. Modified is
// true iff any string leaf changed. Warnings are informational notes
// about dangerous content, ordered by traversal path; they never
// affect control flow.
type Outcome struct {
	Value    any
	Modified bool
	Warnings []string
}

// Structure recursively sanitizes value using the default policy. See
// [Sanitizer.StructureWith].
func (s *Sanitizer) Structure(value any) (Outcome, error) {
	return s.StructureWith(value, s.defaultPolicy)
}

// StructureWith recursively sanitizes value using the named policy.
// String leaves are filtered, non-string scalars pass through
// untouched, and sequences and mappings are rebuilt with identical
// shape. Keys in the sensitive set are exempt at every nesting depth.
// The input is never mutated. Traversal assumes acyclic input.
func (s *Sanitizer) StructureWith(value any, policyName string) (Outcome, error) {
	bm, ok := s.compiled[policyName]
	if !ok {
		return Outcome{}, fmt.Errorf("%w: %q", policy.ErrUnknownPolicy, policyName)
	}

	w := &walker{s: s, bm: bm, policyName: policyName}
	out, err := w.walk("$", value)
	if err != nil {
		return Outcome{}, err
	}

	return Outcome{Value: out, Modified: w.modified, Warnings: w.warnings}, nil
}

type walker struct {
	s          *Sanitizer
	bm         htmlPrimitive
	policyName string
	modified   bool
	warnings   []string
}

func (w *walker) walk(path string, value any) (any, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil

	case string:
		return w.walkString(path, v), nil

	case bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64,
		json.Number, time.Time, *regexp.Regexp:
		return v, nil

	case []any:
		out := make([]any, len(v))
		for i, elem := range v {
			cleaned, err := w.walk(fmt.Sprintf("%s[%d]", path, i), elem)
			if err != nil {
				return nil, err
			}
			out[i] = cleaned
		}
		return out, nil

	case []string:
		out := make([]string, len(v))
		for i, elem := range v {
			out[i] = w.walkString(fmt.Sprintf("%s[%d]", path, i), elem)
		}
		return out, nil

	case map[string]any:
		out := make(map[string]any, len(v))
		keys := lo.Keys(v)
		sort.Strings(keys)
		for _, key := range keys {
			if _, sensitive := w.s.sensitive[key]; sensitive {
				out[key] = v[key]
				continue
			}

			cleaned, err := w.walk(path+"."+key, v[key])
			if err != nil {
				return nil, err
			}
			out[key] = cleaned
		}
		return out, nil

	case map[string]string:
		out := make(map[string]string, len(v))
		keys := lo.Keys(v)
		sort.Strings(keys)
		for _, key := range keys {
			if _, sensitive := w.s.sensitive[key]; sensitive {
				out[key] = v[key]
				continue
			}
			out[key] = w.walkString(path+"."+key, v[key])
		}
		return out, nil

	default:
		return nil, fmt.Errorf("%w: %T at %s", ErrUnsupportedType, value, path)
	}
}

func (w *walker) walkString(path, value string) string {
	cleaned := w.s.filter(w.bm, w.s.raw[w.policyName], value)
	if cleaned == value {
		return value
	}

	w.modified = true
	if IsDangerous(value) {
		w.warnings = append(w.warnings, fmt.Sprintf("dangerous content removed at %s", path))
	}

	return cleaned
}
