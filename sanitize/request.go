package sanitize

import (
	"github.com/rinsehq/rinse/log"
)

// Request sanitizes an incoming payload while guaranteeing that
// sensitive values survive bit-for-bit: credentials must reach
// password hashing and token verification unmodified. When no keys are
// given, the sanitizer's configured sensitive set is used.
//
// The pipeline extracts the sensitive top-level values, neutralizes
// them in a working copy so traversal has nothing sensitive to touch
// even if the depth-aware exemption were to miss, sanitizes the copy,
// and restores the originals by key. Warnings produced along the way
// go to the debug log, never into the returned payload.
func (s *Sanitizer) Request(data map[string]any, sensitiveKeys ...string) (map[string]any, error) {
	if data == nil {
		return nil, nil
	}

	keys := sensitiveKeys
	if len(keys) == 0 {
		keys = s.sensitiveKeys
	}

	working := make(map[string]any, len(data))
	for k, v := range data {
		working[k] = v
	}

	extracted := map[string]any{}
	for _, k := range keys {
		if v, ok := working[k]; ok {
			extracted[k] = v
			working[k] = ""
		}
	}

	out, err := s.Structure(working)
	if err != nil {
		return nil, err
	}

	cleaned := out.Value.(map[string]any)
	for k, v := range extracted {
		cleaned[k] = v
	}

	if out.Modified {
		log.S().Debugw("request payload sanitized",
			"warnings", out.Warnings,
			"sensitiveKeys", len(extracted),
		)
	}

	return cleaned, nil
}
