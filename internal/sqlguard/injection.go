package sqlguard

import (
	"fmt"

	"github.com/corazawaf/libinjection-go"

	"github.com/TagoorPJ/SEVA-SADHANA-RAG-POC/internal/errors"
)

// ScanValue checks a single user-supplied value for SQL injection
// fingerprints. Plan filter values end up inside string literals, so this
// catches payloads before any SQL is synthesized from them.
func ScanValue(value string) error {
	if value == "" {
		return nil
	}

	if isInjection, fingerprint := libinjection.IsSQLi(value); isInjection {
		return errors.Newf(
			errors.ErrTypeUnsafeSQL,
			"suspicious value rejected (fingerprint %s): %q",
			fingerprint, value,
		)
	}

	return nil
}

// ScanFilters walks plan filter values and scans every string it finds,
// including strings nested in slices. Non-string values are passed through.
func ScanFilters(filters map[string]any) error {
	for key, raw := range filters {
		switch val := raw.(type) {
		case string:
			if err := ScanValue(val); err != nil {
				return errors.Wrapf(err, errors.ErrTypeUnsafeSQL, "filter %q failed safety check", key)
			}
		case []any:
			for _, item := range val {
				if s, ok := item.(string); ok {
					if err := ScanValue(s); err != nil {
						return errors.Wrapf(err, errors.ErrTypeUnsafeSQL, "filter %q failed safety check", key)
					}
				}
			}
		case fmt.Stringer:
			if err := ScanValue(val.String()); err != nil {
				return errors.Wrapf(err, errors.ErrTypeUnsafeSQL, "filter %q failed safety check", key)
			}
		}
	}

	return nil
}
