package sheets

import (
	"strconv"
)

// Record is one row as delivered by the sheet-backed API. Column names vary
// between deployments, so field access goes through alias-aware helpers that
// return the first non-empty value among the given keys.
type Record map[string]any

func coerceString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return ""
	default:
		return ""
	}
}

// String returns the first non-empty value among the aliased keys, coerced
// to a string. Numeric cells are rendered without a trailing ".0".
func (r Record) String(keys ...string) string {
	for _, key := range keys {
		value, ok := r[key]
		if !ok {
			continue
		}

		if s := coerceString(value); s != "" {
			return s
		}
	}

	return ""
}

// Int returns the first aliased value that parses as an integer, or 0.
// Fractional cells are truncated the way a spreadsheet export would, and
// negative cells clamp to 0.
func (r Record) Int(keys ...string) int {
	for _, key := range keys {
		value, ok := r[key]
		if !ok {
			continue
		}

		switch v := value.(type) {
		case float64:
			if v < 0 {
				return 0
			}

			if v != 0 {
				return int(v)
			}
		case string:
			if n, err := strconv.Atoi(v); err == nil && n != 0 {
				if n < 0 {
					return 0
				}

				return n
			}
		}
	}

	return 0
}

// Has reports whether any of the aliased keys is present with a non-empty
// value.
func (r Record) Has(keys ...string) bool {
	return r.String(keys...) != ""
}
