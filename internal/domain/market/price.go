package market

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Values above this are assumed to be nanoTON. The marketplace mixes
// denominations across response shapes, and no gift has ever listed for a
// million TON.
const nanoThreshold = 1_000_000

// TONFromAny converts a raw price value into TON. ok is false when the
// value is absent or not numeric; callers treat that as "price unknown",
// never as an error.
func TONFromAny(v any) (float64, bool) {
	f, ok := toFloat(v)
	if !ok {
		return 0, false
	}

	if f > nanoThreshold {
		return f / 1e9, true
	}

	return f, true
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case nil:
		return 0, false
	case float64:
		return t, true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case json.Number:
		if f, err := t.Float64(); err == nil {
			return f, true
		}
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, false
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f, true
		}
	}

	return 0, false
}
