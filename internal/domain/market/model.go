package market

import "strings"

// serial suffix separator, e.g. "Plush Pepe #1557".
const serialSep = " #"

// ExtractModel derives the collectible family name from a listing's display
// name by stripping the trailing serial suffix. Numbered editions of the
// same gift share one model key.
func ExtractModel(name string) string {
	if model, _, found := strings.Cut(name, serialSep); found {
		return strings.TrimSpace(model)
	}

	return strings.TrimSpace(name)
}
