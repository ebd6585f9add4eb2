package market

import (
	"github.com/samber/lo"

	"github.com/Tore489/getgems-bot/internal/domain/entity"
)

// BuildAverages groups the current batch by model and returns the
// arithmetic mean price per model, singletons included. Listings without a
// name or without any resolvable price are excluded from every average.
// The map is rebuilt from scratch each poll cycle.
func BuildAverages(items []entity.Listing) map[string]float64 {
	groups := make(map[string][]float64)

	for _, it := range items {
		if it.Name == "" {
			continue
		}

		price, ok := TONFromAny(it.RawPrice())
		if !ok {
			continue
		}

		model := ExtractModel(it.Name)
		groups[model] = append(groups[model], price)
	}

	return lo.MapValues(groups, func(prices []float64, _ string) float64 {
		return lo.Sum(prices) / float64(len(prices))
	})
}
