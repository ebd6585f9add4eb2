package market_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Tore489/getgems-bot/internal/domain/entity"
	"github.com/Tore489/getgems-bot/internal/domain/market"
)

func TestAddressSet(t *testing.T) {
	rq := require.New(t)

	items := []entity.Listing{
		{Address: "A", Name: "Fox #1"},
		{NftAddress: "B", Name: "Fox #2"},          // fallback field
		{Address: "A", Name: "Fox #1 (duplicate)"}, // collapsed
		{Name: "Fox #3"},                           // no address, excluded
	}

	set := market.AddressSet(items)

	rq.Equal(map[string]struct{}{"A": {}, "B": {}}, set)
}

func TestNewAddresses(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name     string
		current  map[string]struct{}
		baseline map[string]struct{}
		fresh    map[string]struct{}
	}{
		{
			name:     "New listing appears",
			current:  map[string]struct{}{"A": {}, "B": {}},
			baseline: map[string]struct{}{"A": {}},
			fresh:    map[string]struct{}{"B": {}},
		},
		{
			name:     "Unchanged batch",
			current:  map[string]struct{}{"A": {}, "B": {}},
			baseline: map[string]struct{}{"A": {}, "B": {}},
			fresh:    map[string]struct{}{},
		},
		{
			name:     "Delisted items are not reported",
			current:  map[string]struct{}{"A": {}},
			baseline: map[string]struct{}{"A": {}, "B": {}},
			fresh:    map[string]struct{}{},
		},
		{
			name:     "Empty baseline reports everything",
			current:  map[string]struct{}{"A": {}},
			baseline: map[string]struct{}{},
			fresh:    map[string]struct{}{"A": {}},
		},
		{
			name:     "Nil baseline reports everything",
			current:  map[string]struct{}{"A": {}},
			baseline: nil,
			fresh:    map[string]struct{}{"A": {}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			rq.Equal(tc.fresh, market.NewAddresses(tc.current, tc.baseline))
		})
	}
}
