package market

import "github.com/Tore489/getgems-bot/internal/domain/entity"

// AddressSet collects the addresses of a batch. Listings without a
// resolvable address are left out entirely and can never be reported.
func AddressSet(items []entity.Listing) map[string]struct{} {
	set := make(map[string]struct{}, len(items))

	for _, it := range items {
		if addr := it.Addr(); addr != "" {
			set[addr] = struct{}{}
		}
	}

	return set
}

// NewAddresses returns the addresses present in current but absent from
// baseline. Recomputed in full every cycle.
func NewAddresses(current, baseline map[string]struct{}) map[string]struct{} {
	fresh := make(map[string]struct{})

	for addr := range current {
		if _, seen := baseline[addr]; !seen {
			fresh[addr] = struct{}{}
		}
	}

	return fresh
}
