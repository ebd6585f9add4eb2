package entity

// Listing is one on-sale item as returned by the Getgems public API.
// Listings live only within a single poll batch and are never stored.
type Listing struct {
	Address    string `json:"address"`
	NftAddress string `json:"nftAddress"`
	Name       string `json:"name"`
	Sale       Sale   `json:"sale"`
}

// Sale carries the asking price in one of three fields depending on the
// sale contract type. Values arrive as numbers or strings, denominated in
// TON or nanoTON, hence `any`.
type Sale struct {
	FixPrice  any `json:"fixPrice"`
	Price     any `json:"price"`
	FullPrice any `json:"fullPrice"`
}

// Addr returns the listing address, falling back to nftAddress. An empty
// result means the listing cannot be identified or linked to.
func (l Listing) Addr() string {
	if l.Address != "" {
		return l.Address
	}
	return l.NftAddress
}

// RawPrice returns the first present price field: fixPrice, then price,
// then fullPrice. Nil when the sale carries no price at all.
func (l Listing) RawPrice() any {
	if l.Sale.FixPrice != nil {
		return l.Sale.FixPrice
	}
	if l.Sale.Price != nil {
		return l.Sale.Price
	}
	return l.Sale.FullPrice
}
