package market_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Tore489/getgems-bot/internal/domain/market"
)

func TestTONFromAny(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name  string
		input any
		value float64
		ok    bool
	}{
		{name: "Nil", input: nil, ok: false},
		{name: "Non-numeric string", input: "not a price", ok: false},
		{name: "Empty string", input: "", ok: false},
		{name: "Bool", input: true, ok: false},
		{name: "TON as float", input: 2.5, value: 2.5, ok: true},
		{name: "TON as string", input: "12.75", value: 12.75, ok: true},
		{name: "TON as string with spaces", input: "  3 ", value: 3, ok: true},
		{name: "Exactly at threshold stays TON", input: 1_000_000.0, value: 1_000_000, ok: true},
		{name: "NanoTON as float", input: 2_000_000_000.0, value: 2, ok: true},
		{name: "NanoTON as string", input: "3000000000", value: 3, ok: true},
		{name: "NanoTON as json.Number", input: json.Number("2500000000"), value: 2.5, ok: true},
		{name: "Int", input: 5, value: 5, ok: true},
		{name: "Zero", input: 0.0, value: 0, ok: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			value, ok := market.TONFromAny(tc.input)

			rq.Equal(tc.ok, ok)
			rq.InDelta(tc.value, value, 1e-9)
		})
	}
}
