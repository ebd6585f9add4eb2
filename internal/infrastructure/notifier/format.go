package notifier

import (
	"fmt"
	"strings"

	"github.com/Tore489/getgems-bot/internal/domain/entity"
	"github.com/Tore489/getgems-bot/internal/domain/market"
)

// Must match existing message consumers exactly.
const nftLinkBase = "https://getgems.io/nft/"

const noValuePlaceholder = "—"

// FormatListing renders the notification for one new listing. Returns false
// when the listing has no resolvable address and cannot be linked to.
//
// The directional note is rendered only when both the listing price and the
// model average are known and the average is non-zero. A zero average makes
// the relative difference undefined, so the note is suppressed.
func FormatListing(l entity.Listing, averages map[string]float64) (string, bool) {
	addr := l.Addr()
	if addr == "" {
		return "", false
	}

	name := l.Name
	if name == "" {
		name = "(no name)"
	}

	price, priceOK := market.TONFromAny(l.RawPrice())
	avg, avgOK := averages[market.ExtractModel(name)]

	priceStr := noValuePlaceholder
	if priceOK {
		priceStr = fmt.Sprintf("%.2f TON", price)
	}

	avgStr := noValuePlaceholder
	if avgOK {
		avgStr = fmt.Sprintf("%.2f TON", avg)
	}

	var diff string
	if priceOK && avgOK && avg != 0 {
		pct := (price/avg - 1) * 100
		if pct < 0 {
			diff = fmt.Sprintf("\n🔥 %.1f%% below market", -pct)
		} else {
			diff = fmt.Sprintf("\n⚠️ %.1f%% above market", pct)
		}
	}

	var sb strings.Builder
	sb.WriteString("⚡ NEW GIFTS LISTING\n")
	sb.WriteString(name + "\n")
	sb.WriteString("Price: " + priceStr + "\n")
	sb.WriteString("Model average: " + avgStr)
	sb.WriteString(diff)
	sb.WriteString("\n🔗 " + nftLinkBase + addr)

	return sb.String(), true
}
