package notifier

import (
	"context"
	"fmt"
	"time"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"
	cache "github.com/patrickmn/go-cache"

	"github.com/Tore489/getgems-bot/internal/domain"
	"github.com/Tore489/getgems-bot/internal/domain/entity"
	"github.com/Tore489/getgems-bot/pkg/contextx"
	"github.com/Tore489/getgems-bot/pkg/errcodes"
	"github.com/Tore489/getgems-bot/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// One fetch-failure alert per window; the monitor fails every 2s otherwise.
const alertThrottle = 30 * time.Minute

const alertKeyFetchFailure = "fetch-failure"

type TelegramBot struct {
	bot    *telego.Bot
	alerts *cache.Cache
}

func NewTelegramBot(token string) (*TelegramBot, error) {
	bot, err := telego.NewBot(token)
	if err != nil {
		return nil, fmt.Errorf("create bot: %w", err)
	}

	return &TelegramBot{
		bot:    bot,
		alerts: cache.New(alertThrottle, alertThrottle),
	}, nil
}

// Bot exposes the underlying client for the command transport, which shares
// one bot session with the notifier.
func (b *TelegramBot) Bot() *telego.Bot {
	return b.bot
}

func (b *TelegramBot) SendText(ctx context.Context, chatID int64, text string) error {
	if chatID == 0 {
		return domain.NewError(errcodes.TargetChatUnset, "no target chat")
	}

	if _, err := b.bot.SendMessage(ctx, tu.Message(tu.ID(chatID), text)); err != nil {
		return domain.WrapError(err, errcodes.NotificationFailed, "send message")
	}

	return nil
}

// SendListing formats and delivers one new listing. Listings without a
// resolvable address are skipped silently.
func (b *TelegramBot) SendListing(ctx context.Context, chatID int64, listing entity.Listing, averages map[string]float64) error {
	text, ok := FormatListing(listing, averages)
	if !ok {
		logger(ctx).Debug("skipping listing without address", "name", listing.Name)
		return nil
	}

	return b.SendText(ctx, chatID, text)
}

// AlertFetchFailure notifies the chat that the upstream is failing, at most
// once per throttle window. Alert delivery failures are only logged; the
// caller already has a failing tick on its hands.
func (b *TelegramBot) AlertFetchFailure(ctx context.Context, chatID int64, cause error) {
	if chatID == 0 {
		return
	}

	if err := b.alerts.Add(alertKeyFetchFailure, struct{}{}, cache.DefaultExpiration); err != nil {
		return // still throttled
	}

	text := fmt.Sprintf("⚠️ Getgems fetch is failing, monitoring continues: %v", cause)
	if err := b.SendText(ctx, chatID, text); err != nil {
		logger(ctx).Warn("failed to deliver fetch failure alert", logx.Error(err))
	}
}
