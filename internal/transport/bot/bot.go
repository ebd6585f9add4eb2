package bot

import (
	"context"
	"fmt"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	"golang.org/x/sync/errgroup"

	"github.com/Tore489/getgems-bot/internal/config"
	"github.com/Tore489/getgems-bot/internal/transport/bot/handler"
	"github.com/Tore489/getgems-bot/internal/worker"
	"github.com/Tore489/getgems-bot/pkg/contextx"
	"github.com/Tore489/getgems-bot/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const longPollingTimeoutSec = 60

// Bot receives Telegram updates and dispatches the command handlers. Updates
// arrive either over long polling or through the webhook server, depending
// on configuration; the handler side is identical in both modes.
type Bot struct {
	bot        *telego.Bot
	botHandler *th.BotHandler
	webhook    *webhookServer
}

func New(ctx context.Context, cfg config.Config, tgBot *telego.Bot, monitor *worker.Monitor) (*Bot, error) {
	var (
		updates <-chan telego.Update
		webhook *webhookServer
		err     error
	)

	if cfg.Webhook.Enabled() {
		webhook = newWebhookServer(cfg.Webhook)
		updates = webhook.Updates()

		if err = registerWebhook(ctx, tgBot, cfg.Webhook); err != nil {
			return nil, err
		}
	} else {
		updates, err = tgBot.UpdatesViaLongPolling(ctx, &telego.GetUpdatesParams{
			Timeout: longPollingTimeoutSec,
		})
		if err != nil {
			return nil, fmt.Errorf("bot.UpdatesViaLongPolling: %w", err)
		}
	}

	botHandler, err := th.NewBotHandler(tgBot, updates)
	if err != nil {
		return nil, fmt.Errorf("th.NewBotHandler: %w", err)
	}

	handler.New(monitor).RegisterRoutes(botHandler, cfg.Bot.AdminID)

	return &Bot{
		bot:        tgBot,
		botHandler: botHandler,
		webhook:    webhook,
	}, nil
}

// Run processes updates until the context is cancelled. In webhook mode the
// HTTP server runs alongside the handler loop and either one failing stops
// both.
func (b *Bot) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	if b.webhook != nil {
		g.Go(func() error {
			return b.webhook.Run(ctx)
		})
	}

	g.Go(func() error {
		go func() {
			if err := b.botHandler.Start(); err != nil {
				logger(ctx).Error("botHandler.Start", logx.Error(err))
			}
		}()

		<-ctx.Done()

		if err := b.botHandler.Stop(); err != nil {
			logger(ctx).Error("botHandler.Stop", logx.Error(err))
		}

		return ctx.Err()
	})

	return g.Wait()
}
