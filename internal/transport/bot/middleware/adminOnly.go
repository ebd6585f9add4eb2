package middleware

import (
	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
)

// AdminOnly drops updates from everyone except the configured admin.
// A zero adminID disables the guard and lets every chat drive the bot.
func AdminOnly(adminID int64) th.Handler {
	return func(ctx *th.Context, update telego.Update) error {
		if adminID == 0 {
			return ctx.Next(update)
		}

		var userID int64

		if update.Message != nil && update.Message.From != nil {
			userID = update.Message.From.ID
		}

		if userID == adminID {
			return ctx.Next(update)
		}

		return nil
	}
}
