package handler

import (
	"fmt"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"

	"github.com/Tore489/getgems-bot/internal/transport/bot/view"
	"github.com/Tore489/getgems-bot/pkg/logx"
)

// OnStart binds notifications to this chat and re-baselines, so only
// listings appearing after the command get reported.
func (h *Handler) OnStart(ctx *th.Context, msg telego.Message) error {
	if err := h.reply(ctx, msg.Chat.ID, view.StartAck); err != nil {
		return err
	}

	size, err := h.monitor.Activate(ctx, msg.Chat.ID)
	if err != nil {
		logger(ctx).Error("failed to baseline on start",
			logx.FieldChatID, msg.Chat.ID,
			logx.Error(err),
		)

		return h.reply(ctx, msg.Chat.ID, view.StartFetchFailed)
	}

	return h.reply(ctx, msg.Chat.ID, fmt.Sprintf(view.StartBaselinedTemplate, size))
}

func (h *Handler) OnStop(ctx *th.Context, msg telego.Message) error {
	h.monitor.Deactivate()

	return h.reply(ctx, msg.Chat.ID, view.StopDone)
}

func (h *Handler) OnStatus(ctx *th.Context, msg telego.Message) error {
	status := view.StatusInactive
	target := "not set"

	if h.monitor.IsActive() {
		status = view.StatusActive
		target = fmt.Sprintf("%d", h.monitor.Target())
	}

	text := fmt.Sprintf(view.StatusTemplate,
		status,
		target,
		h.monitor.BaselineSize(),
		h.monitor.Interval(),
	)

	return h.reply(ctx, msg.Chat.ID, text)
}

func (h *Handler) reply(ctx *th.Context, chatID int64, text string) error {
	if _, err := ctx.Bot().SendMessage(ctx, tu.Message(tu.ID(chatID), text)); err != nil {
		return fmt.Errorf("send message: %w", err)
	}

	return nil
}
