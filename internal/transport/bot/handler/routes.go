package handler

import (
	th "github.com/mymmrac/telego/telegohandler"

	"github.com/Tore489/getgems-bot/internal/transport/bot/middleware"
)

func (h *Handler) RegisterRoutes(bh *th.BotHandler, adminID int64) {
	group := bh.Group(th.AnyMessage())
	group.Use(middleware.AdminOnly(adminID))

	group.HandleMessage(h.OnStart, th.CommandEqual("start"))
	group.HandleMessage(h.OnStop, th.CommandEqual("stop"))
	group.HandleMessage(h.OnStatus, th.CommandEqual("status"))
}
