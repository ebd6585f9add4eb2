package handler

import (
	"github.com/Tore489/getgems-bot/internal/worker"
	"github.com/Tore489/getgems-bot/pkg/contextx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type Handler struct {
	monitor *worker.Monitor
}

func New(monitor *worker.Monitor) *Handler {
	return &Handler{
		monitor: monitor,
	}
}
