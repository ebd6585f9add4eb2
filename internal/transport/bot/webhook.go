package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	jsoniter "github.com/json-iterator/go"
	"github.com/mymmrac/telego"

	"github.com/Tore489/getgems-bot/internal/config"
	"github.com/Tore489/getgems-bot/pkg/logx"
	"github.com/Tore489/getgems-bot/pkg/middlewarex"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const (
	webhookPath = "/webhook"

	httpServerReadHeaderTimeout = 5 * time.Second

	logFieldMaxLen = 2048

	// Absorbs delivery bursts; a full buffer blocks the handler and
	// Telegram retries on its own schedule.
	updateBufferSize = 128
)

// webhookServer accepts Telegram webhook posts and feeds them into the same
// update channel shape long polling produces. Keeping an open HTTP port also
// satisfies hosting platforms that kill portless web services.
type webhookServer struct {
	listenAddress string
	updates       chan telego.Update
}

func newWebhookServer(cfg config.Webhook) *webhookServer {
	return &webhookServer{
		listenAddress: cfg.ListenAddress(),
		updates:       make(chan telego.Update, updateBufferSize),
	}
}

func (s *webhookServer) Updates() <-chan telego.Update {
	return s.updates
}

func (s *webhookServer) Run(ctx context.Context) error {
	masker := logx.NewSensitiveDataMasker()

	router := chi.NewRouter()
	router.Use(
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.RequestLogging(masker, logFieldMaxLen),
		middlewarex.ResponseLogging(masker, logFieldMaxLen),
		middlewarex.Recovery,
	)
	router.Post(webhookPath, s.handlerUpdate)

	httpServer := &http.Server{
		//nolint:exhaustruct
		Addr:              s.listenAddress,
		Handler:           router,
		ReadHeaderTimeout: httpServerReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		<-ctx.Done()

		if err := httpServer.Shutdown(context.WithoutCancel(ctx)); err != nil {
			logger(ctx).Error("httpServer.Shutdown", logx.Error(err))
		}

		close(s.updates)
	}()

	logger(ctx).Info("webhook server started", slog.String("address", s.listenAddress))

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("httpServer.ListenAndServe: %w", err)
	}

	logger(ctx).Info("webhook server stopped")

	return nil
}

func (s *webhookServer) handlerUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var update telego.Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		logger(ctx).Warn("malformed webhook update", logx.Error(err))
		w.WriteHeader(http.StatusBadRequest)

		return
	}

	select {
	case s.updates <- update:
		w.WriteHeader(http.StatusOK)
	case <-ctx.Done():
		w.WriteHeader(http.StatusServiceUnavailable)
	}
}

// registerWebhook points Telegram at our public endpoint. Pending updates
// are dropped so a redeploy does not replay a backlog of stale commands.
func registerWebhook(ctx context.Context, tgBot *telego.Bot, cfg config.Webhook) error {
	url := strings.TrimRight(cfg.PublicURL, "/") + webhookPath

	err := tgBot.SetWebhook(ctx, &telego.SetWebhookParams{
		//nolint:exhaustruct
		URL:                url,
		DropPendingUpdates: true,
	})
	if err != nil {
		return fmt.Errorf("bot.SetWebhook: %w", err)
	}

	return nil
}
