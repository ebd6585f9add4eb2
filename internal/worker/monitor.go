package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Tore489/getgems-bot/internal/domain"
	"github.com/Tore489/getgems-bot/internal/domain/entity"
	"github.com/Tore489/getgems-bot/internal/domain/market"
	"github.com/Tore489/getgems-bot/internal/infrastructure/getgems"
	"github.com/Tore489/getgems-bot/pkg/contextx"
	"github.com/Tore489/getgems-bot/pkg/errcodes"
	"github.com/Tore489/getgems-bot/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type ListingSource interface {
	OnSale(ctx context.Context) ([]entity.Listing, error)
}

type Notifier interface {
	SendListing(ctx context.Context, chatID int64, listing entity.Listing, averages map[string]float64) error
	AlertFetchFailure(ctx context.Context, chatID int64, cause error)
}

// Monitor is the poll loop. It owns the only mutable state in the process:
// the baseline address set and the target chat. Both are guarded by one
// mutex because Activate runs on the bot handler goroutine while ticks run
// on the loop goroutine.
type Monitor struct {
	source   ListingSource
	notifier Notifier

	interval     time.Duration
	initialDelay time.Duration

	mu       sync.Mutex
	chatID   int64
	baseline map[string]struct{}
}

func NewMonitor(source ListingSource, notifier Notifier, interval, initialDelay time.Duration) *Monitor {
	return &Monitor{
		source:       source,
		notifier:     notifier,
		interval:     interval,
		initialDelay: initialDelay,
	}
}

// Run drives the tick loop until the context is cancelled. Ticks never
// overlap: the next one is not scheduled until the current one returns.
func (m *Monitor) Run(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(m.initialDelay):
	}

	m.Tick(ctx)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger(ctx).Info("monitor stopped")
			return ctx.Err()
		case <-ticker.C:
			m.Tick(ctx)
		}
	}
}

// Activate binds the monitor to a chat and re-baselines from a fresh fetch,
// so only listings appearing after this call get reported. Returns the
// baseline size.
func (m *Monitor) Activate(ctx context.Context, chatID int64) (int, error) {
	m.mu.Lock()
	m.chatID = chatID
	m.mu.Unlock()

	items, err := m.source.OnSale(ctx)
	if err != nil {
		return 0, err
	}

	baseline := market.AddressSet(items)
	m.replaceBaseline(baseline)

	logger(ctx).Info("baseline set",
		logx.FieldChatID, chatID,
		"listings", len(baseline),
	)

	return len(baseline), nil
}

// Deactivate unbinds the chat and drops the baseline. Subsequent ticks are
// no-ops until the next Activate.
func (m *Monitor) Deactivate() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.chatID = 0
	m.baseline = nil
}

// Tick runs one poll cycle. Without a target chat it does nothing, not even
// a fetch. A fetch failure skips the cycle and leaves the baseline intact,
// which makes delivery at-least-once across failures.
func (m *Monitor) Tick(ctx context.Context) {
	chatID := m.Target()
	if chatID == 0 {
		return
	}

	monitorTicks.Inc()

	items, err := m.source.OnSale(ctx)
	if err != nil {
		code := errorCode(err)
		monitorFetchFailures.WithLabelValues(string(code)).Inc()
		logger(ctx).Warn("fetch failed, skipping cycle", logx.Error(err))
		m.notifier.AlertFetchFailure(ctx, chatID, err)

		return
	}

	averages := market.BuildAverages(items)
	current := market.AddressSet(items)
	fresh := market.NewAddresses(current, m.snapshotBaseline())

	if len(fresh) > 0 {
		monitorNewListings.Add(float64(len(fresh)))
		m.deliver(ctx, chatID, items, fresh, averages)
	}

	// Delisted items fall out of the baseline here, so a relist is new again.
	m.replaceBaseline(current)
}

// deliver sends every fresh listing in the batch's original order. One
// failed send does not stop the rest and never blocks the baseline update.
func (m *Monitor) deliver(
	ctx context.Context,
	chatID int64,
	items []entity.Listing,
	fresh map[string]struct{},
	averages map[string]float64,
) {
	for _, item := range items {
		addr := item.Addr()
		if addr == "" {
			continue
		}
		if _, ok := fresh[addr]; !ok {
			continue
		}

		if err := m.notifier.SendListing(ctx, chatID, item, averages); err != nil {
			monitorSendFailures.Inc()
			logger(ctx).Error("failed to deliver listing",
				logx.FieldListingAddress, addr,
				logx.Error(err),
			)

			continue
		}

		monitorNotifications.Inc()
	}
}

func errorCode(err error) errcodes.ErrorCode {
	var fetchErr *getgems.FetchError
	if errors.As(err, &fetchErr) {
		return errcodes.UpstreamBadStatus
	}

	if code, ok := domain.GetCode(err); ok {
		return code
	}

	return errcodes.InternalError
}
