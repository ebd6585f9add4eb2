package worker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

//nolint:gochecknoglobals
var (
	monitorTicks = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "getgems_bot",
		Subsystem: "monitor",
		Name:      "ticks_total",
		Help:      "Poll cycles executed against an active target chat.",
	})

	monitorFetchFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "getgems_bot",
		Subsystem: "monitor",
		Name:      "fetch_failures_total",
		Help:      "Upstream fetches that failed and skipped the cycle.",
	}, []string{"code"})

	monitorNewListings = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "getgems_bot",
		Subsystem: "monitor",
		Name:      "new_listings_total",
		Help:      "Listings detected as new against the baseline.",
	})

	monitorNotifications = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "getgems_bot",
		Subsystem: "monitor",
		Name:      "notifications_total",
		Help:      "Listing notifications delivered to the target chat.",
	})

	monitorSendFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "getgems_bot",
		Subsystem: "monitor",
		Name:      "send_failures_total",
		Help:      "Listing notifications that failed to deliver.",
	})
)
