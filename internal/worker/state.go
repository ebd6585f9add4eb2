package worker

import "time"

// Accessors for the /status command and tests. Each takes the same mutex as
// the tick loop, so reads never observe a half-applied update.

func (m *Monitor) IsActive() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.chatID != 0
}

func (m *Monitor) Target() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.chatID
}

func (m *Monitor) BaselineSize() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.baseline)
}

func (m *Monitor) Interval() time.Duration {
	return m.interval
}

func (m *Monitor) snapshotBaseline() map[string]struct{} {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.baseline
}

func (m *Monitor) replaceBaseline(baseline map[string]struct{}) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.baseline = baseline
}
