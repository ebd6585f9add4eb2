package view

const (
	StartAck = "🚀 Monitor enabled. Only NEW listings will be reported."

	StartBaselinedTemplate = "✅ Baseline set: %d listings on sale right now."

	StartFetchFailed = "⚠️ Could not fetch listings for the baseline. Monitoring is on, send /start again to re-baseline."

	StopDone = "🛑 Monitor disabled. Send /start to resume."

	StatusTemplate = `📊 Monitor status

🔍 Monitor: %s
💬 Chat: %s
📦 Baseline: %d listings
⏱ Interval: %s`

	StatusActive   = "🟢 active"
	StatusInactive = "🔴 inactive"
)
