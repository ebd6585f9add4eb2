package errcodes

// ErrorCode is a stable machine-readable error identifier.
type ErrorCode string

const (
	InternalError         ErrorCode = "InternalError"
	ConfigInvalid         ErrorCode = "ConfigInvalid"
	UpstreamBadStatus     ErrorCode = "UpstreamBadStatus"
	UpstreamUnavailable   ErrorCode = "UpstreamUnavailable"
	TargetChatUnset       ErrorCode = "TargetChatUnset"
	NotificationFailed    ErrorCode = "NotificationFailed"
	ListingAddressMissing ErrorCode = "ListingAddressMissing"
)
