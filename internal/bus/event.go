package bus

import "time"

// Event kinds published on the bus. Subscribers filter by namespace
// prefix, so "rtc." matches every decoded realtime envelope and
// "cache." matches both invalidation and refresh notifications.
const (
	KindConnected     = "session.connected"
	KindDisconnected  = "session.disconnected"
	KindStateChanged  = "session.state_changed"
	KindEnvelope      = "rtc.envelope"
	KindInvalidated   = "cache.invalidated"
	KindRefreshed     = "cache.refreshed"
	KindTypingChanged = "presence.typing_changed"
	KindSendPending   = "message.send_pending"
	KindSendConfirmed = "message.send_confirmed"
	KindSendFailed    = "message.send_failed"
)

// Event is a domain event published on the bus.
type Event struct {
	Kind      string
	Timestamp time.Time
	Payload   any
}
