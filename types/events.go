package types

// IBC counter events
const (
	EventTypePacket            = "counter_packet"
	EventTypeIncrement         = "increment"
	EventTypeIncrementCallback = "increment_callback"
	EventTypeTimeout           = "timeout"
	EventTypeChannelConnect    = "channel_connect"

	AttributeKeyChannel    = "channel"
	AttributeKeyCallback   = "callback"
	AttributeKeyCount      = "count"
	AttributeKeySequence   = "sequence"
	AttributeKeyAckSuccess = "success"
	AttributeKeyAckError   = "error"
	AttributeKeyMethod     = "method"
)
