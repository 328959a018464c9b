package stream

import "time"

// Buffer sizes
const (
	// DeliveryBufferSize is the buffer size for the hub's delivery channel
	DeliveryBufferSize = 100

	// ClientSendBuffer is the buffer size of each client's outgoing queue
	ClientSendBuffer = 16

	// ClientChannelBuffer is the buffer size for register/unregister channels
	ClientChannelBuffer = 10
)

// Connection settings
const (
	// WriteWait is the time allowed to write a message to the peer
	WriteWait = 10 * time.Second

	// PongWait is the time allowed to read the next pong message from the peer
	PongWait = 60 * time.Second

	// PingPeriod must be less than PongWait
	PingPeriod = (PongWait * 9) / 10

	// MaxMessageSize bounds what a client may send; clients only send control frames
	MaxMessageSize = 512

	// SnapshotTimeout bounds the snapshot load for one event
	SnapshotTimeout = 5 * time.Second
)

// Message types
const (
	MessageTypeSnapshot = "snapshot"
)

// Log messages
const (
	LogMsgClientConnected      = "Stream client connected"
	LogMsgClientDisconnected   = "Stream client disconnected"
	LogMsgClientDropped        = "Stream client too slow, dropping connection"
	LogMsgUpgradeFailed        = "WebSocket upgrade failed"
	LogMsgSnapshotFailed       = "Failed to load snapshot for stream"
	LogMsgEncodeFailed         = "Failed to encode stream message"
	LogMsgDeliveryDropped      = "Stream delivery buffer full, dropping update"
	LogMsgUnexpectedClose      = "Stream connection closed unexpectedly"
	LogMsgSubscriberRegistered = "Stream subscriber registered for event types"
)
