package msg

import "github.com/google/uuid"

// Topic partitions the message stream by content.
type Topic int

const (
	// Diagnostic messages carry recoverable per-component failures and
	// informational notes raised during conversion.
	Diagnostic Topic = iota
	// Record messages carry the outcome of a successful conversion.
	Record
)

// Publisher is an interface for objects that allow subscribtion to their events
type Publisher interface {
	Subscribe(uuid.UUID, Topic) (<-chan Msg, error)
	Unsubscribe(uuid.UUID)
}

// Msg is the envelope passed from the conversion session to its handlers
type Msg struct {
	sender  uuid.UUID
	topic   Topic
	payload interface{}
}

// New is the Msg factory function
func New(sender uuid.UUID, topic Topic, payload interface{}) Msg {
	return Msg{sender, topic, payload}
}

// PID returns the sender's PID
func (m Msg) PID() uuid.UUID {
	return m.sender
}

// Topic returns the message topic
func (m Msg) Topic() Topic {
	return m.topic
}

// Payload returns the message data
func (m Msg) Payload() interface{} {
	return m.payload
}
