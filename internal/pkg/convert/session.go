// Package convert is the component conversion engine: a session owning one
// target network, with one converter per generic component kind.
package convert

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/gridworks/gdfconv/internal/pkg/defaults"
	"github.com/gridworks/gdfconv/internal/pkg/gdf"
	"github.com/gridworks/gdfconv/internal/pkg/msg"
	"github.com/gridworks/gdfconv/internal/pkg/pandanet"
)

// Diagnostic is the payload published on the Diagnostic topic for every
// recoverable failure and informational note.
type Diagnostic struct {
	Component uuid.UUID `json:"Component"`
	Name      string    `json:"Name"`
	Message   string    `json:"Message"`
}

// ConversionRecord is the payload published on the Record topic for every
// successfully converted component.
type ConversionRecord struct {
	Component uuid.UUID `json:"Component"`
	Name      string    `json:"Name"`
	Kind      string    `json:"Kind"`
	Table     string    `json:"Table"`
}

type subscriber struct {
	topic msg.Topic
	ch    chan<- msg.Msg
}

// Session wraps exactly one target network and one platform selector. The
// network is the only mutable state; converters run to completion per call
// with no partial mutation on failure.
type Session struct {
	mux       *sync.Mutex
	pid       uuid.UUID
	network   *pandanet.Network
	platform  defaults.Platform
	policy    *defaults.Policy
	broadcast map[uuid.UUID]subscriber
}

// NewSession returns a session converting into network for the given
// platform, drawing fallback values from policy.
func NewSession(network *pandanet.Network, platform defaults.Platform, policy *defaults.Policy) (*Session, error) {
	if network == nil {
		return nil, errors.New("session requires a target network")
	}
	if policy == nil {
		return nil, errors.New("session requires a default policy")
	}

	pid, err := uuid.NewUUID()
	if err != nil {
		return nil, err
	}

	return &Session{
		mux:       &sync.Mutex{},
		pid:       pid,
		network:   network,
		platform:  platform,
		policy:    policy,
		broadcast: make(map[uuid.UUID]subscriber),
	}, nil
}

// PID is a getter for the session PID
func (s *Session) PID() uuid.UUID {
	return s.pid
}

// Network returns the accumulating target network.
func (s *Session) Network() *pandanet.Network {
	return s.network
}

// Platform returns the target platform selected for this session.
func (s *Session) Platform() defaults.Platform {
	return s.platform
}

// Subscribe returns a read only channel for session messages on a topic.
func (s *Session) Subscribe(pid uuid.UUID, topic msg.Topic) (<-chan msg.Msg, error) {
	ch := make(chan msg.Msg, 50)
	s.mux.Lock()
	defer s.mux.Unlock()
	s.broadcast[pid] = subscriber{topic, ch}
	return ch, nil
}

// Unsubscribe closes the broadcast channel associated with the pid parameter.
func (s *Session) Unsubscribe(pid uuid.UUID) {
	s.mux.Lock()
	defer s.mux.Unlock()
	if sub, ok := s.broadcast[pid]; ok {
		delete(s.broadcast, pid)
		close(sub.ch)
	}
}

func (s *Session) publish(topic msg.Topic, payload interface{}) {
	s.mux.Lock()
	defer s.mux.Unlock()
	for _, sub := range s.broadcast {
		if sub.topic != topic {
			continue
		}
		select {
		case sub.ch <- msg.New(s.pid, topic, payload):
		default:
		}
	}
}

// fail publishes a diagnostic for the failure and returns it. Every
// recoverable failure flows through here so reporting stays uniform.
func (s *Session) fail(c gdf.Component, reason Reason, detail string) *Failure {
	f := &Failure{
		Component: c.UID(),
		Name:      c.Label(),
		Kind:      c.Kind(),
		Reason:    reason,
		Detail:    detail,
	}
	s.publish(msg.Diagnostic, Diagnostic{Component: c.UID(), Name: c.Label(), Message: f.Error()})
	return f
}

// note publishes an informational diagnostic.
func (s *Session) note(c gdf.Component, message string) {
	s.publish(msg.Diagnostic, Diagnostic{Component: c.UID(), Name: c.Label(), Message: message})
}

// record publishes a conversion record for a successfully created element.
func (s *Session) record(c gdf.Component, table string) {
	s.publish(msg.Record, ConversionRecord{
		Component: c.UID(),
		Name:      c.Label(),
		Kind:      c.Kind().String(),
		Table:     table,
	})
}
