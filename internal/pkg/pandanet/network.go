// Package pandanet is the in-memory target model: one table per element
// kind, keyed by the uid of the originating generic component. Absent
// numeric limits are carried as NaN rather than zero so the target model
// is not silently constrained.
package pandanet

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrUnresolvedBus is returned when an element references a bus uid
	// with no bus row in the network.
	ErrUnresolvedBus = errors.New("unresolved bus")
	// ErrDuplicateElement is returned when an element uid is already
	// present in the addressed table.
	ErrDuplicateElement = errors.New("duplicate element")
)

// Network accumulates converted elements. It is mutated by exactly one
// caller at a time; no creator leaves a partial element behind on failure.
type Network struct {
	Name     string
	buses    map[uuid.UUID]Bus
	loads    map[uuid.UUID]Load
	trafos   map[uuid.UUID]Trafo
	trafos3w map[uuid.UUID]Trafo3W
	gens     map[uuid.UUID]Gen
	lines    map[uuid.UUID]Line
	wards    map[uuid.UUID]Ward
	shunts   map[uuid.UUID]Shunt
	switches map[uuid.UUID]Switch
}

// New returns an empty network.
func New(name string) *Network {
	return &Network{
		Name:     name,
		buses:    make(map[uuid.UUID]Bus),
		loads:    make(map[uuid.UUID]Load),
		trafos:   make(map[uuid.UUID]Trafo),
		trafos3w: make(map[uuid.UUID]Trafo3W),
		gens:     make(map[uuid.UUID]Gen),
		lines:    make(map[uuid.UUID]Line),
		wards:    make(map[uuid.UUID]Ward),
		shunts:   make(map[uuid.UUID]Shunt),
		switches: make(map[uuid.UUID]Switch),
	}
}

// HasBus reports whether a bus row exists for uid.
func (n *Network) HasBus(uid uuid.UUID) bool {
	_, exists := n.buses[uid]
	return exists
}

// Count returns the total number of elements across all tables.
func (n *Network) Count() int {
	return len(n.buses) + len(n.loads) + len(n.trafos) + len(n.trafos3w) +
		len(n.gens) + len(n.lines) + len(n.wards) + len(n.shunts) + len(n.switches)
}

// Bus returns the bus row keyed by uid.
func (n *Network) Bus(uid uuid.UUID) (Bus, bool) {
	b, exists := n.buses[uid]
	return b, exists
}

// Load returns the load row keyed by uid.
func (n *Network) Load(uid uuid.UUID) (Load, bool) {
	l, exists := n.loads[uid]
	return l, exists
}

// Trafo returns the two winding transformer row keyed by uid.
func (n *Network) Trafo(uid uuid.UUID) (Trafo, bool) {
	t, exists := n.trafos[uid]
	return t, exists
}

// Trafo3W returns the three winding transformer row keyed by uid.
func (n *Network) Trafo3W(uid uuid.UUID) (Trafo3W, bool) {
	t, exists := n.trafos3w[uid]
	return t, exists
}

// Gen returns the generator row keyed by uid.
func (n *Network) Gen(uid uuid.UUID) (Gen, bool) {
	g, exists := n.gens[uid]
	return g, exists
}

// Line returns the line row keyed by uid.
func (n *Network) Line(uid uuid.UUID) (Line, bool) {
	l, exists := n.lines[uid]
	return l, exists
}

// Ward returns the ward row keyed by uid.
func (n *Network) Ward(uid uuid.UUID) (Ward, bool) {
	w, exists := n.wards[uid]
	return w, exists
}

// Shunt returns the shunt row keyed by uid.
func (n *Network) Shunt(uid uuid.UUID) (Shunt, bool) {
	s, exists := n.shunts[uid]
	return s, exists
}

// Switch returns the switch row keyed by uid.
func (n *Network) Switch(uid uuid.UUID) (Switch, bool) {
	s, exists := n.switches[uid]
	return s, exists
}

func (n *Network) requireBus(uid uuid.UUID) error {
	if !n.HasBus(uid) {
		return fmt.Errorf("%w: %v", ErrUnresolvedBus, uid)
	}
	return nil
}
