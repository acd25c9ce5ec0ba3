package convert

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/gridworks/gdfconv/internal/pkg/gdf"
)

// Reason categorizes recoverable per-component conversion failures.
type Reason int

const (
	// NoConnectedBus: a single-terminal component has no bus within reach.
	NoConnectedBus Reason = iota
	// UnresolvedBus: a connector-filtered lookup found no bus for a
	// required terminal.
	UnresolvedBus
	// NeighborCount: a switch does not have exactly two neighbors.
	NeighborCount
	// UnsupportedElement: a connected component's type has no target
	// model mapping.
	UnsupportedElement
	// MissingDefault: the default policy carries no value for a required
	// attribute on the selected platform.
	MissingDefault
	// TargetRejected: the target network refused the element, e.g. a
	// duplicate uid.
	TargetRejected
)

func (r Reason) String() string {
	switch r {
	case NoConnectedBus:
		return "no connected bus"
	case UnresolvedBus:
		return "unresolved bus"
	case NeighborCount:
		return "neighbor count mismatch"
	case UnsupportedElement:
		return "unsupported element type"
	case MissingDefault:
		return "missing default value"
	case TargetRejected:
		return "rejected by target network"
	}
	return "unknown"
}

// Failure describes why a component could not be converted. Failures are
// per-component and recoverable; the orchestrator is expected to skip the
// component and continue.
type Failure struct {
	Component uuid.UUID
	Name      string
	Kind      gdf.Kind
	Reason    Reason
	Detail    string
}

func (f *Failure) Error() string {
	if f.Detail == "" {
		return fmt.Sprintf("%s %q: %s", f.Kind, f.Name, f.Reason)
	}
	return fmt.Sprintf("%s %q: %s: %s", f.Kind, f.Name, f.Reason, f.Detail)
}
