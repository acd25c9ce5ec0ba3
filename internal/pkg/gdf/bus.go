package gdf

import "github.com/google/uuid"

// BusType is the construction type of a bus.
type BusType string

const (
	Busbar   BusType = "BUSBAR"
	Junction BusType = "JUNCTION"
	Internal BusType = "INTERNAL"
)

// LFBusType is the load-flow classification computed for a bus.
type LFBusType string

const (
	PQ    LFBusType = "PQ"
	PV    LFBusType = "PV"
	Slack LFBusType = "SLACK"
)

// Bus is a network node at a given nominal voltage where components connect.
type Bus struct {
	ID             uuid.UUID `json:"ID"`
	Name           string    `json:"Name" validate:"required"`
	Coords         []float64 `json:"Coords"`
	NominalVoltage float64   `json:"NominalVoltage" validate:"gt=0"`
	BusType        BusType   `json:"BusType"`
	LFBusType      LFBusType `json:"LFBusType"`
}

// UID is a getter for the bus unique identifier
func (b *Bus) UID() uuid.UUID {
	return b.ID
}

// Label is a getter for the bus display name
func (b *Bus) Label() string {
	return b.Name
}

// Kind returns the component kind tag
func (b *Bus) Kind() Kind {
	return KindBus
}
