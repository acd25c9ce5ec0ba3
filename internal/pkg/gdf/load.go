package gdf

import "github.com/google/uuid"

// Load is a component drawing constant active/reactive power from a bus.
type Load struct {
	ID            uuid.UUID `json:"ID"`
	Name          string    `json:"Name" validate:"required"`
	ActivePower   float64   `json:"ActivePower"`
	ReactivePower float64   `json:"ReactivePower"`
}

// UID is a getter for the load unique identifier
func (l *Load) UID() uuid.UUID {
	return l.ID
}

// Label is a getter for the load display name
func (l *Load) Label() string {
	return l.Name
}

// Kind returns the component kind tag
func (l *Load) Kind() Kind {
	return KindLoad
}
