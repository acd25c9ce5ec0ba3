package gdf

import "github.com/google/uuid"

// Shunt is a fixed shunt element injecting or absorbing power at a bus.
type Shunt struct {
	ID   uuid.UUID `json:"ID"`
	Name string    `json:"Name" validate:"required"`
	P    float64   `json:"P"`
	Q    float64   `json:"Q"`
}

// UID is a getter for the shunt unique identifier
func (s *Shunt) UID() uuid.UUID {
	return s.ID
}

// Label is a getter for the shunt display name
func (s *Shunt) Label() string {
	return s.Name
}

// Kind returns the component kind tag
func (s *Shunt) Kind() Kind {
	return KindShunt
}
