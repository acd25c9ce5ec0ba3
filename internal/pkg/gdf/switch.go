package gdf

import "github.com/google/uuid"

// Switch is a two-terminal on/off connection between a bus and another
// element. RatingB is the rated breaking power.
type Switch struct {
	ID      uuid.UUID `json:"ID"`
	Name    string    `json:"Name" validate:"required"`
	Closed  bool      `json:"Closed"`
	RatingB float64   `json:"RatingB" validate:"gte=0"`
}

// UID is a getter for the switch unique identifier
func (s *Switch) UID() uuid.UUID {
	return s.ID
}

// Label is a getter for the switch display name
func (s *Switch) Label() string {
	return s.Name
}

// Kind returns the component kind tag
func (s *Switch) Kind() Kind {
	return KindSwitch
}
