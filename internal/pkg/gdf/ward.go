package gdf

import "github.com/google/uuid"

// Ward is a simplified equivalent injection representing aggregated
// external network behavior: constant power generation and load plus a
// constant-impedance load part.
type Ward struct {
	ID     uuid.UUID `json:"ID"`
	Name   string    `json:"Name" validate:"required"`
	PGen   float64   `json:"PGen"`
	QGen   float64   `json:"QGen"`
	PLoad  float64   `json:"PLoad"`
	QLoad  float64   `json:"QLoad"`
	PZLoad float64   `json:"PZLoad"`
	QZLoad float64   `json:"QZLoad"`
}

// UID is a getter for the ward unique identifier
func (w *Ward) UID() uuid.UUID {
	return w.ID
}

// Label is a getter for the ward display name
func (w *Ward) Label() string {
	return w.Name
}

// Kind returns the component kind tag
func (w *Ward) Kind() Kind {
	return KindWard
}
