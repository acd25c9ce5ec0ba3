package gdf

import "github.com/google/uuid"

// Link is a zero-impedance connector between components. Neighbor lookups
// with followLinks enabled traverse through links transparently.
type Link struct {
	ID   uuid.UUID `json:"ID"`
	Name string    `json:"Name" validate:"required"`
}

// UID is a getter for the link unique identifier
func (l *Link) UID() uuid.UUID {
	return l.ID
}

// Label is a getter for the link display name
func (l *Link) Label() string {
	return l.Name
}

// Kind returns the component kind tag
func (l *Link) Kind() Kind {
	return KindLink
}
