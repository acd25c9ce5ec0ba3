package gdf

import "github.com/google/uuid"

// SynchronousMachine is a generator injecting active power and regulating
// voltage at its bus; it may serve as the system's slack unit.
type SynchronousMachine struct {
	ID                     uuid.UUID `json:"ID"`
	Name                   string    `json:"Name" validate:"required"`
	ActivePower            float64   `json:"ActivePower"`
	VoltageSetPoint        float64   `json:"VoltageSetPoint" validate:"gt=0"`
	RatedApparentPower     float64   `json:"RatedApparentPower" validate:"gte=0"`
	RatedVoltage           float64   `json:"RatedVoltage" validate:"gt=0"`
	PMin                   float64   `json:"PMin"`
	PMax                   float64   `json:"PMax"`
	QMin                   float64   `json:"QMin"`
	QMax                   float64   `json:"QMax"`
	SubtransientReactanceX float64   `json:"SubtransientReactanceX"`
}

// UID is a getter for the machine unique identifier
func (s *SynchronousMachine) UID() uuid.UUID {
	return s.ID
}

// Label is a getter for the machine display name
func (s *SynchronousMachine) Label() string {
	return s.Name
}

// Kind returns the component kind tag
func (s *SynchronousMachine) Kind() Kind {
	return KindSynchronousMachine
}
