package gdf

import "github.com/google/uuid"

// TwoWindingTransformer couples two buses at different voltage levels
// through an impedance and a tap-changing mechanism. Connector labels "HV"
// and "LV" identify its terminals in the topology graph.
type TwoWindingTransformer struct {
	ID                uuid.UUID `json:"ID"`
	Name              string    `json:"Name" validate:"required"`
	Rating            float64   `json:"Rating" validate:"gte=0"`
	VoltageHV         float64   `json:"VoltageHV" validate:"gt=0"`
	VoltageLV         float64   `json:"VoltageLV" validate:"gt=0"`
	R1PU              float64   `json:"R1PU"`
	PFeKW             float64   `json:"PFeKW"`
	PhaseShift30      int       `json:"PhaseShift30"`
	TapChangerVoltage float64   `json:"TapChangerVoltage"`
	TapNeutral        int       `json:"TapNeutral"`
	TapMin            int       `json:"TapMin"`
	TapMax            int       `json:"TapMax"`
	TapInitial        int       `json:"TapInitial"`
}

// UID is a getter for the transformer unique identifier
func (t *TwoWindingTransformer) UID() uuid.UUID {
	return t.ID
}

// Label is a getter for the transformer display name
func (t *TwoWindingTransformer) Label() string {
	return t.Name
}

// Kind returns the component kind tag
func (t *TwoWindingTransformer) Kind() Kind {
	return KindTwoWindingTransformer
}
