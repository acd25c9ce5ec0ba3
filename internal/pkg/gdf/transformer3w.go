package gdf

import "github.com/google/uuid"

// TapDetails is the nested tap-changer record of a three winding
// transformer.
type TapDetails struct {
	TapChangerVoltage float64 `json:"TapChangerVoltage"`
	TapNeutral        int     `json:"TapNeutral"`
	TapMin            int     `json:"TapMin"`
	TapMax            int     `json:"TapMax"`
	TapInitial        int     `json:"TapInitial"`
}

// ThreeWindingTransformer couples three buses through a star-equivalent
// impedance. Connector labels "HV", "MV" and "LV" identify its terminals
// in the topology graph.
type ThreeWindingTransformer struct {
	ID             uuid.UUID  `json:"ID"`
	Name           string     `json:"Name" validate:"required"`
	VoltageHV      float64    `json:"VoltageHV" validate:"gt=0"`
	VoltageMV      float64    `json:"VoltageMV" validate:"gt=0"`
	VoltageLV      float64    `json:"VoltageLV" validate:"gt=0"`
	RatingHV       float64    `json:"RatingHV" validate:"gte=0"`
	RatingMV       float64    `json:"RatingMV" validate:"gte=0"`
	RatingLV       float64    `json:"RatingLV" validate:"gte=0"`
	PFeKW          float64    `json:"PFeKW"`
	PhaseShift30MV int        `json:"PhaseShift30MV"`
	PhaseShift30LV int        `json:"PhaseShift30LV"`
	TapDetails     TapDetails `json:"TapDetails"`
}

// UID is a getter for the transformer unique identifier
func (t *ThreeWindingTransformer) UID() uuid.UUID {
	return t.ID
}

// Label is a getter for the transformer display name
func (t *ThreeWindingTransformer) Label() string {
	return t.Name
}

// Kind returns the component kind tag
func (t *ThreeWindingTransformer) Kind() Kind {
	return KindThreeWindingTransformer
}
