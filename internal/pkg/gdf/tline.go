package gdf

import (
	"github.com/google/uuid"

	"github.com/gridworks/gdfconv/internal/pkg/defaults"
)

// TLine is a two-terminal transmission line with per-length series
// impedance and shunt susceptance. Connector labels "A" and "B" identify
// its endpoints in the topology graph.
type TLine struct {
	ID            uuid.UUID   `json:"ID"`
	Name          string      `json:"Name" validate:"required"`
	Coords        [][]float64 `json:"Coords"`
	Length        float64     `json:"Length" validate:"gt=0"`
	R1            float64     `json:"R1"`
	X1            float64     `json:"X1"`
	B1            float64     `json:"B1"`
	R0            *float64    `json:"R0,omitempty"`
	X0            *float64    `json:"X0,omitempty"`
	ParallelLines int         `json:"ParallelLines" validate:"gte=1"`
}

// UID is a getter for the line unique identifier
func (t *TLine) UID() uuid.UUID {
	return t.ID
}

// Label is a getter for the line display name
func (t *TLine) Label() string {
	return t.Name
}

// Kind returns the component kind tag
func (t *TLine) Kind() Kind {
	return KindTLine
}

// R0Fallback returns the zero-sequence resistance per km, falling back to
// the platform default when the source model carries none.
func (t *TLine) R0Fallback(policy *defaults.Policy, platform defaults.Platform) (float64, error) {
	if t.R0 != nil {
		return *t.R0, nil
	}
	return policy.Default("r0_ohm_per_km", platform)
}

// X0Fallback returns the zero-sequence reactance per km, falling back to
// the platform default when the source model carries none.
func (t *TLine) X0Fallback(policy *defaults.Policy, platform defaults.Platform) (float64, error) {
	if t.X0 != nil {
		return *t.X0, nil
	}
	return policy.Default("x0_ohm_per_km", platform)
}
