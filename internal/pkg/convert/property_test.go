package convert

import (
	"testing"

	"github.com/google/uuid"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/gridworks/gdfconv/internal/pkg/defaults"
	"github.com/gridworks/gdfconv/internal/pkg/gdf"
	"github.com/gridworks/gdfconv/internal/pkg/pandanet"
)

// Properties that must hold for any input: converters keep no state beyond
// the target network, and failures never mutate it.
func TestConversionProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	properties.Property("load conversion is repeatable", prop.ForAll(
		func(p float64, q float64) bool {
			model, err := gdf.NewCoreModel(50)
			if err != nil {
				return false
			}
			bus := &gdf.Bus{ID: uuid.New(), Name: "bus", NominalVoltage: 110}
			load := &gdf.Load{ID: uuid.New(), Name: "load", ActivePower: p, ReactivePower: q}
			if err := model.Graph().AddComponent(bus); err != nil {
				return false
			}
			if err := model.Graph().AddComponent(load); err != nil {
				return false
			}
			if err := model.Graph().Connect(load, bus); err != nil {
				return false
			}

			rows := make([]pandanet.Load, 0, 2)
			for i := 0; i < 2; i++ {
				session, err := NewSession(pandanet.New("fresh"), defaults.PowerFactory, defaults.NewPolicy())
				if err != nil {
					return false
				}
				if f := session.ConvertBus(bus); f != nil {
					return false
				}
				if f := session.ConvertLoad(model, load); f != nil {
					return false
				}
				row, exists := session.Network().Load(load.ID)
				if !exists {
					return false
				}
				rows = append(rows, row)
			}

			return rows[0].Bus == rows[1].Bus &&
				rows[0].PMW == rows[1].PMW &&
				rows[0].QMvar == rows[1].QMvar &&
				rows[0].Scaling == rows[1].Scaling
		},
		gen.Float64Range(-1e3, 1e3),
		gen.Float64Range(-1e3, 1e3),
	))

	properties.Property("failed conversion leaves the network unchanged", prop.ForAll(
		func(p float64) bool {
			model, err := gdf.NewCoreModel(50)
			if err != nil {
				return false
			}
			load := &gdf.Load{ID: uuid.New(), Name: "orphan", ActivePower: p}
			if err := model.Graph().AddComponent(load); err != nil {
				return false
			}

			session, err := NewSession(pandanet.New("fresh"), defaults.PowerFactory, defaults.NewPolicy())
			if err != nil {
				return false
			}
			f := session.ConvertLoad(model, load)
			return f != nil && session.Network().Count() == 0
		},
		gen.Float64Range(-1e3, 1e3),
	))

	properties.Property("breaking current scales with rating over voltage", prop.ForAll(
		func(rating float64, voltage float64) bool {
			model, err := gdf.NewCoreModel(50)
			if err != nil {
				return false
			}
			bus := &gdf.Bus{ID: uuid.New(), Name: "bus", NominalVoltage: voltage}
			line := &gdf.TLine{ID: uuid.New(), Name: "line", Length: 1, ParallelLines: 1}
			sw := &gdf.Switch{ID: uuid.New(), Name: "switch", Closed: true, RatingB: rating}
			if err := model.Graph().AddComponent(bus); err != nil {
				return false
			}
			if err := model.Graph().AddComponent(line); err != nil {
				return false
			}
			if err := model.Graph().AddComponent(sw); err != nil {
				return false
			}
			if err := model.Graph().Connect(sw, bus); err != nil {
				return false
			}
			if err := model.Graph().Connect(sw, line); err != nil {
				return false
			}

			session, err := NewSession(pandanet.New("fresh"), defaults.PowerFactory, defaults.NewPolicy())
			if err != nil {
				return false
			}
			if f := session.ConvertBus(bus); f != nil {
				return false
			}
			if f := session.ConvertSwitch(model, sw); f != nil {
				return false
			}
			row, exists := session.Network().Switch(sw.ID)
			return exists && row.InKA == rating*1000/voltage
		},
		gen.Float64Range(0.1, 100),
		gen.Float64Range(1, 500),
	))

	properties.TestingRun(t)
}
