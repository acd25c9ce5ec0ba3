package gdf

import (
	"testing"

	"github.com/google/uuid"
	"gotest.tools/assert"
)

func TestLoadCoreModel(t *testing.T) {
	model, err := LoadCoreModel("coremodel_test_model.json")
	assert.NilError(t, err)

	assert.Equal(t, model.BaseFrequency, 50.0)
	assert.Equal(t, len(model.Components()), 4)

	line := model.Graph().Component(uuid.MustParse("7d444840-9dc0-11d1-b245-5ffdce74fad4"))
	assert.Assert(t, line != nil)
	assert.Equal(t, line.Kind(), KindTLine)

	a := model.Neighbors(line, true, "A")
	assert.Equal(t, len(a), 1)
	assert.Equal(t, a[0].Label(), "Bus A")

	b := model.Neighbors(line, true, "B")
	assert.Equal(t, len(b), 1)
	assert.Equal(t, b[0].Label(), "Bus B")

	load := model.Graph().Component(uuid.MustParse("7d444840-9dc0-11d1-b245-5ffdce74fad5"))
	assert.Assert(t, load != nil)
	bus := model.ConnectedBus(load, 1)
	assert.Assert(t, bus != nil)
	assert.Equal(t, bus.Name, "Bus B")

	assert.NilError(t, model.Validate())
}

func TestUnmarshalCoreModelUnknownKind(t *testing.T) {
	raw := []byte(`{"BaseFrequency": 50, "Components": [{"Kind": "Capacitor", "Data": {}}]}`)
	_, err := UnmarshalCoreModel(raw)
	assert.Assert(t, err != nil)
}

func TestUnmarshalCoreModelUnknownEdgeTarget(t *testing.T) {
	raw := []byte(`{
		"BaseFrequency": 50,
		"Components": [
			{"Kind": "Bus", "Data": {"ID": "7d444840-9dc0-11d1-b245-5ffdce74fad2", "Name": "Bus A", "NominalVoltage": 110}}
		],
		"Edges": [
			{"From": "7d444840-9dc0-11d1-b245-5ffdce74fad2", "To": "7d444840-9dc0-11d1-b245-5ffdce74fff0"}
		]
	}`)
	_, err := UnmarshalCoreModel(raw)
	assert.Assert(t, err != nil)
}

func TestValidateRejectsZeroVoltage(t *testing.T) {
	model, err := NewCoreModel(50)
	assert.NilError(t, err)

	bad := &Bus{ID: uuid.New(), Name: "bad bus", NominalVoltage: 0}
	assert.NilError(t, model.Graph().AddComponent(bad))
	assert.Assert(t, model.Validate() != nil)
}

func TestValidateRejectsMissingName(t *testing.T) {
	model, err := NewCoreModel(50)
	assert.NilError(t, err)

	bad := &Load{ID: uuid.New()}
	assert.NilError(t, model.Graph().AddComponent(bad))
	assert.Assert(t, model.Validate() != nil)
}
