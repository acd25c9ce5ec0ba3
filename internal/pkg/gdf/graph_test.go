package gdf

import (
	"testing"

	"github.com/google/uuid"
	"gotest.tools/assert"
)

func newTestBus(name string) *Bus {
	return &Bus{ID: uuid.New(), Name: name, NominalVoltage: 110, BusType: Busbar, LFBusType: PQ}
}

func TestAddComponentRejectsDuplicate(t *testing.T) {
	g, err := NewGraph()
	assert.NilError(t, err)

	bus := newTestBus("bus 1")
	assert.NilError(t, g.AddComponent(bus))
	assert.Assert(t, g.AddComponent(bus) != nil)
}

func TestConnectRequiresKnownComponents(t *testing.T) {
	g, err := NewGraph()
	assert.NilError(t, err)

	known := newTestBus("known")
	unknown := newTestBus("unknown")
	assert.NilError(t, g.AddComponent(known))
	assert.Assert(t, g.Connect(known, unknown) != nil)
	assert.Assert(t, g.Connect(unknown, known) != nil)
}

func TestNeighborsConnectorFilter(t *testing.T) {
	g, err := NewGraph()
	assert.NilError(t, err)

	trafo := &TwoWindingTransformer{ID: uuid.New(), Name: "T1", VoltageHV: 110, VoltageLV: 20}
	hvBus := newTestBus("hv bus")
	lvBus := newTestBus("lv bus")
	assert.NilError(t, g.AddComponent(trafo))
	assert.NilError(t, g.AddComponent(hvBus))
	assert.NilError(t, g.AddComponent(lvBus))
	assert.NilError(t, g.ConnectNamed(trafo, hvBus, "HV", ""))
	assert.NilError(t, g.ConnectNamed(trafo, lvBus, "LV", ""))

	hv := g.Neighbors(trafo, false, "HV")
	assert.Equal(t, len(hv), 1)
	assert.Equal(t, hv[0].UID(), hvBus.ID)

	lv := g.Neighbors(trafo, false, "LV")
	assert.Equal(t, len(lv), 1)
	assert.Equal(t, lv[0].UID(), lvBus.ID)

	all := g.Neighbors(trafo, false, "")
	assert.Equal(t, len(all), 2)
}

func TestNeighborsFollowLinks(t *testing.T) {
	g, err := NewGraph()
	assert.NilError(t, err)

	trafo := &TwoWindingTransformer{ID: uuid.New(), Name: "T1", VoltageHV: 110, VoltageLV: 20}
	link := &Link{ID: uuid.New(), Name: "link"}
	bus := newTestBus("hv bus")
	assert.NilError(t, g.AddComponent(trafo))
	assert.NilError(t, g.AddComponent(link))
	assert.NilError(t, g.AddComponent(bus))
	assert.NilError(t, g.ConnectNamed(trafo, link, "HV", ""))
	assert.NilError(t, g.Connect(link, bus))

	raw := g.Neighbors(trafo, false, "HV")
	assert.Equal(t, len(raw), 1)
	assert.Equal(t, raw[0].Kind(), KindLink)

	followed := g.Neighbors(trafo, true, "HV")
	assert.Equal(t, len(followed), 1)
	assert.Equal(t, followed[0].UID(), bus.ID)
}

func TestNeighborsFollowChainedLinks(t *testing.T) {
	g, err := NewGraph()
	assert.NilError(t, err)

	sw := &Switch{ID: uuid.New(), Name: "S1"}
	link1 := &Link{ID: uuid.New(), Name: "link 1"}
	link2 := &Link{ID: uuid.New(), Name: "link 2"}
	bus := newTestBus("bus")
	assert.NilError(t, g.AddComponent(sw))
	assert.NilError(t, g.AddComponent(link1))
	assert.NilError(t, g.AddComponent(link2))
	assert.NilError(t, g.AddComponent(bus))
	assert.NilError(t, g.Connect(sw, link1))
	assert.NilError(t, g.Connect(link1, link2))
	assert.NilError(t, g.Connect(link2, bus))

	followed := g.Neighbors(sw, true, "")
	assert.Equal(t, len(followed), 1)
	assert.Equal(t, followed[0].UID(), bus.ID)
}

func TestConnectedBusDepthBound(t *testing.T) {
	g, err := NewGraph()
	assert.NilError(t, err)

	load := &Load{ID: uuid.New(), Name: "L1"}
	sw := &Switch{ID: uuid.New(), Name: "S1"}
	bus := newTestBus("bus")
	assert.NilError(t, g.AddComponent(load))
	assert.NilError(t, g.AddComponent(sw))
	assert.NilError(t, g.AddComponent(bus))
	assert.NilError(t, g.Connect(load, sw))
	assert.NilError(t, g.Connect(sw, bus))

	assert.Assert(t, g.ConnectedBus(load, 1) == nil)

	found := g.ConnectedBus(load, 2)
	assert.Assert(t, found != nil)
	assert.Equal(t, found.ID, bus.ID)
}

func TestConnectedBusDirect(t *testing.T) {
	g, err := NewGraph()
	assert.NilError(t, err)

	load := &Load{ID: uuid.New(), Name: "L1"}
	bus := newTestBus("bus")
	assert.NilError(t, g.AddComponent(load))
	assert.NilError(t, g.AddComponent(bus))
	assert.NilError(t, g.Connect(load, bus))

	found := g.ConnectedBus(load, 1)
	assert.Assert(t, found != nil)
	assert.Equal(t, found.ID, bus.ID)
}
