package convert

import (
	"fmt"
	"math"

	"github.com/gridworks/gdfconv/internal/pkg/gdf"
	"github.com/gridworks/gdfconv/internal/pkg/msg"
	"github.com/gridworks/gdfconv/internal/pkg/pandanet"
)

// Engineering placeholders preserved from the source data set. Overridable
// so a measured derivation can replace them without touching control flow.
var (
	Trafo3WVKPercent    = 10.4
	Trafo3WVKRHVPercent = 0.28
	Trafo3WVKRMVPercent = 0.32
	Trafo3WVKRLVPercent = 0.35
	Trafo3WI0Percent    = 0.89
	LineMaxIKA          = 0.5
)

// connectedBusDepth bounds the breadth-first bus search for
// single-terminal components.
const connectedBusDepth = 1

// Convert dispatches a component to its converter. Links are topology-only
// and convert to nothing; an unknown kind is an unsupported element.
func (s *Session) Convert(m *gdf.CoreModel, c gdf.Component) *Failure {
	switch v := c.(type) {
	case *gdf.Bus:
		return s.ConvertBus(v)
	case *gdf.Load:
		return s.ConvertLoad(m, v)
	case *gdf.TwoWindingTransformer:
		return s.ConvertTwoWindingTransformer(m, v)
	case *gdf.ThreeWindingTransformer:
		return s.ConvertThreeWindingTransformer(m, v)
	case *gdf.SynchronousMachine:
		return s.ConvertSynchronousMachine(m, v)
	case *gdf.TLine:
		return s.ConvertTLine(m, v)
	case *gdf.Ward:
		return s.ConvertWard(m, v)
	case *gdf.Shunt:
		return s.ConvertShunt(m, v)
	case *gdf.Switch:
		return s.ConvertSwitch(m, v)
	case *gdf.Link:
		return nil
	default:
		return s.fail(c, UnsupportedElement, "no converter for component kind")
	}
}

// ConvertBus creates a target bus from a generic bus. Junction nodes map
// to the node type code, every other bus type to the busbar code. Voltage
// magnitude limits stay unconstrained; the generic model carries none.
func (s *Session) ConvertBus(bus *gdf.Bus) *Failure {
	busType := pandanet.BusTypeBusbar
	if bus.BusType == gdf.Junction {
		busType = pandanet.BusTypeNode
	}

	err := s.network.CreateBus(pandanet.Bus{
		UID:       bus.ID,
		Name:      bus.Name,
		VnKV:      bus.NominalVoltage,
		Type:      busType,
		Coords:    bus.Coords,
		InService: true,
		MaxVmPU:   math.NaN(),
		MinVmPU:   math.NaN(),
	})
	if err != nil {
		return s.fail(bus, TargetRejected, err.Error())
	}
	s.record(bus, "bus")
	return nil
}

// ConvertLoad creates a target load. The generic model carries pure
// constant-power loads, so the constant-impedance and constant-current
// shares are zero and scaling is one.
func (s *Session) ConvertLoad(m *gdf.CoreModel, load *gdf.Load) *Failure {
	bus := m.ConnectedBus(load, connectedBusDepth)
	if bus == nil {
		return s.fail(load, NoConnectedBus, "no bus connected to the load")
	}

	err := s.network.CreateLoad(pandanet.Load{
		UID:           load.ID,
		Name:          load.Name,
		Bus:           bus.ID,
		PMW:           load.ActivePower,
		QMvar:         load.ReactivePower,
		ConstZPercent: 0,
		ConstIPercent: 0,
		SnMVA:         math.NaN(),
		Scaling:       1.0,
		InService:     true,
		Type:          "wye",
		MaxPMW:        math.NaN(),
		MinPMW:        math.NaN(),
		MaxQMvar:      math.NaN(),
		MinQMvar:      math.NaN(),
	})
	if err != nil {
		return s.fail(load, TargetRejected, err.Error())
	}
	s.record(load, "load")
	return nil
}

// ConvertTwoWindingTransformer creates a target two winding transformer.
// The short-circuit voltage percentage is derived from the per-unit
// resistance when present, otherwise taken from the platform defaults. The
// tap changer sits on the HV side; the generic model carries no tap-side
// attribute.
func (s *Session) ConvertTwoWindingTransformer(m *gdf.CoreModel, t *gdf.TwoWindingTransformer) *Failure {
	hvBus := s.busNeighbor(m, t, "HV")
	if hvBus == nil {
		return s.fail(t, UnresolvedBus, "no bus on HV side")
	}
	lvBus := s.busNeighbor(m, t, "LV")
	if lvBus == nil {
		return s.fail(t, UnresolvedBus, "no bus on LV side")
	}

	var vkPercent float64
	if t.R1PU != 0 {
		vkPercent = t.R1PU * (t.VoltageHV / t.VoltageLV) * 100
	} else {
		var f *Failure
		vkPercent, f = s.platformDefault(t, "vk_percent")
		if f != nil {
			return f
		}
	}

	tapSetVmPU, f := s.platformDefault(t, "tap_set_vm_pu")
	if f != nil {
		return f
	}
	mag0Percent, f := s.platformDefault(t, "mag0_percent")
	if f != nil {
		return f
	}
	mag0RX, f := s.platformDefault(t, "mag0_rx")
	if f != nil {
		return f
	}
	si0HVPartial, f := s.platformDefault(t, "si0_hv_partial")
	if f != nil {
		return f
	}

	err := s.network.CreateTrafoFromParameters(pandanet.Trafo{
		UID:             t.ID,
		Name:            t.Name,
		HVBus:           hvBus.ID,
		LVBus:           lvBus.ID,
		SnMVA:           t.Rating,
		VnHVKV:          t.VoltageHV,
		VnLVKV:          t.VoltageLV,
		VKRPercent:      0,
		VKPercent:       vkPercent,
		PFeKW:           t.PFeKW,
		I0Percent:       0,
		ShiftDegree:     float64(t.PhaseShift30) * 30,
		TapSide:         "hv",
		TapNeutral:      t.TapNeutral,
		TapMax:          t.TapMax,
		TapMin:          t.TapMin,
		TapStepPercent:  t.TapChangerVoltage * 100,
		TapStepDegree:   math.NaN(),
		TapPos:          t.TapInitial,
		TapPhaseShifter: false,
		TapSetVmPU:      tapSetVmPU,
		InService:       true,
		Parallel:        1,
		DF:              1.0,
		MaxLoading:      math.NaN(),
		VK0Percent:      math.NaN(),
		VKR0Percent:     math.NaN(),
		Mag0Percent:     mag0Percent,
		Mag0RX:          mag0RX,
		SI0HVPartial:    si0HVPartial,
		PTPercent:       math.NaN(),
		XNOhm:           math.NaN(),
	})
	if err != nil {
		return s.fail(t, TargetRejected, err.Error())
	}
	s.record(t, "trafo")
	return nil
}

// ConvertThreeWindingTransformer creates a target three winding
// transformer. The per-winding short-circuit percentages and the no-load
// current are the named placeholder constants; the source carries no
// attributes to derive them from.
func (s *Session) ConvertThreeWindingTransformer(m *gdf.CoreModel, t *gdf.ThreeWindingTransformer) *Failure {
	hvBus := s.busNeighbor(m, t, "HV")
	if hvBus == nil {
		return s.fail(t, UnresolvedBus, "no bus on HV side")
	}
	mvCandidates := m.Neighbors(t, true, "MV")
	if len(mvCandidates) == 0 {
		return s.fail(t, UnresolvedBus, "no bus on MV side")
	}
	mvBus, ok := mvCandidates[0].(*gdf.Bus)
	if !ok {
		return s.fail(t, UnresolvedBus, "no bus on MV side")
	}
	lvBus := s.busNeighbor(m, t, "LV")
	if lvBus == nil {
		return s.fail(t, UnresolvedBus, "no bus on LV side")
	}

	err := s.network.CreateTrafo3WFromParameters(pandanet.Trafo3W{
		UID:            t.ID,
		Name:           t.Name,
		HVBus:          hvBus.ID,
		MVBus:          mvBus.ID,
		LVBus:          lvBus.ID,
		VnHVKV:         t.VoltageHV,
		VnMVKV:         t.VoltageMV,
		VnLVKV:         t.VoltageLV,
		SnHVMVA:        t.RatingHV,
		SnMVMVA:        t.RatingMV,
		SnLVMVA:        t.RatingLV,
		VKHVPercent:    Trafo3WVKPercent,
		VKMVPercent:    Trafo3WVKPercent,
		VKLVPercent:    Trafo3WVKPercent,
		VKRHVPercent:   Trafo3WVKRHVPercent,
		VKRMVPercent:   Trafo3WVKRMVPercent,
		VKRLVPercent:   Trafo3WVKRLVPercent,
		PFeKW:          t.PFeKW,
		I0Percent:      Trafo3WI0Percent,
		ShiftMVDegree:  float64(t.PhaseShift30MV) * 30,
		ShiftLVDegree:  float64(t.PhaseShift30LV) * 30,
		TapSide:        "hv",
		TapStepPercent: t.TapDetails.TapChangerVoltage * 100,
		TapStepDegree:  math.NaN(),
		TapPos:         t.TapDetails.TapInitial,
		TapNeutral:     t.TapDetails.TapNeutral,
		TapMax:         t.TapDetails.TapMax,
		TapMin:         t.TapDetails.TapMin,
		TapAtStarPoint: false,
		InService:      true,
		MaxLoading:     math.NaN(),
	})
	if err != nil {
		return s.fail(t, TargetRejected, err.Error())
	}
	s.record(t, "trafo3w")
	return nil
}

// ConvertSynchronousMachine creates a target generator. A machine on a bus
// classified as slack becomes the system's reference unit; the session
// notes this on the diagnostic stream. Generators are non-controllable
// with zero slack-distribution weight by default.
func (s *Session) ConvertSynchronousMachine(m *gdf.CoreModel, sm *gdf.SynchronousMachine) *Failure {
	bus := m.ConnectedBus(sm, connectedBusDepth)
	if bus == nil {
		return s.fail(sm, NoConnectedBus, "no bus connected to the machine")
	}

	slack := false
	if bus.LFBusType == gdf.Slack {
		slack = true
		s.note(sm, fmt.Sprintf("Gen: %s is set to be a slack generator", sm.Name))
	}

	err := s.network.CreateGen(pandanet.Gen{
		UID:          sm.ID,
		Name:         sm.Name,
		Bus:          bus.ID,
		PMW:          sm.ActivePower,
		VmPU:         sm.VoltageSetPoint,
		SnMVA:        sm.RatedApparentPower,
		MaxQMvar:     sm.QMax,
		MinQMvar:     sm.QMin,
		MinPMW:       sm.PMin,
		MaxPMW:       sm.PMax,
		MinVmPU:      math.NaN(),
		MaxVmPU:      math.NaN(),
		Scaling:      1.0,
		Type:         "sync",
		Slack:        slack,
		SlackWeight:  0.0,
		Controllable: false,
		VnKV:         sm.RatedVoltage,
		XDSSPU:       sm.SubtransientReactanceX,
		RDSSOhm:      math.NaN(),
		CosPhi:       math.NaN(),
		InService:    true,
	})
	if err != nil {
		return s.fail(sm, TargetRejected, err.Error())
	}
	s.record(sm, "gen")
	return nil
}

// ConvertTLine creates a target line. The per-km shunt capacitance is
// derived from the per-unit susceptance b1 through B = 2*pi*f*C at the
// network base frequency. Zero-sequence impedances fall back to the
// platform defaults when the source carries none.
func (s *Session) ConvertTLine(m *gdf.CoreModel, t *gdf.TLine) *Failure {
	fromBus := s.busNeighbor(m, t, "A")
	if fromBus == nil {
		return s.fail(t, UnresolvedBus, "no bus on endpoint A")
	}
	toBus := s.busNeighbor(m, t, "B")
	if toBus == nil {
		return s.fail(t, UnresolvedBus, "no bus on endpoint B")
	}

	alpha, f := s.platformDefault(t, "alpha")
	if f != nil {
		return f
	}
	temperature, f := s.platformDefault(t, "temperature_degree_celsius")
	if f != nil {
		return f
	}
	r0, err := t.R0Fallback(s.policy, s.platform)
	if err != nil {
		return s.fail(t, MissingDefault, err.Error())
	}
	x0, err := t.X0Fallback(s.policy, s.platform)
	if err != nil {
		return s.fail(t, MissingDefault, err.Error())
	}

	err = s.network.CreateLineFromParameters(pandanet.Line{
		UID:         t.ID,
		Name:        t.Name,
		FromBus:     fromBus.ID,
		ToBus:       toBus.ID,
		Coords:      t.Coords,
		LengthKM:    t.Length,
		ROhmPerKM:   t.R1,
		XOhmPerKM:   t.X1,
		CNFPerKM:    (t.B1 * 1e3) / (2 * math.Pi * m.BaseFrequency),
		MaxIKA:      LineMaxIKA,
		InService:   true,
		DF:          1.0,
		Parallel:    t.ParallelLines,
		GUSPerKM:    0.0,
		MaxLoading:  math.NaN(),
		Alpha:       alpha,
		Temperature: temperature,
		R0OhmPerKM:  r0,
		X0OhmPerKM:  x0,
		C0NFPerKM:   math.NaN(),
		G0USPerKM:   0,
	})
	if err != nil {
		return s.fail(t, TargetRejected, err.Error())
	}
	s.record(t, "line")
	return nil
}

// ConvertWard creates a target ward. Net constant power is generation
// minus load per axis, expressed in the target's consumption-positive
// sign convention.
func (s *Session) ConvertWard(m *gdf.CoreModel, w *gdf.Ward) *Failure {
	bus := m.ConnectedBus(w, connectedBusDepth)
	if bus == nil {
		return s.fail(w, NoConnectedBus, "no bus connected to the ward")
	}

	err := s.network.CreateWard(pandanet.Ward{
		UID:       w.ID,
		Name:      w.Name,
		Bus:       bus.ID,
		PsMW:      -w.PGen + w.PLoad,
		QsMvar:    -w.QGen + w.QLoad,
		PzMW:      w.PZLoad,
		QzMvar:    w.QZLoad,
		InService: true,
	})
	if err != nil {
		return s.fail(w, TargetRejected, err.Error())
	}
	s.record(w, "ward")
	return nil
}

// ConvertShunt creates a target shunt, copying power directly.
func (s *Session) ConvertShunt(m *gdf.CoreModel, sh *gdf.Shunt) *Failure {
	bus := m.ConnectedBus(sh, connectedBusDepth)
	if bus == nil {
		return s.fail(sh, NoConnectedBus, "no bus connected to the shunt")
	}

	err := s.network.CreateShunt(pandanet.Shunt{
		UID:   sh.ID,
		Bus:   bus.ID,
		PMW:   sh.P,
		QMvar: sh.Q,
	})
	if err != nil {
		return s.fail(sh, TargetRejected, err.Error())
	}
	s.record(sh, "shunt")
	return nil
}

// switchElementType maps the component on the far side of a switch to a
// target element type code. The set is closed; anything else, including a
// second bus, is unsupported as a switch element.
func switchElementType(c gdf.Component) (string, bool) {
	switch c.(type) {
	case *gdf.TLine:
		return pandanet.ElementLine, true
	case *gdf.TwoWindingTransformer:
		return pandanet.ElementTrafo, true
	case *gdf.ThreeWindingTransformer:
		return pandanet.ElementTrafo3W, true
	default:
		return "", false
	}
}

// ConvertSwitch creates a target switch. A switch must sit between exactly
// one bus and one other element; the rated breaking current derives from
// the rated breaking power over the bus nominal voltage.
func (s *Session) ConvertSwitch(m *gdf.CoreModel, sw *gdf.Switch) *Failure {
	neighbors := m.Neighbors(sw, true, "")
	if len(neighbors) != 2 {
		return s.fail(sw, NeighborCount, fmt.Sprintf("expected 2 neighbors, found %d", len(neighbors)))
	}

	var bus *gdf.Bus
	var other gdf.Component
	if b, ok := neighbors[0].(*gdf.Bus); ok {
		bus = b
		other = neighbors[1]
	} else if b, ok := neighbors[1].(*gdf.Bus); ok {
		bus = b
		other = neighbors[0]
	} else {
		return s.fail(sw, NoConnectedBus, "no bus on either side of the switch")
	}

	et, ok := switchElementType(other)
	if !ok {
		return s.fail(sw, UnsupportedElement, fmt.Sprintf("connected %s has no switch element mapping", other.Kind()))
	}

	err := s.network.CreateSwitch(pandanet.Switch{
		UID:     sw.ID,
		Name:    sw.Name,
		Bus:     bus.ID,
		Element: other.UID(),
		ET:      et,
		Closed:  sw.Closed,
		InKA:    sw.RatingB * 1000 / bus.NominalVoltage,
	})
	if err != nil {
		return s.fail(sw, TargetRejected, err.Error())
	}
	s.record(sw, "switch")
	return nil
}

// busNeighbor resolves the first bus on a named connector, following
// links. Nil when the terminal resolves to nothing or to a non-bus.
func (s *Session) busNeighbor(m *gdf.CoreModel, c gdf.Component, connector string) *gdf.Bus {
	neighbors := m.Neighbors(c, true, connector)
	if len(neighbors) == 0 {
		return nil
	}
	bus, ok := neighbors[0].(*gdf.Bus)
	if !ok {
		return nil
	}
	return bus
}

// platformDefault looks up a policy default, converting a miss into a
// categorized failure.
func (s *Session) platformDefault(c gdf.Component, attr string) (float64, *Failure) {
	value, err := s.policy.Default(attr, s.platform)
	if err != nil {
		return 0, s.fail(c, MissingDefault, err.Error())
	}
	return value, nil
}

var _ msg.Publisher = (*Session)(nil)
