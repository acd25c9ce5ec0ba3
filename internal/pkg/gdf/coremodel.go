package gdf

import (
	"encoding/json"
	"fmt"
	"io/ioutil"

	"github.com/google/uuid"
)

// CoreModel bundles the topology graph with network-wide parameters.
type CoreModel struct {
	BaseFrequency float64
	graph         *Graph
}

// NewCoreModel returns an empty core model at the given base frequency.
func NewCoreModel(baseFrequency float64) (*CoreModel, error) {
	graph, err := NewGraph()
	if err != nil {
		return nil, err
	}
	return &CoreModel{BaseFrequency: baseFrequency, graph: graph}, nil
}

// Graph returns the model's topology graph.
func (m *CoreModel) Graph() *Graph {
	return m.graph
}

// Components returns all components in insertion order.
func (m *CoreModel) Components() []Component {
	return m.graph.Components()
}

// Neighbors resolves the components adjacent to c, optionally filtered by
// connector label and expanded through links.
func (m *CoreModel) Neighbors(c Component, followLinks bool, connector string) []Component {
	return m.graph.Neighbors(c, followLinks, connector)
}

// ConnectedBus resolves the nearest bus to c within maxDepth hops, or nil.
func (m *CoreModel) ConnectedBus(c Component, maxDepth int) *Bus {
	return m.graph.ConnectedBus(c, maxDepth)
}

type componentEnvelope struct {
	Kind string          `json:"Kind"`
	Data json.RawMessage `json:"Data"`
}

type edgeRecord struct {
	From          uuid.UUID `json:"From"`
	To            uuid.UUID `json:"To"`
	FromConnector string    `json:"FromConnector,omitempty"`
	ToConnector   string    `json:"ToConnector,omitempty"`
}

type modelFile struct {
	BaseFrequency float64             `json:"BaseFrequency"`
	Components    []componentEnvelope `json:"Components"`
	Edges         []edgeRecord        `json:"Edges"`
}

// LoadCoreModel reads a core model from a JSON file.
func LoadCoreModel(path string) (*CoreModel, error) {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return UnmarshalCoreModel(raw)
}

// UnmarshalCoreModel decodes a core model from JSON.
func UnmarshalCoreModel(raw []byte) (*CoreModel, error) {
	file := modelFile{}
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, err
	}

	model, err := NewCoreModel(file.BaseFrequency)
	if err != nil {
		return nil, err
	}

	for _, envelope := range file.Components {
		c, err := decodeComponent(envelope)
		if err != nil {
			return nil, err
		}
		if err := model.graph.AddComponent(c); err != nil {
			return nil, err
		}
	}

	for _, e := range file.Edges {
		from := model.graph.Component(e.From)
		to := model.graph.Component(e.To)
		if from == nil || to == nil {
			return nil, fmt.Errorf("edge references unknown component: %v -> %v", e.From, e.To)
		}
		if err := model.graph.ConnectNamed(from, to, e.FromConnector, e.ToConnector); err != nil {
			return nil, err
		}
	}

	return model, nil
}

func decodeComponent(envelope componentEnvelope) (Component, error) {
	var c Component
	switch envelope.Kind {
	case KindBus.String():
		c = &Bus{}
	case KindLoad.String():
		c = &Load{}
	case KindTwoWindingTransformer.String():
		c = &TwoWindingTransformer{}
	case KindThreeWindingTransformer.String():
		c = &ThreeWindingTransformer{}
	case KindSynchronousMachine.String():
		c = &SynchronousMachine{}
	case KindTLine.String():
		c = &TLine{}
	case KindWard.String():
		c = &Ward{}
	case KindShunt.String():
		c = &Shunt{}
	case KindSwitch.String():
		c = &Switch{}
	case KindLink.String():
		c = &Link{}
	default:
		return nil, fmt.Errorf("unknown component kind %q", envelope.Kind)
	}
	if err := json.Unmarshal(envelope.Data, c); err != nil {
		return nil, err
	}
	return c, nil
}
