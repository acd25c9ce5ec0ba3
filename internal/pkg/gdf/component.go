// Package gdf holds the generic data format: the vendor-neutral component
// set and topology graph that source tool exports are parsed into before
// conversion to a target model.
package gdf

import "github.com/google/uuid"

// Kind tags the closed set of component variants.
type Kind int

const (
	KindBus Kind = iota
	KindLoad
	KindTwoWindingTransformer
	KindThreeWindingTransformer
	KindSynchronousMachine
	KindTLine
	KindWard
	KindShunt
	KindSwitch
	KindLink
)

func (k Kind) String() string {
	switch k {
	case KindBus:
		return "Bus"
	case KindLoad:
		return "Load"
	case KindTwoWindingTransformer:
		return "TwoWindingTransformer"
	case KindThreeWindingTransformer:
		return "ThreeWindingTransformer"
	case KindSynchronousMachine:
		return "SynchronousMachine"
	case KindTLine:
		return "TLine"
	case KindWard:
		return "Ward"
	case KindShunt:
		return "Shunt"
	case KindSwitch:
		return "Switch"
	case KindLink:
		return "Link"
	}
	return "Unknown"
}

// Component is the interface shared by every generic model element.
// Components are immutable during conversion; the engine only reads them.
type Component interface {
	UID() uuid.UUID
	Label() string
	Kind() Kind
}
