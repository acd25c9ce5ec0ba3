package gdf

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// maxLinkDepth bounds traversal through chained zero-impedance links.
const maxLinkDepth = 10

type edge struct {
	to        Component
	connector string
}

// Graph is the topology over generic components. Edges are undirected and
// may carry a connector label per endpoint ("HV", "LV", "MV", "A", "B") to
// disambiguate multi-terminal components.
type Graph struct {
	pid        uuid.UUID
	adjacency  map[uuid.UUID][]edge
	components map[uuid.UUID]Component
	order      []uuid.UUID
}

// NewGraph returns an empty topology graph.
func NewGraph() (*Graph, error) {
	pid, err := uuid.NewUUID()
	if err != nil {
		return nil, err
	}

	return &Graph{
		pid:        pid,
		adjacency:  make(map[uuid.UUID][]edge),
		components: make(map[uuid.UUID]Component),
	}, nil
}

// PID is a getter for the graph PID
func (g *Graph) PID() uuid.UUID {
	return g.pid
}

// AddComponent registers a component as a graph node.
func (g *Graph) AddComponent(c Component) error {
	if _, exists := g.components[c.UID()]; exists {
		err := fmt.Sprintf("component %v already exists in graph.", c.UID())
		return errors.New(err)
	}
	g.components[c.UID()] = c
	g.adjacency[c.UID()] = make([]edge, 0)
	g.order = append(g.order, c.UID())
	return nil
}

// Connect adds an unlabeled undirected edge between two components.
func (g *Graph) Connect(a Component, b Component) error {
	return g.ConnectNamed(a, b, "", "")
}

// ConnectNamed adds an undirected edge carrying a connector label per
// endpoint: connectorA names the terminal on a's side, connectorB the
// terminal on b's side.
func (g *Graph) ConnectNamed(a Component, b Component, connectorA string, connectorB string) error {
	if _, exists := g.components[a.UID()]; !exists {
		err := fmt.Sprintf("start component %v does not exist in graph.", a.UID())
		return errors.New(err)
	}
	if _, exists := g.components[b.UID()]; !exists {
		err := fmt.Sprintf("end component %v does not exist in graph.", b.UID())
		return errors.New(err)
	}

	g.adjacency[a.UID()] = append(g.adjacency[a.UID()], edge{b, connectorA})
	g.adjacency[b.UID()] = append(g.adjacency[b.UID()], edge{a, connectorB})
	return nil
}

// Component returns the component registered under uid, or nil.
func (g *Graph) Component(uid uuid.UUID) Component {
	return g.components[uid]
}

// Components returns all components in insertion order.
func (g *Graph) Components() []Component {
	all := make([]Component, 0, len(g.order))
	for _, uid := range g.order {
		all = append(all, g.components[uid])
	}
	return all
}

// Neighbors returns the components adjacent to c, in edge insertion order.
// A non-empty connector restricts the lookup to edges labeled with that
// connector on c's side. With followLinks set, link components are expanded
// transparently: the lookup returns what lies beyond them, bounded by
// maxLinkDepth.
func (g *Graph) Neighbors(c Component, followLinks bool, connector string) []Component {
	found := make([]Component, 0)
	for _, e := range g.adjacency[c.UID()] {
		if connector != "" && e.connector != connector {
			continue
		}
		if followLinks && e.to.Kind() == KindLink {
			visited := map[uuid.UUID]bool{c.UID(): true}
			found = append(found, g.expandLink(e.to, visited, 1)...)
			continue
		}
		found = append(found, e.to)
	}
	return found
}

// expandLink collects the non-link components reachable through a chain of
// links, depth-bounded.
func (g *Graph) expandLink(link Component, visited map[uuid.UUID]bool, depth int) []Component {
	found := make([]Component, 0)
	if depth > maxLinkDepth || visited[link.UID()] {
		return found
	}
	visited[link.UID()] = true
	for _, e := range g.adjacency[link.UID()] {
		if visited[e.to.UID()] {
			continue
		}
		if e.to.Kind() == KindLink {
			found = append(found, g.expandLink(e.to, visited, depth+1)...)
			continue
		}
		visited[e.to.UID()] = true
		found = append(found, e.to)
	}
	return found
}

// ConnectedBus runs a depth-bounded breadth-first search from c and returns
// the nearest bus, or nil when none is reachable within maxDepth hops. The
// search ignores connector labels.
func (g *Graph) ConnectedBus(c Component, maxDepth int) *Bus {
	visited := map[uuid.UUID]bool{c.UID(): true}
	frontier := []Component{c}

	for depth := 0; depth < maxDepth; depth++ {
		next := make([]Component, 0)
		for _, current := range frontier {
			for _, e := range g.adjacency[current.UID()] {
				if visited[e.to.UID()] {
					continue
				}
				visited[e.to.UID()] = true
				if bus, ok := e.to.(*Bus); ok {
					return bus
				}
				next = append(next, e.to)
			}
		}
		frontier = next
	}
	return nil
}
