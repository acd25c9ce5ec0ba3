package pandanet

import "fmt"

// CreateBus inserts a bus row. Buses reference nothing, so this only
// guards against duplicate uids.
func (n *Network) CreateBus(b Bus) error {
	if _, exists := n.buses[b.UID]; exists {
		return fmt.Errorf("%w: bus %v", ErrDuplicateElement, b.UID)
	}
	n.buses[b.UID] = b
	return nil
}

// CreateLoad inserts a load row. The referenced bus must already exist.
func (n *Network) CreateLoad(l Load) error {
	if _, exists := n.loads[l.UID]; exists {
		return fmt.Errorf("%w: load %v", ErrDuplicateElement, l.UID)
	}
	if err := n.requireBus(l.Bus); err != nil {
		return err
	}
	n.loads[l.UID] = l
	return nil
}

// CreateTrafoFromParameters inserts a two winding transformer row. Both
// referenced buses must already exist.
func (n *Network) CreateTrafoFromParameters(t Trafo) error {
	if _, exists := n.trafos[t.UID]; exists {
		return fmt.Errorf("%w: trafo %v", ErrDuplicateElement, t.UID)
	}
	if err := n.requireBus(t.HVBus); err != nil {
		return err
	}
	if err := n.requireBus(t.LVBus); err != nil {
		return err
	}
	n.trafos[t.UID] = t
	return nil
}

// CreateTrafo3WFromParameters inserts a three winding transformer row. All
// three referenced buses must already exist.
func (n *Network) CreateTrafo3WFromParameters(t Trafo3W) error {
	if _, exists := n.trafos3w[t.UID]; exists {
		return fmt.Errorf("%w: trafo3w %v", ErrDuplicateElement, t.UID)
	}
	if err := n.requireBus(t.HVBus); err != nil {
		return err
	}
	if err := n.requireBus(t.MVBus); err != nil {
		return err
	}
	if err := n.requireBus(t.LVBus); err != nil {
		return err
	}
	n.trafos3w[t.UID] = t
	return nil
}

// CreateGen inserts a generator row. The referenced bus must already exist.
func (n *Network) CreateGen(g Gen) error {
	if _, exists := n.gens[g.UID]; exists {
		return fmt.Errorf("%w: gen %v", ErrDuplicateElement, g.UID)
	}
	if err := n.requireBus(g.Bus); err != nil {
		return err
	}
	n.gens[g.UID] = g
	return nil
}

// CreateLineFromParameters inserts a line row. Both endpoint buses must
// already exist.
func (n *Network) CreateLineFromParameters(l Line) error {
	if _, exists := n.lines[l.UID]; exists {
		return fmt.Errorf("%w: line %v", ErrDuplicateElement, l.UID)
	}
	if err := n.requireBus(l.FromBus); err != nil {
		return err
	}
	if err := n.requireBus(l.ToBus); err != nil {
		return err
	}
	n.lines[l.UID] = l
	return nil
}

// CreateWard inserts a ward row. The referenced bus must already exist.
func (n *Network) CreateWard(w Ward) error {
	if _, exists := n.wards[w.UID]; exists {
		return fmt.Errorf("%w: ward %v", ErrDuplicateElement, w.UID)
	}
	if err := n.requireBus(w.Bus); err != nil {
		return err
	}
	n.wards[w.UID] = w
	return nil
}

// CreateShunt inserts a shunt row. The referenced bus must already exist.
func (n *Network) CreateShunt(s Shunt) error {
	if _, exists := n.shunts[s.UID]; exists {
		return fmt.Errorf("%w: shunt %v", ErrDuplicateElement, s.UID)
	}
	if err := n.requireBus(s.Bus); err != nil {
		return err
	}
	n.shunts[s.UID] = s
	return nil
}

// CreateSwitch inserts a switch row. The referenced bus must already
// exist; the connected element is referenced by uid only and is not
// required to be present, matching the target library's switch table.
func (n *Network) CreateSwitch(s Switch) error {
	if _, exists := n.switches[s.UID]; exists {
		return fmt.Errorf("%w: switch %v", ErrDuplicateElement, s.UID)
	}
	if err := n.requireBus(s.Bus); err != nil {
		return err
	}
	n.switches[s.UID] = s
	return nil
}
