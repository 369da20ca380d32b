package sim

// AgentID values are monotonic and never reused, even after death.
type AgentID uint64

type Agent struct {
	ID              AgentID
	Name            string
	Qi              Qi
	Transistors     Qi
	Position        Position
	Alive           bool
	Age             uint64
	MaxAge          uint64
	DiscoveredZones map[Zone]struct{}
}

func (a *Agent) spendQi(amount Qi) *ActionError {
	if a.Qi < amount {
		return &ActionError{
			Code:      RejectInsufficientQi,
			AgentID:   a.ID,
			Required:  amount,
			Available: a.Qi,
		}
	}
	a.Qi -= amount
	return nil
}

func (a *Agent) gainOre(ore OreKind, amount Qi) {
	switch ore {
	case OreTransistor:
		a.Transistors = satAddQi(a.Transistors, amount)
	default:
		a.Qi = satAddQi(a.Qi, amount)
	}
}

func (a *Agent) spendOre(ore OreKind, amount Qi) *ActionError {
	if ore == OreQi {
		return a.spendQi(amount)
	}
	if a.Transistors < amount {
		return &ActionError{
			Code:      RejectInsufficientOre,
			AgentID:   a.ID,
			Ore:       ore,
			Required:  amount,
			Available: a.Transistors,
		}
	}
	a.Transistors -= amount
	return nil
}

func (a *Agent) discoverZone(z Zone) {
	if a.DiscoveredZones == nil {
		a.DiscoveredZones = map[Zone]struct{}{}
	}
	a.DiscoveredZones[z] = struct{}{}
}

func satAddQi(a, b Qi) Qi {
	if sum := a + b; sum >= a {
		return sum
	}
	return ^Qi(0)
}
