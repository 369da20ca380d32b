package sim

import "strings"

// Qi is the unit for both energy balances and ore amounts.
type Qi = uint32

type OreKind string

const (
	OreQi         OreKind = "qi"
	OreTransistor OreKind = "transistor"
)

func (k OreKind) Valid() bool {
	return k == OreQi || k == OreTransistor
}

func ParseOreKind(raw string) (OreKind, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "qi":
		return OreQi, true
	case "transistor":
		return OreTransistor, true
	default:
		return "", false
	}
}
