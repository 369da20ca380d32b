package sim

// ZoneSize is the edge length of a cubic zone along each axis.
const ZoneSize int32 = 16

type Position struct {
	X int32 `json:"x"`
	Y int32 `json:"y"`
	Z int32 `json:"z"`
}

func Origin() Position {
	return Position{}
}

func (p Position) Offset(dx, dy, dz int32) Position {
	return Position{X: p.X + dx, Y: p.Y + dy, Z: p.Z + dz}
}

// Zone assignment is a pure function of the position.
func (p Position) Zone() Zone {
	return Zone{
		X: floorDiv(p.X, ZoneSize),
		Y: floorDiv(p.Y, ZoneSize),
		Z: floorDiv(p.Z, ZoneSize),
	}
}

// WithinRange reports whether other lies inside the Chebyshev cube of
// the given radius around p.
func (p Position) WithinRange(other Position, rng int32) bool {
	return abs32(p.X-other.X) <= rng && abs32(p.Y-other.Y) <= rng && abs32(p.Z-other.Z) <= rng
}

func (p Position) ManhattanDistance(other Position) int32 {
	return abs32(p.X-other.X) + abs32(p.Y-other.Y) + abs32(p.Z-other.Z)
}

type Zone struct {
	X int32 `json:"x"`
	Y int32 `json:"y"`
	Z int32 `json:"z"`
}

func floorDiv(a, b int32) int32 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
