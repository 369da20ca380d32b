package observe

import "harimu/internal/domain/sim"

type Response struct {
	Snapshot sim.WorldSnapshot `json:"snapshot"`
}
