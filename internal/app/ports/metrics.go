package ports

import "harimu/internal/domain/sim"

type TickMetrics interface {
	RecordTick()
	RecordAction(action sim.ActionType)
	RecordRejection(code sim.RejectionCode)
}
