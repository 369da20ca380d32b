package inmemory

import (
	"sync"

	"harimu/internal/domain/sim"
)

type Snapshot struct {
	Ticks         uint64            `json:"ticks"`
	ActionTotal   uint64            `json:"action_total"`
	ActionSuccess uint64            `json:"action_success"`
	Rejections    uint64            `json:"rejections"`
	ByAction      map[string]uint64 `json:"by_action"`
	ByRejection   map[string]uint64 `json:"by_rejection"`
}

type Recorder struct {
	mu          sync.Mutex
	ticks       uint64
	byAction    map[string]uint64
	byRejection map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byAction:    map[string]uint64{},
		byRejection: map[string]uint64{},
	}
}

func (r *Recorder) RecordTick() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ticks++
}

func (r *Recorder) RecordAction(action sim.ActionType) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byAction[string(action)]++
}

func (r *Recorder) RecordRejection(code sim.RejectionCode) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byRejection[string(code)]++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		Ticks:       r.ticks,
		ByAction:    make(map[string]uint64, len(r.byAction)),
		ByRejection: make(map[string]uint64, len(r.byRejection)),
	}
	for k, v := range r.byAction {
		out.ByAction[k] = v
		out.ActionSuccess += v
	}
	for k, v := range r.byRejection {
		out.ByRejection[k] = v
		out.Rejections += v
	}
	out.ActionTotal = out.ActionSuccess + out.Rejections
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
