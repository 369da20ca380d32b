package export

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"harimu/internal/app/ports"

	"github.com/klauspost/compress/zstd"
)

// Archive appends one JSON line per tick to an hour-rotated
// zstd-compressed file. It implements ports.TickPublisher; archive
// failures are logged, never propagated into the tick loop.
type Archive struct {
	mu   sync.Mutex
	dir  string
	hour time.Time
	file *os.File
	enc  *zstd.Encoder

	now func() time.Time
}

func NewArchive(dir string) (*Archive, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create archive dir: %w", err)
	}
	return &Archive{dir: dir, now: time.Now}, nil
}

func (a *Archive) PublishTick(broadcast ports.TickBroadcast) {
	if err := a.WriteTick(broadcast); err != nil {
		log.Printf("archive tick %d: %v", broadcast.Tick, err)
	}
}

func (a *Archive) WriteTick(broadcast ports.TickBroadcast) error {
	line, err := json.Marshal(broadcast)
	if err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.rotateLocked(); err != nil {
		return err
	}
	if _, err := a.enc.Write(append(line, '\n')); err != nil {
		return err
	}
	return nil
}

func (a *Archive) rotateLocked() error {
	hour := a.now().UTC().Truncate(time.Hour)
	if a.enc != nil && hour.Equal(a.hour) {
		return nil
	}
	if err := a.closeLocked(); err != nil {
		return err
	}

	name := filepath.Join(a.dir, fmt.Sprintf("ticks-%s.jsonl.zst", hour.Format("2006010215")))
	file, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open archive file: %w", err)
	}
	enc, err := zstd.NewWriter(file)
	if err != nil {
		file.Close()
		return fmt.Errorf("zstd writer: %w", err)
	}

	a.hour = hour
	a.file = file
	a.enc = enc
	return nil
}

func (a *Archive) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.closeLocked()
}

func (a *Archive) closeLocked() error {
	if a.enc == nil {
		return nil
	}
	encErr := a.enc.Close()
	fileErr := a.file.Close()
	a.enc = nil
	a.file = nil
	if encErr != nil {
		return encErr
	}
	return fileErr
}

// Fanout forwards each tick to every publisher in order.
type Fanout []ports.TickPublisher

func (f Fanout) PublishTick(broadcast ports.TickBroadcast) {
	for _, p := range f {
		p.PublishTick(broadcast)
	}
}
