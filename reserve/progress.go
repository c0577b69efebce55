package reserve

import (
	"time"

	"github.com/rs/xid"
)

// Progress tracks how many chunks of a reservation run have been committed.
type Progress struct {
	ID        string
	Name      string
	StartTime time.Time
	Total     uint64
	Finished  uint64
}

// NewProgress creates a progress tracker for a run of total chunks.
func NewProgress(name string, total uint64) *Progress {
	return &Progress{
		ID:        xid.New().String(),
		Name:      name,
		StartTime: time.Now(),
		Total:     total,
	}
}

// IncrementFinished adds a certain amount to the finished chunks.
func (p *Progress) IncrementFinished(amount uint64) {
	p.Finished += amount
}

// Snapshot returns the finished and total chunk counts.
func (p *Progress) Snapshot() (finished, total uint64) {
	return p.Finished, p.Total
}
