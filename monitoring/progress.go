package monitoring

import (
	"sync"
	"time"
)

// A ProgressBar tracks how far a long task has come.
type ProgressBar struct {
	lock       sync.Mutex
	ID         string
	Name       string
	StartTime  time.Time
	Total      uint64
	Finished   uint64
	InProgress uint64
}

// ProgressBarStatus is a snapshot of a ProgressBar.
type ProgressBarStatus struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	StartTime  time.Time `json:"start_time"`
	Total      uint64    `json:"total"`
	Finished   uint64    `json:"finished"`
	InProgress uint64    `json:"in_progress"`
}

// Status returns a snapshot of the bar.
func (b *ProgressBar) Status() ProgressBarStatus {
	b.lock.Lock()
	defer b.lock.Unlock()

	return ProgressBarStatus{
		ID:         b.ID,
		Name:       b.Name,
		StartTime:  b.StartTime,
		Total:      b.Total,
		Finished:   b.Finished,
		InProgress: b.InProgress,
	}
}

// IncrementFinished add a certain amount to finished element.
func (b *ProgressBar) IncrementFinished(amount uint64) {
	b.lock.Lock()
	defer b.lock.Unlock()

	b.Finished += amount
}

// SetFinished moves the bar to an absolute position, capped at Total.
func (b *ProgressBar) SetFinished(finished uint64) {
	b.lock.Lock()
	defer b.lock.Unlock()

	if finished > b.Total {
		finished = b.Total
	}

	b.Finished = finished
}
