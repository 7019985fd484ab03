package pages

import (
	"iter"
	"time"

	"github.com/atomicstack/multipage-hmi/hmi"
)

// Clock shows the current wall clock time and refreshes on every update
// tick. The time source is injectable for tests.
type Clock struct {
	Basic
	now func() time.Time
}

// NewClock returns a clock page reading from now, or time.Now when nil.
func NewClock(title string, now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{Basic: NewBasic(title, nil), now: now}
}

func (p *Clock) Update(iter.Seq[string]) (hmi.Navigation, error) {
	return hmi.NavUpdate, nil
}

// Content returns the time as HH:MM:SS.
func (p *Clock) Content() string {
	return p.now().Format("15:04:05")
}
