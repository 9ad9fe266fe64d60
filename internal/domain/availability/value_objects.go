package availability

import (
	"time"

	"office-hours/internal/pkg/errs"
)

// TimeRange is a half-open interval [start, end).
type TimeRange struct {
	start time.Time
	end   time.Time
}

func NewTimeRange(start, end time.Time) (TimeRange, error) {
	if !end.After(start) {
		return TimeRange{}, errs.Mark(errs.New("end time must be after start time"), errs.ErrInvalidTimeRange)
	}
	return TimeRange{start: start, end: end}, nil
}

// NewFutureTimeRange additionally requires start to be strictly after now.
func NewFutureTimeRange(start, end, now time.Time) (TimeRange, error) {
	if !start.After(now) {
		return TimeRange{}, errs.Mark(errs.New("start time must be in the future"), errs.ErrInvalidTimeRange)
	}
	return NewTimeRange(start, end)
}

func (r TimeRange) Start() time.Time { return r.start }
func (r TimeRange) End() time.Time   { return r.end }

func (r TimeRange) Duration() time.Duration {
	return r.end.Sub(r.start)
}

// Overlaps is symmetric and also catches duplicates and containment.
// Touching ranges ([9,10) and [10,11)) do not overlap.
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.start.Before(other.end) && r.end.After(other.start)
}

// ReconstructTimeRange skips validation; stored rows were validated on write.
func ReconstructTimeRange(start, end time.Time) TimeRange {
	return TimeRange{start: start, end: end}
}
