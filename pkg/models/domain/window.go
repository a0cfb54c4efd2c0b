package domain

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the calendar-date form accepted on every boundary of the
// system: flags, profiles, and exported tables.
const DateLayout = "2006-01-02"

var (
	ErrInvalidDate  = errors.New("invalid date")
	ErrInvalidRange = errors.New("range end precedes start")
)

// Window is a calendar range for generation and analysis. Both bounds are
// inclusive: a window of one day still yields observations.
type Window struct {
	Start time.Time
	End   time.Time
}

func NewWindow(start, end time.Time) (Window, error) {
	if end.Before(start) {
		return Window{}, fmt.Errorf("%w: %s > %s",
			ErrInvalidRange, start.Format(DateLayout), end.Format(DateLayout))
	}
	return Window{Start: start, End: end}, nil
}

// ParseWindow builds a window from two YYYY-MM-DD bounds.
func ParseWindow(start, end string) (Window, error) {
	s, err := ParseDate(start)
	if err != nil {
		return Window{}, err
	}
	e, err := ParseDate(end)
	if err != nil {
		return Window{}, err
	}
	return NewWindow(s, e)
}

// ParseDate parses a YYYY-MM-DD string into a UTC midnight timestamp.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// Days counts the calendar days covered, both bounds included.
func (w Window) Days() int {
	return int(w.End.Sub(w.Start).Hours()/24) + 1
}

func (w Window) String() string {
	return fmt.Sprintf("%s to %s", w.Start.Format(DateLayout), w.End.Format(DateLayout))
}
