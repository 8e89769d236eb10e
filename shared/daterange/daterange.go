// Package daterange handles stay windows made of calendar dates.
//
// Every date is normalized to midnight UTC so that values read from DATE
// columns, parsed from requests and produced by Today compare equal.
// A Range is half-open: Start is the check-in date (first night) and End is
// the check-out date, which is not a night of the stay.
package daterange

import (
	"errors"
	"fmt"
	"hotel/shared/constant"
	"hotel/shared/timezone"
	"time"
)

const hoursPerDay = 24

var (
	ErrInvalidDate  = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidRange = errors.New("check-out date must be after check-in date")
)

type Range struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Truncate drops the clock of t, keeping its calendar date.
func Truncate(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today returns the current calendar date in the application timezone.
func Today() time.Time {
	return timezone.Today()
}

func Parse(value string) (time.Time, error) {
	t, err := time.Parse(constant.DateOnlyFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}

	return t, nil
}

func Format(t time.Time) string {
	return t.Format(constant.DateOnlyFormat)
}

func New(start, end time.Time) (Range, error) {
	r := Range{Start: Truncate(start), End: Truncate(end)}
	if !r.End.After(r.Start) {
		return Range{}, ErrInvalidRange
	}

	return r, nil
}

func ParseRange(start, end string) (Range, error) {
	s, err := Parse(start)
	if err != nil {
		return Range{}, err
	}

	e, err := Parse(end)
	if err != nil {
		return Range{}, err
	}

	return New(s, e)
}

// Nights is the number of whole days between check-in and check-out.
func (r Range) Nights() int {
	return DaysBetween(r.Start, r.End)
}

// Overlaps uses half-open semantics, so a stay ending on the day another
// starts does not overlap it.
func (r Range) Overlaps(other Range) bool {
	return r.Start.Before(other.End) && other.Start.Before(r.End)
}

// Covers reports whether other lies entirely inside r.
func (r Range) Covers(other Range) bool {
	return !other.Start.Before(r.Start) && !other.End.After(r.End)
}

// ContainsNight reports whether the night of day belongs to the stay.
func (r Range) ContainsNight(day time.Time) bool {
	day = Truncate(day)

	return !day.Before(r.Start) && day.Before(r.End)
}

// Nightly lists every night of the stay, check-out excluded.
func (r Range) Nightly() []time.Time {
	days := make([]time.Time, 0, r.Nights())
	for d := r.Start; d.Before(r.End); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}

	return days
}

func (r Range) String() string {
	return Format(r.Start) + "/" + Format(r.End)
}

// Inclusive lists every calendar date from start to end, both included.
func Inclusive(start, end time.Time) []time.Time {
	start, end = Truncate(start), Truncate(end)
	if end.Before(start) {
		return nil
	}

	days := make([]time.Time, 0, DaysBetween(start, end)+1)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}

	return days
}

// Night returns the one-night range starting on day.
func Night(day time.Time) Range {
	day = Truncate(day)

	return Range{Start: day, End: day.AddDate(0, 0, 1)}
}

func DaysBetween(start, end time.Time) int {
	return int(Truncate(end).Sub(Truncate(start)).Hours() / hoursPerDay)
}
