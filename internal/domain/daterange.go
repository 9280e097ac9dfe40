package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidDate дата не в формате YYYY-MM-DD
	ErrInvalidDate = errors.New("domain: invalid date, expected YYYY-MM-DD")

	// ErrInvalidDateRange дата заезда не раньше даты выезда
	ErrInvalidDateRange = errors.New("domain: checkIn must be before checkOut")
)

// DateRange half-open stay interval [CheckIn, CheckOut) of UTC calendar days.
// The check-out day itself is not occupied.
type DateRange struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// ParseDate parses YYYY-MM-DD as UTC midnight
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateFormat, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// NormalizeDate drops the time of day, keeping the calendar date as UTC midnight
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NewDateRange builds a range and checks checkIn < checkOut
func NewDateRange(checkIn, checkOut time.Time) (DateRange, error) {
	r := DateRange{
		CheckIn:  NormalizeDate(checkIn),
		CheckOut: NormalizeDate(checkOut),
	}
	if !r.CheckIn.Before(r.CheckOut) {
		return DateRange{}, fmt.Errorf("%w: %s", ErrInvalidDateRange, r)
	}
	return r, nil
}

// ParseDateRange parses both dates and validates the range
func ParseDateRange(checkIn, checkOut string) (DateRange, error) {
	in, err := ParseDate(checkIn)
	if err != nil {
		return DateRange{}, err
	}
	out, err := ParseDate(checkOut)
	if err != nil {
		return DateRange{}, err
	}
	return NewDateRange(in, out)
}

// Overlaps reports whether two stays share at least one night:
// NOT (r.CheckOut <= o.CheckIn OR r.CheckIn >= o.CheckOut)
func (r DateRange) Overlaps(o DateRange) bool {
	return r.CheckOut.After(o.CheckIn) && r.CheckIn.Before(o.CheckOut)
}

// Nights returns the number of occupied nights
func (r DateRange) Nights() int {
	return int(r.CheckOut.Sub(r.CheckIn).Hours() / 24)
}

func (r DateRange) String() string {
	return r.CheckIn.Format(DateFormat) + ".." + r.CheckOut.Format(DateFormat)
}
