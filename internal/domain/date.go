package domain

import (
	"fmt"
	"time"
)

// DateFormat is the ISO-8601 layout used to read and write dates
const DateFormat = "2006-01-02"

// Date is a calendar date with day granularity and no time-of-day.
// The zero value is "unset".
type Date struct {
	y int
	m time.Month
	d int
}

// NewDate returns a normalized Date (2025-01-32 becomes 2025-02-01)
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the calendar date of t in t's location
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{y: y, m: m, d: d}
}

// Today returns the current local date
func Today() Date { return DateOf(time.Now()) }

// ParseDate parses a date in DateFormat
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: invalid date %q, want format %q", ErrInvalidArgument, s, DateFormat)
	}
	return DateOf(t), nil
}

// Time returns midnight UTC of the date
func (d Date) Time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// IsZero reports whether the date is unset
func (d Date) IsZero() bool { return d == Date{} }

// Year returns the year of the date
func (d Date) Year() int { return d.y }

// Month returns the month of the date
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month
func (d Date) Day() int { return d.d }

// Before reports whether d is strictly before x
func (d Date) Before(x Date) bool { return d.Time().Before(x.Time()) }

// After reports whether d is strictly after x
func (d Date) After(x Date) bool { return d.Time().After(x.Time()) }

// AddDays returns the date n days after d (n may be negative)
func (d Date) AddDays(n int) Date { return NewDate(d.y, d.m, d.d+n) }

// AddYears returns the same day n years later, normalized like time.AddDate
func (d Date) AddYears(n int) Date { return NewDate(d.y+n, d.m, d.d) }

// DaysUntil returns the number of whole days from d to x, negative when x is before d
func (d Date) DaysUntil(x Date) int {
	return int(x.Time().Sub(d.Time()).Hours() / 24)
}

// String formats the date in DateFormat
func (d Date) String() string { return d.Time().Format(DateFormat) }

// Slash formats the date as dd/mm/yyyy, the layout used in reports
func (d Date) Slash() string { return d.Time().Format("02/01/2006") }

// MarshalText implements encoding.TextMarshaler
func (d Date) MarshalText() ([]byte, error) {
	if d.IsZero() {
		return []byte{}, nil
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Date) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// EffectiveDateResolver turns an optional requested date into the date an
// operation takes effect on. Investments use it wherever "now" matters so
// tests can pin the current date.
type EffectiveDateResolver interface {
	// Resolve returns requested when it is set, otherwise the resolver's current date
	Resolve(requested *Date) Date
}

// clockResolver resolves missing dates with a clock
type clockResolver struct {
	now func() time.Time
}

func (r clockResolver) Resolve(requested *Date) Date {
	if requested != nil && !requested.IsZero() {
		return *requested
	}
	return DateOf(r.now())
}

// SystemResolver returns a resolver backed by the wall clock
func SystemResolver() EffectiveDateResolver {
	return clockResolver{now: time.Now}
}

// FixedResolver returns a resolver whose current date is always today
func FixedResolver(today Date) EffectiveDateResolver {
	t := today.Time()
	return clockResolver{now: func() time.Time { return t }}
}

// datePtr returns a pointer to a copy of d
func datePtr(d Date) *Date { return &d }
