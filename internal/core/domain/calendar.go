package domain

import "fmt"

const (
	// DaysPerYear is the length of an in-universe campaign year.
	DaysPerYear = 365
	// DaysPerMonth is the length of one of the 13 in-universe months.
	// The 365th day is folded into the 13th month.
	DaysPerMonth = 28
	// MonthsPerYear is the number of in-universe months.
	MonthsPerYear = 13

	// ordinalYearFactor keeps year*1000+day orderable since day <= 365 < 1000.
	ordinalYearFactor = 1000
)

// SessionDate is a position on the campaign calendar.
type SessionDate struct {
	Day  int `json:"day"`  // 1..365
	Year int `json:"year"` // campaign epoch year
}

// NewSessionDate builds a SessionDate and validates the day range.
func NewSessionDate(day, year int) (SessionDate, error) {
	d := SessionDate{Day: day, Year: year}
	if err := d.Validate(); err != nil {
		return SessionDate{}, err
	}
	return d, nil
}

// Validate checks that the day lies within the in-universe year.
func (d SessionDate) Validate() error {
	if d.Day < 1 || d.Day > DaysPerYear {
		return fmt.Errorf("session day %d out of range 1..%d", d.Day, DaysPerYear)
	}
	return nil
}

// Ordinal returns year*1000+day, the single orderable integer used for every
// chronological comparison.
func (d SessionDate) Ordinal() int {
	return d.Year*ordinalYearFactor + d.Day
}

// Compare returns -1, 0 or 1 when d is before, equal to or after other.
func (d SessionDate) Compare(other SessionDate) int {
	a, b := d.Ordinal(), other.Ordinal()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Before reports whether d is strictly before other.
func (d SessionDate) Before(other SessionDate) bool { return d.Compare(other) < 0 }

// After reports whether d is strictly after other.
func (d SessionDate) After(other SessionDate) bool { return d.Compare(other) > 0 }

// Within reports whether d lies in the closed range [start, end].
func (d SessionDate) Within(start, end SessionDate) bool {
	return d.Compare(start) >= 0 && d.Compare(end) <= 0
}

// Month returns the in-universe month (1..13).
func (d SessionDate) Month() int {
	m := (d.Day-1)/DaysPerMonth + 1
	if m > MonthsPerYear {
		return MonthsPerYear
	}
	return m
}

// AddDays moves the date by n days, rolling over year boundaries.
func (d SessionDate) AddDays(n int) SessionDate {
	abs := d.Year*DaysPerYear + (d.Day - 1) + n
	year := abs / DaysPerYear
	day := abs%DaysPerYear + 1
	if abs < 0 && abs%DaysPerYear != 0 {
		year--
		day = abs%DaysPerYear + DaysPerYear + 1
	}
	return SessionDate{Day: day, Year: year}
}

// AddMonths moves the date by n in-universe months of DaysPerMonth days.
func (d SessionDate) AddMonths(n int) SessionDate {
	return d.AddDays(n * DaysPerMonth)
}

func (d SessionDate) String() string {
	return fmt.Sprintf("%03d/%d", d.Day, d.Year)
}

// OptionalDate builds a *SessionDate from nullable day/year columns.
// Both parts must be present for the date to exist.
func OptionalDate(day, year *int) *SessionDate {
	if day == nil || year == nil {
		return nil
	}
	return &SessionDate{Day: *day, Year: *year}
}
