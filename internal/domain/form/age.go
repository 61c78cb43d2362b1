package form

import (
	"strconv"
	"strings"
	"time"
)

// AgeParts is a calendar difference broken into years, months and days.
type AgeParts struct {
	Years  int
	Months int
	Days   int
}

// ParseBirthDate accepts the two date shapes the remote service emits:
// "YYYY/MM/DD" and ISO "YYYY-MM-DD" (with or without a time component).
func ParseBirthDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if strings.Contains(s, "/") {
		parts := strings.Split(s, "/")
		if len(parts) != 3 {
			return time.Time{}, false
		}
		year, err1 := strconv.Atoi(parts[0])
		month, err2 := strconv.Atoi(parts[1])
		day, err3 := strconv.Atoi(parts[2])
		if err1 != nil || err2 != nil || err3 != nil {
			return time.Time{}, false
		}
		return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
	}
	if strings.Contains(s, "-") {
		if t, err := time.Parse("2006-01-02", s); err == nil {
			return t, true
		}
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// CalculateAge computes the calendar difference between a birth date and now.
// A negative day difference borrows from the month using the day count of the
// month preceding now; a negative month difference then borrows a year.
func CalculateAge(birthDate string, now time.Time) (AgeParts, bool) {
	born, ok := ParseBirthDate(birthDate)
	if !ok {
		return AgeParts{}, false
	}

	years := now.Year() - born.Year()
	months := int(now.Month()) - int(born.Month())
	days := now.Day() - born.Day()

	if days < 0 {
		months--
		// Day zero normalizes to the last day of the previous month.
		days += time.Date(now.Year(), now.Month(), 0, 0, 0, 0, 0, time.UTC).Day()
	}
	if months < 0 {
		years--
		months += 12
	}

	return AgeParts{Years: years, Months: months, Days: days}, true
}

// Largest reports the age as (value, unit) using the largest non-zero unit.
// An all-zero difference reports false.
func (p AgeParts) Largest() (int, string, bool) {
	switch {
	case p.Years > 0:
		return p.Years, AgeUnitYears, true
	case p.Months > 0:
		return p.Months, AgeUnitMonths, true
	case p.Days > 0:
		return p.Days, AgeUnitDays, true
	}
	return 0, "", false
}
