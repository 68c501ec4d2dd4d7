package charts

import "time"

// Granularity is the time-bucket size used to space chart periods and
// pick their label format.
type Granularity string

const (
	Day   Granularity = "day"
	Week  Granularity = "week"
	Month Granularity = "month"
	Year  Granularity = "year"
)

// ParseGranularity maps a query-string value onto a Granularity,
// defaulting to Day for anything it does not recognise.
func ParseGranularity(s string) Granularity {
	switch Granularity(s) {
	case Day, Week, Month, Year:
		return Granularity(s)
	default:
		return Day
	}
}

// Periods returns count dates ending now, oldest first.
func Periods(g Granularity, count int) []time.Time {
	return PeriodsEnding(time.Now(), g, count)
}

// PeriodsEnding returns count dates ending at end, oldest first, each
// one day, week, calendar month or calendar year apart.
func PeriodsEnding(end time.Time, g Granularity, count int) []time.Time {
	dates := make([]time.Time, 0, count)
	for i := count - 1; i >= 0; i-- {
		switch g {
		case Week:
			dates = append(dates, end.AddDate(0, 0, -7*i))
		case Month:
			dates = append(dates, end.AddDate(0, -i, 0))
		case Year:
			dates = append(dates, end.AddDate(-i, 0, 0))
		default:
			dates = append(dates, end.AddDate(0, 0, -i))
		}
	}
	return dates
}

// FormatDate renders a period label for the given granularity:
// day "16 Oct", week "Oct 16", month "Oct 2025", year "2025".
func FormatDate(date time.Time, g Granularity) string {
	switch g {
	case Day:
		return date.Format("2 Jan")
	case Week:
		return date.Format("Jan 2")
	case Month:
		return date.Format("Jan 2006")
	case Year:
		return date.Format("2006")
	default:
		return date.Format("2 Jan 2006")
	}
}
