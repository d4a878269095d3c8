package timeline

import "time"

// Day is a single slot of a calendar or chart window.
type Day struct {
	Date     string    `json:"date"` // ISO calendar date
	DaysAgo  int       `json:"days_ago"`
	WeeksAgo int       `json:"weeks_ago"`
	DayNum   int       `json:"day"`
	Month    int       `json:"month"`
	Year     int       `json:"year"`
	MonthStr string    `json:"month_str"` // Jan, Feb, ...
	Time     time.Time `json:"-"`
}

func (f *Formatter) day(t time.Time) Day {
	fmtd := f.Format(t, false)
	return Day{
		Date:     fmtd.DateISO,
		DaysAgo:  fmtd.DaysAgo,
		WeeksAgo: fmtd.WeeksAgo,
		DayNum:   t.Day(),
		Month:    int(t.Month()),
		Year:     t.Year(),
		MonthStr: t.Format("Jan"),
		Time:     t,
	}
}

// thisMonday returns the Monday of the week that contains now.
func thisMonday(now time.Time) time.Time {
	diff := 1 - int(now.Weekday())
	if now.Weekday() == time.Sunday {
		diff = -6
	}
	return now.AddDate(0, 0, diff)
}

// CalendarDays returns the dashboard calendar window: four completed weeks
// plus the current week, or five completed weeks when today is a Monday.
// Days run from the window's Monday through this week's Sunday, so the
// result always chunks evenly into rows of seven.
func (f *Formatter) CalendarDays() []Day {
	now := f.now().In(f.loc)
	monday := thisMonday(now)

	backDays := 28
	if now.Weekday() == time.Monday {
		backDays = 35
	}
	start := monday.AddDate(0, 0, -backDays)
	end := monday.AddDate(0, 0, 6)

	var days []Day
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, f.day(d))
	}
	return days
}

// WeekDays returns the current Monday-anchored week, always seven days,
// including days still in the future.
func (f *Formatter) WeekDays() []Day {
	now := f.now().In(f.loc)
	monday := thisMonday(now)

	days := make([]Day, 0, 7)
	for i := 0; i < 7; i++ {
		days = append(days, f.day(monday.AddDate(0, 0, i)))
	}
	return days
}

// DateRange returns one Day per date from start through end, clipped so the
// range never runs past today. A zero end means "until today".
func (f *Formatter) DateRange(start, end time.Time) []Day {
	now := f.now().In(f.loc)
	start = start.In(f.loc)
	if end.IsZero() || end.After(now) {
		end = now
	} else {
		end = end.In(f.loc)
	}

	var days []Day
	for d := start; !civilAfter(d, end); d = d.AddDate(0, 0, 1) {
		days = append(days, f.day(d))
	}
	return days
}

func civilAfter(a, b time.Time) bool {
	return daysBetween(a, b) < 0
}

// StartOfDay returns today at midnight in the formatter location.
func (f *Formatter) StartOfDay() time.Time {
	now := f.now().In(f.loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, f.loc)
}

// StartOfWeek returns the most recent Monday at midnight.
func (f *Formatter) StartOfWeek() time.Time {
	m := thisMonday(f.now().In(f.loc))
	return time.Date(m.Year(), m.Month(), m.Day(), 0, 0, 0, 0, f.loc)
}

// StartOfMonth returns the first of the current month at midnight.
func (f *Formatter) StartOfMonth() time.Time {
	now := f.now().In(f.loc)
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, f.loc)
}
