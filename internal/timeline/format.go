package timeline

import (
	"time"
)

// Formatted is the canonical local-time view of a workout timestamp,
// attached to every record coming from the backend before any aggregation
// happens. DaysAgo counts back from today (today = 0, yesterday = 1, future
// dates negative). WeeksAgo is anchored at the most recent Sunday strictly
// before today: the week currently in progress is 0, the most recently
// completed week is 1.
type Formatted struct {
	Epoch        int64  `json:"epoch"`
	DateISO      string `json:"date_iso"`
	DateReadable string `json:"date_readable"`
	Time24h      string `json:"time_24h"`
	DaysAgo      int    `json:"days_ago"`
	WeeksAgo     int    `json:"weeks_ago"`
}

// Formatter does all date math in one explicit location, with an injectable
// clock so that bucketing is deterministic in tests. The zero value is not
// usable, always construct via NewFormatter or NewFormatterAt.
type Formatter struct {
	loc *time.Location
	now func() time.Time
}

func NewFormatter(loc *time.Location) *Formatter {
	return NewFormatterAt(loc, time.Now)
}

// NewFormatterAt pins the formatter clock. Used in tests and anywhere
// "today" must not move between two calls.
func NewFormatterAt(loc *time.Location, now func() time.Time) *Formatter {
	if loc == nil {
		loc = time.Local
	}
	return &Formatter{
		loc: loc,
		now: now,
	}
}

func (f *Formatter) Location() *time.Location {
	return f.loc
}

// Normalize returns the instant a record is attributed to, in the formatter
// location. Daily-total records ("Steps") are synced at arbitrary times and
// carry no meaningful time of day: they get pinned to 23:59:00 of the day
// they belong to, where a sync before noon belongs to the previous day.
func (f *Formatter) Normalize(t time.Time, endOfDay bool) time.Time {
	t = t.In(f.loc)
	if !endOfDay {
		return t
	}
	if t.Hour() < 12 {
		t = t.AddDate(0, 0, -1)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 0, 0, f.loc)
}

func (f *Formatter) Format(t time.Time, endOfDay bool) Formatted {
	t = f.Normalize(t, endOfDay)
	now := f.now().In(f.loc)

	daysAgo := daysBetween(t, now)

	// most recent Sunday strictly before today
	back := int(now.Weekday())
	if back == 0 {
		back = 7
	}
	prevSunday := now.AddDate(0, 0, -back)
	weeksAgo := floorDiv(daysBetween(t, prevSunday), 7) + 1

	return Formatted{
		Epoch:        t.Unix(),
		DateISO:      t.Format("2006-01-02"),
		DateReadable: t.Format("Mon, Jan 2"),
		Time24h:      t.Format("15:04"),
		DaysAgo:      daysAgo,
		WeeksAgo:     weeksAgo,
	}
}

// FormatPtr is the nil-safe variant: a missing timestamp passes through as
// nil instead of producing a bogus bucket or a panic.
func (f *Formatter) FormatPtr(t *time.Time, endOfDay bool) *Formatted {
	if t == nil {
		return nil
	}
	fmtd := f.Format(*t, endOfDay)
	return &fmtd
}

// daysBetween returns the whole calendar-day difference ref - t. Both sides
// are collapsed to their civil date first, so DST shifts cannot produce an
// off-by-one.
func daysBetween(t, ref time.Time) int {
	a := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
