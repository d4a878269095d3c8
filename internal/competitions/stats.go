package competitions

import (
	"strings"
	"time"

	"github.com/fitcomp/fitcomp/internal/goals"
	"github.com/fitcomp/fitcomp/internal/timeline"
)

// ISODate unmarshals the backend's bare "2006-01-02" date fields.
type ISODate time.Time

func (d *ISODate) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*d = ISODate(time.Time{})
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return err
	}
	*d = ISODate(t)
	return nil
}

func (d ISODate) MarshalJSON() ([]byte, error) {
	t := time.Time(d)
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.Format("2006-01-02") + `"`), nil
}

func (d ISODate) Time() time.Time {
	return time.Time(d)
}

// Point is one day's total for a single scope of the stats time series.
type Point struct {
	Total float64 `json:"total"`
}

// Series maps day offsets (today = 0, further back positive) to totals.
// Days without reported data are simply absent.
type Series map[int]Point

type Timeseries struct {
	User map[int]Series `json:"user"`
	Team map[int]Series `json:"team"`
	All  Series         `json:"all"`
}

type UserStanding struct {
	Rank   *int    `json:"rank"`
	Points float64 `json:"points"`
}

type TeamStanding struct {
	Rank              *int    `json:"rank"`
	Points            float64 `json:"points"`
	ActiveMemberCount int     `json:"active_member_count"`
}

type CompetitionInfo struct {
	ID                int          `json:"id"`
	Name              string       `json:"name"`
	StartDate         ISODate      `json:"start_date"`
	EndDate           ISODate      `json:"end_date"`
	StartDateCount    int          `json:"start_date_count"`
	HasTeams          bool         `json:"has_teams"`
	ActiveMemberCount int          `json:"active_member_count"`
	Goals             []goals.Goal `json:"goals"`
}

// Stats is the per-competition stats payload fetched from the backend:
// standings, goal definitions and the day-bucketed points time series.
type Stats struct {
	Competition CompetitionInfo      `json:"competition"`
	Users       map[int]UserStanding `json:"users"`
	Teams       map[int]TeamStanding `json:"teams"`
	Timeseries  Timeseries           `json:"timeseries"`
}

// FeedEntry is one scored activity in the competition feed, with the
// per-goal points breakdown attached by the scoring backend.
type FeedEntry struct {
	UserID       int                `json:"workout__user"`
	Username     string             `json:"workout__user__username"`
	SportType    string             `json:"workout__sport_type"`
	Steps        *float64           `json:"workout__steps"`
	StravaID     *int64             `json:"workout__strava_id"`
	Start        time.Time          `json:"workout__start_datetime"`
	StartFmt     timeline.Formatted `json:"workout__start_datetime_fmt"`
	PointsCapped float64            `json:"points_capped"`
	PointsRaw    float64            `json:"points_raw"`
	Details      []PointsDetail     `json:"details"`
}

type PointsDetail struct {
	GoalID       int     `json:"goal"`
	GoalName     string  `json:"goal__name"`
	PointsCapped float64 `json:"points_capped"`
	PointsRaw    float64 `json:"points_raw"`
}

// AnnotateFeed stamps every feed entry with its local-time bucketing.
// Steps entries are daily totals and get the end-of-day attribution rule.
func AnnotateFeed(f *timeline.Formatter, feed []FeedEntry) []FeedEntry {
	annotated := make([]FeedEntry, len(feed))
	for i, entry := range feed {
		entry.StartFmt = f.Format(entry.Start, entry.SportType == "Steps")
		annotated[i] = entry
	}
	return annotated
}
