package workouts

import (
	"time"

	"github.com/fitcomp/fitcomp/internal/timeline"
)

// SportSteps is the sentinel sport type for daily step totals. A Steps
// record is a per-day aggregate, not an instant: it carries a step count
// instead of a duration and is excluded from every workout-based statistic.
const SportSteps = "Steps"

// Workout is one activity record as synced from the backend. Optional wire
// fields stay pointers so that "absent" never collapses into zero.
type Workout struct {
	ID              int       `json:"id"`
	UserID          int       `json:"user"`
	SportType       string    `json:"sport_type"`
	StartDatetime   time.Time `json:"start_datetime"`
	DurationSeconds float64   `json:"duration_seconds"`
	Steps           *float64  `json:"steps"`
	Kcal            *float64  `json:"kcal"`
	DistanceKm      *float64  `json:"distance"`
	StravaID        *int64    `json:"strava_id"`
}

func (w Workout) IsSteps() bool {
	return w.SportType == SportSteps
}

// Annotated is the derived view handed to rendering: the original record
// plus its computed time buckets. Identity fields are never replaced.
type Annotated struct {
	Workout
	StartFmt timeline.Formatted `json:"start_datetime_fmt"`
}

// Annotate attaches the canonical time view to every record. Steps records
// get the end-of-day attribution, everything else keeps its instant.
func Annotate(f *timeline.Formatter, ws []Workout) []Annotated {
	annotated := make([]Annotated, 0, len(ws))
	for _, w := range ws {
		annotated = append(annotated, Annotated{
			Workout:  w,
			StartFmt: f.Format(w.StartDatetime, w.IsSteps()),
		})
	}
	return annotated
}
