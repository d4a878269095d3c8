package competitions

import (
	"github.com/fitcomp/fitcomp/internal/goals"
	"github.com/fitcomp/fitcomp/internal/timeline"
)

// GoalProgress is one activity goal with the user's equalizing factor
// applied and the points scored inside the goal's current period window.
type GoalProgress struct {
	goals.Scaled
	PointsCapped float64 `json:"points_capped"`
	PointsRaw    float64 `json:"points_raw"`
}

// GoalProgressFor scales every competition goal with the user's factors and
// sums the user's feed points that fall inside each goal's period window
// (today / this ISO week / this month / whole competition). Points are
// computed by the scoring backend; only the window bucketing happens here.
func GoalProgressFor(
	f *timeline.Formatter,
	stats *Stats,
	feed []FeedEntry,
	userID int,
	scalingKcal, scalingDistance float64,
) []GoalProgress {
	dayEpoch := f.StartOfDay().Unix()
	weekEpoch := f.StartOfWeek().Unix()
	monthEpoch := f.StartOfMonth().Unix()

	var mine []FeedEntry
	for _, entry := range feed {
		if entry.UserID == userID {
			mine = append(mine, entry)
		}
	}

	progress := make([]GoalProgress, 0, len(stats.Competition.Goals))
	for _, goal := range stats.Competition.Goals {
		var since int64
		switch goal.Period {
		case goals.PeriodDay:
			since = dayEpoch
		case goals.PeriodWeek:
			since = weekEpoch
		case goals.PeriodMonth:
			since = monthEpoch
		default: // whole competition
			since = 0
		}

		p := GoalProgress{
			Scaled: goals.Normalize(goal, scalingKcal, scalingDistance),
		}
		for _, entry := range mine {
			if entry.StartFmt.Epoch < since {
				continue
			}
			for _, detail := range entry.Details {
				if detail.GoalID != goal.ID {
					continue
				}
				p.PointsCapped += detail.PointsCapped
				p.PointsRaw += detail.PointsRaw
			}
		}
		progress = append(progress, p)
	}
	return progress
}
