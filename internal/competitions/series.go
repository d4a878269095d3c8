package competitions

import (
	"math"

	"github.com/fitcomp/fitcomp/internal/timeline"
)

// WeekChart is the "This Week" bar chart: one value per day of the current
// Monday-anchored week for the user, their team and the competition
// average. Every slot holds a number (missing data is 0) so every bar
// renders.
type WeekChart struct {
	Labels  []string  `json:"labels"`
	Me      []float64 `json:"me"`
	MyTeam  []float64 `json:"my_team"`
	Average []float64 `json:"average"`
}

// TrendChart is the cumulative points line over the competition date range,
// seeded with a synthetic "Start" label at 0. A day with no reported data
// is a nil gap, which is not the same as a reported zero.
type TrendChart struct {
	Labels  []string   `json:"labels"`
	Me      []*float64 `json:"me"`
	MyTeam  []*float64 `json:"my_team"`
	Average []*float64 `json:"average"`
}

// BuildWeekChart folds the stats time series of one competition into the
// week chart. Team and competition-wide values are per-active-member
// averages; member counts are floored at 1 so an empty team can never
// divide to NaN.
func BuildWeekChart(f *timeline.Formatter, stats *Stats, userID, teamID int) *WeekChart {
	chart := &WeekChart{}
	teamCount := atLeastOne(stats.Teams[teamID].ActiveMemberCount)
	allCount := atLeastOne(stats.Competition.ActiveMemberCount)

	for _, day := range f.WeekDays() {
		chart.Labels = append(chart.Labels, day.Time.Format("Mon"))
		chart.Me = append(chart.Me, round1(pointTotal(stats.Timeseries.User[userID], day.DaysAgo)))
		chart.MyTeam = append(chart.MyTeam, round1(pointTotal(stats.Timeseries.Team[teamID], day.DaysAgo)/float64(teamCount)))
		chart.Average = append(chart.Average, round1(pointTotal(stats.Timeseries.All, day.DaysAgo)/float64(allCount)))
	}
	return chart
}

// BuildTrendChart folds the same time series into the cumulative trend
// line, over the competition window clipped at today.
func BuildTrendChart(f *timeline.Formatter, stats *Stats, userID, teamID int) *TrendChart {
	chart := &TrendChart{
		Labels:  []string{"Start"},
		Me:      []*float64{ptr(0)},
		MyTeam:  []*float64{ptr(0)},
		Average: []*float64{ptr(0)},
	}

	teamCount := float64(atLeastOne(stats.Teams[teamID].ActiveMemberCount))
	allCount := float64(atLeastOne(stats.Competition.ActiveMemberCount))

	var prevMe, prevTeam, prevAll float64
	for _, day := range f.DateRange(stats.Competition.StartDate.Time(), stats.Competition.EndDate.Time()) {
		chart.Labels = append(chart.Labels, day.Time.Format("Mon, Jan 2"))

		chart.Me, prevMe = appendCumulative(chart.Me, prevMe, stats.Timeseries.User[userID], day.DaysAgo, 1)
		chart.MyTeam, prevTeam = appendCumulative(chart.MyTeam, prevTeam, stats.Timeseries.Team[teamID], day.DaysAgo, teamCount)
		chart.Average, prevAll = appendCumulative(chart.Average, prevAll, stats.Timeseries.All, day.DaysAgo, allCount)
	}
	return chart
}

// appendCumulative adds the next trend point: the running sum when the day
// has data, a nil gap when it does not. The running sum only advances on
// reported days, so a gap never repeats the previous value as a flat line.
func appendCumulative(series []*float64, prev float64, s Series, daysAgo int, divisor float64) ([]*float64, float64) {
	p, ok := s[daysAgo]
	if !ok {
		return append(series, nil), prev
	}
	value := p.Total/divisor + prev
	return append(series, &value), value
}

func pointTotal(s Series, daysAgo int) float64 {
	return s[daysAgo].Total
}

func atLeastOne(count int) int {
	if count < 1 {
		return 1
	}
	return count
}

func round1(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return math.Round(v*10) / 10
}

func ptr(v float64) *float64 {
	return &v
}
