package dashboard

import (
	"context"
	"math"
	"sort"

	"github.com/fitcomp/fitcomp/internal/telemetry/tracing"
	"github.com/fitcomp/fitcomp/internal/timeline"
	"github.com/fitcomp/fitcomp/internal/workouts"

	"go.opentelemetry.io/otel/attribute"
)

// RecommendedWeeklySeconds is the WHO weekly activity recommendation
// (150 minutes). Weeks at or above it get the distinct double-check marker.
const RecommendedWeeklySeconds = 9000

//go:generate mockgen -source=$GOFILE -destination=analyzer_mocks_test.go -package=dashboard_test

type workoutsRepo interface {
	ListForUser(ctx context.Context, userID int) ([]workouts.Workout, error)
}

// Analyzer folds the synced workout set of a user into the display-ready
// dashboard aggregates. All computations are single synchronous passes over
// an immutable snapshot; running one twice on the same records yields
// identical output.
type Analyzer struct {
	repo      workoutsRepo
	formatter *timeline.Formatter
}

func NewAnalyzer(repo workoutsRepo, formatter *timeline.Formatter) *Analyzer {
	return &Analyzer{
		repo:      repo,
		formatter: formatter,
	}
}

// Summary holds the trailing 30-day activity statistics. Steps records are
// excluded throughout.
type Summary struct {
	ActiveDays  int     `json:"active_days"`
	Workouts    int     `json:"workouts"`
	DistanceKm  float64 `json:"distance_km"`
	Kcal        int     `json:"kcal"`
	TimeSeconds int     `json:"time_seconds"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
}

func (a *Analyzer) ThirtyDaySummary(ctx context.Context, userID int) (_ *Summary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.dashboard.thirtyDaySummary")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	recent, err := a.recentWorkouts(ctx, userID, 30)
	if err != nil {
		return nil, err
	}

	summary := &Summary{}
	activeDays := make(map[string]struct{})
	var distance, kcal, seconds float64
	for _, w := range recent {
		activeDays[w.StartFmt.DateISO] = struct{}{}
		if w.DistanceKm != nil {
			distance += *w.DistanceKm
		}
		if w.Kcal != nil {
			kcal += *w.Kcal
		}
		seconds += w.DurationSeconds
	}

	summary.ActiveDays = len(activeDays)
	summary.Workouts = len(recent)
	summary.DistanceKm = math.Round(distance*10) / 10
	summary.Kcal = int(math.Round(kcal))
	summary.TimeSeconds = int(math.Round(seconds))

	// window bounds for the "30 Day Activity - Aug 3 - Sep 1" header
	now := a.formatter.StartOfDay()
	summary.StartDate = now.AddDate(0, 0, -29).Format("Jan 2")
	summary.EndDate = now.Format("Jan 2")

	return summary, nil
}

// PersonalGoals are the optional user-level 7-day rolling targets. A nil
// target means the goal is not configured and is omitted from the output
// entirely, it is never rendered as 0/0.
type PersonalGoals struct {
	ActiveDays     *float64
	WorkoutMinutes *float64
	DistanceKm     *float64
}

type GoalProgress struct {
	Name   string  `json:"name"`
	Value  float64 `json:"value"`
	Target float64 `json:"target"`
	Unit   string  `json:"unit"`
}

func (a *Analyzer) WeeklyGoalProgress(ctx context.Context, userID int, personal PersonalGoals) (_ []GoalProgress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.dashboard.weeklyGoalProgress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	recent, err := a.recentWorkouts(ctx, userID, 7)
	if err != nil {
		return nil, err
	}

	activeDays := make(map[string]struct{})
	var seconds, distance float64
	for _, w := range recent {
		activeDays[w.StartFmt.DateISO] = struct{}{}
		seconds += w.DurationSeconds
		if w.DistanceKm != nil {
			distance += *w.DistanceKm
		}
	}

	progress := make([]GoalProgress, 0, 3)
	if personal.ActiveDays != nil {
		progress = append(progress, GoalProgress{
			Name:   "Active Days",
			Value:  float64(len(activeDays)),
			Target: *personal.ActiveDays,
		})
	}
	if personal.WorkoutMinutes != nil {
		progress = append(progress, GoalProgress{
			Name:   "Time Goal",
			Value:  math.Round(seconds / 60),
			Target: *personal.WorkoutMinutes,
			Unit:   "min",
		})
	}
	if personal.DistanceKm != nil {
		progress = append(progress, GoalProgress{
			Name:   "Distance",
			Value:  math.Round(distance),
			Target: *personal.DistanceKm,
			Unit:   "km",
		})
	}
	return progress, nil
}

type WeekMark string

const (
	MarkNone        WeekMark = ""
	MarkCheck       WeekMark = "check"
	MarkDoubleCheck WeekMark = "double-check"
)

type CalendarDay struct {
	timeline.Day
	HasWorkout bool `json:"has_workout"`
}

// Calendar is the 4-5 week dashboard grid plus the weekly streak state.
// WeeklySeconds and Marks are keyed by WeeksAgo (0 = current week).
type Calendar struct {
	Weeks         [][]CalendarDay  `json:"weeks"`
	WeeklySeconds map[int]float64  `json:"weekly_seconds"`
	Marks         map[int]WeekMark `json:"marks"`
	Streak        int              `json:"streak"`
}

func (a *Analyzer) Calendar(ctx context.Context, userID int) (_ *Calendar, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.dashboard.calendar")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	all, err := a.repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	annotated := make([]workouts.Annotated, 0, len(all))
	for _, w := range workouts.Annotate(a.formatter, all) {
		if !w.IsSteps() {
			annotated = append(annotated, w)
		}
	}

	daysWithWorkout := make(map[int]struct{})
	weekly := make(map[int]float64)
	for _, w := range annotated {
		daysWithWorkout[w.StartFmt.DaysAgo] = struct{}{}
		weekly[w.StartFmt.WeeksAgo] += w.DurationSeconds
	}

	var weeks [][]CalendarDay
	var row []CalendarDay
	for _, day := range a.formatter.CalendarDays() {
		_, hasWorkout := daysWithWorkout[day.DaysAgo]
		row = append(row, CalendarDay{Day: day, HasWorkout: hasWorkout})
		if len(row) == 7 {
			weeks = append(weeks, row)
			row = nil
		}
	}

	marks := make(map[int]WeekMark)
	for week, seconds := range weekly {
		switch {
		case seconds >= RecommendedWeeklySeconds:
			marks[week] = MarkDoubleCheck
		case seconds > 0:
			marks[week] = MarkCheck
		}
	}

	return &Calendar{
		Weeks:         weeks,
		WeeklySeconds: weekly,
		Marks:         marks,
		Streak:        WeekStreak(weekly),
	}, nil
}

// WeekStreak counts consecutive calendar weeks with recorded activity,
// walking back from the current week. The week in progress extends a streak
// that is already alive even while it is still empty, but an empty week
// cannot start one, and any empty completed week breaks the chain.
func WeekStreak(weeklySeconds map[int]float64) int {
	start := 0
	if weeklySeconds[0] <= 0 {
		start = 1
	}
	run := 0
	for i := start; weeklySeconds[i] > 0; i++ {
		run++
	}
	if start == 1 && run > 0 {
		run++ // the empty current week rides along
	}
	return run
}

// Totals is the lifetime header: overall workout count plus the most
// frequent sports.
type Totals struct {
	Workouts  int          `json:"workouts"`
	TopSports []SportCount `json:"top_sports"`
}

type SportCount struct {
	SportType string `json:"sport_type"`
	Count     int    `json:"count"`
}

func (a *Analyzer) LifetimeTotals(ctx context.Context, userID int) (_ *Totals, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.dashboard.lifetimeTotals")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	all, err := a.repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	perSport := make(map[string]int)
	total := 0
	for _, w := range all {
		if w.IsSteps() {
			continue
		}
		total++
		perSport[w.SportType]++
	}

	counts := make([]SportCount, 0, len(perSport))
	for sport, count := range perSport {
		counts = append(counts, SportCount{SportType: sport, Count: count})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].SportType < counts[j].SportType
	})
	if len(counts) > 4 {
		counts = counts[:4]
	}

	return &Totals{Workouts: total, TopSports: counts}, nil
}

// recentWorkouts lists the user's non-Steps workouts with DaysAgo < window.
func (a *Analyzer) recentWorkouts(ctx context.Context, userID, windowDays int) ([]workouts.Annotated, error) {
	all, err := a.repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var recent []workouts.Annotated
	for _, w := range workouts.Annotate(a.formatter, all) {
		if w.IsSteps() {
			continue
		}
		if w.StartFmt.DaysAgo >= windowDays {
			continue
		}
		recent = append(recent, w)
	}
	return recent, nil
}
