package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/fitcomp/fitcomp/internal/remote"
	"github.com/fitcomp/fitcomp/internal/telemetry/tracing"
	"github.com/fitcomp/fitcomp/internal/users"
	"github.com/fitcomp/fitcomp/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=dashboard_test

type analyzer interface {
	ThirtyDaySummary(ctx context.Context, userID int) (*Summary, error)
	WeeklyGoalProgress(ctx context.Context, userID int, personal PersonalGoals) ([]GoalProgress, error)
	Calendar(ctx context.Context, userID int) (*Calendar, error)
	LifetimeTotals(ctx context.Context, userID int) (*Totals, error)
}

type userProvider interface {
	User(ctx context.Context, userID int) (*users.User, error)
}

type Handler struct {
	analyzer analyzer
	users    userProvider
}

func NewHandler(analyzer analyzer, users userProvider) *Handler {
	return &Handler{
		analyzer: analyzer,
		users:    users,
	}
}

func (handler *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.summary")
	defer span.End()

	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	summary, err := handler.analyzer.ThirtyDaySummary(ctx, userID)
	if err != nil {
		log.Errorf("dashboard summary for user %d: %s", userID, err)
		http.Error(w, "failed to get summary", http.StatusInternalServerError)
		return
	}

	writeJSON(w, summary)
}

func (handler *Handler) HandleGoals(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.goals")
	defer span.End()

	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	user, err := handler.users.User(ctx, userID)
	if err != nil {
		if errors.Is(err, remote.ErrNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		log.Errorf("dashboard goals, get user %d: %s", userID, err)
		http.Error(w, "failed to get goals", http.StatusInternalServerError)
		return
	}

	progress, err := handler.analyzer.WeeklyGoalProgress(ctx, userID, PersonalGoals{
		ActiveDays:     user.GoalActiveDays,
		WorkoutMinutes: user.GoalWorkoutMinutes,
		DistanceKm:     user.GoalDistanceKm,
	})
	if err != nil {
		log.Errorf("dashboard goals for user %d: %s", userID, err)
		http.Error(w, "failed to get goals", http.StatusInternalServerError)
		return
	}

	writeJSON(w, progress)
}

func (handler *Handler) HandleCalendar(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.calendar")
	defer span.End()

	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	calendar, err := handler.analyzer.Calendar(ctx, userID)
	if err != nil {
		log.Errorf("dashboard calendar for user %d: %s", userID, err)
		http.Error(w, "failed to get calendar", http.StatusInternalServerError)
		return
	}

	writeJSON(w, calendar)
}

func (handler *Handler) HandleTotals(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.totals")
	defer span.End()

	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	totals, err := handler.analyzer.LifetimeTotals(ctx, userID)
	if err != nil {
		log.Errorf("dashboard totals for user %d: %s", userID, err)
		http.Error(w, "failed to get totals", http.StatusInternalServerError)
		return
	}

	writeJSON(w, totals)
}

func userIDParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	userID, err := strconv.Atoi(mux.Vars(r)["userID"])
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return 0, false
	}
	return userID, true
}

func writeJSON(w http.ResponseWriter, payload any) {
	resp, err := json.Marshal(payload)
	if err != nil {
		log.Errorf("marshal dashboard response: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, "application/json", resp)
}
