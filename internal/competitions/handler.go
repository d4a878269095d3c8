package competitions

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/fitcomp/fitcomp/internal/telemetry/tracing"
	"github.com/fitcomp/fitcomp/internal/timeline"
	"github.com/fitcomp/fitcomp/internal/users"
	"github.com/fitcomp/fitcomp/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=competitions_test

type remoteAPI interface {
	Stats(ctx context.Context, competitionID int) (*Stats, error)
	Feed(ctx context.Context, competitionID int) ([]FeedEntry, error)
	User(ctx context.Context, userID int) (*users.User, error)
}

type ChartsResponse struct {
	Week  *WeekChart  `json:"week"`
	Trend *TrendChart `json:"trend"`
}

type Handler struct {
	remote    remoteAPI
	formatter *timeline.Formatter
}

func NewHandler(remote remoteAPI, formatter *timeline.Formatter) *Handler {
	return &Handler{
		remote:    remote,
		formatter: formatter,
	}
}

func (handler *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.competitions.stats")
	defer span.End()

	competitionID, ok := intPathVar(w, r, "id")
	if !ok {
		return
	}
	span.SetAttributes(attribute.Int("competition.id", competitionID))

	stats, err := handler.remote.Stats(ctx, competitionID)
	if err != nil {
		log.Errorf("get stats for competition %d: %s", competitionID, err)
		http.Error(w, "failed to get competition stats", http.StatusInternalServerError)
		return
	}

	writeJSON(w, stats)
}

func (handler *Handler) HandleFeed(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.competitions.feed")
	defer span.End()

	competitionID, ok := intPathVar(w, r, "id")
	if !ok {
		return
	}

	feed, err := handler.remote.Feed(ctx, competitionID)
	if err != nil {
		log.Errorf("get feed for competition %d: %s", competitionID, err)
		http.Error(w, "failed to get competition feed", http.StatusInternalServerError)
		return
	}

	writeJSON(w, AnnotateFeed(handler.formatter, feed))
}

// HandleCharts builds the week bar chart and cumulative trend chart for
// one user inside a competition.
func (handler *Handler) HandleCharts(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.competitions.charts")
	defer span.End()

	competitionID, ok := intPathVar(w, r, "id")
	if !ok {
		return
	}
	userID, err := strconv.Atoi(r.URL.Query().Get("user"))
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	// team is optional, 0 means "no team"
	teamID, _ := strconv.Atoi(r.URL.Query().Get("team"))

	stats, err := handler.remote.Stats(ctx, competitionID)
	if err != nil {
		log.Errorf("charts, get stats for competition %d: %s", competitionID, err)
		http.Error(w, "failed to get competition stats", http.StatusInternalServerError)
		return
	}

	writeJSON(w, ChartsResponse{
		Week:  BuildWeekChart(handler.formatter, stats, userID, teamID),
		Trend: BuildTrendChart(handler.formatter, stats, userID, teamID),
	})
}

// HandleGoalProgress returns every competition goal normalized with the
// user's equalization factors plus the points scored in the goal's window.
func (handler *Handler) HandleGoalProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.competitions.goalProgress")
	defer span.End()

	competitionID, ok := intPathVar(w, r, "id")
	if !ok {
		return
	}
	userID, err := strconv.Atoi(r.URL.Query().Get("user"))
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	user, err := handler.remote.User(ctx, userID)
	if err != nil {
		log.Errorf("goal progress, get user %d: %s", userID, err)
		http.Error(w, "failed to get user", http.StatusInternalServerError)
		return
	}

	stats, err := handler.remote.Stats(ctx, competitionID)
	if err != nil {
		log.Errorf("goal progress, get stats for competition %d: %s", competitionID, err)
		http.Error(w, "failed to get competition stats", http.StatusInternalServerError)
		return
	}

	feed, err := handler.remote.Feed(ctx, competitionID)
	if err != nil {
		log.Errorf("goal progress, get feed for competition %d: %s", competitionID, err)
		http.Error(w, "failed to get competition feed", http.StatusInternalServerError)
		return
	}

	progress := GoalProgressFor(
		handler.formatter,
		stats,
		AnnotateFeed(handler.formatter, feed),
		userID,
		user.ScalingKcal, user.ScalingDistance,
	)

	writeJSON(w, progress)
}

func intPathVar(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	v, err := strconv.Atoi(mux.Vars(r)[name])
	if err != nil {
		http.Error(w, "invalid "+name, http.StatusBadRequest)
		return 0, false
	}
	return v, true
}

func writeJSON(w http.ResponseWriter, payload any) {
	resp, err := json.Marshal(payload)
	if err != nil {
		log.Errorf("marshal competitions response: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, "application/json", resp)
}
