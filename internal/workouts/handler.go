package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/fitcomp/fitcomp/internal/telemetry/tracing"
	"github.com/fitcomp/fitcomp/internal/timeline"
	"github.com/fitcomp/fitcomp/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

type workoutsRepo interface {
	Get(ctx context.Context, id int) (*Workout, error)
	ListForUser(ctx context.Context, userID int) ([]Workout, error)
	DeleteForUser(ctx context.Context, userID int) (int64, error)
}

type workoutsSyncer interface {
	SyncUser(ctx context.Context, userID int) error
}

type ListResponse struct {
	Workouts []Annotated `json:"workouts"`
	Total    int         `json:"total"`
}

type DeleteSnapshotResponse struct {
	DeletedWorkouts int64 `json:"deletedWorkouts"`
}

type Handler struct {
	repo      workoutsRepo
	syncer    workoutsSyncer
	formatter *timeline.Formatter
}

func NewHandler(repo workoutsRepo, syncer workoutsSyncer, formatter *timeline.Formatter) *Handler {
	return &Handler{
		repo:      repo,
		syncer:    syncer,
		formatter: formatter,
	}
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	userID, err := strconv.Atoi(mux.Vars(r)["userID"])
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	ws, err := handler.repo.ListForUser(ctx, userID)
	if err != nil {
		log.Errorf("list workouts for user %d: %s", userID, err)
		http.Error(w, "failed to list workouts", http.StatusInternalServerError)
		return
	}

	annotated := Annotate(handler.formatter, ws)
	resp, err := json.Marshal(ListResponse{
		Workouts: annotated,
		Total:    len(annotated),
	})
	if err != nil {
		log.Errorf("marshal workouts list response: %s", err)
		http.Error(w, "failed to list workouts", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, "application/json", resp)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.get")
	defer span.End()

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid workout id", http.StatusBadRequest)
		return
	}

	workout, err := handler.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			http.Error(w, "workout not found", http.StatusNotFound)
			return
		}
		log.Errorf("get workout %d: %s", id, err)
		http.Error(w, "failed to get workout", http.StatusInternalServerError)
		return
	}

	annotated := Annotated{
		Workout:  *workout,
		StartFmt: handler.formatter.Format(workout.StartDatetime, workout.IsSteps()),
	}
	resp, err := json.Marshal(annotated)
	if err != nil {
		log.Errorf("marshal workout response: %s", err)
		http.Error(w, "failed to get workout", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, "application/json", resp)
}

// HandleSync triggers an on-demand snapshot refresh for one user.
func (handler *Handler) HandleSync(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.sync")
	defer span.End()

	userID, err := strconv.Atoi(mux.Vars(r)["userID"])
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	if err := handler.syncer.SyncUser(ctx, userID); err != nil {
		log.Errorf("on-demand sync for user %d: %s", userID, err)
		http.Error(w, "sync failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponse(w, "", "synced")
}

func (handler *Handler) HandleDeleteSnapshot(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.deleteSnapshot")
	defer span.End()

	userID, err := strconv.Atoi(mux.Vars(r)["userID"])
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	deleted, err := handler.repo.DeleteForUser(ctx, userID)
	if err != nil {
		log.Errorf("delete snapshot for user %d: %s", userID, err)
		http.Error(w, "failed to delete snapshot", http.StatusInternalServerError)
		return
	}

	resp, err := json.Marshal(DeleteSnapshotResponse{DeletedWorkouts: deleted})
	if err != nil {
		log.Errorf("marshal delete snapshot response: %s", err)
		http.Error(w, "failed to delete snapshot", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, "application/json", resp)
}
