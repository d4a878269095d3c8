package workouts

import (
	"context"
	"fmt"
	"time"

	"github.com/fitcomp/fitcomp/internal/telemetry/metrics"
	"github.com/fitcomp/fitcomp/internal/telemetry/tracing"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=sync_mocks_test.go -package=workouts_test

type remoteWorkoutsAPI interface {
	Workouts(ctx context.Context, userID int) ([]Workout, error)
	InvalidateWorkouts(userID int)
}

type snapshotRepo interface {
	ReplaceForUser(ctx context.Context, userID int, ws []Workout) error
}

// Syncer periodically refreshes the local workout snapshots of the tracked
// users from the remote API.
type Syncer struct {
	remoteAPI remoteWorkoutsAPI
	repo      snapshotRepo
	metrics   *metrics.Manager
	userIDs   []int
	schedule  string
	cron      *cron.Cron
}

func NewSyncer(
	remoteAPI remoteWorkoutsAPI,
	repo snapshotRepo,
	metricsManager *metrics.Manager,
	userIDs []int,
	schedule string,
) *Syncer {
	return &Syncer{
		remoteAPI: remoteAPI,
		repo:      repo,
		metrics:   metricsManager,
		userIDs:   userIDs,
		schedule:  schedule,
		cron:      cron.New(),
	}
}

func (s *Syncer) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, func() {
		jobID := uuid.NewString()
		log.Debugf("workouts syncer: starting scheduled run [%s]", jobID)
		if err := s.SyncAll(context.Background(), jobID); err != nil {
			log.Errorf("workouts syncer run [%s]: %s", jobID, err)
		}
	}); err != nil {
		return fmt.Errorf("add cron func [schedule %q]: %w", s.schedule, err)
	}

	s.cron.Start()
	log.Debugf("workouts syncer started with schedule: %s", s.schedule)
	return nil
}

func (s *Syncer) Stop() context.Context {
	return s.cron.Stop()
}

// SyncAll refreshes the snapshot of every tracked user. Failing users are
// skipped so one broken profile does not stall the rest.
func (s *Syncer) SyncAll(ctx context.Context, jobID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workouts.syncer.syncAll")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("job.id", jobID))

	if s.metrics != nil {
		s.metrics.CounterSyncRuns.Inc()
		defer func(begin time.Time) {
			s.metrics.HistSyncDuration.Observe(time.Since(begin).Seconds())
		}(time.Now())
	}

	var failed int
	for _, userID := range s.userIDs {
		if syncErr := s.SyncUser(ctx, userID); syncErr != nil {
			failed++
			log.Errorf("workouts syncer [%s]: sync user %d: %s", jobID, userID, syncErr)
		}
	}

	if failed > 0 {
		if s.metrics != nil {
			s.metrics.CounterSyncFailures.Inc()
		}
		return fmt.Errorf("sync failed for %d of %d users", failed, len(s.userIDs))
	}

	log.Debugf("workouts syncer [%s]: synced %d users", jobID, len(s.userIDs))
	return nil
}

func (s *Syncer) SyncUser(ctx context.Context, userID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workouts.syncer.syncUser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	s.remoteAPI.InvalidateWorkouts(userID)

	ws, err := s.remoteAPI.Workouts(ctx, userID)
	if err != nil {
		return fmt.Errorf("get remote workouts: %w", err)
	}

	if err := s.repo.ReplaceForUser(ctx, userID, ws); err != nil {
		return fmt.Errorf("replace snapshot: %w", err)
	}

	if s.metrics != nil {
		s.metrics.CounterWorkoutsSynced.Add(float64(len(ws)))
	}

	return nil
}
