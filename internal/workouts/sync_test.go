package workouts_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fitcomp/fitcomp/internal/telemetry/metrics"
	"github.com/fitcomp/fitcomp/internal/workouts"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func fakeWorkouts(userID, count int) []workouts.Workout {
	ws := make([]workouts.Workout, 0, count)
	for i := 0; i < count; i++ {
		kcal := gofakeit.Float64Range(50, 900)
		distance := gofakeit.Float64Range(1, 20)
		ws = append(ws, workouts.Workout{
			ID:              i + 1,
			UserID:          userID,
			SportType:       gofakeit.RandomString([]string{"Running", "Cycling", "Swimming"}),
			StartDatetime:   gofakeit.DateRange(time.Now().AddDate(0, -1, 0), time.Now()),
			DurationSeconds: gofakeit.Float64Range(600, 7200),
			Kcal:            &kcal,
			DistanceKm:      &distance,
		})
	}
	return ws
}

func TestSyncer_SyncUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	remoteAPI := NewMockremoteWorkoutsAPI(ctrl)
	repo := NewMocksnapshotRepo(ctrl)
	m := metrics.NewTestManager()

	syncer := workouts.NewSyncer(remoteAPI, repo, m, []int{77}, "0 4 * * *")

	ws := fakeWorkouts(77, 5)
	remoteAPI.EXPECT().InvalidateWorkouts(77)
	remoteAPI.EXPECT().Workouts(gomock.Any(), 77).Return(ws, nil)
	repo.EXPECT().ReplaceForUser(gomock.Any(), 77, ws).Return(nil)

	require.NoError(t, syncer.SyncUser(context.Background(), 77))
	assert.Equal(t, float64(5), testutil.ToFloat64(m.CounterWorkoutsSynced))
}

func TestSyncer_SyncUser_RemoteError(t *testing.T) {
	ctrl := gomock.NewController(t)
	remoteAPI := NewMockremoteWorkoutsAPI(ctrl)
	repo := NewMocksnapshotRepo(ctrl)

	syncer := workouts.NewSyncer(remoteAPI, repo, nil, []int{77}, "0 4 * * *")

	remoteAPI.EXPECT().InvalidateWorkouts(77)
	remoteAPI.EXPECT().Workouts(gomock.Any(), 77).Return(nil, errors.New("remote down"))

	err := syncer.SyncUser(context.Background(), 77)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "remote down")
}

func TestSyncer_SyncAll_PartialFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	remoteAPI := NewMockremoteWorkoutsAPI(ctrl)
	repo := NewMocksnapshotRepo(ctrl)
	m := metrics.NewTestManager()

	syncer := workouts.NewSyncer(remoteAPI, repo, m, []int{1, 2}, "0 4 * * *")

	ws := fakeWorkouts(1, 3)
	remoteAPI.EXPECT().InvalidateWorkouts(1)
	remoteAPI.EXPECT().Workouts(gomock.Any(), 1).Return(ws, nil)
	repo.EXPECT().ReplaceForUser(gomock.Any(), 1, ws).Return(nil)

	remoteAPI.EXPECT().InvalidateWorkouts(2)
	remoteAPI.EXPECT().Workouts(gomock.Any(), 2).Return(nil, errors.New("remote down"))

	err := syncer.SyncAll(context.Background(), "test-job")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2")
	assert.Equal(t, float64(1), testutil.ToFloat64(m.CounterSyncRuns))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.CounterSyncFailures))
}

func TestSyncer_SyncAll_AllOK(t *testing.T) {
	ctrl := gomock.NewController(t)
	remoteAPI := NewMockremoteWorkoutsAPI(ctrl)
	repo := NewMocksnapshotRepo(ctrl)

	syncer := workouts.NewSyncer(remoteAPI, repo, nil, []int{1}, "0 4 * * *")

	ws := fakeWorkouts(1, 2)
	remoteAPI.EXPECT().InvalidateWorkouts(1)
	remoteAPI.EXPECT().Workouts(gomock.Any(), 1).Return(ws, nil)
	repo.EXPECT().ReplaceForUser(gomock.Any(), 1, ws).Return(nil)

	require.NoError(t, syncer.SyncAll(context.Background(), "test-job"))
}
