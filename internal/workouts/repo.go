package workouts

import (
	"context"
	"errors"
	"fmt"

	"github.com/fitcomp/fitcomp/internal/telemetry/tracing"
	"github.com/fitcomp/fitcomp/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrWorkoutNotFound = errors.New("workout not found")

// Repo is the local snapshot of workouts pulled from the remote API.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, user_id, sport_type, start_datetime, duration_seconds, steps, kcal, distance_km, strava_id
			FROM workout
			WHERE id = $1;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	ws, err := r.rows2workouts(rows)
	if err != nil {
		return nil, err
	}

	if len(ws) != 1 {
		return nil, ErrWorkoutNotFound
	}

	return &ws[0], nil
}

// ListForUser returns all snapshotted workouts of a user, newest first.
func (r *Repo) ListForUser(ctx context.Context, userID int) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listForUser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, user_id, sport_type, start_datetime, duration_seconds, steps, kcal, distance_km, strava_id
			FROM workout
			WHERE user_id = $1
			ORDER BY start_datetime DESC;`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return r.rows2workouts(rows)
}

// ReplaceForUser swaps the user snapshot with a freshly synced workout set.
func (r *Repo) ReplaceForUser(ctx context.Context, userID int, ws []Workout) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.replaceForUser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))
	span.SetAttributes(attribute.Int("workouts", len(ws)))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	if _, err = tx.Exec(ctx, `DELETE FROM workout WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("delete old snapshot: %w", err)
	}

	for i := range ws {
		w := ws[i]
		if _, err = tx.Exec(
			ctx,
			`INSERT INTO workout
					(id, user_id, sport_type, start_datetime, duration_seconds, steps, kcal, distance_km, strava_id)
					VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`,
			w.ID, userID, w.SportType, w.StartDatetime, w.DurationSeconds, w.Steps, w.Kcal, w.DistanceKm, w.StravaID,
		); err != nil {
			if pkg.IsUniqueViolationError(err) {
				return fmt.Errorf("duplicate workout %d in sync payload: %w", w.ID, err)
			}
			return fmt.Errorf("insert workout %d: %w", w.ID, err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

func (r *Repo) DeleteForUser(ctx context.Context, userID int) (deleted int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.deleteForUser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM workout WHERE user_id = $1`,
		userID,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repo) rows2workouts(rows pgx.Rows) ([]Workout, error) {
	var ws []Workout
	for rows.Next() {
		var w Workout
		if err := rows.Scan(
			&w.ID, &w.UserID, &w.SportType, &w.StartDatetime,
			&w.DurationSeconds, &w.Steps, &w.Kcal, &w.DistanceKm, &w.StravaID,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		ws = append(ws, w)
	}
	return ws, nil
}
