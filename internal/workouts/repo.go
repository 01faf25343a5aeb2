package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ironquest/backend/internal/progression/xp"
	"github.com/ironquest/backend/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrWorkoutNotFound = errors.New("workout not found")

type ListParams struct {
	From *time.Time
	To   *time.Time
	Page int
	Size int
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Add persists the workout and its exercises in one transaction, so a
// half-written workout never shows up in counts.
func (r *Repo) Add(ctx context.Context, workout Workout) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = tx.QueryRow(ctx, `
		INSERT INTO workout
			(user_id, difficulty, duration_seconds, has_personal_record, completed_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id;`,
		workout.UserID, workout.Difficulty, workout.DurationSeconds,
		workout.HasPersonalRecord, workout.CompletedAt, workout.CreatedAt,
	).Scan(&workout.ID)
	if err != nil {
		return nil, err
	}

	for _, exercise := range workout.Exercises {
		setsJson, err := json.Marshal(exercise.Sets)
		if err != nil {
			return nil, fmt.Errorf("marshal sets: %w", err)
		}
		_, err = tx.Exec(ctx, `
			INSERT INTO workout_exercise (workout_id, name, type, sets, max_kilos)
			VALUES ($1, $2, $3, $4, $5);`,
			workout.ID, exercise.Name, exercise.Type, setsJson, maxCompletedKilos(exercise),
		)
		if err != nil {
			return nil, err
		}
	}

	return &workout, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var workout Workout
	err = r.db.QueryRow(ctx, `
		SELECT id, user_id, difficulty, duration_seconds, has_personal_record, completed_at, created_at
		FROM workout
		WHERE id = $1;`, id,
	).Scan(
		&workout.ID, &workout.UserID, &workout.Difficulty, &workout.DurationSeconds,
		&workout.HasPersonalRecord, &workout.CompletedAt, &workout.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrWorkoutNotFound
	}
	if err != nil {
		return nil, err
	}

	if workout.Exercises, err = r.exercisesFor(ctx, workout.ID); err != nil {
		return nil, err
	}

	return &workout, nil
}

func (r *Repo) exercisesFor(ctx context.Context, workoutID int) ([]xp.ExerciseEntry, error) {
	rows, err := r.db.Query(ctx, `
		SELECT name, type, sets
		FROM workout_exercise
		WHERE workout_id = $1
		ORDER BY id;`, workoutID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exercises []xp.ExerciseEntry
	for rows.Next() {
		var exercise xp.ExerciseEntry
		var setsJson []byte
		if err := rows.Scan(&exercise.Name, &exercise.Type, &setsJson); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		if len(setsJson) > 0 {
			if err := json.Unmarshal(setsJson, &exercise.Sets); err != nil {
				return nil, fmt.Errorf("unmarshal sets: %w", err)
			}
		}
		exercises = append(exercises, exercise)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return exercises, nil
}

func (r *Repo) List(ctx context.Context, userID string, params ListParams) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	args := []interface{}{userID}
	query := `
		SELECT id, user_id, difficulty, duration_seconds, has_personal_record, completed_at, created_at
		FROM workout
		WHERE user_id = $1`
	argCount := 1
	if params.From != nil {
		argCount++
		query += fmt.Sprintf(" AND completed_at >= $%d", argCount)
		args = append(args, *params.From)
	}
	if params.To != nil {
		argCount++
		query += fmt.Sprintf(" AND completed_at <= $%d", argCount)
		args = append(args, *params.To)
	}

	query += " ORDER BY completed_at DESC"
	if params.Size > 0 {
		page := params.Page
		if page < 1 {
			page = 1
		}
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argCount+1, argCount+2)
		args = append(args, params.Size, (page-1)*params.Size)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var all []Workout
	for rows.Next() {
		var workout Workout
		if err := rows.Scan(
			&workout.ID, &workout.UserID, &workout.Difficulty, &workout.DurationSeconds,
			&workout.HasPersonalRecord, &workout.CompletedAt, &workout.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		all = append(all, workout)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return all, nil
}

// CompletedCount counts completed workouts in [from, to], re-derived
// from the authoritative rows on every call.
func (r *Repo) CompletedCount(ctx context.Context, userID string, from, to time.Time) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.completedCount")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var count int
	err = r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM workout
		WHERE user_id = $1 AND completed_at >= $2 AND completed_at <= $3;`,
		userID, from, to,
	).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

// MaxKilos returns the heaviest completed set the user ever logged for
// the named exercise, 0 when they never did it.
func (r *Repo) MaxKilos(ctx context.Context, userID, exerciseName string) (_ float64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.maxKilos")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var maxKilos float64
	err = r.db.QueryRow(ctx, `
		SELECT COALESCE(MAX(we.max_kilos), 0)
		FROM workout_exercise we
		JOIN workout w ON w.id = we.workout_id
		WHERE w.user_id = $1 AND we.name = $2;`,
		userID, exerciseName,
	).Scan(&maxKilos)
	if err != nil {
		return 0, err
	}

	return maxKilos, nil
}

// DistinctExerciseTypes counts how many different exercise types the
// user ever trained, for the variety achievements.
func (r *Repo) DistinctExerciseTypes(ctx context.Context, userID string) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.distinctExerciseTypes")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var count int
	err = r.db.QueryRow(ctx, `
		SELECT COUNT(DISTINCT we.type)
		FROM workout_exercise we
		JOIN workout w ON w.id = we.workout_id
		WHERE w.user_id = $1;`,
		userID,
	).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}
