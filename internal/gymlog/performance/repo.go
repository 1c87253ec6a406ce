package performance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/gymlog/internal/gymlog/exercises"
	"github.com/2beens/gymlog/internal/gymlog/query"
	"github.com/2beens/gymlog/internal/gymlog/workouts"
	"github.com/2beens/gymlog/internal/telemetry/tracing"
	"github.com/2beens/gymlog/pkg"
)

const (
	summaryColumns = `
		ew.id, e.id, e.name, e.exercise_log_type, e.description,
		w.id, w.name, w.date,
		ew.note, ew.total_weight::float8, ew.total_reps, ew.total_sets, ew.created_at
	`
	summaryFrom = `
		FROM exercise_workout ew
		JOIN workout w ON w.id = ew.workout_id
		JOIN exercise e ON e.id = ew.exercise_id
	`
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// WorkoutDate returns the date of a workout owned by ownerID; found is false when there is none.
func (r *Repo) WorkoutDate(ctx context.Context, workoutID, ownerID uuid.UUID) (_ time.Time, found bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.performance.workout_date")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var date time.Time
	err = r.db.QueryRow(ctx, `
		SELECT date FROM workout WHERE id = $1 AND belongs_to_user_id = $2
	`, workoutID, ownerID).Scan(&date)
	if err != nil {
		if pkg.IsNoRowsError(err) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, err
	}

	return date, true, nil
}

// Latest returns the most recently created exercise-workout matching filter, or nil.
func (r *Repo) Latest(ctx context.Context, filter query.Filter) (_ *ExerciseWorkoutSummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.performance.latest")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	where, args := filter.Where(1)
	rows, err := r.db.Query(ctx, `
		SELECT `+summaryColumns+summaryFrom+where+`
		ORDER BY ew.created_at DESC, ew.id DESC
		LIMIT 1
	`, args...)
	if err != nil {
		return nil, err
	}

	summaries, err := rows2summaries(rows)
	if err != nil {
		return nil, err
	}
	if len(summaries) == 0 {
		return nil, nil
	}

	return &summaries[0], nil
}

func (r *Repo) Count(ctx context.Context, filter query.Filter) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.performance.history.count")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	where, args := filter.Where(1)
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) `+summaryFrom+where, args...).Scan(&count); err != nil {
		return -1, err
	}

	return count, nil
}

func (r *Repo) List(ctx context.Context, filter query.Filter, sort query.Sort, window query.Window) (_ []ExerciseWorkoutSummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.performance.history.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("sort", sort.Key.Name),
		attribute.Int("skip", window.Skip),
		attribute.Int("take", window.Take),
	)

	where, args := filter.Where(1)
	n := len(args)
	sql := fmt.Sprintf(`
		SELECT %s
		%s
		%s
		%s
		LIMIT $%d OFFSET $%d
	`, summaryColumns, summaryFrom, where, sort.OrderBy("ew.id"), n+1, n+2)

	rows, err := r.db.Query(ctx, sql, append(args, window.Take, window.Skip)...)
	if err != nil {
		return nil, err
	}

	return rows2summaries(rows)
}

func (r *Repo) Sets(ctx context.Context, exerciseWorkoutIDs []uuid.UUID) (_ map[uuid.UUID][]workouts.ExerciseSet, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.performance.sets")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise-workouts", len(exerciseWorkoutIDs)))

	return workouts.LoadSets(ctx, r.db, exerciseWorkoutIDs)
}

func rows2summaries(rows pgx.Rows) ([]ExerciseWorkoutSummary, error) {
	defer rows.Close()

	summaries := make([]ExerciseWorkoutSummary, 0)
	for rows.Next() {
		var (
			s       ExerciseWorkoutSummary
			logType int16
			date    time.Time
		)
		if err := rows.Scan(
			&s.ExerciseWorkoutID, &s.ExerciseID, &s.ExerciseName, &logType, &s.ExerciseDescription,
			&s.WorkoutID, &s.WorkoutName, &date,
			&s.Note, &s.TotalWeight, &s.TotalReps, &s.TotalSets, &s.CreatedAt,
		); err != nil {
			return nil, err
		}
		s.ExerciseLogType = exercises.LogType(logType)
		s.WorkoutDate = workouts.NewDate(date)
		summaries = append(summaries, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}
