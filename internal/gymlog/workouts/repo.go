package workouts

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/gymlog/internal/gymlog/exercises"
	"github.com/2beens/gymlog/internal/gymlog/query"
	"github.com/2beens/gymlog/internal/telemetry/tracing"
	"github.com/2beens/gymlog/pkg"
)

const (
	workoutColumns = `
		w.id, w.name, w.description, w.date, w.belongs_to_user_id, w.created_at, w.updated_at,
		COALESCE(agg.exercises_count, 0), COALESCE(agg.total_sets, 0),
		COALESCE(agg.total_reps, 0), COALESCE(agg.total_weight, 0)
	`
	workoutFrom = `
		FROM workout w
		LEFT JOIN LATERAL (
			SELECT COUNT(*)                       AS exercises_count,
			       SUM(ew.total_sets)             AS total_sets,
			       SUM(ew.total_reps)             AS total_reps,
			       SUM(ew.total_weight)::float8   AS total_weight
			FROM exercise_workout ew
			WHERE ew.workout_id = w.id
		) agg ON true
	`
	exerciseWorkoutColumns = `
		ew.id, ew.workout_id, ew.exercise_id, e.name, e.exercise_log_type, ew.idx, ew.note,
		ew.total_weight::float8, ew.total_reps, ew.total_sets, ew.belongs_to_user_id, ew.created_at
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

func (r *Repo) Count(ctx context.Context, filter query.Filter) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.count")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	where, args := filter.Where(1)
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM workout w `+where, args...).Scan(&count); err != nil {
		return -1, err
	}

	return count, nil
}

func (r *Repo) List(ctx context.Context, filter query.Filter, sort query.Sort, window query.Window) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.list")
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
	`, workoutColumns, workoutFrom, where, sort.OrderBy("w.id"), n+1, n+2)

	rows, err := r.db.Query(ctx, sql, append(args, window.Take, window.Skip)...)
	if err != nil {
		return nil, err
	}

	return rows2workouts(rows)
}

func (r *Repo) Get(ctx context.Context, id uuid.UUID) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id.String()))

	rows, err := r.db.Query(ctx, `SELECT `+workoutColumns+workoutFrom+` WHERE w.id = $1`, id)
	if err != nil {
		return nil, err
	}

	workouts, err := rows2workouts(rows)
	if err != nil {
		return nil, err
	}
	if len(workouts) == 0 {
		return nil, ErrWorkoutNotFound
	}

	return &workouts[0], nil
}

func (r *Repo) Add(ctx context.Context, w Workout) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(ctx, `
		INSERT INTO workout (id, name, description, date, belongs_to_user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, w.ID, w.Name, w.Description, w.Date.Time(), w.BelongsToUserID, w.CreatedAt, w.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return r.Get(ctx, w.ID)
}

func (r *Repo) Update(ctx context.Context, w Workout) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `
		UPDATE workout
		SET name = $3, description = $4, date = $5, updated_at = $6
		WHERE id = $1 AND belongs_to_user_id = $2
	`, w.ID, w.BelongsToUserID, w.Name, w.Description, w.Date.Time(), w.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrWorkoutNotFound
	}

	return r.Get(ctx, w.ID)
}

// Delete removes a workout; its exercise-workouts and sets cascade.
func (r *Repo) Delete(ctx context.Context, id, ownerID uuid.UUID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `DELETE FROM workout WHERE id = $1 AND belongs_to_user_id = $2`, id, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrWorkoutNotFound
	}

	return nil
}

// ExerciseWorkouts returns the exercise-workouts of a workout ordered by index, sets included.
func (r *Repo) ExerciseWorkouts(ctx context.Context, workoutID uuid.UUID) (_ []ExerciseWorkout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.exercise_workouts")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT `+exerciseWorkoutColumns+`
		FROM exercise_workout ew
		JOIN exercise e ON e.id = ew.exercise_id
		WHERE ew.workout_id = $1
		ORDER BY ew.idx, ew.created_at
	`, workoutID)
	if err != nil {
		return nil, err
	}

	ews, err := rows2exerciseWorkouts(rows)
	if err != nil {
		return nil, err
	}

	if err := r.attachSets(ctx, ews); err != nil {
		return nil, err
	}
	return ews, nil
}

func (r *Repo) GetExerciseWorkout(ctx context.Context, id uuid.UUID) (_ *ExerciseWorkout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.exercise_workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT `+exerciseWorkoutColumns+`
		FROM exercise_workout ew
		JOIN exercise e ON e.id = ew.exercise_id
		WHERE ew.id = $1
	`, id)
	if err != nil {
		return nil, err
	}

	ews, err := rows2exerciseWorkouts(rows)
	if err != nil {
		return nil, err
	}
	if len(ews) == 0 {
		return nil, ErrExerciseWorkoutNotFound
	}

	if err := r.attachSets(ctx, ews); err != nil {
		return nil, err
	}
	return &ews[0], nil
}

// AddExerciseWorkout appends ew to the end of its workout. The row, its sets
// and the totals derived from them are written in one transaction.
func (r *Repo) AddExerciseWorkout(ctx context.Context, ew ExerciseWorkout) (_ *ExerciseWorkout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.exercise_workouts.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.inTx(ctx, func(tx pgx.Tx) error {
		if err := lockWorkout(ctx, tx, ew.WorkoutID, ew.BelongsToUserID); err != nil {
			return err
		}

		if err := tx.QueryRow(ctx, `
			SELECT COALESCE(MAX(idx) + 1, 0) FROM exercise_workout WHERE workout_id = $1
		`, ew.WorkoutID).Scan(&ew.Index); err != nil {
			return err
		}

		ew.applyTotals()
		if _, err := tx.Exec(ctx, `
			INSERT INTO exercise_workout (
				id, workout_id, exercise_id, idx, note,
				total_weight, total_reps, total_sets, belongs_to_user_id, created_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		`,
			ew.ID, ew.WorkoutID, ew.ExerciseID, ew.Index, ew.Note,
			ew.TotalWeight, ew.TotalReps, ew.TotalSets, ew.BelongsToUserID, ew.CreatedAt,
		); err != nil {
			if pkg.IsForeignKeyViolationError(err) {
				return exercises.ErrExerciseNotFound
			}
			return err
		}

		return insertSets(ctx, tx, ew.Sets)
	})
	if err != nil {
		return nil, err
	}

	return r.GetExerciseWorkout(ctx, ew.ID)
}

// ReplaceSets swaps all sets of an exercise-workout and rewrites its totals.
func (r *Repo) ReplaceSets(ctx context.Context, exerciseWorkoutID, ownerID uuid.UUID, sets []ExerciseSet) (_ *ExerciseWorkout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.exercise_workouts.replace_sets")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.inTx(ctx, func(tx pgx.Tx) error {
		var locked bool
		err := tx.QueryRow(ctx, `
			SELECT true FROM exercise_workout
			WHERE id = $1 AND belongs_to_user_id = $2
			FOR UPDATE
		`, exerciseWorkoutID, ownerID).Scan(&locked)
		if err != nil {
			if pkg.IsNoRowsError(err) {
				return ErrExerciseWorkoutNotFound
			}
			return err
		}

		if _, err := tx.Exec(ctx, `DELETE FROM exercise_set WHERE exercise_workout_id = $1`, exerciseWorkoutID); err != nil {
			return err
		}
		if err := insertSets(ctx, tx, sets); err != nil {
			return err
		}

		totals := ComputeTotals(sets)
		_, err = tx.Exec(ctx, `
			UPDATE exercise_workout
			SET total_weight = $2, total_reps = $3, total_sets = $4
			WHERE id = $1
		`, exerciseWorkoutID, totals.Weight, totals.Reps, totals.Sets)
		return err
	})
	if err != nil {
		return nil, err
	}

	return r.GetExerciseWorkout(ctx, exerciseWorkoutID)
}

func (r *Repo) RemoveExerciseWorkout(ctx context.Context, workoutID, exerciseWorkoutID, ownerID uuid.UUID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.exercise_workouts.remove")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `
		DELETE FROM exercise_workout
		WHERE id = $1 AND workout_id = $2 AND belongs_to_user_id = $3
	`, exerciseWorkoutID, workoutID, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrExerciseWorkoutNotFound
	}

	return nil
}

func (r *Repo) inTx(ctx context.Context, fn func(tx pgx.Tx) error) (err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
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

	return fn(tx)
}

func lockWorkout(ctx context.Context, tx pgx.Tx, workoutID, ownerID uuid.UUID) error {
	var locked bool
	err := tx.QueryRow(ctx, `
		SELECT true FROM workout
		WHERE id = $1 AND belongs_to_user_id = $2
		FOR UPDATE
	`, workoutID, ownerID).Scan(&locked)
	if pkg.IsNoRowsError(err) {
		return ErrWorkoutNotFound
	}
	return err
}

func insertSets(ctx context.Context, tx pgx.Tx, sets []ExerciseSet) error {
	if len(sets) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, s := range sets {
		batch.Queue(`
			INSERT INTO exercise_set (id, exercise_workout_id, idx, weight, reps, time_seconds, note)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, s.ID, s.ExerciseWorkoutID, s.Index, s.Weight, s.Reps, s.TimeSeconds, s.Note)
	}

	return tx.SendBatch(ctx, batch).Close()
}

func (r *Repo) attachSets(ctx context.Context, ews []ExerciseWorkout) error {
	if len(ews) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(ews))
	for i := range ews {
		ids[i] = ews[i].ID
	}

	setsByEW, err := LoadSets(ctx, r.db, ids)
	if err != nil {
		return err
	}
	for i := range ews {
		ews[i].Sets = setsByEW[ews[i].ID]
		if ews[i].Sets == nil {
			ews[i].Sets = make([]ExerciseSet, 0)
		}
	}

	return nil
}

// Querier is the read side shared by a pool and a transaction.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// LoadSets returns the sets of the given exercise-workouts grouped by owner row, ordered by index.
func LoadSets(ctx context.Context, q Querier, exerciseWorkoutIDs []uuid.UUID) (map[uuid.UUID][]ExerciseSet, error) {
	ids := make([]string, len(exerciseWorkoutIDs))
	for i, id := range exerciseWorkoutIDs {
		ids[i] = id.String()
	}

	rows, err := q.Query(ctx, `
		SELECT id, exercise_workout_id, idx, weight::float8, reps, time_seconds, note
		FROM exercise_set
		WHERE exercise_workout_id = ANY($1::uuid[])
		ORDER BY exercise_workout_id, idx
	`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sets := make(map[uuid.UUID][]ExerciseSet, len(exerciseWorkoutIDs))
	for rows.Next() {
		var s ExerciseSet
		if err := rows.Scan(&s.ID, &s.ExerciseWorkoutID, &s.Index, &s.Weight, &s.Reps, &s.TimeSeconds, &s.Note); err != nil {
			return nil, err
		}
		sets[s.ExerciseWorkoutID] = append(sets[s.ExerciseWorkoutID], s)
	}

	return sets, rows.Err()
}

func rows2workouts(rows pgx.Rows) ([]Workout, error) {
	defer rows.Close()

	workouts := make([]Workout, 0)
	for rows.Next() {
		var (
			w   Workout
			day = &w.Date.t
		)
		if err := rows.Scan(
			&w.ID, &w.Name, &w.Description, day, &w.BelongsToUserID, &w.CreatedAt, &w.UpdatedAt,
			&w.ExercisesCount, &w.TotalSets, &w.TotalReps, &w.TotalWeight,
		); err != nil {
			return nil, err
		}
		workouts = append(workouts, w)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return workouts, nil
}

func rows2exerciseWorkouts(rows pgx.Rows) ([]ExerciseWorkout, error) {
	defer rows.Close()

	ews := make([]ExerciseWorkout, 0)
	for rows.Next() {
		var (
			ew      ExerciseWorkout
			logType int16
		)
		if err := rows.Scan(
			&ew.ID, &ew.WorkoutID, &ew.ExerciseID, &ew.ExerciseName, &logType, &ew.Index, &ew.Note,
			&ew.TotalWeight, &ew.TotalReps, &ew.TotalSets, &ew.BelongsToUserID, &ew.CreatedAt,
		); err != nil {
			return nil, err
		}
		ew.ExerciseLogType = exercises.LogType(logType)
		ews = append(ews, ew)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ews, nil
}
