package exercises

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/gymlog/internal/gymlog/query"
	"github.com/2beens/gymlog/internal/telemetry/tracing"
	"github.com/2beens/gymlog/pkg"
)

const exerciseColumns = `
	e.id, e.name, e.muscle_group_id, mg.name, e.description,
	e.exercise_log_type, e.belongs_to_user_id, e.created_at, e.updated_at
`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) ListMuscleGroups(ctx context.Context) (_ []MuscleGroup, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.muscle_groups.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT id, name, description, created_at
		FROM muscle_group
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	groups := make([]MuscleGroup, 0)
	for rows.Next() {
		var mg MuscleGroup
		if err := rows.Scan(&mg.ID, &mg.Name, &mg.Description, &mg.CreatedAt); err != nil {
			return nil, err
		}
		groups = append(groups, mg)
	}

	return groups, rows.Err()
}

func (r *Repo) AddMuscleGroup(ctx context.Context, mg MuscleGroup) (_ *MuscleGroup, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.muscle_groups.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(ctx, `
		INSERT INTO muscle_group (id, name, description, created_at)
		VALUES ($1, $2, $3, $4)
	`, mg.ID, mg.Name, mg.Description, mg.CreatedAt)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}

	return &mg, nil
}

func (r *Repo) DeleteMuscleGroup(ctx context.Context, id uuid.UUID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.muscle_groups.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `DELETE FROM muscle_group WHERE id = $1`, id)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return ErrMuscleGroupInUse
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrMuscleGroupNotFound
	}

	return nil
}

func (r *Repo) Get(ctx context.Context, id uuid.UUID) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id.String()))

	rows, err := r.db.Query(ctx, `
		SELECT `+exerciseColumns+`
		FROM exercise e
		JOIN muscle_group mg ON mg.id = e.muscle_group_id
		WHERE e.id = $1
	`, id)
	if err != nil {
		return nil, err
	}

	exercises, err := rows2exercises(rows)
	if err != nil {
		return nil, err
	}
	if len(exercises) == 0 {
		return nil, ErrExerciseNotFound
	}

	return &exercises[0], nil
}

func (r *Repo) Add(ctx context.Context, ex Exercise) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(ctx, `
		INSERT INTO exercise (
			id, name, muscle_group_id, description, exercise_log_type,
			belongs_to_user_id, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`,
		ex.ID, ex.Name, ex.MuscleGroupID, ex.Description, int(ex.LogType),
		ex.BelongsToUserID, ex.CreatedAt, ex.UpdatedAt,
	)
	if err != nil {
		return nil, translateWriteErr(err)
	}

	return r.Get(ctx, ex.ID)
}

// Update changes an exercise owned by ex.BelongsToUserID. Shared exercises never match.
func (r *Repo) Update(ctx context.Context, ex Exercise) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `
		UPDATE exercise
		SET name = $3, muscle_group_id = $4, description = $5,
			exercise_log_type = $6, updated_at = $7
		WHERE id = $1 AND belongs_to_user_id = $2
	`,
		ex.ID, ex.BelongsToUserID,
		ex.Name, ex.MuscleGroupID, ex.Description, int(ex.LogType), ex.UpdatedAt,
	)
	if err != nil {
		return nil, translateWriteErr(err)
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrExerciseNotFound
	}

	return r.Get(ctx, ex.ID)
}

func (r *Repo) Delete(ctx context.Context, id, ownerID uuid.UUID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `
		DELETE FROM exercise
		WHERE id = $1 AND belongs_to_user_id = $2
	`, id, ownerID)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return ErrExerciseInUse
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrExerciseNotFound
	}

	return nil
}

func (r *Repo) Count(ctx context.Context, filter query.Filter) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.count")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	where, args := filter.Where(1)
	var count int
	err = r.db.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM exercise e
		JOIN muscle_group mg ON mg.id = e.muscle_group_id
		`+where,
		args...,
	).Scan(&count)
	if err != nil {
		return -1, err
	}

	return count, nil
}

func (r *Repo) List(ctx context.Context, filter query.Filter, sort query.Sort, window query.Window) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.list")
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
		FROM exercise e
		JOIN muscle_group mg ON mg.id = e.muscle_group_id
		%s
		%s
		LIMIT $%d OFFSET $%d
	`, exerciseColumns, where, sort.OrderBy("e.id"), n+1, n+2)

	rows, err := r.db.Query(ctx, sql, append(args, window.Take, window.Skip)...)
	if err != nil {
		return nil, err
	}

	return rows2exercises(rows)
}

func rows2exercises(rows pgx.Rows) ([]Exercise, error) {
	defer rows.Close()

	exercises := make([]Exercise, 0)
	for rows.Next() {
		var (
			ex      Exercise
			logType int16
		)
		if err := rows.Scan(
			&ex.ID, &ex.Name, &ex.MuscleGroupID, &ex.MuscleGroupName, &ex.Description,
			&logType, &ex.BelongsToUserID, &ex.CreatedAt, &ex.UpdatedAt,
		); err != nil {
			return nil, err
		}
		ex.LogType = LogType(logType)
		exercises = append(exercises, ex)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return exercises, nil
}

func translateWriteErr(err error) error {
	switch {
	case pkg.IsUniqueViolationError(err):
		return ErrDuplicateName
	case pkg.IsForeignKeyViolationError(err):
		return ErrMuscleGroupNotFound
	default:
		return err
	}
}
