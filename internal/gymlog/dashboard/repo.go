package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/2beens/gymlog/internal/gymlog/workouts"
	"github.com/2beens/gymlog/internal/telemetry/tracing"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) WorkoutsCount(ctx context.Context, ownerID uuid.UUID) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.dashboard.count")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var count int
	if err := r.db.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM workout WHERE belongs_to_user_id = $1;`,
		ownerID,
	).Scan(&count); err != nil {
		return 0, fmt.Errorf("count workouts: %w", err)
	}

	return count, nil
}

func (r *Repo) WindowStats(ctx context.Context, ownerID uuid.UUID, window Window) (_ WindowStats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.dashboard.window")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var stats WindowStats
	if err := r.db.QueryRow(
		ctx,
		`
			SELECT
				COUNT(DISTINCT w.id),
				COALESCE(SUM(ew.total_sets), 0),
				COALESCE(SUM(ew.total_weight), 0)::float8
			FROM workout w
			LEFT JOIN exercise_workout ew ON ew.workout_id = w.id
			WHERE w.belongs_to_user_id = $1
				AND w.date >= $2::date
				AND w.date < $3::date;
		`,
		ownerID, window.Start, window.End,
	).Scan(&stats.Workouts, &stats.Series, &stats.Weight); err != nil {
		return WindowStats{}, fmt.Errorf("window stats: %w", err)
	}

	return stats, nil
}

func (r *Repo) LastWorkout(ctx context.Context, ownerID uuid.UUID) (_ *LastWorkout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.dashboard.last")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var (
		last LastWorkout
		date time.Time
	)
	err = r.db.QueryRow(
		ctx,
		`
			SELECT
				w.id, w.name, w.date, w.created_at,
				COALESCE(SUM(ew.total_sets), 0),
				COALESCE(SUM(ew.total_reps), 0),
				COALESCE(SUM(ew.total_weight), 0)::float8
			FROM workout w
			LEFT JOIN exercise_workout ew ON ew.workout_id = w.id
			WHERE w.belongs_to_user_id = $1
			GROUP BY w.id
			ORDER BY w.date DESC, w.created_at DESC, w.id DESC
			LIMIT 1;
		`,
		ownerID,
	).Scan(
		&last.ID, &last.Name, &date, &last.CreatedAt,
		&last.TotalSets, &last.TotalReps, &last.TotalWeight,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("last workout: %w", err)
	}
	last.Date = workouts.NewDate(date)

	return &last, nil
}
