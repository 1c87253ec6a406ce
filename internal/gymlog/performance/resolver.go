package performance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/gymlog/internal/apperr"
	"github.com/2beens/gymlog/internal/gymlog/query"
	"github.com/2beens/gymlog/internal/gymlog/workouts"
	"github.com/2beens/gymlog/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=resolver_mocks_test.go -package=performance_test

type performanceRepo interface {
	WorkoutDate(ctx context.Context, workoutID, ownerID uuid.UUID) (time.Time, bool, error)
	Latest(ctx context.Context, filter query.Filter) (*ExerciseWorkoutSummary, error)
	Count(ctx context.Context, filter query.Filter) (int, error)
	List(ctx context.Context, filter query.Filter, sort query.Sort, window query.Window) ([]ExerciseWorkoutSummary, error)
	Sets(ctx context.Context, exerciseWorkoutIDs []uuid.UUID) (map[uuid.UUID][]workouts.ExerciseSet, error)
}

// HistorySorts are the sort keys accepted by the exercise history listing.
var HistorySorts = query.NewSortSet(
	query.SortKey{Name: "date", Column: "w.date", DefaultDir: query.Descending},
	query.SortKey{Name: "createdAt", Column: "ew.created_at", DefaultDir: query.Descending},
	query.SortKey{Name: "totalWeight", Column: "ew.total_weight", DefaultDir: query.Descending},
)

// Resolver finds previously logged performances of an exercise.
type Resolver struct {
	repo performanceRepo
}

func NewResolver(repo performanceRepo) *Resolver {
	return &Resolver{
		repo: repo,
	}
}

// CandidateFilter matches the requester's exercise-workouts of exerciseID,
// minus the ones in excludeWorkoutID and, with a boundary, those dated after it.
func CandidateFilter(exerciseID, requesterID, excludeWorkoutID uuid.UUID, boundary *time.Time) query.Filter {
	return query.Filter{}.
		And(query.EqualUUID("ew.exercise_id", exerciseID)).
		And(query.OwnedBy("ew.belongs_to_user_id", requesterID)).
		AndIf(excludeWorkoutID != uuid.Nil, func() query.Predicate {
			return query.NotEqualUUID("ew.workout_id", excludeWorkoutID)
		}).
		AndIf(boundary != nil, func() query.Predicate {
			return query.OnOrBefore("w.date", *boundary)
		})
}

// Latest returns the most recent prior performance of exerciseID, or nil when
// there is none. workoutID is optional: when it resolves to one of the
// requester's workouts its date bounds the search; it is excluded either way.
func (r *Resolver) Latest(ctx context.Context, exerciseID, workoutID, requesterID uuid.UUID) (_ *ExerciseWorkoutSummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.performance.latest")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("exercise", exerciseID.String()),
		attribute.String("workout", workoutID.String()),
	)

	if exerciseID == uuid.Nil {
		return nil, apperr.InvalidArgument("exercise id is required")
	}
	if requesterID == uuid.Nil {
		return nil, apperr.Unauthorized("performance lookups require a user")
	}

	var boundary *time.Time
	if workoutID != uuid.Nil {
		date, found, err := r.repo.WorkoutDate(ctx, workoutID, requesterID)
		if err != nil {
			return nil, apperr.Unavailable("resolve workout date", err)
		}
		if found {
			boundary = &date
		}
	}
	span.SetAttributes(attribute.Bool("bounded", boundary != nil))

	latest, err := r.repo.Latest(ctx, CandidateFilter(exerciseID, requesterID, workoutID, boundary))
	if err != nil {
		return nil, apperr.Unavailable("latest exercise workout", err)
	}
	if latest == nil {
		return nil, nil
	}

	sets, err := r.repo.Sets(ctx, []uuid.UUID{latest.ExerciseWorkoutID})
	if err != nil {
		return nil, apperr.Unavailable("load sets", err)
	}
	latest.withSets(sets[latest.ExerciseWorkoutID])

	return latest, nil
}

// History pages through every logged performance of exerciseID by the requester.
func (r *Resolver) History(ctx context.Context, exerciseID uuid.UUID, req query.Request, requesterID uuid.UUID) (_ *query.Page[ExerciseWorkoutSummary], err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.performance.history")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if exerciseID == uuid.Nil {
		return nil, apperr.InvalidArgument("exercise id is required")
	}
	if requesterID == uuid.Nil {
		return nil, apperr.Unauthorized("exercise history requires a user")
	}

	filter := CandidateFilter(exerciseID, requesterID, uuid.Nil, nil).
		AndIf(req.Search != "", func() query.Predicate {
			return query.ContainsFold("w.name", req.Search)
		}).
		AndIf(req.WorkoutDate != nil, func() query.Predicate {
			return query.SameDay("w.date", *req.WorkoutDate)
		})
	sort := HistorySorts.Resolve(req.SortColumn, req.SortDirection)

	page, err := query.Paginate[ExerciseWorkoutSummary](ctx, r.repo, req, filter, sort)
	if err != nil {
		return nil, err
	}
	if len(page.Items) == 0 {
		return page, nil
	}

	ids := make([]uuid.UUID, len(page.Items))
	for i := range page.Items {
		ids[i] = page.Items[i].ExerciseWorkoutID
	}
	sets, err := r.repo.Sets(ctx, ids)
	if err != nil {
		return nil, apperr.Unavailable("load sets", err)
	}
	for i := range page.Items {
		page.Items[i].withSets(sets[page.Items[i].ExerciseWorkoutID])
	}

	return page, nil
}
