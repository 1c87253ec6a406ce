package workouts

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/gymlog/internal/apperr"
	"github.com/2beens/gymlog/internal/gymlog/exercises"
	"github.com/2beens/gymlog/internal/gymlog/query"
	"github.com/2beens/gymlog/internal/telemetry/metrics"
	"github.com/2beens/gymlog/internal/telemetry/tracing"
	"github.com/2beens/gymlog/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=workouts_test

type workoutsRepo interface {
	Count(ctx context.Context, filter query.Filter) (int, error)
	List(ctx context.Context, filter query.Filter, sort query.Sort, window query.Window) ([]Workout, error)
	Get(ctx context.Context, id uuid.UUID) (*Workout, error)
	Add(ctx context.Context, w Workout) (*Workout, error)
	Update(ctx context.Context, w Workout) (*Workout, error)
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
	ExerciseWorkouts(ctx context.Context, workoutID uuid.UUID) ([]ExerciseWorkout, error)
	GetExerciseWorkout(ctx context.Context, id uuid.UUID) (*ExerciseWorkout, error)
	AddExerciseWorkout(ctx context.Context, ew ExerciseWorkout) (*ExerciseWorkout, error)
	ReplaceSets(ctx context.Context, exerciseWorkoutID, ownerID uuid.UUID, sets []ExerciseSet) (*ExerciseWorkout, error)
	RemoveExerciseWorkout(ctx context.Context, workoutID, exerciseWorkoutID, ownerID uuid.UUID) error
}

type exerciseFinder interface {
	Get(ctx context.Context, id, requesterID uuid.UUID) (*exercises.Exercise, error)
}

// Sorts are the sort keys accepted by the workout listing.
var Sorts = query.NewSortSet(
	query.SortKey{Name: "date", Column: "w.date", DefaultDir: query.Descending},
	query.SortKey{Name: "name", Column: "lower(w.name)", DefaultDir: query.Ascending},
	query.SortKey{Name: "createdAt", Column: "w.created_at", DefaultDir: query.Descending},
)

type Service struct {
	repo           workoutsRepo
	exercises      exerciseFinder
	clock          pkg.Clock
	metricsManager *metrics.Manager
}

func NewService(
	repo workoutsRepo,
	finder exerciseFinder,
	clock pkg.Clock,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		repo:           repo,
		exercises:      finder,
		clock:          clock,
		metricsManager: metricsManager,
	}
}

// ListFilter builds the workout listing filter. Only the requester's workouts match.
func ListFilter(req query.Request, requesterID uuid.UUID) query.Filter {
	return query.Filter{}.
		And(query.OwnedBy("w.belongs_to_user_id", requesterID)).
		AndIf(req.Search != "", func() query.Predicate {
			return query.ContainsFold("w.name", req.Search)
		}).
		AndIf(req.WorkoutDate != nil, func() query.Predicate {
			return query.SameDay("w.date", *req.WorkoutDate)
		})
}

func (s *Service) List(ctx context.Context, req query.Request, requesterID uuid.UUID) (_ *query.Page[Workout], err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if requesterID == uuid.Nil {
		return nil, apperr.Unauthorized("listing workouts requires a user")
	}

	sort := Sorts.Resolve(req.SortColumn, req.SortDirection)
	return query.Paginate[Workout](ctx, s.repo, req, ListFilter(req, requesterID), sort)
}

// Get returns the workout with its exercise-workouts and sets. Totals of each
// exercise-workout are recomputed from the sets that were read.
func (s *Service) Get(ctx context.Context, requesterID, id uuid.UUID) (_ *WorkoutDetail, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id.String()))

	w, err := s.ownedWorkout(ctx, requesterID, id)
	if err != nil {
		return nil, err
	}

	ews, err := s.repo.ExerciseWorkouts(ctx, id)
	if err != nil {
		return nil, apperr.Unavailable("list exercise workouts", err)
	}
	for i := range ews {
		ews[i].applyTotals()
	}

	return &WorkoutDetail{
		Workout:   *w,
		Exercises: ews,
	}, nil
}

func (s *Service) Add(ctx context.Context, requesterID uuid.UUID, in WorkoutInput) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if requesterID == uuid.Nil {
		return nil, apperr.Unauthorized("adding workouts requires a user")
	}
	in, err = normalizeWorkoutInput(in, s.clock)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	w, err := s.repo.Add(ctx, Workout{
		ID:              uuid.New(),
		Name:            in.Name,
		Description:     in.Description,
		Date:            in.Date,
		BelongsToUserID: requesterID,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	if err != nil {
		return nil, apperr.Unavailable("add workout", err)
	}

	log.Debugf("workout %s [%s] added by %s", w.ID, w.Date, requesterID)
	return w, nil
}

func (s *Service) Update(ctx context.Context, requesterID, id uuid.UUID, in WorkoutInput) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	existing, err := s.ownedWorkout(ctx, requesterID, id)
	if err != nil {
		return nil, err
	}
	in, err = normalizeWorkoutInput(in, s.clock)
	if err != nil {
		return nil, err
	}

	existing.Name = in.Name
	existing.Description = in.Description
	existing.Date = in.Date
	existing.UpdatedAt = s.clock.Now()

	updated, err := s.repo.Update(ctx, *existing)
	if err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			return nil, apperr.NotFound("workout %s", id)
		}
		return nil, apperr.Unavailable("update workout", err)
	}

	return updated, nil
}

func (s *Service) Delete(ctx context.Context, requesterID, id uuid.UUID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if requesterID == uuid.Nil {
		return apperr.Unauthorized("deleting workouts requires a user")
	}

	err = s.repo.Delete(ctx, id, requesterID)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrWorkoutNotFound):
		return apperr.NotFound("workout %s", id)
	default:
		return apperr.Unavailable("delete workout", err)
	}
}

// LogExercise adds an exercise with its sets to the end of a workout.
func (s *Service) LogExercise(ctx context.Context, requesterID, workoutID uuid.UUID, in LogExerciseInput) (_ *ExerciseWorkout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.log_exercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("workout", workoutID.String()),
		attribute.String("exercise", in.ExerciseID.String()),
	)

	if _, err := s.ownedWorkout(ctx, requesterID, workoutID); err != nil {
		return nil, err
	}
	if in.ExerciseID == uuid.Nil {
		return nil, apperr.InvalidArgument("exercise id is required")
	}
	if len(in.Sets) == 0 {
		return nil, apperr.InvalidArgument("at least one set is required")
	}

	ex, err := s.exercises.Get(ctx, in.ExerciseID, requesterID)
	if err != nil {
		return nil, err
	}

	ewID := uuid.New()
	sets, err := BuildSets(ex.LogType, ewID, in.Sets)
	if err != nil {
		return nil, err
	}

	ew, err := s.repo.AddExerciseWorkout(ctx, ExerciseWorkout{
		ID:              ewID,
		WorkoutID:       workoutID,
		ExerciseID:      ex.ID,
		ExerciseName:    ex.Name,
		ExerciseLogType: ex.LogType,
		Note:            trimmed(in.Note),
		BelongsToUserID: requesterID,
		CreatedAt:       s.clock.Now(),
		Sets:            sets,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrWorkoutNotFound):
			return nil, apperr.NotFound("workout %s", workoutID)
		case errors.Is(err, exercises.ErrExerciseNotFound):
			return nil, apperr.NotFound("exercise %s", in.ExerciseID)
		default:
			return nil, apperr.Unavailable("log exercise", err)
		}
	}

	s.countSets(len(sets))
	return ew, nil
}

// ReplaceSets overwrites the sets of an exercise-workout; totals follow.
func (s *Service) ReplaceSets(ctx context.Context, requesterID, workoutID, exerciseWorkoutID uuid.UUID, in []SetInput) (_ *ExerciseWorkout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.replace_sets")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	ew, err := s.ownedExerciseWorkout(ctx, requesterID, workoutID, exerciseWorkoutID)
	if err != nil {
		return nil, err
	}

	sets, err := BuildSets(ew.ExerciseLogType, ew.ID, in)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.ReplaceSets(ctx, ew.ID, requesterID, sets)
	if err != nil {
		if errors.Is(err, ErrExerciseWorkoutNotFound) {
			return nil, apperr.NotFound("exercise workout %s", exerciseWorkoutID)
		}
		return nil, apperr.Unavailable("replace sets", err)
	}

	s.countSets(len(sets))
	return updated, nil
}

func (s *Service) RemoveExercise(ctx context.Context, requesterID, workoutID, exerciseWorkoutID uuid.UUID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.remove_exercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if requesterID == uuid.Nil {
		return apperr.Unauthorized("changing workouts requires a user")
	}

	err = s.repo.RemoveExerciseWorkout(ctx, workoutID, exerciseWorkoutID, requesterID)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrExerciseWorkoutNotFound):
		return apperr.NotFound("exercise workout %s", exerciseWorkoutID)
	default:
		return apperr.Unavailable("remove exercise workout", err)
	}
}

func (s *Service) ownedWorkout(ctx context.Context, requesterID, id uuid.UUID) (*Workout, error) {
	if requesterID == uuid.Nil {
		return nil, apperr.Unauthorized("workouts require a user")
	}
	if id == uuid.Nil {
		return nil, apperr.InvalidArgument("workout id is required")
	}

	w, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			return nil, apperr.NotFound("workout %s", id)
		}
		return nil, apperr.Unavailable("get workout", err)
	}
	if w.BelongsToUserID != requesterID {
		return nil, apperr.NotFound("workout %s", id)
	}

	return w, nil
}

func (s *Service) ownedExerciseWorkout(ctx context.Context, requesterID, workoutID, id uuid.UUID) (*ExerciseWorkout, error) {
	if requesterID == uuid.Nil {
		return nil, apperr.Unauthorized("workouts require a user")
	}

	ew, err := s.repo.GetExerciseWorkout(ctx, id)
	if err != nil {
		if errors.Is(err, ErrExerciseWorkoutNotFound) {
			return nil, apperr.NotFound("exercise workout %s", id)
		}
		return nil, apperr.Unavailable("get exercise workout", err)
	}
	if ew.BelongsToUserID != requesterID || ew.WorkoutID != workoutID {
		return nil, apperr.NotFound("exercise workout %s", id)
	}

	return ew, nil
}

func (s *Service) countSets(n int) {
	if s.metricsManager != nil {
		s.metricsManager.CounterLoggedSets.Add(float64(n))
	}
}

func normalizeWorkoutInput(in WorkoutInput, clock pkg.Clock) (WorkoutInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return in, apperr.InvalidArgument("workout name is required")
	}
	if in.Date.IsZero() {
		in.Date = NewDate(clock.Now())
	}
	in.Description = trimmed(in.Description)
	return in, nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
