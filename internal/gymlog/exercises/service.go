package exercises

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/gymlog/internal/apperr"
	"github.com/2beens/gymlog/internal/gymlog/query"
	"github.com/2beens/gymlog/internal/telemetry/tracing"
	"github.com/2beens/gymlog/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=exercises_test

type exercisesRepo interface {
	Count(ctx context.Context, filter query.Filter) (int, error)
	List(ctx context.Context, filter query.Filter, sort query.Sort, window query.Window) ([]Exercise, error)
	Get(ctx context.Context, id uuid.UUID) (*Exercise, error)
	Add(ctx context.Context, ex Exercise) (*Exercise, error)
	Update(ctx context.Context, ex Exercise) (*Exercise, error)
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
	ListMuscleGroups(ctx context.Context) ([]MuscleGroup, error)
	AddMuscleGroup(ctx context.Context, mg MuscleGroup) (*MuscleGroup, error)
	DeleteMuscleGroup(ctx context.Context, id uuid.UUID) error
}

// Sorts are the sort keys accepted by the exercise listing.
var Sorts = query.NewSortSet(
	query.SortKey{Name: "name", Column: "lower(e.name)", DefaultDir: query.Ascending},
	query.SortKey{Name: "createdAt", Column: "e.created_at", DefaultDir: query.Descending},
	query.SortKey{Name: "muscleGroup", Column: "lower(mg.name)", DefaultDir: query.Ascending},
	query.SortKey{Name: "exerciseLogType", Column: "e.exercise_log_type", DefaultDir: query.Ascending},
)

type Service struct {
	repo         exercisesRepo
	muscleGroups *MuscleGroupsCache
	clock        pkg.Clock
}

func NewService(repo exercisesRepo, muscleGroups *MuscleGroupsCache, clock pkg.Clock) *Service {
	return &Service{
		repo:         repo,
		muscleGroups: muscleGroups,
		clock:        clock,
	}
}

// ListFilter builds the exercise listing filter. Visibility is always part of it.
func ListFilter(req query.Request, requesterID uuid.UUID) query.Filter {
	return query.Filter{}.
		And(query.SharedOrOwned("e.belongs_to_user_id", requesterID)).
		AndIf(req.Search != "", func() query.Predicate {
			return query.ContainsFold("e.name", req.Search)
		}).
		AndIf(req.MuscleGroupID != uuid.Nil, func() query.Predicate {
			return query.EqualUUID("e.muscle_group_id", req.MuscleGroupID)
		}).
		AndIf(req.ExerciseLogType != int(LogTypeUnknown), func() query.Predicate {
			return query.EqualInt("e.exercise_log_type", req.ExerciseLogType)
		})
}

// List returns shared exercises plus the ones the requester owns.
// An anonymous requester sees shared exercises only.
func (s *Service) List(ctx context.Context, req query.Request, requesterID uuid.UUID) (_ *query.Page[Exercise], err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.exercises.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	sort := Sorts.Resolve(req.SortColumn, req.SortDirection)
	return query.Paginate[Exercise](ctx, s.repo, req, ListFilter(req, requesterID), sort)
}

func (s *Service) Get(ctx context.Context, id, requesterID uuid.UUID) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.exercises.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if id == uuid.Nil {
		return nil, apperr.InvalidArgument("exercise id is required")
	}

	ex, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrExerciseNotFound) {
			return nil, apperr.NotFound("exercise %s", id)
		}
		return nil, apperr.Unavailable("get exercise", err)
	}
	if !ex.VisibleTo(requesterID) {
		return nil, apperr.NotFound("exercise %s", id)
	}

	return ex, nil
}

func (s *Service) Add(ctx context.Context, requesterID uuid.UUID, in ExerciseInput) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.exercises.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if requesterID == uuid.Nil {
		return nil, apperr.Unauthorized("adding exercises requires a user")
	}
	in, err = normalizeInput(in)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	ex, err := s.repo.Add(ctx, Exercise{
		ID:              uuid.New(),
		Name:            in.Name,
		MuscleGroupID:   in.MuscleGroupID,
		Description:     in.Description,
		LogType:         in.LogType,
		BelongsToUserID: &requesterID,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	if err != nil {
		return nil, classifyWriteErr("add exercise", in, err)
	}

	log.Debugf("exercise %s [%s] added by %s", ex.ID, ex.Name, requesterID)
	return ex, nil
}

// Update changes an exercise the requester owns. Shared exercises are read-only.
func (s *Service) Update(ctx context.Context, requesterID, id uuid.UUID, in ExerciseInput) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.exercises.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id.String()))

	existing, err := s.ownedExercise(ctx, requesterID, id)
	if err != nil {
		return nil, err
	}
	in, err = normalizeInput(in)
	if err != nil {
		return nil, err
	}

	existing.Name = in.Name
	existing.MuscleGroupID = in.MuscleGroupID
	existing.Description = in.Description
	existing.LogType = in.LogType
	existing.UpdatedAt = s.clock.Now()

	updated, err := s.repo.Update(ctx, *existing)
	if err != nil {
		return nil, classifyWriteErr("update exercise", in, err)
	}

	return updated, nil
}

func (s *Service) Delete(ctx context.Context, requesterID, id uuid.UUID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.exercises.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err := s.ownedExercise(ctx, requesterID, id); err != nil {
		return err
	}

	err = s.repo.Delete(ctx, id, requesterID)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrExerciseNotFound):
		return apperr.NotFound("exercise %s", id)
	case errors.Is(err, ErrExerciseInUse):
		return apperr.InvalidArgument("exercise %s is logged in workouts and cannot be deleted", id)
	default:
		return apperr.Unavailable("delete exercise", err)
	}
}

func (s *Service) ownedExercise(ctx context.Context, requesterID, id uuid.UUID) (*Exercise, error) {
	if requesterID == uuid.Nil {
		return nil, apperr.Unauthorized("changing exercises requires a user")
	}

	ex, err := s.Get(ctx, id, requesterID)
	if err != nil {
		return nil, err
	}
	if !ex.OwnedBy(requesterID) {
		return nil, apperr.InvalidArgument("shared exercise %s is read-only", id)
	}

	return ex, nil
}

func (s *Service) MuscleGroups(ctx context.Context) (_ []MuscleGroup, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.exercises.muscle_groups")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if s.muscleGroups != nil {
		if groups, ok := s.muscleGroups.Get(); ok {
			return groups, nil
		}
	}

	groups, err := s.repo.ListMuscleGroups(ctx)
	if err != nil {
		return nil, apperr.Unavailable("list muscle groups", err)
	}

	if s.muscleGroups != nil {
		s.muscleGroups.Set(groups)
	}
	return groups, nil
}

func (s *Service) AddMuscleGroup(ctx context.Context, requesterID uuid.UUID, in MuscleGroupInput) (_ *MuscleGroup, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.exercises.muscle_groups.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if requesterID == uuid.Nil {
		return nil, apperr.Unauthorized("adding muscle groups requires a user")
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperr.InvalidArgument("muscle group name is required")
	}

	mg, err := s.repo.AddMuscleGroup(ctx, MuscleGroup{
		ID:          uuid.New(),
		Name:        name,
		Description: in.Description,
		CreatedAt:   s.clock.Now(),
	})
	if err != nil {
		if errors.Is(err, ErrDuplicateName) {
			return nil, apperr.InvalidArgument("muscle group %q already exists", name)
		}
		return nil, apperr.Unavailable("add muscle group", err)
	}

	s.invalidateMuscleGroups()
	return mg, nil
}

// DeleteMuscleGroup refuses to delete groups that exercises still reference.
func (s *Service) DeleteMuscleGroup(ctx context.Context, requesterID, id uuid.UUID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.exercises.muscle_groups.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if requesterID == uuid.Nil {
		return apperr.Unauthorized("deleting muscle groups requires a user")
	}

	err = s.repo.DeleteMuscleGroup(ctx, id)
	switch {
	case err == nil:
		s.invalidateMuscleGroups()
		return nil
	case errors.Is(err, ErrMuscleGroupNotFound):
		return apperr.NotFound("muscle group %s", id)
	case errors.Is(err, ErrMuscleGroupInUse):
		return apperr.InvalidArgument("muscle group %s is referenced by exercises", id)
	default:
		return apperr.Unavailable("delete muscle group", err)
	}
}

func (s *Service) invalidateMuscleGroups() {
	if s.muscleGroups != nil {
		s.muscleGroups.Invalidate()
	}
}

func normalizeInput(in ExerciseInput) (ExerciseInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return in, apperr.InvalidArgument("exercise name is required")
	}
	if in.MuscleGroupID == uuid.Nil {
		return in, apperr.InvalidArgument("muscle group id is required")
	}
	if !in.LogType.Valid() {
		return in, apperr.InvalidArgument("exercise log type %s is not allowed", in.LogType)
	}
	return in, nil
}

func classifyWriteErr(op string, in ExerciseInput, err error) error {
	switch {
	case errors.Is(err, ErrDuplicateName):
		return apperr.InvalidArgument("exercise %q already exists", in.Name)
	case errors.Is(err, ErrMuscleGroupNotFound):
		return apperr.InvalidArgument("muscle group %s does not exist", in.MuscleGroupID)
	case errors.Is(err, ErrExerciseNotFound):
		return apperr.NotFound("exercise")
	default:
		return apperr.Unavailable(op, err)
	}
}
