//go:build integration_test || all_tests

package test

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/2beens/gymlog/internal/gymlog/dashboard"
	"github.com/2beens/gymlog/internal/gymlog/exercises"
	"github.com/2beens/gymlog/internal/gymlog/performance"
	"github.com/2beens/gymlog/internal/gymlog/query"
	"github.com/2beens/gymlog/internal/gymlog/workouts"
)

var benchPressID = uuid.MustParse("0e7d4b1a-5c3f-4d2e-8b61-3a9f5e2d0001")

func weightReps(pairs ...float64) []workouts.SetInput {
	sets := make([]workouts.SetInput, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		weight := pairs[i]
		reps := int(pairs[i+1])
		sets = append(sets, workouts.SetInput{Weight: &weight, Reps: &reps})
	}
	return sets
}

func (s *IntegrationTestSuite) addWorkout(ctx context.Context, token, name string, date time.Time) workouts.Workout {
	t := s.T()
	var w workouts.Workout
	s.Require().Equal(http.StatusCreated, s.doJSON(ctx, t, http.MethodPost, "/workouts", token, workouts.WorkoutInput{
		Name: name,
		Date: workouts.NewDate(date),
	}, &w))
	return w
}

func (s *IntegrationTestSuite) logExercise(ctx context.Context, token string, workoutID, exerciseID uuid.UUID, sets []workouts.SetInput) workouts.ExerciseWorkout {
	t := s.T()
	var ew workouts.ExerciseWorkout
	s.Require().Equal(http.StatusCreated, s.doJSON(ctx, t, http.MethodPost,
		fmt.Sprintf("/workouts/%s/exercises", workoutID), token,
		workouts.LogExerciseInput{ExerciseID: exerciseID, Sets: sets}, &ew))
	return ew
}

func (s *IntegrationTestSuite) TestSharedCatalog() {
	ctx := context.Background()
	t := s.T()
	_, token := s.newUser(ctx, t)

	var groups []exercises.MuscleGroup
	s.Require().Equal(http.StatusOK, s.doJSON(ctx, t, http.MethodGet, "/muscle-groups", token, nil, &groups))
	s.Len(groups, 6)

	var page query.Page[exercises.Exercise]
	s.Require().Equal(http.StatusOK, s.doJSON(ctx, t, http.MethodGet, "/exercises?search=bench&pageSize=5", token, nil, &page))
	s.Require().Len(page.Items, 1)
	s.Equal(benchPressID, page.Items[0].ID)
	s.Equal(1, page.Paging.TotalItems)
	s.Equal(5, page.Paging.PageSize)

	s.Equal(http.StatusBadRequest, s.doJSON(ctx, t, http.MethodGet, "/exercises?page=-1", token, nil, nil))
}

func (s *IntegrationTestSuite) TestCustomExerciseIsPrivate() {
	ctx := context.Background()
	t := s.T()
	_, ownerToken := s.newUser(ctx, t)
	_, otherToken := s.newUser(ctx, t)

	var ex exercises.Exercise
	s.Require().Equal(http.StatusCreated, s.doJSON(ctx, t, http.MethodPost, "/exercises", ownerToken, exercises.ExerciseInput{
		Name:          "Cable Fly " + uuid.NewString()[:8],
		MuscleGroupID: uuid.MustParse("6f1c2a52-0b8e-4c1e-9a53-1f0d2c7a0001"),
		LogType:       exercises.LogTypeWeightAndReps,
	}, &ex))
	s.NotNil(ex.BelongsToUserID)

	path := fmt.Sprintf("/exercises/%s", ex.ID)
	s.Equal(http.StatusOK, s.doJSON(ctx, t, http.MethodGet, path, ownerToken, nil, nil))
	s.Equal(http.StatusNotFound, s.doJSON(ctx, t, http.MethodGet, path, otherToken, nil, nil))
}

func (s *IntegrationTestSuite) TestLatestPerformanceAndDashboard() {
	ctx := context.Background()
	t := s.T()
	_, token := s.newUser(ctx, t)

	today := query.Day(time.Now())
	workoutA := s.addWorkout(ctx, token, "Push A", today.AddDate(0, 0, -2))
	workoutB := s.addWorkout(ctx, token, "Push B", today)

	logged := s.logExercise(ctx, token, workoutA.ID, benchPressID, weightReps(60, 10, 70, 8, 80, 6))
	s.Equal(3, logged.TotalSets)
	s.Equal(24, logged.TotalReps)
	s.InDelta(210.0, logged.TotalWeight, 0.001)

	// nothing logged in B yet: the latest performance relative to B is A's
	var latest performance.LatestResponse
	s.Require().Equal(http.StatusOK, s.doJSON(ctx, t, http.MethodGet,
		fmt.Sprintf("/exercises/%s/latest?workoutId=%s", benchPressID, workoutB.ID), token, nil, &latest))
	s.Require().NotNil(latest.Latest)
	s.Equal(workoutA.ID, latest.Latest.WorkoutID)
	s.Equal(3, latest.Latest.TotalSets)
	s.Len(latest.Latest.Sets, 3)

	s.logExercise(ctx, token, workoutB.ID, benchPressID, weightReps(85, 5))

	// relative to B, B itself is excluded
	latest = performance.LatestResponse{}
	s.Require().Equal(http.StatusOK, s.doJSON(ctx, t, http.MethodGet,
		fmt.Sprintf("/exercises/%s/latest?workoutId=%s", benchPressID, workoutB.ID), token, nil, &latest))
	s.Require().NotNil(latest.Latest)
	s.Equal(workoutA.ID, latest.Latest.WorkoutID)

	// without a workout the newest one wins
	latest = performance.LatestResponse{}
	s.Require().Equal(http.StatusOK, s.doJSON(ctx, t, http.MethodGet,
		fmt.Sprintf("/exercises/%s/latest", benchPressID), token, nil, &latest))
	s.Require().NotNil(latest.Latest)
	s.Equal(workoutB.ID, latest.Latest.WorkoutID)
	s.Equal(1, latest.Latest.TotalSets)

	// another user sees nothing
	_, otherToken := s.newUser(ctx, t)
	latest = performance.LatestResponse{}
	s.Require().Equal(http.StatusOK, s.doJSON(ctx, t, http.MethodGet,
		fmt.Sprintf("/exercises/%s/latest", benchPressID), otherToken, nil, &latest))
	s.Nil(latest.Latest)

	var history query.Page[performance.ExerciseWorkoutSummary]
	s.Require().Equal(http.StatusOK, s.doJSON(ctx, t, http.MethodGet,
		fmt.Sprintf("/exercises/%s/history", benchPressID), token, nil, &history))
	s.Equal(2, history.Paging.TotalItems)
	s.Require().Len(history.Items, 2)
	s.Equal(workoutB.ID, history.Items[0].WorkoutID)

	var snapshot dashboard.Snapshot
	s.Require().Equal(http.StatusOK, s.doJSON(ctx, t, http.MethodGet, "/dashboard", token, nil, &snapshot))
	s.Equal(2, snapshot.WorkoutsCount)
	s.GreaterOrEqual(snapshot.SeriesThisYear, 1)
	s.Require().NotNil(snapshot.LastWorkout)
	s.Equal(workoutB.ID, snapshot.LastWorkout.ID)
	s.Equal(1, snapshot.LastWorkout.TotalSets)

	var empty dashboard.Snapshot
	s.Require().Equal(http.StatusOK, s.doJSON(ctx, t, http.MethodGet, "/dashboard", otherToken, nil, &empty))
	s.Zero(empty.WorkoutsCount)
	s.Nil(empty.LastWorkout)
}

func (s *IntegrationTestSuite) TestRemoveExerciseFromWorkout() {
	ctx := context.Background()
	t := s.T()
	_, token := s.newUser(ctx, t)

	w := s.addWorkout(ctx, token, "Pull", query.Day(time.Now()))
	ew := s.logExercise(ctx, token, w.ID, benchPressID, weightReps(50, 10))

	var deleted workouts.DeleteResponse
	s.Require().Equal(http.StatusOK, s.doJSON(ctx, t, http.MethodDelete,
		fmt.Sprintf("/workouts/%s/exercises/%s", w.ID, ew.ID), token, nil, &deleted))
	s.Equal(ew.ID, deleted.DeletedID)

	var detail workouts.WorkoutDetail
	s.Require().Equal(http.StatusOK, s.doJSON(ctx, t, http.MethodGet, fmt.Sprintf("/workouts/%s", w.ID), token, nil, &detail))
	s.Empty(detail.Exercises)
}
