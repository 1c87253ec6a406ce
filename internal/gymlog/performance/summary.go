package performance

import (
	"time"

	"github.com/google/uuid"

	"github.com/2beens/gymlog/internal/gymlog/exercises"
	"github.com/2beens/gymlog/internal/gymlog/workouts"
)

// ExerciseWorkoutSummary is one logged performance of an exercise: the
// exercise, the workout it happened in, the stored totals and the ordered sets.
type ExerciseWorkoutSummary struct {
	ExerciseWorkoutID   uuid.UUID              `json:"exerciseWorkoutId"`
	ExerciseID          uuid.UUID              `json:"exerciseId"`
	ExerciseName        string                 `json:"exerciseName"`
	ExerciseLogType     exercises.LogType      `json:"exerciseLogType"`
	ExerciseDescription *string                `json:"exerciseDescription,omitempty"`
	WorkoutID           uuid.UUID              `json:"workoutId"`
	WorkoutName         string                 `json:"workoutName"`
	WorkoutDate         workouts.Date          `json:"workoutDate"`
	Note                *string                `json:"note,omitempty"`
	TotalWeight         float64                `json:"totalWeight"`
	TotalReps           int                    `json:"totalReps"`
	TotalSets           int                    `json:"totalSets"`
	CreatedAt           time.Time              `json:"createdAt"`
	Sets                []workouts.ExerciseSet `json:"sets"`
}

// withSets attaches sets and derives the set count from them. Stored weight
// and reps totals are kept as they are.
func (s *ExerciseWorkoutSummary) withSets(sets []workouts.ExerciseSet) {
	if sets == nil {
		sets = make([]workouts.ExerciseSet, 0)
	}
	s.Sets = sets
	s.TotalSets = len(sets)
}

type LatestResponse struct {
	Latest *ExerciseWorkoutSummary `json:"latest"`
}
