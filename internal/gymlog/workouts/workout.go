package workouts

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/2beens/gymlog/internal/gymlog/exercises"
	"github.com/2beens/gymlog/internal/gymlog/query"
)

var (
	ErrWorkoutNotFound         = errors.New("workout not found")
	ErrExerciseWorkoutNotFound = errors.New("exercise workout not found")
)

// Date is a calendar day, encoded as YYYY-MM-DD.
type Date struct {
	t time.Time
}

func NewDate(t time.Time) Date {
	return Date{t: query.Day(t)}
}

// Time is midnight UTC of the day.
func (d Date) Time() time.Time {
	return d.t
}

func (d Date) IsZero() bool {
	return d.t.IsZero()
}

func (d Date) String() string {
	return d.t.Format(query.DateLayout)
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(text []byte) error {
	t, err := time.Parse(query.DateLayout, string(text))
	if err != nil {
		return fmt.Errorf("date must look like %s: %w", query.DateLayout, err)
	}
	d.t = t
	return nil
}

type Workout struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Description     *string   `json:"description,omitempty"`
	Date            Date      `json:"date"`
	BelongsToUserID uuid.UUID `json:"belongsToUserId"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`

	// aggregated over the workout's exercise-workouts, filled by listings
	ExercisesCount int     `json:"exercisesCount"`
	TotalSets      int     `json:"totalSets"`
	TotalReps      int     `json:"totalReps"`
	TotalWeight    float64 `json:"totalWeight"`
}

type WorkoutInput struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Date        Date    `json:"date"`
}

// ExerciseWorkout is one exercise performed within a workout. The totals are
// denormalized from its sets and rewritten whenever the sets change.
type ExerciseWorkout struct {
	ID              uuid.UUID         `json:"id"`
	WorkoutID       uuid.UUID         `json:"workoutId"`
	ExerciseID      uuid.UUID         `json:"exerciseId"`
	ExerciseName    string            `json:"exerciseName"`
	ExerciseLogType exercises.LogType `json:"exerciseLogType"`
	Index           int               `json:"index"`
	Note            *string           `json:"note,omitempty"`
	TotalWeight     float64           `json:"totalWeight"`
	TotalReps       int               `json:"totalReps"`
	TotalSets       int               `json:"totalSets"`
	BelongsToUserID uuid.UUID         `json:"belongsToUserId"`
	CreatedAt       time.Time         `json:"createdAt"`
	Sets            []ExerciseSet     `json:"sets"`
}

type ExerciseSet struct {
	ID                uuid.UUID `json:"id"`
	ExerciseWorkoutID uuid.UUID `json:"exerciseWorkoutId"`
	Index             int       `json:"index"`
	Weight            *float64  `json:"weight"`
	Reps              *int      `json:"reps"`
	TimeSeconds       *int      `json:"time"`
	Note              *string   `json:"note,omitempty"`
}

type Totals struct {
	Weight float64
	Reps   int
	Sets   int
}

// ComputeTotals sums weight and reps over sets and counts them.
func ComputeTotals(sets []ExerciseSet) Totals {
	t := Totals{Sets: len(sets)}
	for _, s := range sets {
		if s.Weight != nil {
			t.Weight += *s.Weight
		}
		if s.Reps != nil {
			t.Reps += *s.Reps
		}
	}
	return t
}

func (ew *ExerciseWorkout) applyTotals() {
	t := ComputeTotals(ew.Sets)
	ew.TotalWeight = t.Weight
	ew.TotalReps = t.Reps
	ew.TotalSets = t.Sets
}

type SetInput struct {
	Index  *int     `json:"index,omitempty"`
	Weight *float64 `json:"weight,omitempty"`
	Reps   *int     `json:"reps,omitempty"`
	Time   *int     `json:"time,omitempty"`
	Note   *string  `json:"note,omitempty"`
}

type LogExerciseInput struct {
	ExerciseID uuid.UUID  `json:"exerciseId"`
	Note       *string    `json:"note,omitempty"`
	Sets       []SetInput `json:"sets"`
}

// WorkoutDetail is a workout with its exercise-workouts ordered by index.
type WorkoutDetail struct {
	Workout
	Exercises []ExerciseWorkout `json:"exercises"`
}
