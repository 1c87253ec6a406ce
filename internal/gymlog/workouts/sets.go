package workouts

import (
	"github.com/google/uuid"

	"github.com/2beens/gymlog/internal/apperr"
	"github.com/2beens/gymlog/internal/gymlog/exercises"
)

// BuildSets validates inputs against the exercise log type and turns them into
// sets of exerciseWorkoutID. Fields the log type does not record are dropped.
// Missing indexes follow the position in the input.
func BuildSets(logType exercises.LogType, exerciseWorkoutID uuid.UUID, in []SetInput) ([]ExerciseSet, error) {
	if !logType.Valid() {
		return nil, apperr.InvalidArgument("exercise log type %s cannot be logged", logType)
	}

	sets := make([]ExerciseSet, 0, len(in))
	seen := make(map[int]struct{}, len(in))
	for i, s := range in {
		idx := i
		if s.Index != nil {
			idx = *s.Index
		}
		if idx < 0 {
			return nil, apperr.InvalidArgument("set %d: index must not be negative", i)
		}
		if _, dup := seen[idx]; dup {
			return nil, apperr.InvalidArgument("set %d: index %d used twice", i, idx)
		}
		seen[idx] = struct{}{}

		set := ExerciseSet{
			ID:                uuid.New(),
			ExerciseWorkoutID: exerciseWorkoutID,
			Index:             idx,
			Note:              s.Note,
		}

		if logType.UsesWeight() {
			if s.Weight == nil || *s.Weight < 0 {
				return nil, apperr.InvalidArgument("set %d: %s needs a non-negative weight", i, logType)
			}
			set.Weight = s.Weight
		}
		if logType.UsesReps() {
			if s.Reps == nil || *s.Reps <= 0 {
				return nil, apperr.InvalidArgument("set %d: %s needs positive reps", i, logType)
			}
			set.Reps = s.Reps
		}
		if logType.UsesTime() {
			if s.Time == nil || *s.Time <= 0 {
				return nil, apperr.InvalidArgument("set %d: %s needs a positive time", i, logType)
			}
			set.TimeSeconds = s.Time
		}

		sets = append(sets, set)
	}

	return sets, nil
}
