package exercises

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

var (
	ErrExerciseNotFound    = errors.New("exercise not found")
	ErrExerciseInUse       = errors.New("exercise is logged in workouts")
	ErrMuscleGroupNotFound = errors.New("muscle group not found")
	ErrMuscleGroupInUse    = errors.New("muscle group has exercises")
	ErrDuplicateName       = errors.New("name already taken")
)

// LogType tells which set fields are recorded for an exercise.
type LogType int

const (
	LogTypeUnknown LogType = iota
	LogTypeWeightAndReps
	LogTypeRepsOnly
	LogTypeTimeOnly
	LogTypeBodyWeight
	LogTypeBodyWeightWithAdditionalWeight
	LogTypeBodyWeightWithAssistance
)

var logTypeNames = map[LogType]string{
	LogTypeUnknown:                        "unknown",
	LogTypeWeightAndReps:                  "weightAndReps",
	LogTypeRepsOnly:                       "repsOnly",
	LogTypeTimeOnly:                       "timeOnly",
	LogTypeBodyWeight:                     "bodyWeight",
	LogTypeBodyWeightWithAdditionalWeight: "bodyWeightWithAdditionalWeight",
	LogTypeBodyWeightWithAssistance:       "bodyWeightWithAssistance",
}

func (lt LogType) String() string {
	if name, ok := logTypeNames[lt]; ok {
		return name
	}
	return "LogType(" + strconv.Itoa(int(lt)) + ")"
}

// Valid reports whether lt can be stored on an exercise.
func (lt LogType) Valid() bool {
	return lt > LogTypeUnknown && lt <= LogTypeBodyWeightWithAssistance
}

// UsesWeight reports whether sets of this type carry a weight value.
func (lt LogType) UsesWeight() bool {
	return lt == LogTypeWeightAndReps ||
		lt == LogTypeBodyWeightWithAdditionalWeight ||
		lt == LogTypeBodyWeightWithAssistance
}

func (lt LogType) UsesReps() bool {
	return lt != LogTypeTimeOnly && lt != LogTypeUnknown
}

func (lt LogType) UsesTime() bool {
	return lt == LogTypeTimeOnly
}

func (lt LogType) MarshalText() ([]byte, error) {
	return []byte(lt.String()), nil
}

// UnmarshalText accepts either the name or the numeric value.
func (lt *LogType) UnmarshalText(text []byte) error {
	s := string(text)
	for k, name := range logTypeNames {
		if name == s {
			*lt = k
			return nil
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < int(LogTypeUnknown) || n > int(LogTypeBodyWeightWithAssistance) {
		return fmt.Errorf("unknown exercise log type: %q", s)
	}
	*lt = LogType(n)
	return nil
}

type MuscleGroup struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Exercise struct {
	ID              uuid.UUID  `json:"id"`
	Name            string     `json:"name"`
	MuscleGroupID   uuid.UUID  `json:"muscleGroupId"`
	MuscleGroupName string     `json:"muscleGroupName"`
	Description     *string    `json:"description,omitempty"`
	LogType         LogType    `json:"exerciseLogType"`
	BelongsToUserID *uuid.UUID `json:"belongsToUserId"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// Shared exercises have no owner and are visible to everyone.
func (e *Exercise) Shared() bool {
	return e.BelongsToUserID == nil
}

func (e *Exercise) VisibleTo(userID uuid.UUID) bool {
	return e.Shared() || *e.BelongsToUserID == userID
}

func (e *Exercise) OwnedBy(userID uuid.UUID) bool {
	return !e.Shared() && userID != uuid.Nil && *e.BelongsToUserID == userID
}

// ExerciseInput is the client-editable part of an exercise.
type ExerciseInput struct {
	Name          string    `json:"name"`
	MuscleGroupID uuid.UUID `json:"muscleGroupId"`
	Description   *string   `json:"description,omitempty"`
	LogType       LogType   `json:"exerciseLogType"`
}

type MuscleGroupInput struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}
