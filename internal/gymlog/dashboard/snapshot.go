package dashboard

import (
	"time"

	"github.com/google/uuid"

	"github.com/2beens/gymlog/internal/gymlog/workouts"
)

// Window is a half-open [Start, End) range of calendar days.
type Window struct {
	Start time.Time
	End   time.Time
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// WeekOf returns the ISO week (Monday to Sunday, UTC) containing now.
func WeekOf(now time.Time) Window {
	day := startOfDay(now)
	sinceMonday := (int(day.Weekday()) + 6) % 7
	start := day.AddDate(0, 0, -sinceMonday)
	return Window{Start: start, End: start.AddDate(0, 0, 7)}
}

func MonthOf(now time.Time) Window {
	now = now.UTC()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return Window{Start: start, End: start.AddDate(0, 1, 0)}
}

func YearOf(now time.Time) Window {
	now = now.UTC()
	start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	return Window{Start: start, End: start.AddDate(1, 0, 0)}
}

// WindowStats are the totals of the workouts dated inside one window.
type WindowStats struct {
	Workouts int
	Series   int
	Weight   float64
}

type LastWorkout struct {
	ID          uuid.UUID     `json:"id"`
	Name        string        `json:"name"`
	Date        workouts.Date `json:"date"`
	CreatedAt   time.Time     `json:"createdAt"`
	TotalSets   int           `json:"totalSets"`
	TotalReps   int           `json:"totalReps"`
	TotalWeight float64       `json:"totalWeight"`
}

type Snapshot struct {
	WorkoutsCount     int          `json:"workoutsCount"`
	WorkoutsThisWeek  int          `json:"workoutsThisWeek"`
	WorkoutsThisMonth int          `json:"workoutsThisMonth"`
	WorkoutsThisYear  int          `json:"workoutsThisYear"`
	SeriesThisWeek    int          `json:"seriesThisWeek"`
	SeriesThisMonth   int          `json:"seriesThisMonth"`
	SeriesThisYear    int          `json:"seriesThisYear"`
	WeightThisWeek    float64      `json:"weightThisWeek"`
	WeightThisMonth   float64      `json:"weightThisMonth"`
	WeightThisYear    float64      `json:"weightThisYear"`
	LastWorkout       *LastWorkout `json:"lastWorkout"`
}
