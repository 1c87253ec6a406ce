package query

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/2beens/gymlog/internal/apperr"
)

const (
	DefaultPageSize = 12
	MaxPageSize     = 100
	DateLayout      = "2006-01-02"
)

type Direction int

const (
	// Unspecified lets the resolved sort key pick its own direction.
	Unspecified Direction = iota
	Ascending
	Descending
)

func (d Direction) String() string {
	switch d {
	case Ascending:
		return "asc"
	case Descending:
		return "desc"
	default:
		return ""
	}
}

func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(text []byte) error {
	*d = ParseDirection(string(text))
	return nil
}

func ParseDirection(s string) Direction {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc", "ascending":
		return Ascending
	case "desc", "descending":
		return Descending
	default:
		return Unspecified
	}
}

// Request is the normalized paging request shared by all list endpoints.
// Entity specific filters are ignored by entities that do not have them.
type Request struct {
	Page          int
	PageSize      int
	Search        string
	SortColumn    string
	SortDirection Direction

	MuscleGroupID   uuid.UUID
	ExerciseLogType int
	WorkoutDate     *time.Time
}

func (r Request) Validate() error {
	if r.Page < 0 {
		return apperr.InvalidArgument("page must not be negative, got %d", r.Page)
	}
	if r.PageSize <= 0 {
		return apperr.InvalidArgument("page size must be positive, got %d", r.PageSize)
	}
	return nil
}

// Window is the slice of rows a page covers.
type Window struct {
	Skip int
	Take int
}

// Window saturates Skip at math.MaxInt, so a page too far out for int
// arithmetic reads as past the end.
func (r Request) Window() Window {
	skip := math.MaxInt
	if r.PageSize <= 0 || r.Page <= math.MaxInt/r.PageSize {
		skip = r.Page * r.PageSize
	}
	return Window{
		Skip: skip,
		Take: r.PageSize,
	}
}

// ParseRequest reads a paging request from URL query values. Missing page and
// size fall back to 0 and DefaultPageSize; sizes above MaxPageSize are clamped.
func ParseRequest(values url.Values) (Request, error) {
	req := Request{
		PageSize:      DefaultPageSize,
		Search:        strings.TrimSpace(values.Get("search")),
		SortColumn:    strings.TrimSpace(values.Get("sortColumn")),
		SortDirection: ParseDirection(values.Get("sortDirection")),
	}

	if v := values.Get("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil {
			return Request{}, apperr.InvalidArgument("page is not a number: %q", v)
		}
		req.Page = page
	}

	if v := values.Get("pageSize"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			return Request{}, apperr.InvalidArgument("page size is not a number: %q", v)
		}
		req.PageSize = min(size, MaxPageSize)
	}

	if v := values.Get("muscleGroupId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return Request{}, apperr.InvalidArgument("muscle group id is not a valid id: %q", v)
		}
		req.MuscleGroupID = id
	}

	if v := values.Get("exerciseLogType"); v != "" {
		logType, err := strconv.Atoi(v)
		if err != nil {
			return Request{}, apperr.InvalidArgument("exercise log type is not a number: %q", v)
		}
		req.ExerciseLogType = logType
	}

	if v := values.Get("workoutDate"); v != "" {
		day, err := time.Parse(DateLayout, v)
		if err != nil {
			return Request{}, apperr.InvalidArgument("workout date must look like %s: %q", DateLayout, v)
		}
		req.WorkoutDate = &day
	}

	return req, req.Validate()
}

type Meta struct {
	Page          int       `json:"page"`
	PageSize      int       `json:"pageSize"`
	TotalItems    int       `json:"totalItems"`
	TotalPages    int       `json:"totalPages"`
	Search        string    `json:"search"`
	SortColumn    string    `json:"sortColumn"`
	SortDirection Direction `json:"sortDirection"`
}

// Page is one page of results plus the paging metadata echoed back to the client.
type Page[T any] struct {
	Items  []T  `json:"items"`
	Paging Meta `json:"paging"`
}

func TotalPages(totalItems, pageSize int) int {
	if pageSize <= 0 || totalItems <= 0 {
		return 0
	}
	return (totalItems + pageSize - 1) / pageSize
}

func NewPage[T any](items []T, req Request, sort Sort, totalItems int) *Page[T] {
	if items == nil {
		items = make([]T, 0)
	}
	return &Page[T]{
		Items: items,
		Paging: Meta{
			Page:          req.Page,
			PageSize:      req.PageSize,
			TotalItems:    totalItems,
			TotalPages:    TotalPages(totalItems, req.PageSize),
			Search:        req.Search,
			SortColumn:    sort.Key.Name,
			SortDirection: sort.Direction,
		},
	}
}

func (w Window) String() string {
	return fmt.Sprintf("skip=%d take=%d", w.Skip, w.Take)
}
