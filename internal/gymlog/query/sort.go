package query

import (
	"fmt"
)

// SortKey is one allow-listed sort option. Name is what clients send and
// Column is the SQL expression it maps to.
type SortKey struct {
	Name       string
	Column     string
	DefaultDir Direction
}

type Sort struct {
	Key       SortKey
	Direction Direction
}

// OrderBy renders the ORDER BY clause. idColumn breaks ties so that paging
// never repeats or skips rows with equal sort values.
func (s Sort) OrderBy(idColumn string) string {
	dir := "ASC"
	if s.Direction == Descending {
		dir = "DESC"
	}
	if idColumn == "" || idColumn == s.Key.Column {
		return fmt.Sprintf("ORDER BY %s %s", s.Key.Column, dir)
	}
	return fmt.Sprintf("ORDER BY %s %s, %s %s", s.Key.Column, dir, idColumn, dir)
}

// SortSet is the closed set of sort keys an entity accepts.
type SortSet struct {
	fallback SortKey
	keys     map[string]SortKey
}

func NewSortSet(fallback SortKey, keys ...SortKey) SortSet {
	set := SortSet{
		fallback: fallback,
		keys:     make(map[string]SortKey, len(keys)+1),
	}
	set.keys[fallback.Name] = fallback
	for _, k := range keys {
		set.keys[k.Name] = k
	}
	return set
}

// Resolve maps a client sort request onto an allowed key. Unknown or empty
// columns yield the fallback key in its default direction, whatever dir was asked.
func (s SortSet) Resolve(column string, dir Direction) Sort {
	key, ok := s.keys[column]
	if !ok || column == "" {
		return Sort{Key: s.fallback, Direction: s.fallback.DefaultDir}
	}
	if dir == Unspecified {
		dir = key.DefaultDir
	}
	return Sort{Key: key, Direction: dir}
}

func (s SortSet) Default() Sort {
	return Sort{Key: s.fallback, Direction: s.fallback.DefaultDir}
}

func (s SortSet) Names() []string {
	names := make([]string, 0, len(s.keys))
	for n := range s.keys {
		names = append(names, n)
	}
	return names
}
