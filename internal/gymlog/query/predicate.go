package query

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Predicate is a single SQL condition using '?' as the argument placeholder.
// Placeholders are rewritten to positional $n arguments by Filter.Where.
type Predicate struct {
	SQL  string
	Args []any
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsFold matches rows whose column contains term, ignoring case.
func ContainsFold(column, term string) Predicate {
	return Predicate{
		SQL:  column + ` ILIKE '%' || ? || '%'`,
		Args: []any{likeEscaper.Replace(term)},
	}
}

func EqualUUID(column string, id uuid.UUID) Predicate {
	return Predicate{SQL: column + " = ?", Args: []any{id}}
}

func NotEqualUUID(column string, id uuid.UUID) Predicate {
	return Predicate{SQL: column + " <> ?", Args: []any{id}}
}

func EqualInt(column string, v int) Predicate {
	return Predicate{SQL: column + " = ?", Args: []any{v}}
}

// Day truncates t to midnight UTC of its calendar day.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDay matches a DATE column against the calendar day of t.
func SameDay(column string, t time.Time) Predicate {
	return Predicate{SQL: column + " = ?::date", Args: []any{Day(t)}}
}

func OnOrBefore(column string, t time.Time) Predicate {
	return Predicate{SQL: column + " <= ?::date", Args: []any{Day(t)}}
}

// SharedOrOwned matches rows with no owner, or owned by userID.
func SharedOrOwned(ownerColumn string, userID uuid.UUID) Predicate {
	return Predicate{
		SQL:  fmt.Sprintf("(%s IS NULL OR %s = ?)", ownerColumn, ownerColumn),
		Args: []any{userID},
	}
}

func OwnedBy(ownerColumn string, userID uuid.UUID) Predicate {
	return EqualUUID(ownerColumn, userID)
}

// Filter is a conjunction of predicates. The zero value matches everything.
type Filter struct {
	preds []Predicate
}

func (f Filter) And(p Predicate) Filter {
	preds := make([]Predicate, len(f.preds), len(f.preds)+1)
	copy(preds, f.preds)
	return Filter{preds: append(preds, p)}
}

// AndIf adds p only when cond holds, so optional request filters can be chained.
func (f Filter) AndIf(cond bool, p func() Predicate) Filter {
	if !cond {
		return f
	}
	return f.And(p())
}

func (f Filter) Len() int {
	return len(f.preds)
}

// Where renders the filter as a WHERE clause with positional arguments
// numbered from startArg. An empty filter renders as an empty string.
func (f Filter) Where(startArg int) (string, []any) {
	if len(f.preds) == 0 {
		return "", nil
	}

	var (
		sb   strings.Builder
		args []any
		n    = startArg
	)
	sb.WriteString("WHERE ")
	for i, p := range f.preds {
		if i > 0 {
			sb.WriteString(" AND ")
		}
		for _, r := range p.SQL {
			if r == '?' {
				sb.WriteString(fmt.Sprintf("$%d", n))
				n++
				continue
			}
			sb.WriteRune(r)
		}
		args = append(args, p.Args...)
	}
	return sb.String(), args
}
