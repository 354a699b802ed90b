package filters

import (
	"fmt"
	"strings"
)

// Column is a task column a clause may constrain. Values exist only as the
// package-level variables below, so no caller-supplied text reaches SQL.
type Column struct {
	name string
}

func (c Column) String() string { return c.name }

var (
	ColumnTagID       = Column{"t.tag_id"}
	ColumnDateCreated = Column{"t.date_created"}
	ColumnIsCompleted = Column{"t.is_completed"}
	ColumnPriority    = Column{"t.priority"}
	ColumnUserID      = Column{"t.user_id"}
)

// Clause is one typed condition of a Predicate.
type Clause interface {
	render(next func(v any) string) string
}

type equals struct {
	col   Column
	value any
}

// Equals matches rows where col = value.
func Equals(col Column, value any) Clause {
	return equals{col: col, value: value}
}

func (c equals) render(next func(v any) string) string {
	return fmt.Sprintf("%s = %s", c.col.name, next(c.value))
}

type in struct {
	col    Column
	values []any
}

// In matches rows where col is one of values. An empty list matches nothing.
func In[T any](col Column, values []T) Clause {
	vs := make([]any, len(values))
	for i, v := range values {
		vs[i] = v
	}
	return in{col: col, values: vs}
}

func (c in) render(next func(v any) string) string {
	if len(c.values) == 0 {
		return "FALSE"
	}
	ph := make([]string, len(c.values))
	for i, v := range c.values {
		ph[i] = next(v)
	}
	return fmt.Sprintf("%s IN (%s)", c.col.name, strings.Join(ph, ", "))
}

type between struct {
	col      Column
	from, to any
}

// Range matches rows where col lies in [from, to]. A nil bound leaves that
// side open.
func Range(col Column, from, to any) Clause {
	return between{col: col, from: from, to: to}
}

func (c between) render(next func(v any) string) string {
	switch {
	case c.from != nil && c.to != nil:
		lo := next(c.from)
		hi := next(c.to)
		return fmt.Sprintf("%s BETWEEN %s AND %s", c.col.name, lo, hi)
	case c.from != nil:
		return fmt.Sprintf("%s >= %s", c.col.name, next(c.from))
	case c.to != nil:
		return fmt.Sprintf("%s <= %s", c.col.name, next(c.to))
	default:
		return "TRUE"
	}
}

// Predicate is an ordered conjunction of clauses.
type Predicate struct {
	clauses []Clause
}

// NewPredicate builds a predicate from clauses.
func NewPredicate(clauses ...Clause) Predicate {
	return Predicate{clauses: clauses}
}

// And returns a copy of p with c appended.
func (p Predicate) And(c Clause) Predicate {
	clauses := make([]Clause, 0, len(p.clauses)+1)
	clauses = append(clauses, p.clauses...)
	return Predicate{clauses: append(clauses, c)}
}

func (p Predicate) Len() int { return len(p.clauses) }

// SQL renders the clauses joined with AND using $n placeholders numbered from
// firstArg, and returns the bound arguments in placeholder order. An empty
// predicate renders as "".
func (p Predicate) SQL(firstArg int) (string, []any) {
	if len(p.clauses) == 0 {
		return "", nil
	}

	var args []any
	next := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", firstArg+len(args)-1)
	}

	parts := make([]string, len(p.clauses))
	for i, c := range p.clauses {
		parts[i] = c.render(next)
	}
	return strings.Join(parts, " AND "), args
}
