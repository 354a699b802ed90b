// Package filters turns loosely typed filter input into a typed predicate
// over the tasks table.
package filters

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/taskhub/taskhub/internal/common"
	"github.com/taskhub/taskhub/internal/server/models"
)

// RawCriteria is filter input as received from a transport. Tags keeps the
// raw JSON so that non-list values can be reported.
type RawCriteria struct {
	Tags      json.RawMessage
	StartDate string
	EndDate   string
	Completed string
	Priority  string
}

// Completion selects tasks by their completion flag.
type Completion int

const (
	CompletionAll Completion = iota
	CompletionDone
	CompletionOpen
)

// Criteria is validated filter input. Zero values mean "no constraint".
type Criteria struct {
	TagIDs    []int64
	Start     *time.Time
	End       *time.Time
	Completed Completion
	Priority  models.Priority
}

// Parse validates raw input. Falsy values of each field ("", null, [], 0,
// false) impose no constraint.
func Parse(raw RawCriteria) (Criteria, error) {
	var c Criteria

	ids, err := parseTags(raw.Tags)
	if err != nil {
		return Criteria{}, err
	}
	c.TagIDs = ids

	if s := strings.TrimSpace(raw.StartDate); s != "" {
		d, err := models.ParseDate(s)
		if err != nil {
			return Criteria{}, common.Invalid("invalid start_date, expected YYYY-MM-DD")
		}
		c.Start = &d
	}
	if s := strings.TrimSpace(raw.EndDate); s != "" {
		d, err := models.ParseDate(s)
		if err != nil {
			return Criteria{}, common.Invalid("invalid end_date, expected YYYY-MM-DD")
		}
		c.End = &d
	}

	switch strings.ToLower(strings.TrimSpace(raw.Completed)) {
	case "true":
		c.Completed = CompletionDone
	case "false":
		c.Completed = CompletionOpen
	default:
		c.Completed = CompletionAll
	}

	if raw.Priority != "" {
		p, ok := models.ParsePriority(raw.Priority)
		if !ok {
			return Criteria{}, common.Invalid("invalid priority value")
		}
		c.Priority = p
	}

	return c, nil
}

func parseTags(raw json.RawMessage) ([]int64, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, common.Invalid("tags must be a list of tag IDs")
	}

	switch t := v.(type) {
	case nil:
		return nil, nil
	case bool:
		if !t {
			return nil, nil
		}
	case string:
		if t == "" {
			return nil, nil
		}
	case json.Number:
		if f, err := t.Float64(); err == nil && f == 0 {
			return nil, nil
		}
	case map[string]any:
		if len(t) == 0 {
			return nil, nil
		}
	case []any:
		if len(t) == 0 {
			return nil, nil
		}
		ids := make([]int64, 0, len(t))
		for _, el := range t {
			id, ok := tagID(el)
			if !ok {
				return nil, common.Invalid("invalid tag IDs")
			}
			ids = append(ids, id)
		}
		return ids, nil
	}

	return nil, common.Invalid("tags must be a list of tag IDs")
}

func tagID(v any) (int64, bool) {
	switch t := v.(type) {
	case json.Number:
		if id, err := t.Int64(); err == nil {
			return id, true
		}
		f, err := t.Float64()
		if err != nil || f != math.Trunc(f) || math.Abs(f) >= math.MaxInt64 {
			return 0, false
		}
		return int64(f), true
	case string:
		id, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		return id, err == nil
	default:
		return 0, false
	}
}

// Predicate converts the criteria to clauses in a fixed order: tags, date
// range, completion, priority.
func (c Criteria) Predicate() Predicate {
	var p Predicate

	if len(c.TagIDs) > 0 {
		p = p.And(In(ColumnTagID, c.TagIDs))
	}

	if c.Start != nil || c.End != nil {
		var from, to any
		if c.Start != nil {
			from = models.FormatDate(*c.Start)
		}
		if c.End != nil {
			to = models.FormatDate(*c.End)
		}
		p = p.And(Range(ColumnDateCreated, from, to))
	}

	switch c.Completed {
	case CompletionDone:
		p = p.And(Equals(ColumnIsCompleted, true))
	case CompletionOpen:
		p = p.And(Equals(ColumnIsCompleted, false))
	}

	if c.Priority != 0 {
		p = p.And(Equals(ColumnPriority, int(c.Priority)))
	}

	return p
}
