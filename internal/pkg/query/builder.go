// Package query builds Spanner SELECT statements with a small fluent API.
// Parameter names are generated, never written by hand, so SQL fragments and
// parameter maps cannot drift apart.
package query

import (
	"fmt"
	"strings"

	"cloud.google.com/go/spanner"
)

// Direction is the ORDER BY direction.
type Direction int

const (
	// Asc sorts ascending.
	Asc Direction = iota
	// Desc sorts descending.
	Desc
)

// Builder assembles a SELECT statement for one table. All methods return a
// copy, so partially built queries can be shared and extended safely.
type Builder struct {
	table      string
	columns    []string
	conditions []Condition
	orderCol   string
	orderDir   Direction
	limit      int64
	offset     int64
}

// From starts a Builder for the given table.
func From(table string) *Builder {
	return &Builder{table: table}
}

// Select sets the columns to retrieve.
func (b *Builder) Select(columns ...string) *Builder {
	nb := b.clone()
	nb.columns = append(nb.columns, columns...)
	return nb
}

// Where adds a condition. Multiple conditions are ANDed.
func (b *Builder) Where(condition Condition) *Builder {
	nb := b.clone()
	nb.conditions = append(nb.conditions, condition)
	return nb
}

// OrderBy sets the sort column and direction.
func (b *Builder) OrderBy(column string, direction Direction) *Builder {
	nb := b.clone()
	nb.orderCol = column
	nb.orderDir = direction
	return nb
}

// Limit caps the number of returned rows.
func (b *Builder) Limit(limit int64) *Builder {
	nb := b.clone()
	nb.limit = limit
	return nb
}

// Offset skips the first offset rows.
func (b *Builder) Offset(offset int64) *Builder {
	nb := b.clone()
	nb.offset = offset
	return nb
}

// Count derives a COUNT(*) query with the same FROM and WHERE clauses,
// dropping ordering and pagination.
func (b *Builder) Count() *Builder {
	nb := b.clone()
	nb.columns = []string{"COUNT(*)"}
	nb.orderCol = ""
	nb.limit = 0
	nb.offset = 0
	return nb
}

// Build produces the final spanner.Statement.
func (b *Builder) Build() spanner.Statement {
	var sql strings.Builder
	params := make(map[string]interface{})

	sql.WriteString("SELECT ")
	if len(b.columns) == 0 {
		sql.WriteString("*")
	} else {
		sql.WriteString(strings.Join(b.columns, ", "))
	}

	sql.WriteString(" FROM ")
	sql.WriteString(b.table)

	if len(b.conditions) > 0 {
		sql.WriteString(" WHERE ")
		parts := make([]string, 0, len(b.conditions))
		paramIndex := 0
		for _, cond := range b.conditions {
			fragment, condParams := cond.SQL(paramIndex)
			parts = append(parts, fragment)
			for k, v := range condParams {
				params[k] = v
			}
			paramIndex += len(condParams)
		}
		sql.WriteString(strings.Join(parts, " AND "))
	}

	if b.orderCol != "" {
		sql.WriteString(" ORDER BY ")
		sql.WriteString(b.orderCol)
		if b.orderDir == Desc {
			sql.WriteString(" DESC")
		} else {
			sql.WriteString(" ASC")
		}
	}

	if b.limit > 0 {
		sql.WriteString(" LIMIT @limit")
		params["limit"] = b.limit
	}

	if b.offset > 0 {
		sql.WriteString(" OFFSET @offset")
		params["offset"] = b.offset
	}

	return spanner.Statement{SQL: sql.String(), Params: params}
}

func (b *Builder) clone() *Builder {
	nb := &Builder{
		table:      b.table,
		columns:    make([]string, len(b.columns)),
		conditions: make([]Condition, len(b.conditions)),
		orderCol:   b.orderCol,
		orderDir:   b.orderDir,
		limit:      b.limit,
		offset:     b.offset,
	}
	copy(nb.columns, b.columns)
	copy(nb.conditions, b.conditions)
	return nb
}

// String renders the statement for debugging.
func (b *Builder) String() string {
	stmt := b.Build()
	return fmt.Sprintf("SQL: %s\nParams: %v", stmt.SQL, stmt.Params)
}
