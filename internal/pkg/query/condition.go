package query

import (
	"fmt"
	"strings"
)

// Condition is one WHERE clause predicate. Implementations emit a SQL
// fragment plus its parameter map using Spanner's @name placeholders;
// paramIndex seeds unique parameter names (@p0, @p1, ...).
type Condition interface {
	SQL(paramIndex int) (string, map[string]interface{})
}

// Eq builds a "field = value" condition.
func Eq(field string, value interface{}) Condition {
	return &eqCondition{field: field, value: value}
}

type eqCondition struct {
	field string
	value interface{}
}

func (c *eqCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	name := fmt.Sprintf("p%d", paramIndex)
	return fmt.Sprintf("%s = @%s", c.field, name), map[string]interface{}{name: c.value}
}

// In builds a "field IN (...)" condition.
func In(field string, values ...interface{}) Condition {
	return &inCondition{field: field, values: values}
}

type inCondition struct {
	field  string
	values []interface{}
}

func (c *inCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	if len(c.values) == 0 {
		// IN over an empty set matches nothing.
		return "FALSE", map[string]interface{}{}
	}
	params := make(map[string]interface{}, len(c.values))
	placeholders := make([]string, 0, len(c.values))
	for i, v := range c.values {
		name := fmt.Sprintf("p%d", paramIndex+i)
		placeholders = append(placeholders, "@"+name)
		params[name] = v
	}
	return fmt.Sprintf("%s IN (%s)", c.field, strings.Join(placeholders, ", ")), params
}

// IsNull builds a "field IS NULL" condition.
func IsNull(field string) Condition {
	return &isNullCondition{field: field}
}

type isNullCondition struct {
	field string
}

func (c *isNullCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	return fmt.Sprintf("%s IS NULL", c.field), map[string]interface{}{}
}

// IsNotNull builds a "field IS NOT NULL" condition.
func IsNotNull(field string) Condition {
	return &isNotNullCondition{field: field}
}

type isNotNullCondition struct {
	field string
}

func (c *isNotNullCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	return fmt.Sprintf("%s IS NOT NULL", c.field), map[string]interface{}{}
}
