// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Game is the predicate function for game builders.
type Game func(*sql.Selector)

// Player is the predicate function for player builders.
type Player func(*sql.Selector)

// School is the predicate function for school builders.
type School func(*sql.Selector)

// SchoolAlias is the predicate function for schoolalias builders.
type SchoolAlias func(*sql.Selector)
