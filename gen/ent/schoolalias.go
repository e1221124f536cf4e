// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/prepsportshq/preps-extract/gen/ent/school"
	"github.com/prepsportshq/preps-extract/gen/ent/schoolalias"
)

// SchoolAlias is the model entity for the SchoolAlias schema.
type SchoolAlias struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// SchoolID holds the value of the "school_id" field.
	SchoolID uuid.UUID `json:"school_id,omitempty"`
	// Alias holds the value of the "alias" field.
	Alias string `json:"alias,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SchoolAliasQuery when eager-loading is set.
	Edges        SchoolAliasEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SchoolAliasEdges holds the relations/edges for other nodes in the graph.
type SchoolAliasEdges struct {
	// School holds the value of the school edge.
	School *School `json:"school,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SchoolOrErr returns the School value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SchoolAliasEdges) SchoolOrErr() (*School, error) {
	if e.School != nil {
		return e.School, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: school.Label}
	}
	return nil, &NotLoadedError{edge: "school"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SchoolAlias) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case schoolalias.FieldAlias:
			values[i] = new(sql.NullString)
		case schoolalias.FieldID, schoolalias.FieldSchoolID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SchoolAlias fields.
func (_m *SchoolAlias) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case schoolalias.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case schoolalias.FieldSchoolID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field school_id", values[i])
			} else if value != nil {
				_m.SchoolID = *value
			}
		case schoolalias.FieldAlias:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field alias", values[i])
			} else if value.Valid {
				_m.Alias = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SchoolAlias.
// This includes values selected through modifiers, order, etc.
func (_m *SchoolAlias) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySchool queries the "school" edge of the SchoolAlias entity.
func (_m *SchoolAlias) QuerySchool() *SchoolQuery {
	return NewSchoolAliasClient(_m.config).QuerySchool(_m)
}

// Update returns a builder for updating this SchoolAlias.
// Note that you need to call SchoolAlias.Unwrap() before calling this method if this SchoolAlias
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SchoolAlias) Update() *SchoolAliasUpdateOne {
	return NewSchoolAliasClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SchoolAlias entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SchoolAlias) Unwrap() *SchoolAlias {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SchoolAlias is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SchoolAlias) String() string {
	var builder strings.Builder
	builder.WriteString("SchoolAlias(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("school_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SchoolID))
	builder.WriteString(", ")
	builder.WriteString("alias=")
	builder.WriteString(_m.Alias)
	builder.WriteByte(')')
	return builder.String()
}

// SchoolAliasSlice is a parsable slice of SchoolAlias.
type SchoolAliasSlice []*SchoolAlias
