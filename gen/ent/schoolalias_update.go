// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/prepsportshq/preps-extract/gen/ent/predicate"
	"github.com/prepsportshq/preps-extract/gen/ent/school"
	"github.com/prepsportshq/preps-extract/gen/ent/schoolalias"
)

// SchoolAliasUpdate is the builder for updating SchoolAlias entities.
type SchoolAliasUpdate struct {
	config
	hooks    []Hook
	mutation *SchoolAliasMutation
}

// Where appends a list predicates to the SchoolAliasUpdate builder.
func (_u *SchoolAliasUpdate) Where(ps ...predicate.SchoolAlias) *SchoolAliasUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSchoolID sets the "school_id" field.
func (_u *SchoolAliasUpdate) SetSchoolID(v uuid.UUID) *SchoolAliasUpdate {
	_u.mutation.SetSchoolID(v)
	return _u
}

// SetNillableSchoolID sets the "school_id" field if the given value is not nil.
func (_u *SchoolAliasUpdate) SetNillableSchoolID(v *uuid.UUID) *SchoolAliasUpdate {
	if v != nil {
		_u.SetSchoolID(*v)
	}
	return _u
}

// SetAlias sets the "alias" field.
func (_u *SchoolAliasUpdate) SetAlias(v string) *SchoolAliasUpdate {
	_u.mutation.SetAlias(v)
	return _u
}

// SetNillableAlias sets the "alias" field if the given value is not nil.
func (_u *SchoolAliasUpdate) SetNillableAlias(v *string) *SchoolAliasUpdate {
	if v != nil {
		_u.SetAlias(*v)
	}
	return _u
}

// SetSchool sets the "school" edge to the School entity.
func (_u *SchoolAliasUpdate) SetSchool(v *School) *SchoolAliasUpdate {
	return _u.SetSchoolID(v.ID)
}

// Mutation returns the SchoolAliasMutation object of the builder.
func (_u *SchoolAliasUpdate) Mutation() *SchoolAliasMutation {
	return _u.mutation
}

// ClearSchool clears the "school" edge to the School entity.
func (_u *SchoolAliasUpdate) ClearSchool() *SchoolAliasUpdate {
	_u.mutation.ClearSchool()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SchoolAliasUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SchoolAliasUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SchoolAliasUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SchoolAliasUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SchoolAliasUpdate) check() error {
	if v, ok := _u.mutation.Alias(); ok {
		if err := schoolalias.AliasValidator(v); err != nil {
			return &ValidationError{Name: "alias", err: fmt.Errorf(`ent: validator failed for field "SchoolAlias.alias": %w`, err)}
		}
	}
	if _u.mutation.SchoolCleared() && len(_u.mutation.SchoolIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SchoolAlias.school"`)
	}
	return nil
}

func (_u *SchoolAliasUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(schoolalias.Table, schoolalias.Columns, sqlgraph.NewFieldSpec(schoolalias.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Alias(); ok {
		_spec.SetField(schoolalias.FieldAlias, field.TypeString, value)
	}
	if _u.mutation.SchoolCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   schoolalias.SchoolTable,
			Columns: []string{schoolalias.SchoolColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(school.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SchoolIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   schoolalias.SchoolTable,
			Columns: []string{schoolalias.SchoolColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(school.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{schoolalias.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SchoolAliasUpdateOne is the builder for updating a single SchoolAlias entity.
type SchoolAliasUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SchoolAliasMutation
}

// SetSchoolID sets the "school_id" field.
func (_u *SchoolAliasUpdateOne) SetSchoolID(v uuid.UUID) *SchoolAliasUpdateOne {
	_u.mutation.SetSchoolID(v)
	return _u
}

// SetNillableSchoolID sets the "school_id" field if the given value is not nil.
func (_u *SchoolAliasUpdateOne) SetNillableSchoolID(v *uuid.UUID) *SchoolAliasUpdateOne {
	if v != nil {
		_u.SetSchoolID(*v)
	}
	return _u
}

// SetAlias sets the "alias" field.
func (_u *SchoolAliasUpdateOne) SetAlias(v string) *SchoolAliasUpdateOne {
	_u.mutation.SetAlias(v)
	return _u
}

// SetNillableAlias sets the "alias" field if the given value is not nil.
func (_u *SchoolAliasUpdateOne) SetNillableAlias(v *string) *SchoolAliasUpdateOne {
	if v != nil {
		_u.SetAlias(*v)
	}
	return _u
}

// SetSchool sets the "school" edge to the School entity.
func (_u *SchoolAliasUpdateOne) SetSchool(v *School) *SchoolAliasUpdateOne {
	return _u.SetSchoolID(v.ID)
}

// Mutation returns the SchoolAliasMutation object of the builder.
func (_u *SchoolAliasUpdateOne) Mutation() *SchoolAliasMutation {
	return _u.mutation
}

// ClearSchool clears the "school" edge to the School entity.
func (_u *SchoolAliasUpdateOne) ClearSchool() *SchoolAliasUpdateOne {
	_u.mutation.ClearSchool()
	return _u
}

// Where appends a list predicates to the SchoolAliasUpdate builder.
func (_u *SchoolAliasUpdateOne) Where(ps ...predicate.SchoolAlias) *SchoolAliasUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SchoolAliasUpdateOne) Select(field string, fields ...string) *SchoolAliasUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SchoolAlias entity.
func (_u *SchoolAliasUpdateOne) Save(ctx context.Context) (*SchoolAlias, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SchoolAliasUpdateOne) SaveX(ctx context.Context) *SchoolAlias {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SchoolAliasUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SchoolAliasUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SchoolAliasUpdateOne) check() error {
	if v, ok := _u.mutation.Alias(); ok {
		if err := schoolalias.AliasValidator(v); err != nil {
			return &ValidationError{Name: "alias", err: fmt.Errorf(`ent: validator failed for field "SchoolAlias.alias": %w`, err)}
		}
	}
	if _u.mutation.SchoolCleared() && len(_u.mutation.SchoolIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SchoolAlias.school"`)
	}
	return nil
}

func (_u *SchoolAliasUpdateOne) sqlSave(ctx context.Context) (_node *SchoolAlias, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(schoolalias.Table, schoolalias.Columns, sqlgraph.NewFieldSpec(schoolalias.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SchoolAlias.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, schoolalias.FieldID)
		for _, f := range fields {
			if !schoolalias.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != schoolalias.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Alias(); ok {
		_spec.SetField(schoolalias.FieldAlias, field.TypeString, value)
	}
	if _u.mutation.SchoolCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   schoolalias.SchoolTable,
			Columns: []string{schoolalias.SchoolColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(school.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SchoolIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   schoolalias.SchoolTable,
			Columns: []string{schoolalias.SchoolColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(school.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &SchoolAlias{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{schoolalias.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
