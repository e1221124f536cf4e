// Code generated by ent, DO NOT EDIT.

package schoolalias

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/prepsportshq/preps-extract/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.SchoolAlias {
	return predicate.SchoolAlias(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.SchoolAlias {
	return predicate.SchoolAlias(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.SchoolAlias {
	return predicate.SchoolAlias(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.SchoolAlias {
	return predicate.SchoolAlias(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.SchoolAlias {
	return predicate.SchoolAlias(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.SchoolAlias {
	return predicate.SchoolAlias(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.SchoolAlias {
	return predicate.SchoolAlias(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.SchoolAlias {
	return predicate.SchoolAlias(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.SchoolAlias {
	return predicate.SchoolAlias(sql.FieldLTE(FieldID, id))
}

// SchoolID applies equality check predicate on the "school_id" field. It's identical to SchoolIDEQ.
func SchoolID(v uuid.UUID) predicate.SchoolAlias {
	return predicate.SchoolAlias(sql.FieldEQ(FieldSchoolID, v))
}

// Alias applies equality check predicate on the "alias" field. It's identical to AliasEQ.
func Alias(v string) predicate.SchoolAlias {
	return predicate.SchoolAlias(sql.FieldEQ(FieldAlias, v))
}

// SchoolIDEQ applies the EQ predicate on the "school_id" field.
func SchoolIDEQ(v uuid.UUID) predicate.SchoolAlias {
	return predicate.SchoolAlias(sql.FieldEQ(FieldSchoolID, v))
}

// SchoolIDNEQ applies the NEQ predicate on the "school_id" field.
func SchoolIDNEQ(v uuid.UUID) predicate.SchoolAlias {
	return predicate.SchoolAlias(sql.FieldNEQ(FieldSchoolID, v))
}

// SchoolIDIn applies the In predicate on the "school_id" field.
func SchoolIDIn(vs ...uuid.UUID) predicate.SchoolAlias {
	return predicate.SchoolAlias(sql.FieldIn(FieldSchoolID, vs...))
}

// SchoolIDNotIn applies the NotIn predicate on the "school_id" field.
func SchoolIDNotIn(vs ...uuid.UUID) predicate.SchoolAlias {
	return predicate.SchoolAlias(sql.FieldNotIn(FieldSchoolID, vs...))
}

// AliasEQ applies the EQ predicate on the "alias" field.
func AliasEQ(v string) predicate.SchoolAlias {
	return predicate.SchoolAlias(sql.FieldEQ(FieldAlias, v))
}

// AliasNEQ applies the NEQ predicate on the "alias" field.
func AliasNEQ(v string) predicate.SchoolAlias {
	return predicate.SchoolAlias(sql.FieldNEQ(FieldAlias, v))
}

// AliasIn applies the In predicate on the "alias" field.
func AliasIn(vs ...string) predicate.SchoolAlias {
	return predicate.SchoolAlias(sql.FieldIn(FieldAlias, vs...))
}

// AliasNotIn applies the NotIn predicate on the "alias" field.
func AliasNotIn(vs ...string) predicate.SchoolAlias {
	return predicate.SchoolAlias(sql.FieldNotIn(FieldAlias, vs...))
}

// AliasGT applies the GT predicate on the "alias" field.
func AliasGT(v string) predicate.SchoolAlias {
	return predicate.SchoolAlias(sql.FieldGT(FieldAlias, v))
}

// AliasGTE applies the GTE predicate on the "alias" field.
func AliasGTE(v string) predicate.SchoolAlias {
	return predicate.SchoolAlias(sql.FieldGTE(FieldAlias, v))
}

// AliasLT applies the LT predicate on the "alias" field.
func AliasLT(v string) predicate.SchoolAlias {
	return predicate.SchoolAlias(sql.FieldLT(FieldAlias, v))
}

// AliasLTE applies the LTE predicate on the "alias" field.
func AliasLTE(v string) predicate.SchoolAlias {
	return predicate.SchoolAlias(sql.FieldLTE(FieldAlias, v))
}

// AliasContains applies the Contains predicate on the "alias" field.
func AliasContains(v string) predicate.SchoolAlias {
	return predicate.SchoolAlias(sql.FieldContains(FieldAlias, v))
}

// AliasHasPrefix applies the HasPrefix predicate on the "alias" field.
func AliasHasPrefix(v string) predicate.SchoolAlias {
	return predicate.SchoolAlias(sql.FieldHasPrefix(FieldAlias, v))
}

// AliasHasSuffix applies the HasSuffix predicate on the "alias" field.
func AliasHasSuffix(v string) predicate.SchoolAlias {
	return predicate.SchoolAlias(sql.FieldHasSuffix(FieldAlias, v))
}

// AliasEqualFold applies the EqualFold predicate on the "alias" field.
func AliasEqualFold(v string) predicate.SchoolAlias {
	return predicate.SchoolAlias(sql.FieldEqualFold(FieldAlias, v))
}

// AliasContainsFold applies the ContainsFold predicate on the "alias" field.
func AliasContainsFold(v string) predicate.SchoolAlias {
	return predicate.SchoolAlias(sql.FieldContainsFold(FieldAlias, v))
}

// HasSchool applies the HasEdge predicate on the "school" edge.
func HasSchool() predicate.SchoolAlias {
	return predicate.SchoolAlias(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SchoolTable, SchoolColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSchoolWith applies the HasEdge predicate on the "school" edge with a given conditions (other predicates).
func HasSchoolWith(preds ...predicate.School) predicate.SchoolAlias {
	return predicate.SchoolAlias(func(s *sql.Selector) {
		step := newSchoolStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SchoolAlias) predicate.SchoolAlias {
	return predicate.SchoolAlias(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SchoolAlias) predicate.SchoolAlias {
	return predicate.SchoolAlias(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SchoolAlias) predicate.SchoolAlias {
	return predicate.SchoolAlias(sql.NotPredicates(p))
}
