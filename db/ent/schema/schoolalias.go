package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type SchoolAlias struct{ ent.Schema }

func (SchoolAlias) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "school_aliases"},
	}
}

func (SchoolAlias) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("school_id", uuid.UUID{}),
		field.String("alias").NotEmpty(),
	}
}

func (SchoolAlias) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("school", School.Type).
			Ref("aliases").
			Field("school_id").
			Required().
			Unique(),
	}
}

func (SchoolAlias) Indexes() []ent.Index {
	return []ent.Index{
		// Each spelling maps to exactly one school.
		index.Fields("alias").Unique(),
		index.Fields("school_id"),
	}
}
