package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type School struct{ ent.Schema }

func (School) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "schools"},
	}
}

func (School) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// URL-safe slug; collisions are disambiguated by the resolver.
		field.String("key").NotEmpty().Unique(),
		field.String("name").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("city").Optional(),
		field.String("classification").Optional(),
		field.String("conference").Optional(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (School) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("aliases", SchoolAlias.Type),
		edge.To("players", Player.Type),
		edge.To("games", Game.Type),
	}
}

func (School) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name"),
	}
}
