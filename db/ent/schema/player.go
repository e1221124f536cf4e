package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/prepsportshq/preps-extract/constants"
	"github.com/prepsportshq/preps-extract/db/ent/schema/utils"
)

type Player struct{ ent.Schema }

func (Player) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "players"},
	}
}

func (Player) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("school_id", uuid.UUID{}),
		field.String("first_name").NotEmpty(),
		field.String("last_name").NotEmpty(),
		field.String("jersey_number").Optional(),
		field.String("position").Optional(),
		field.String("grade").Optional().Nillable(),
		field.Int("height_feet").Optional().Nillable(),
		field.Int("height_inches").Optional().Nillable(),
		field.Int("weight").Optional().Nillable(),
		field.String("sport").NotEmpty().
			Validate(utils.EnumValidator(constants.SportNames()...)),
		field.String("gender").NotEmpty().
			Validate(utils.EnumValidator(string(constants.Boys), string(constants.Girls))),
		field.String("season").NotEmpty(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Player) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("school", School.Type).
			Ref("players").
			Field("school_id").
			Required().
			Unique(),
	}
}

func (Player) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("school_id", "sport", "gender", "season"),
	}
}
