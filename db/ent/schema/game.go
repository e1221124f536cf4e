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

	"github.com/prepsportshq/preps-extract/constants"
	"github.com/prepsportshq/preps-extract/db/ent/schema/utils"
)

type Game struct{ ent.Schema }

func (Game) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "games"},
	}
}

func (Game) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("school_id", uuid.UUID{}),
		field.String("sport").NotEmpty().
			Validate(utils.EnumValidator(constants.SportNames()...)),
		field.String("gender").NotEmpty().
			Validate(utils.EnumValidator(string(constants.Boys), string(constants.Girls))),
		field.String("season").NotEmpty(),
		field.Time("date").
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.String("game_time").Optional(),
		field.String("opponent").NotEmpty(),
		field.String("opponent_city").Optional(),
		field.Bool("is_home").Default(false),
		field.Bool("is_conference").Default(false),
		field.String("location").Optional(),
		field.Int("home_score").Optional().Nillable(),
		field.Int("away_score").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
	}
}

func (Game) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("school", School.Type).
			Ref("games").
			Field("school_id").
			Required().
			Unique(),
	}
}

func (Game) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("school_id", "season", "date"),
		index.Fields("school_id", "date", "opponent").Unique(),
	}
}
