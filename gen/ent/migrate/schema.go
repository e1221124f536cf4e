// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// GamesColumns holds the columns for the "games" table.
	GamesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "sport", Type: field.TypeString},
		{Name: "gender", Type: field.TypeString},
		{Name: "season", Type: field.TypeString},
		{Name: "date", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "game_time", Type: field.TypeString, Nullable: true},
		{Name: "opponent", Type: field.TypeString},
		{Name: "opponent_city", Type: field.TypeString, Nullable: true},
		{Name: "is_home", Type: field.TypeBool, Default: false},
		{Name: "is_conference", Type: field.TypeBool, Default: false},
		{Name: "location", Type: field.TypeString, Nullable: true},
		{Name: "home_score", Type: field.TypeInt, Nullable: true},
		{Name: "away_score", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "school_id", Type: field.TypeUUID},
	}
	// GamesTable holds the schema information for the "games" table.
	GamesTable = &schema.Table{
		Name:       "games",
		Columns:    GamesColumns,
		PrimaryKey: []*schema.Column{GamesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "games_schools_games",
				Columns:    []*schema.Column{GamesColumns[14]},
				RefColumns: []*schema.Column{SchoolsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "game_school_id_season_date",
				Unique:  false,
				Columns: []*schema.Column{GamesColumns[14], GamesColumns[3], GamesColumns[4]},
			},
			{
				Name:    "game_school_id_date_opponent",
				Unique:  true,
				Columns: []*schema.Column{GamesColumns[14], GamesColumns[4], GamesColumns[6]},
			},
		},
	}
	// PlayersColumns holds the columns for the "players" table.
	PlayersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "first_name", Type: field.TypeString},
		{Name: "last_name", Type: field.TypeString},
		{Name: "jersey_number", Type: field.TypeString, Nullable: true},
		{Name: "position", Type: field.TypeString, Nullable: true},
		{Name: "grade", Type: field.TypeString, Nullable: true},
		{Name: "height_feet", Type: field.TypeInt, Nullable: true},
		{Name: "height_inches", Type: field.TypeInt, Nullable: true},
		{Name: "weight", Type: field.TypeInt, Nullable: true},
		{Name: "sport", Type: field.TypeString},
		{Name: "gender", Type: field.TypeString},
		{Name: "season", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "school_id", Type: field.TypeUUID},
	}
	// PlayersTable holds the schema information for the "players" table.
	PlayersTable = &schema.Table{
		Name:       "players",
		Columns:    PlayersColumns,
		PrimaryKey: []*schema.Column{PlayersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "players_schools_players",
				Columns:    []*schema.Column{PlayersColumns[14]},
				RefColumns: []*schema.Column{SchoolsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "player_school_id_sport_gender_season",
				Unique:  false,
				Columns: []*schema.Column{PlayersColumns[14], PlayersColumns[9], PlayersColumns[10], PlayersColumns[11]},
			},
		},
	}
	// SchoolsColumns holds the columns for the "schools" table.
	SchoolsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "city", Type: field.TypeString, Nullable: true},
		{Name: "classification", Type: field.TypeString, Nullable: true},
		{Name: "conference", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SchoolsTable holds the schema information for the "schools" table.
	SchoolsTable = &schema.Table{
		Name:       "schools",
		Columns:    SchoolsColumns,
		PrimaryKey: []*schema.Column{SchoolsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "school_name",
				Unique:  false,
				Columns: []*schema.Column{SchoolsColumns[2]},
			},
		},
	}
	// SchoolAliasesColumns holds the columns for the "school_aliases" table.
	SchoolAliasesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "alias", Type: field.TypeString},
		{Name: "school_id", Type: field.TypeUUID},
	}
	// SchoolAliasesTable holds the schema information for the "school_aliases" table.
	SchoolAliasesTable = &schema.Table{
		Name:       "school_aliases",
		Columns:    SchoolAliasesColumns,
		PrimaryKey: []*schema.Column{SchoolAliasesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "school_aliases_schools_aliases",
				Columns:    []*schema.Column{SchoolAliasesColumns[2]},
				RefColumns: []*schema.Column{SchoolsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "schoolalias_alias",
				Unique:  true,
				Columns: []*schema.Column{SchoolAliasesColumns[1]},
			},
			{
				Name:    "schoolalias_school_id",
				Unique:  false,
				Columns: []*schema.Column{SchoolAliasesColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		GamesTable,
		PlayersTable,
		SchoolsTable,
		SchoolAliasesTable,
	}
)

func init() {
	GamesTable.ForeignKeys[0].RefTable = SchoolsTable
	GamesTable.Annotation = &entsql.Annotation{
		Table: "games",
	}
	PlayersTable.ForeignKeys[0].RefTable = SchoolsTable
	PlayersTable.Annotation = &entsql.Annotation{
		Table: "players",
	}
	SchoolsTable.Annotation = &entsql.Annotation{
		Table: "schools",
	}
	SchoolAliasesTable.ForeignKeys[0].RefTable = SchoolsTable
	SchoolAliasesTable.Annotation = &entsql.Annotation{
		Table: "school_aliases",
	}
}
