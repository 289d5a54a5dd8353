package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type UtilityBill struct{ ent.Schema }

func (UtilityBill) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "utility_bills"},
	}
}

func (UtilityBill) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("profile_id", uuid.UUID{}),
		field.Time("period_start").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Time("period_end").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Float("electricity_usage").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,3)"}),
		field.Float("water_usage").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,3)"}),
		field.Float("gas_usage").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,3)"}),
		field.Float("electricity_carbon").
			Default(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,3)"}),
		field.Float("water_carbon").
			Default(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,3)"}),
		field.Float("gas_carbon").
			Default(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,3)"}),
		field.Float("total_carbon").
			Default(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,3)"}),
		field.String("input_method").NotEmpty(),
		field.Float32("ocr_confidence").Optional().Nillable(),
		field.Text("ocr_raw_text").Optional().Nillable(),
		field.String("notes").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (UtilityBill) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY bills -> ONE profile (FK: utility_bills.profile_id)
		edge.From("profile", Profile.Type).
			Ref("bills").
			Field("profile_id").
			Required().
			Unique(),
	}
}
