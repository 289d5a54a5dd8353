// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ProfilesColumns holds the columns for the "profiles" table.
	ProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "region", Type: field.TypeString, Size: 2, SchemaType: map[string]string{"postgres": "char(2)"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProfilesTable holds the schema information for the "profiles" table.
	ProfilesTable = &schema.Table{
		Name:       "profiles",
		Columns:    ProfilesColumns,
		PrimaryKey: []*schema.Column{ProfilesColumns[0]},
	}
	// UtilityBillsColumns holds the columns for the "utility_bills" table.
	UtilityBillsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "period_start", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "period_end", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "electricity_usage", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,3)"}},
		{Name: "water_usage", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,3)"}},
		{Name: "gas_usage", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,3)"}},
		{Name: "electricity_carbon", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(12,3)"}},
		{Name: "water_carbon", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(12,3)"}},
		{Name: "gas_carbon", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(12,3)"}},
		{Name: "total_carbon", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(12,3)"}},
		{Name: "input_method", Type: field.TypeString},
		{Name: "ocr_confidence", Type: field.TypeFloat32, Nullable: true},
		{Name: "ocr_raw_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "notes", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "profile_id", Type: field.TypeUUID},
	}
	// UtilityBillsTable holds the schema information for the "utility_bills" table.
	UtilityBillsTable = &schema.Table{
		Name:       "utility_bills",
		Columns:    UtilityBillsColumns,
		PrimaryKey: []*schema.Column{UtilityBillsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "utility_bills_profiles_bills",
				Columns:    []*schema.Column{UtilityBillsColumns[16]},
				RefColumns: []*schema.Column{ProfilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ProfilesTable,
		UtilityBillsTable,
	}
)

func init() {
	ProfilesTable.Annotation = &entsql.Annotation{
		Table: "profiles",
	}
	UtilityBillsTable.ForeignKeys[0].RefTable = ProfilesTable
	UtilityBillsTable.Annotation = &entsql.Annotation{
		Table: "utility_bills",
	}
}
