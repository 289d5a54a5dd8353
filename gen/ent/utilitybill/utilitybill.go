// Code generated by ent, DO NOT EDIT.

package utilitybill

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the utilitybill type in the database.
	Label = "utility_bill"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldProfileID holds the string denoting the profile_id field in the database.
	FieldProfileID = "profile_id"
	// FieldPeriodStart holds the string denoting the period_start field in the database.
	FieldPeriodStart = "period_start"
	// FieldPeriodEnd holds the string denoting the period_end field in the database.
	FieldPeriodEnd = "period_end"
	// FieldElectricityUsage holds the string denoting the electricity_usage field in the database.
	FieldElectricityUsage = "electricity_usage"
	// FieldWaterUsage holds the string denoting the water_usage field in the database.
	FieldWaterUsage = "water_usage"
	// FieldGasUsage holds the string denoting the gas_usage field in the database.
	FieldGasUsage = "gas_usage"
	// FieldElectricityCarbon holds the string denoting the electricity_carbon field in the database.
	FieldElectricityCarbon = "electricity_carbon"
	// FieldWaterCarbon holds the string denoting the water_carbon field in the database.
	FieldWaterCarbon = "water_carbon"
	// FieldGasCarbon holds the string denoting the gas_carbon field in the database.
	FieldGasCarbon = "gas_carbon"
	// FieldTotalCarbon holds the string denoting the total_carbon field in the database.
	FieldTotalCarbon = "total_carbon"
	// FieldInputMethod holds the string denoting the input_method field in the database.
	FieldInputMethod = "input_method"
	// FieldOcrConfidence holds the string denoting the ocr_confidence field in the database.
	FieldOcrConfidence = "ocr_confidence"
	// FieldOcrRawText holds the string denoting the ocr_raw_text field in the database.
	FieldOcrRawText = "ocr_raw_text"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeProfile holds the string denoting the profile edge name in mutations.
	EdgeProfile = "profile"
	// Table holds the table name of the utilitybill in the database.
	Table = "utility_bills"
	// ProfileTable is the table that holds the profile relation/edge.
	ProfileTable = "utility_bills"
	// ProfileInverseTable is the table name for the Profile entity.
	// It exists in this package in order to avoid circular dependency with the "profile" package.
	ProfileInverseTable = "profiles"
	// ProfileColumn is the table column denoting the profile relation/edge.
	ProfileColumn = "profile_id"
)

// Columns holds all SQL columns for utilitybill fields.
var Columns = []string{
	FieldID,
	FieldProfileID,
	FieldPeriodStart,
	FieldPeriodEnd,
	FieldElectricityUsage,
	FieldWaterUsage,
	FieldGasUsage,
	FieldElectricityCarbon,
	FieldWaterCarbon,
	FieldGasCarbon,
	FieldTotalCarbon,
	FieldInputMethod,
	FieldOcrConfidence,
	FieldOcrRawText,
	FieldNotes,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultElectricityCarbon holds the default value on creation for the "electricity_carbon" field.
	DefaultElectricityCarbon float64
	// DefaultWaterCarbon holds the default value on creation for the "water_carbon" field.
	DefaultWaterCarbon float64
	// DefaultGasCarbon holds the default value on creation for the "gas_carbon" field.
	DefaultGasCarbon float64
	// DefaultTotalCarbon holds the default value on creation for the "total_carbon" field.
	DefaultTotalCarbon float64
	// InputMethodValidator is a validator for the "input_method" field. It is called by the builders before save.
	InputMethodValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the UtilityBill queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProfileID orders the results by the profile_id field.
func ByProfileID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProfileID, opts...).ToFunc()
}

// ByPeriodStart orders the results by the period_start field.
func ByPeriodStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPeriodStart, opts...).ToFunc()
}

// ByPeriodEnd orders the results by the period_end field.
func ByPeriodEnd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPeriodEnd, opts...).ToFunc()
}

// ByElectricityUsage orders the results by the electricity_usage field.
func ByElectricityUsage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldElectricityUsage, opts...).ToFunc()
}

// ByWaterUsage orders the results by the water_usage field.
func ByWaterUsage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWaterUsage, opts...).ToFunc()
}

// ByGasUsage orders the results by the gas_usage field.
func ByGasUsage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGasUsage, opts...).ToFunc()
}

// ByElectricityCarbon orders the results by the electricity_carbon field.
func ByElectricityCarbon(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldElectricityCarbon, opts...).ToFunc()
}

// ByWaterCarbon orders the results by the water_carbon field.
func ByWaterCarbon(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWaterCarbon, opts...).ToFunc()
}

// ByGasCarbon orders the results by the gas_carbon field.
func ByGasCarbon(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGasCarbon, opts...).ToFunc()
}

// ByTotalCarbon orders the results by the total_carbon field.
func ByTotalCarbon(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalCarbon, opts...).ToFunc()
}

// ByInputMethod orders the results by the input_method field.
func ByInputMethod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInputMethod, opts...).ToFunc()
}

// ByOcrConfidence orders the results by the ocr_confidence field.
func ByOcrConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOcrConfidence, opts...).ToFunc()
}

// ByOcrRawText orders the results by the ocr_raw_text field.
func ByOcrRawText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOcrRawText, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByProfileField orders the results by profile field.
func ByProfileField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProfileStep(), sql.OrderByField(field, opts...))
	}
}
func newProfileStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProfileInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ProfileTable, ProfileColumn),
	)
}
