// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ecotrack-app/carbon-tracker/gen/ent/profile"
	"github.com/ecotrack-app/carbon-tracker/gen/ent/utilitybill"
	"github.com/google/uuid"
)

// UtilityBill is the model entity for the UtilityBill schema.
type UtilityBill struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ProfileID holds the value of the "profile_id" field.
	ProfileID uuid.UUID `json:"profile_id,omitempty"`
	// PeriodStart holds the value of the "period_start" field.
	PeriodStart *time.Time `json:"period_start,omitempty"`
	// PeriodEnd holds the value of the "period_end" field.
	PeriodEnd *time.Time `json:"period_end,omitempty"`
	// ElectricityUsage holds the value of the "electricity_usage" field.
	ElectricityUsage *float64 `json:"electricity_usage,omitempty"`
	// WaterUsage holds the value of the "water_usage" field.
	WaterUsage *float64 `json:"water_usage,omitempty"`
	// GasUsage holds the value of the "gas_usage" field.
	GasUsage *float64 `json:"gas_usage,omitempty"`
	// ElectricityCarbon holds the value of the "electricity_carbon" field.
	ElectricityCarbon float64 `json:"electricity_carbon,omitempty"`
	// WaterCarbon holds the value of the "water_carbon" field.
	WaterCarbon float64 `json:"water_carbon,omitempty"`
	// GasCarbon holds the value of the "gas_carbon" field.
	GasCarbon float64 `json:"gas_carbon,omitempty"`
	// TotalCarbon holds the value of the "total_carbon" field.
	TotalCarbon float64 `json:"total_carbon,omitempty"`
	// InputMethod holds the value of the "input_method" field.
	InputMethod string `json:"input_method,omitempty"`
	// OcrConfidence holds the value of the "ocr_confidence" field.
	OcrConfidence *float32 `json:"ocr_confidence,omitempty"`
	// OcrRawText holds the value of the "ocr_raw_text" field.
	OcrRawText *string `json:"ocr_raw_text,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes *string `json:"notes,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the UtilityBillQuery when eager-loading is set.
	Edges        UtilityBillEdges `json:"edges"`
	selectValues sql.SelectValues
}

// UtilityBillEdges holds the relations/edges for other nodes in the graph.
type UtilityBillEdges struct {
	// Profile holds the value of the profile edge.
	Profile *Profile `json:"profile,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ProfileOrErr returns the Profile value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e UtilityBillEdges) ProfileOrErr() (*Profile, error) {
	if e.Profile != nil {
		return e.Profile, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: profile.Label}
	}
	return nil, &NotLoadedError{edge: "profile"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UtilityBill) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case utilitybill.FieldElectricityUsage, utilitybill.FieldWaterUsage, utilitybill.FieldGasUsage, utilitybill.FieldElectricityCarbon, utilitybill.FieldWaterCarbon, utilitybill.FieldGasCarbon, utilitybill.FieldTotalCarbon, utilitybill.FieldOcrConfidence:
			values[i] = new(sql.NullFloat64)
		case utilitybill.FieldInputMethod, utilitybill.FieldOcrRawText, utilitybill.FieldNotes:
			values[i] = new(sql.NullString)
		case utilitybill.FieldPeriodStart, utilitybill.FieldPeriodEnd, utilitybill.FieldCreatedAt, utilitybill.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case utilitybill.FieldID, utilitybill.FieldProfileID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UtilityBill fields.
func (_m *UtilityBill) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case utilitybill.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case utilitybill.FieldProfileID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field profile_id", values[i])
			} else if value != nil {
				_m.ProfileID = *value
			}
		case utilitybill.FieldPeriodStart:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field period_start", values[i])
			} else if value.Valid {
				_m.PeriodStart = new(time.Time)
				*_m.PeriodStart = value.Time
			}
		case utilitybill.FieldPeriodEnd:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field period_end", values[i])
			} else if value.Valid {
				_m.PeriodEnd = new(time.Time)
				*_m.PeriodEnd = value.Time
			}
		case utilitybill.FieldElectricityUsage:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field electricity_usage", values[i])
			} else if value.Valid {
				_m.ElectricityUsage = new(float64)
				*_m.ElectricityUsage = value.Float64
			}
		case utilitybill.FieldWaterUsage:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field water_usage", values[i])
			} else if value.Valid {
				_m.WaterUsage = new(float64)
				*_m.WaterUsage = value.Float64
			}
		case utilitybill.FieldGasUsage:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field gas_usage", values[i])
			} else if value.Valid {
				_m.GasUsage = new(float64)
				*_m.GasUsage = value.Float64
			}
		case utilitybill.FieldElectricityCarbon:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field electricity_carbon", values[i])
			} else if value.Valid {
				_m.ElectricityCarbon = value.Float64
			}
		case utilitybill.FieldWaterCarbon:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field water_carbon", values[i])
			} else if value.Valid {
				_m.WaterCarbon = value.Float64
			}
		case utilitybill.FieldGasCarbon:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field gas_carbon", values[i])
			} else if value.Valid {
				_m.GasCarbon = value.Float64
			}
		case utilitybill.FieldTotalCarbon:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_carbon", values[i])
			} else if value.Valid {
				_m.TotalCarbon = value.Float64
			}
		case utilitybill.FieldInputMethod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field input_method", values[i])
			} else if value.Valid {
				_m.InputMethod = value.String
			}
		case utilitybill.FieldOcrConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field ocr_confidence", values[i])
			} else if value.Valid {
				_m.OcrConfidence = new(float32)
				*_m.OcrConfidence = float32(value.Float64)
			}
		case utilitybill.FieldOcrRawText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ocr_raw_text", values[i])
			} else if value.Valid {
				_m.OcrRawText = new(string)
				*_m.OcrRawText = value.String
			}
		case utilitybill.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = new(string)
				*_m.Notes = value.String
			}
		case utilitybill.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case utilitybill.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the UtilityBill.
// This includes values selected through modifiers, order, etc.
func (_m *UtilityBill) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProfile queries the "profile" edge of the UtilityBill entity.
func (_m *UtilityBill) QueryProfile() *ProfileQuery {
	return NewUtilityBillClient(_m.config).QueryProfile(_m)
}

// Update returns a builder for updating this UtilityBill.
// Note that you need to call UtilityBill.Unwrap() before calling this method if this UtilityBill
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *UtilityBill) Update() *UtilityBillUpdateOne {
	return NewUtilityBillClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the UtilityBill entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *UtilityBill) Unwrap() *UtilityBill {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: UtilityBill is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *UtilityBill) String() string {
	var builder strings.Builder
	builder.WriteString("UtilityBill(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("profile_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProfileID))
	builder.WriteString(", ")
	if v := _m.PeriodStart; v != nil {
		builder.WriteString("period_start=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.PeriodEnd; v != nil {
		builder.WriteString("period_end=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ElectricityUsage; v != nil {
		builder.WriteString("electricity_usage=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.WaterUsage; v != nil {
		builder.WriteString("water_usage=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.GasUsage; v != nil {
		builder.WriteString("gas_usage=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("electricity_carbon=")
	builder.WriteString(fmt.Sprintf("%v", _m.ElectricityCarbon))
	builder.WriteString(", ")
	builder.WriteString("water_carbon=")
	builder.WriteString(fmt.Sprintf("%v", _m.WaterCarbon))
	builder.WriteString(", ")
	builder.WriteString("gas_carbon=")
	builder.WriteString(fmt.Sprintf("%v", _m.GasCarbon))
	builder.WriteString(", ")
	builder.WriteString("total_carbon=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalCarbon))
	builder.WriteString(", ")
	builder.WriteString("input_method=")
	builder.WriteString(_m.InputMethod)
	builder.WriteString(", ")
	if v := _m.OcrConfidence; v != nil {
		builder.WriteString("ocr_confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.OcrRawText; v != nil {
		builder.WriteString("ocr_raw_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Notes; v != nil {
		builder.WriteString("notes=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// UtilityBills is a parsable slice of UtilityBill.
type UtilityBills []*UtilityBill
