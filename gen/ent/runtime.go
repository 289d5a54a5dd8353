// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/ecotrack-app/carbon-tracker/db/ent/schema"
	"github.com/ecotrack-app/carbon-tracker/gen/ent/profile"
	"github.com/ecotrack-app/carbon-tracker/gen/ent/utilitybill"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	profileFields := schema.Profile{}.Fields()
	_ = profileFields
	// profileDescName is the schema descriptor for name field.
	profileDescName := profileFields[1].Descriptor()
	// profile.NameValidator is a validator for the "name" field. It is called by the builders before save.
	profile.NameValidator = profileDescName.Validators[0].(func(string) error)
	// profileDescRegion is the schema descriptor for region field.
	profileDescRegion := profileFields[2].Descriptor()
	// profile.RegionValidator is a validator for the "region" field. It is called by the builders before save.
	profile.RegionValidator = func() func(string) error {
		validators := profileDescRegion.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
		}
		return func(region string) error {
			for _, fn := range fns {
				if err := fn(region); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// profileDescCreatedAt is the schema descriptor for created_at field.
	profileDescCreatedAt := profileFields[3].Descriptor()
	// profile.DefaultCreatedAt holds the default value on creation for the created_at field.
	profile.DefaultCreatedAt = profileDescCreatedAt.Default.(func() time.Time)
	// profileDescUpdatedAt is the schema descriptor for updated_at field.
	profileDescUpdatedAt := profileFields[4].Descriptor()
	// profile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	profile.DefaultUpdatedAt = profileDescUpdatedAt.Default.(func() time.Time)
	// profile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	profile.UpdateDefaultUpdatedAt = profileDescUpdatedAt.UpdateDefault.(func() time.Time)
	// profileDescID is the schema descriptor for id field.
	profileDescID := profileFields[0].Descriptor()
	// profile.DefaultID holds the default value on creation for the id field.
	profile.DefaultID = profileDescID.Default.(func() uuid.UUID)
	utilitybillFields := schema.UtilityBill{}.Fields()
	_ = utilitybillFields
	// utilitybillDescElectricityCarbon is the schema descriptor for electricity_carbon field.
	utilitybillDescElectricityCarbon := utilitybillFields[7].Descriptor()
	// utilitybill.DefaultElectricityCarbon holds the default value on creation for the electricity_carbon field.
	utilitybill.DefaultElectricityCarbon = utilitybillDescElectricityCarbon.Default.(float64)
	// utilitybillDescWaterCarbon is the schema descriptor for water_carbon field.
	utilitybillDescWaterCarbon := utilitybillFields[8].Descriptor()
	// utilitybill.DefaultWaterCarbon holds the default value on creation for the water_carbon field.
	utilitybill.DefaultWaterCarbon = utilitybillDescWaterCarbon.Default.(float64)
	// utilitybillDescGasCarbon is the schema descriptor for gas_carbon field.
	utilitybillDescGasCarbon := utilitybillFields[9].Descriptor()
	// utilitybill.DefaultGasCarbon holds the default value on creation for the gas_carbon field.
	utilitybill.DefaultGasCarbon = utilitybillDescGasCarbon.Default.(float64)
	// utilitybillDescTotalCarbon is the schema descriptor for total_carbon field.
	utilitybillDescTotalCarbon := utilitybillFields[10].Descriptor()
	// utilitybill.DefaultTotalCarbon holds the default value on creation for the total_carbon field.
	utilitybill.DefaultTotalCarbon = utilitybillDescTotalCarbon.Default.(float64)
	// utilitybillDescInputMethod is the schema descriptor for input_method field.
	utilitybillDescInputMethod := utilitybillFields[11].Descriptor()
	// utilitybill.InputMethodValidator is a validator for the "input_method" field. It is called by the builders before save.
	utilitybill.InputMethodValidator = utilitybillDescInputMethod.Validators[0].(func(string) error)
	// utilitybillDescCreatedAt is the schema descriptor for created_at field.
	utilitybillDescCreatedAt := utilitybillFields[15].Descriptor()
	// utilitybill.DefaultCreatedAt holds the default value on creation for the created_at field.
	utilitybill.DefaultCreatedAt = utilitybillDescCreatedAt.Default.(func() time.Time)
	// utilitybillDescUpdatedAt is the schema descriptor for updated_at field.
	utilitybillDescUpdatedAt := utilitybillFields[16].Descriptor()
	// utilitybill.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	utilitybill.DefaultUpdatedAt = utilitybillDescUpdatedAt.Default.(func() time.Time)
	// utilitybill.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	utilitybill.UpdateDefaultUpdatedAt = utilitybillDescUpdatedAt.UpdateDefault.(func() time.Time)
	// utilitybillDescID is the schema descriptor for id field.
	utilitybillDescID := utilitybillFields[0].Descriptor()
	// utilitybill.DefaultID holds the default value on creation for the id field.
	utilitybill.DefaultID = utilitybillDescID.Default.(func() uuid.UUID)
}
