// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Profile is the predicate function for profile builders.
type Profile func(*sql.Selector)

// UtilityBill is the predicate function for utilitybill builders.
type UtilityBill func(*sql.Selector)
