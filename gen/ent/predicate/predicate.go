// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ScanJob is the predicate function for scanjob builders.
type ScanJob func(*sql.Selector)

// Visit is the predicate function for visit builders.
type Visit func(*sql.Selector)

// Visitor is the predicate function for visitor builders.
type Visitor func(*sql.Selector)
