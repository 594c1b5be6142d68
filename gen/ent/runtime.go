// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/portaria-digital/concierge/db/ent/schema"
	"github.com/portaria-digital/concierge/gen/ent/scanjob"
	"github.com/portaria-digital/concierge/gen/ent/visit"
	"github.com/portaria-digital/concierge/gen/ent/visitor"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	scanjobFields := schema.ScanJob{}.Fields()
	_ = scanjobFields
	// scanjobDescSourcePath is the schema descriptor for source_path field.
	scanjobDescSourcePath := scanjobFields[2].Descriptor()
	// scanjob.SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	scanjob.SourcePathValidator = scanjobDescSourcePath.Validators[0].(func(string) error)
	// scanjobDescFormat is the schema descriptor for format field.
	scanjobDescFormat := scanjobFields[3].Descriptor()
	// scanjob.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	scanjob.FormatValidator = func() func(string) error {
		validators := scanjobDescFormat.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(format string) error {
			for _, fn := range fns {
				if err := fn(format); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// scanjobDescStartedAt is the schema descriptor for started_at field.
	scanjobDescStartedAt := scanjobFields[4].Descriptor()
	// scanjob.DefaultStartedAt holds the default value on creation for the started_at field.
	scanjob.DefaultStartedAt = scanjobDescStartedAt.Default.(func() time.Time)
	// scanjobDescNeedsReview is the schema descriptor for needs_review field.
	scanjobDescNeedsReview := scanjobFields[9].Descriptor()
	// scanjob.DefaultNeedsReview holds the default value on creation for the needs_review field.
	scanjob.DefaultNeedsReview = scanjobDescNeedsReview.Default.(bool)
	// scanjobDescID is the schema descriptor for id field.
	scanjobDescID := scanjobFields[0].Descriptor()
	// scanjob.DefaultID holds the default value on creation for the id field.
	scanjob.DefaultID = scanjobDescID.Default.(func() uuid.UUID)
	visitFields := schema.Visit{}.Fields()
	_ = visitFields
	// visitDescEntryAt is the schema descriptor for entry_at field.
	visitDescEntryAt := visitFields[2].Descriptor()
	// visit.DefaultEntryAt holds the default value on creation for the entry_at field.
	visit.DefaultEntryAt = visitDescEntryAt.Default.(func() time.Time)
	// visitDescMethod is the schema descriptor for method field.
	visitDescMethod := visitFields[4].Descriptor()
	// visit.MethodValidator is a validator for the "method" field. It is called by the builders before save.
	visit.MethodValidator = func() func(string) error {
		validators := visitDescMethod.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(method string) error {
			for _, fn := range fns {
				if err := fn(method); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// visitDescCreatedAt is the schema descriptor for created_at field.
	visitDescCreatedAt := visitFields[7].Descriptor()
	// visit.DefaultCreatedAt holds the default value on creation for the created_at field.
	visit.DefaultCreatedAt = visitDescCreatedAt.Default.(func() time.Time)
	// visitDescID is the schema descriptor for id field.
	visitDescID := visitFields[0].Descriptor()
	// visit.DefaultID holds the default value on creation for the id field.
	visit.DefaultID = visitDescID.Default.(func() uuid.UUID)
	visitorFields := schema.Visitor{}.Fields()
	_ = visitorFields
	// visitorDescName is the schema descriptor for name field.
	visitorDescName := visitorFields[1].Descriptor()
	// visitor.NameValidator is a validator for the "name" field. It is called by the builders before save.
	visitor.NameValidator = visitorDescName.Validators[0].(func(string) error)
	// visitorDescTaxID is the schema descriptor for tax_id field.
	visitorDescTaxID := visitorFields[2].Descriptor()
	// visitor.TaxIDValidator is a validator for the "tax_id" field. It is called by the builders before save.
	visitor.TaxIDValidator = visitorDescTaxID.Validators[0].(func(string) error)
	// visitorDescBirthDate is the schema descriptor for birth_date field.
	visitorDescBirthDate := visitorFields[3].Descriptor()
	// visitor.BirthDateValidator is a validator for the "birth_date" field. It is called by the builders before save.
	visitor.BirthDateValidator = visitorDescBirthDate.Validators[0].(func(string) error)
	// visitorDescCreatedAt is the schema descriptor for created_at field.
	visitorDescCreatedAt := visitorFields[5].Descriptor()
	// visitor.DefaultCreatedAt holds the default value on creation for the created_at field.
	visitor.DefaultCreatedAt = visitorDescCreatedAt.Default.(func() time.Time)
	// visitorDescUpdatedAt is the schema descriptor for updated_at field.
	visitorDescUpdatedAt := visitorFields[6].Descriptor()
	// visitor.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	visitor.DefaultUpdatedAt = visitorDescUpdatedAt.Default.(func() time.Time)
	// visitor.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	visitor.UpdateDefaultUpdatedAt = visitorDescUpdatedAt.UpdateDefault.(func() time.Time)
	// visitorDescID is the schema descriptor for id field.
	visitorDescID := visitorFields[0].Descriptor()
	// visitor.DefaultID holds the default value on creation for the id field.
	visitor.DefaultID = visitorDescID.Default.(func() uuid.UUID)
}
