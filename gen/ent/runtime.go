// Code generated by ent, DO NOT EDIT.

package ent

import (
	"persondocs/db/ent/schema"
	"persondocs/gen/ent/document"
	"persondocs/gen/ent/person"
	"time"

	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescDocumentName is the schema descriptor for document_name field.
	documentDescDocumentName := documentFields[2].Descriptor()
	// document.DocumentNameValidator is a validator for the "document_name" field. It is called by the builders before save.
	document.DocumentNameValidator = func() func(string) error {
		validators := documentDescDocumentName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(document_name string) error {
			for _, fn := range fns {
				if err := fn(document_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// documentDescFilenameOnDisk is the schema descriptor for filename_on_disk field.
	documentDescFilenameOnDisk := documentFields[3].Descriptor()
	// document.FilenameOnDiskValidator is a validator for the "filename_on_disk" field. It is called by the builders before save.
	document.FilenameOnDiskValidator = func() func(string) error {
		validators := documentDescFilenameOnDisk.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(filename_on_disk string) error {
			for _, fn := range fns {
				if err := fn(filename_on_disk); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// documentDescCategory is the schema descriptor for category field.
	documentDescCategory := documentFields[4].Descriptor()
	// document.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	document.CategoryValidator = documentDescCategory.Validators[0].(func(string) error)
	// documentDescDateUploaded is the schema descriptor for date_uploaded field.
	documentDescDateUploaded := documentFields[5].Descriptor()
	// document.DefaultDateUploaded holds the default value on creation for the date_uploaded field.
	document.DefaultDateUploaded = documentDescDateUploaded.Default.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
	personFields := schema.Person{}.Fields()
	_ = personFields
	// personDescUniqueID is the schema descriptor for unique_id field.
	personDescUniqueID := personFields[1].Descriptor()
	// person.UniqueIDValidator is a validator for the "unique_id" field. It is called by the builders before save.
	person.UniqueIDValidator = func() func(string) error {
		validators := personDescUniqueID.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(unique_id string) error {
			for _, fn := range fns {
				if err := fn(unique_id); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// personDescStandardName is the schema descriptor for standard_name field.
	personDescStandardName := personFields[2].Descriptor()
	// person.StandardNameValidator is a validator for the "standard_name" field. It is called by the builders before save.
	person.StandardNameValidator = func() func(string) error {
		validators := personDescStandardName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(standard_name string) error {
			for _, fn := range fns {
				if err := fn(standard_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// personDescDisplayName is the schema descriptor for display_name field.
	personDescDisplayName := personFields[3].Descriptor()
	// person.DisplayNameValidator is a validator for the "display_name" field. It is called by the builders before save.
	person.DisplayNameValidator = func() func(string) error {
		validators := personDescDisplayName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(display_name string) error {
			for _, fn := range fns {
				if err := fn(display_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// personDescID is the schema descriptor for id field.
	personDescID := personFields[0].Descriptor()
	// person.DefaultID holds the default value on creation for the id field.
	person.DefaultID = personDescID.Default.(func() uuid.UUID)
}
