// Code generated by ent, DO NOT EDIT.

package document

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the document type in the database.
	Label = "document"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPersonID holds the string denoting the person_id field in the database.
	FieldPersonID = "person_id"
	// FieldDocumentName holds the string denoting the document_name field in the database.
	FieldDocumentName = "document_name"
	// FieldFilenameOnDisk holds the string denoting the filename_on_disk field in the database.
	FieldFilenameOnDisk = "filename_on_disk"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldDateUploaded holds the string denoting the date_uploaded field in the database.
	FieldDateUploaded = "date_uploaded"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// EdgeOwner holds the string denoting the owner edge name in mutations.
	EdgeOwner = "owner"
	// Table holds the table name of the document in the database.
	Table = "documents"
	// OwnerTable is the table that holds the owner relation/edge.
	OwnerTable = "documents"
	// OwnerInverseTable is the table name for the Person entity.
	// It exists in this package in order to avoid circular dependency with the "person" package.
	OwnerInverseTable = "people"
	// OwnerColumn is the table column denoting the owner relation/edge.
	OwnerColumn = "person_id"
)

// Columns holds all SQL columns for document fields.
var Columns = []string{
	FieldID,
	FieldPersonID,
	FieldDocumentName,
	FieldFilenameOnDisk,
	FieldCategory,
	FieldDateUploaded,
	FieldDescription,
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
	// DocumentNameValidator is a validator for the "document_name" field. It is called by the builders before save.
	DocumentNameValidator func(string) error
	// FilenameOnDiskValidator is a validator for the "filename_on_disk" field. It is called by the builders before save.
	FilenameOnDiskValidator func(string) error
	// CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	CategoryValidator func(string) error
	// DefaultDateUploaded holds the default value on creation for the "date_uploaded" field.
	DefaultDateUploaded func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Document queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPersonID orders the results by the person_id field.
func ByPersonID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPersonID, opts...).ToFunc()
}

// ByDocumentName orders the results by the document_name field.
func ByDocumentName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentName, opts...).ToFunc()
}

// ByFilenameOnDisk orders the results by the filename_on_disk field.
func ByFilenameOnDisk(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilenameOnDisk, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByDateUploaded orders the results by the date_uploaded field.
func ByDateUploaded(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDateUploaded, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByOwnerField orders the results by owner field.
func ByOwnerField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newOwnerStep(), sql.OrderByField(field, opts...))
	}
}
func newOwnerStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(OwnerInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, OwnerTable, OwnerColumn),
	)
}
