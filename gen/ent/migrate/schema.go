// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "document_name", Type: field.TypeString, Size: 100},
		{Name: "filename_on_disk", Type: field.TypeString, Unique: true, Size: 150},
		{Name: "category", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "date_uploaded", Type: field.TypeTime},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "person_id", Type: field.TypeUUID},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "documents_people_documents",
				Columns:    []*schema.Column{DocumentsColumns[6]},
				RefColumns: []*schema.Column{PeopleColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "document_person_id_date_uploaded",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[6], DocumentsColumns[4]},
			},
		},
	}
	// PeopleColumns holds the columns for the "people" table.
	PeopleColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "unique_id", Type: field.TypeString, Unique: true, Size: 50},
		{Name: "standard_name", Type: field.TypeString, Size: 100},
		{Name: "display_name", Type: field.TypeString, Size: 100},
	}
	// PeopleTable holds the schema information for the "people" table.
	PeopleTable = &schema.Table{
		Name:       "people",
		Columns:    PeopleColumns,
		PrimaryKey: []*schema.Column{PeopleColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DocumentsTable,
		PeopleTable,
	}
)

func init() {
	DocumentsTable.ForeignKeys[0].RefTable = PeopleTable
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
	PeopleTable.Annotation = &entsql.Annotation{
		Table: "people",
	}
}
