package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type Document struct{ ent.Schema }

func (Document) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "documents"},
	}
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// explicit FK so queries can filter on it directly
		field.UUID("person_id", uuid.UUID{}),
		field.String("document_name").NotEmpty().MaxLen(100),
		// unique store-wide, independent of the owning person
		field.String("filename_on_disk").NotEmpty().Unique().MaxLen(150),
		field.String("category").Optional().MaxLen(100),
		field.Time("date_uploaded").Default(time.Now).Immutable(),
		field.Text("description").Optional(),
	}
}

func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY documents -> ONE person
		edge.From("owner", Person.Type).
			Ref("documents").
			Field("person_id").
			Required().
			Unique(),
	}
}

func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("person_id", "date_uploaded"),
	}
}
