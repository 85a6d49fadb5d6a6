package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type Person struct{ ent.Schema }

func (Person) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "people"},
	}
}

func (Person) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("unique_id").NotEmpty().Unique().MaxLen(50),
		// lowercase alphanumeric projection of display_name; kept for future
		// de-duplication, not unique
		field.String("standard_name").NotEmpty().MaxLen(100),
		field.String("display_name").NotEmpty().MaxLen(100),
	}
}

func (Person) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("documents", Document.Type),
	}
}
