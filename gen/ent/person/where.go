// Code generated by ent, DO NOT EDIT.

package person

import (
	"persondocs/gen/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Person {
	return predicate.Person(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Person {
	return predicate.Person(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Person {
	return predicate.Person(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Person {
	return predicate.Person(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Person {
	return predicate.Person(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Person {
	return predicate.Person(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Person {
	return predicate.Person(sql.FieldLTE(FieldID, id))
}

// UniqueID applies equality check predicate on the "unique_id" field. It's identical to UniqueIDEQ.
func UniqueID(v string) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldUniqueID, v))
}

// StandardName applies equality check predicate on the "standard_name" field. It's identical to StandardNameEQ.
func StandardName(v string) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldStandardName, v))
}

// DisplayName applies equality check predicate on the "display_name" field. It's identical to DisplayNameEQ.
func DisplayName(v string) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldDisplayName, v))
}

// UniqueIDEQ applies the EQ predicate on the "unique_id" field.
func UniqueIDEQ(v string) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldUniqueID, v))
}

// UniqueIDNEQ applies the NEQ predicate on the "unique_id" field.
func UniqueIDNEQ(v string) predicate.Person {
	return predicate.Person(sql.FieldNEQ(FieldUniqueID, v))
}

// UniqueIDIn applies the In predicate on the "unique_id" field.
func UniqueIDIn(vs ...string) predicate.Person {
	return predicate.Person(sql.FieldIn(FieldUniqueID, vs...))
}

// UniqueIDNotIn applies the NotIn predicate on the "unique_id" field.
func UniqueIDNotIn(vs ...string) predicate.Person {
	return predicate.Person(sql.FieldNotIn(FieldUniqueID, vs...))
}

// UniqueIDGT applies the GT predicate on the "unique_id" field.
func UniqueIDGT(v string) predicate.Person {
	return predicate.Person(sql.FieldGT(FieldUniqueID, v))
}

// UniqueIDGTE applies the GTE predicate on the "unique_id" field.
func UniqueIDGTE(v string) predicate.Person {
	return predicate.Person(sql.FieldGTE(FieldUniqueID, v))
}

// UniqueIDLT applies the LT predicate on the "unique_id" field.
func UniqueIDLT(v string) predicate.Person {
	return predicate.Person(sql.FieldLT(FieldUniqueID, v))
}

// UniqueIDLTE applies the LTE predicate on the "unique_id" field.
func UniqueIDLTE(v string) predicate.Person {
	return predicate.Person(sql.FieldLTE(FieldUniqueID, v))
}

// UniqueIDContains applies the Contains predicate on the "unique_id" field.
func UniqueIDContains(v string) predicate.Person {
	return predicate.Person(sql.FieldContains(FieldUniqueID, v))
}

// UniqueIDHasPrefix applies the HasPrefix predicate on the "unique_id" field.
func UniqueIDHasPrefix(v string) predicate.Person {
	return predicate.Person(sql.FieldHasPrefix(FieldUniqueID, v))
}

// UniqueIDHasSuffix applies the HasSuffix predicate on the "unique_id" field.
func UniqueIDHasSuffix(v string) predicate.Person {
	return predicate.Person(sql.FieldHasSuffix(FieldUniqueID, v))
}

// UniqueIDEqualFold applies the EqualFold predicate on the "unique_id" field.
func UniqueIDEqualFold(v string) predicate.Person {
	return predicate.Person(sql.FieldEqualFold(FieldUniqueID, v))
}

// UniqueIDContainsFold applies the ContainsFold predicate on the "unique_id" field.
func UniqueIDContainsFold(v string) predicate.Person {
	return predicate.Person(sql.FieldContainsFold(FieldUniqueID, v))
}

// StandardNameEQ applies the EQ predicate on the "standard_name" field.
func StandardNameEQ(v string) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldStandardName, v))
}

// StandardNameNEQ applies the NEQ predicate on the "standard_name" field.
func StandardNameNEQ(v string) predicate.Person {
	return predicate.Person(sql.FieldNEQ(FieldStandardName, v))
}

// StandardNameIn applies the In predicate on the "standard_name" field.
func StandardNameIn(vs ...string) predicate.Person {
	return predicate.Person(sql.FieldIn(FieldStandardName, vs...))
}

// StandardNameNotIn applies the NotIn predicate on the "standard_name" field.
func StandardNameNotIn(vs ...string) predicate.Person {
	return predicate.Person(sql.FieldNotIn(FieldStandardName, vs...))
}

// StandardNameGT applies the GT predicate on the "standard_name" field.
func StandardNameGT(v string) predicate.Person {
	return predicate.Person(sql.FieldGT(FieldStandardName, v))
}

// StandardNameGTE applies the GTE predicate on the "standard_name" field.
func StandardNameGTE(v string) predicate.Person {
	return predicate.Person(sql.FieldGTE(FieldStandardName, v))
}

// StandardNameLT applies the LT predicate on the "standard_name" field.
func StandardNameLT(v string) predicate.Person {
	return predicate.Person(sql.FieldLT(FieldStandardName, v))
}

// StandardNameLTE applies the LTE predicate on the "standard_name" field.
func StandardNameLTE(v string) predicate.Person {
	return predicate.Person(sql.FieldLTE(FieldStandardName, v))
}

// StandardNameContains applies the Contains predicate on the "standard_name" field.
func StandardNameContains(v string) predicate.Person {
	return predicate.Person(sql.FieldContains(FieldStandardName, v))
}

// StandardNameHasPrefix applies the HasPrefix predicate on the "standard_name" field.
func StandardNameHasPrefix(v string) predicate.Person {
	return predicate.Person(sql.FieldHasPrefix(FieldStandardName, v))
}

// StandardNameHasSuffix applies the HasSuffix predicate on the "standard_name" field.
func StandardNameHasSuffix(v string) predicate.Person {
	return predicate.Person(sql.FieldHasSuffix(FieldStandardName, v))
}

// StandardNameEqualFold applies the EqualFold predicate on the "standard_name" field.
func StandardNameEqualFold(v string) predicate.Person {
	return predicate.Person(sql.FieldEqualFold(FieldStandardName, v))
}

// StandardNameContainsFold applies the ContainsFold predicate on the "standard_name" field.
func StandardNameContainsFold(v string) predicate.Person {
	return predicate.Person(sql.FieldContainsFold(FieldStandardName, v))
}

// DisplayNameEQ applies the EQ predicate on the "display_name" field.
func DisplayNameEQ(v string) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldDisplayName, v))
}

// DisplayNameNEQ applies the NEQ predicate on the "display_name" field.
func DisplayNameNEQ(v string) predicate.Person {
	return predicate.Person(sql.FieldNEQ(FieldDisplayName, v))
}

// DisplayNameIn applies the In predicate on the "display_name" field.
func DisplayNameIn(vs ...string) predicate.Person {
	return predicate.Person(sql.FieldIn(FieldDisplayName, vs...))
}

// DisplayNameNotIn applies the NotIn predicate on the "display_name" field.
func DisplayNameNotIn(vs ...string) predicate.Person {
	return predicate.Person(sql.FieldNotIn(FieldDisplayName, vs...))
}

// DisplayNameGT applies the GT predicate on the "display_name" field.
func DisplayNameGT(v string) predicate.Person {
	return predicate.Person(sql.FieldGT(FieldDisplayName, v))
}

// DisplayNameGTE applies the GTE predicate on the "display_name" field.
func DisplayNameGTE(v string) predicate.Person {
	return predicate.Person(sql.FieldGTE(FieldDisplayName, v))
}

// DisplayNameLT applies the LT predicate on the "display_name" field.
func DisplayNameLT(v string) predicate.Person {
	return predicate.Person(sql.FieldLT(FieldDisplayName, v))
}

// DisplayNameLTE applies the LTE predicate on the "display_name" field.
func DisplayNameLTE(v string) predicate.Person {
	return predicate.Person(sql.FieldLTE(FieldDisplayName, v))
}

// DisplayNameContains applies the Contains predicate on the "display_name" field.
func DisplayNameContains(v string) predicate.Person {
	return predicate.Person(sql.FieldContains(FieldDisplayName, v))
}

// DisplayNameHasPrefix applies the HasPrefix predicate on the "display_name" field.
func DisplayNameHasPrefix(v string) predicate.Person {
	return predicate.Person(sql.FieldHasPrefix(FieldDisplayName, v))
}

// DisplayNameHasSuffix applies the HasSuffix predicate on the "display_name" field.
func DisplayNameHasSuffix(v string) predicate.Person {
	return predicate.Person(sql.FieldHasSuffix(FieldDisplayName, v))
}

// DisplayNameEqualFold applies the EqualFold predicate on the "display_name" field.
func DisplayNameEqualFold(v string) predicate.Person {
	return predicate.Person(sql.FieldEqualFold(FieldDisplayName, v))
}

// DisplayNameContainsFold applies the ContainsFold predicate on the "display_name" field.
func DisplayNameContainsFold(v string) predicate.Person {
	return predicate.Person(sql.FieldContainsFold(FieldDisplayName, v))
}

// HasDocuments applies the HasEdge predicate on the "documents" edge.
func HasDocuments() predicate.Person {
	return predicate.Person(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DocumentsTable, DocumentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentsWith applies the HasEdge predicate on the "documents" edge with a given conditions (other predicates).
func HasDocumentsWith(preds ...predicate.Document) predicate.Person {
	return predicate.Person(func(s *sql.Selector) {
		step := newDocumentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Person) predicate.Person {
	return predicate.Person(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Person) predicate.Person {
	return predicate.Person(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Person) predicate.Person {
	return predicate.Person(sql.NotPredicates(p))
}
