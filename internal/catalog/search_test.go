package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"persondocs/gen/ent"
)

func testPeople() []*ent.Person {
	alice := &ent.Person{UniqueID: "P-001", StandardName: "alicesmith", DisplayName: "Alice Smith"}
	alice.Edges.Documents = []*ent.Document{
		{DocumentName: "Invoice March", Category: "acme", Description: "An invoice from Acme Corp."},
		{DocumentName: "Passport Scan", Category: "identity", Description: "A passport photo page."},
	}

	bob := &ent.Person{UniqueID: "P-002", StandardName: "bobjones", DisplayName: "Bob Jones"}
	bob.Edges.Documents = []*ent.Document{
		{DocumentName: "Lease", Category: "housing", Description: "A rental agreement."},
	}

	carol := &ent.Person{UniqueID: "P-003", StandardName: "carolwhite", DisplayName: "Carol White"}

	return []*ent.Person{alice, bob, carol}
}

func TestFilterPeopleEmptyTermReturnsEveryone(t *testing.T) {
	people := testPeople()

	for _, term := range []string{"", "   ", "\t\n"} {
		views := FilterPeople(people, term)
		require.Len(t, views, 3, "term=%q", term)
		assert.Len(t, views[0].Documents, 2)
		assert.Len(t, views[1].Documents, 1)
		assert.Empty(t, views[2].Documents)
	}
}

func TestFilterPeopleIsIdempotentAndNonMutating(t *testing.T) {
	people := testPeople()

	first := FilterPeople(people, "acme")
	second := FilterPeople(people, "acme")
	assert.Equal(t, first, second)

	// the persisted collections are untouched by any number of calls
	assert.Len(t, people[0].Edges.Documents, 2)
	full := FilterPeople(people, "")
	require.Len(t, full, 3)
	assert.Len(t, full[0].Documents, 2)
}

func TestFilterPeopleCategoryMatchAttachesOnlyMatchingDocuments(t *testing.T) {
	views := FilterPeople(testPeople(), "acme")

	require.Len(t, views, 1)
	assert.Equal(t, "Alice Smith", views[0].Person.DisplayName)
	require.Len(t, views[0].Documents, 1)
	assert.Equal(t, "Invoice March", views[0].Documents[0].DocumentName)
}

func TestFilterPeopleMatchesPersonFields(t *testing.T) {
	tests := []struct {
		term string
		want string
	}{
		{"bob", "Bob Jones"},
		{"BOB", "Bob Jones"},
		{"p-003", "Carol White"},
		{"carol", "Carol White"},
	}
	for _, tt := range tests {
		views := FilterPeople(testPeople(), tt.term)
		require.Len(t, views, 1, "term=%q", tt.term)
		assert.Equal(t, tt.want, views[0].Person.DisplayName, "term=%q", tt.term)
	}
}

func TestFilterPeopleMatchesDocumentDescription(t *testing.T) {
	views := FilterPeople(testPeople(), "rental")

	require.Len(t, views, 1)
	assert.Equal(t, "Bob Jones", views[0].Person.DisplayName)
	require.Len(t, views[0].Documents, 1)
	assert.Equal(t, "Lease", views[0].Documents[0].DocumentName)
}

func TestFilterPeopleNoMatches(t *testing.T) {
	assert.Empty(t, FilterPeople(testPeople(), "zzz-no-such-thing"))
}

func TestFilterPeopleEveryResultJustifiesItsInclusion(t *testing.T) {
	// a returned person either matches directly or carries >=1 document
	for _, term := range []string{"a", "invoice", "p-0", "white"} {
		for _, v := range FilterPeople(testPeople(), term) {
			direct := contains(v.Person.DisplayName, term) || contains(v.Person.UniqueID, term)
			assert.True(t, direct || len(v.Documents) > 0,
				"term=%q person=%s included without justification", term, v.Person.DisplayName)
		}
	}
}

func TestFilterPeopleFullListingDoesNotAliasEdges(t *testing.T) {
	people := testPeople()
	views := FilterPeople(people, "")

	// mutating the projection must not touch the loaded entities
	views[0].Documents[0] = nil
	views[0].Documents = views[0].Documents[:1]
	assert.NotNil(t, people[0].Edges.Documents[0])
	assert.Len(t, people[0].Edges.Documents, 2)
}
