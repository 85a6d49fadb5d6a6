package catalog

import (
	"strings"

	"persondocs/gen/ent"
)

// PersonView is the read-only search projection: a person plus the
// documents attached to this result. It never aliases Edges.Documents,
// so filtering can't leak back into persisted state.
type PersonView struct {
	Person    *ent.Person
	Documents []*ent.Document
}

// FilterPeople projects the loaded people into search results.
//
// An empty or whitespace-only term returns every person with their full
// document list. Otherwise the match is a case-insensitive substring
// test: a person is included when their display name or unique id
// matches, or when at least one of their documents matches on name,
// category, or description. In that case only the matching documents
// are attached.
func FilterPeople(people []*ent.Person, term string) []PersonView {
	term = strings.TrimSpace(term)

	if term == "" {
		out := make([]PersonView, 0, len(people))
		for _, p := range people {
			out = append(out, PersonView{
				Person:    p,
				Documents: append([]*ent.Document(nil), p.Edges.Documents...),
			})
		}
		return out
	}

	needle := strings.ToLower(term)
	out := make([]PersonView, 0, len(people))
	for _, p := range people {
		var matched []*ent.Document
		for _, d := range p.Edges.Documents {
			if documentMatches(d, needle) {
				matched = append(matched, d)
			}
		}

		personMatches := contains(p.DisplayName, needle) || contains(p.UniqueID, needle)
		if !personMatches && len(matched) == 0 {
			continue
		}
		out = append(out, PersonView{Person: p, Documents: matched})
	}
	return out
}

func documentMatches(d *ent.Document, needle string) bool {
	return contains(d.DocumentName, needle) ||
		contains(d.Category, needle) ||
		contains(d.Description, needle)
}

func contains(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}
