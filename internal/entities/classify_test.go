package entities

import (
	"reflect"
	"strings"
	"testing"

	"github.com/pdiddy/seminar-engine/internal/rdf"
	"github.com/pdiddy/seminar-engine/pkg/types"
)

func parse(t *testing.T, doc string) *rdf.Graph {
	t.Helper()
	g, err := rdf.ParseTurtle(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("parsing test graph: %v", err)
	}
	return g
}

func classify(t *testing.T, doc string) []types.Entity {
	t.Helper()
	out, err := Classify(parse(t, doc), DefaultCategories())
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	return out
}

func byCategory(entities []types.Entity, category string) []types.Entity {
	var out []types.Entity
	for _, e := range entities {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out
}

func TestClassifyRoleUnion(t *testing.T) {
	// person-x appears in an author list twice and an editor list once:
	// one entity, both roles, each exactly once.
	people := byCategory(classify(t, `
:book-1 bibo:authorList ( :person-x :person-y ) .
:book-2 bibo:authorList ( :person-x ) .
:book-2 bibo:editorList ( :person-x ) .

:person-x foaf:givenname "Xena" ; foaf:surname "Xu" .
:person-y foaf:givenname "Yuri" ; foaf:surname "Yao" .
`), types.CategoryPeople)

	if len(people) != 2 {
		t.Fatalf("got %d people, want 2", len(people))
	}
	x := people[0]
	if !strings.HasSuffix(x.ID, "person-x") {
		t.Fatalf("first person = %q, want discovery order to put person-x first", x.ID)
	}
	if !reflect.DeepEqual(x.Roles, []string{"author", "editor"}) {
		t.Errorf("roles = %v, want [author editor]", x.Roles)
	}
	if !reflect.DeepEqual(people[1].Roles, []string{"author"}) {
		t.Errorf("person-y roles = %v, want [author]", people[1].Roles)
	}
}

func TestClassifyTypeOnlyEntityHasNoRoles(t *testing.T) {
	people := byCategory(classify(t, `
:person-solo a foaf:Person ;
    foaf:givenname "Solo" ;
    foaf:surname "Person" .
`), types.CategoryPeople)

	if len(people) != 1 {
		t.Fatalf("got %d people, want 1", len(people))
	}
	if len(people[0].Roles) != 0 {
		t.Errorf("roles = %v, want empty for type-only discovery", people[0].Roles)
	}
	if people[0].Label != "Solo Person" {
		t.Errorf("label = %q", people[0].Label)
	}
}

func TestClassifyTypeDeclarationDoesNotDuplicate(t *testing.T) {
	people := byCategory(classify(t, `
:book-1 bibo:authorList ( :person-x ) .
:person-x a foaf:Person ;
    foaf:givenname "Xena" ;
    foaf:surname "Xu" .
`), types.CategoryPeople)

	if len(people) != 1 {
		t.Fatalf("got %d people, want 1 (list + type must deduplicate)", len(people))
	}
	if !reflect.DeepEqual(people[0].Roles, []string{"author"}) {
		t.Errorf("roles = %v", people[0].Roles)
	}
}

func TestClassifyLabels(t *testing.T) {
	out := classify(t, `
:journal-j a bibo:Journal ; dc:title "Erkenntnis" .
:conf-c a bibo:Conference ; dc:title "Paris Congress" .
:press-p a :Publisher ; foaf:name "Felix Meiner" .
:person-half a foaf:Person ; foaf:surname "Mononym" .
:press-unnamed a :Publisher .
`)

	journals := byCategory(out, types.CategoryJournals)
	if len(journals) != 1 || journals[0].Label != "Erkenntnis" {
		t.Errorf("journals = %+v", journals)
	}
	conferences := byCategory(out, types.CategoryConferences)
	if len(conferences) != 1 || conferences[0].Label != "Paris Congress" {
		t.Errorf("conferences = %+v", conferences)
	}

	publishers := byCategory(out, types.CategoryPublishers)
	if len(publishers) != 2 {
		t.Fatalf("publishers = %+v", publishers)
	}
	if publishers[0].Label != "Felix Meiner" {
		t.Errorf("publisher label = %q", publishers[0].Label)
	}
	// A missing name literal yields an empty label, not a failure.
	if publishers[1].Label != "" {
		t.Errorf("unnamed publisher label = %q, want empty", publishers[1].Label)
	}

	// A person with only a surname labels as just the surname.
	people := byCategory(out, types.CategoryPeople)
	if len(people) != 1 || people[0].Label != "Mononym" {
		t.Errorf("people = %+v", people)
	}
}

func TestClassifyFragment(t *testing.T) {
	people := byCategory(classify(t, `
:person-x a foaf:Person ; foaf:givenname "Xena" .
`), types.CategoryPeople)
	if people[0].Fragment != "person-x" {
		t.Errorf("fragment = %q, want %q", people[0].Fragment, "person-x")
	}
}
