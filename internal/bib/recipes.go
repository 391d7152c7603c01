// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package bib normalizes heterogeneous bibliographic graph shapes (book
// chapters, journal articles, books, conference papers, lectures) into CSL
// records. Each work type declares a recipe: an ordered list of candidate
// (subject, predicate) paths per CSL field, resolved first-match-wins.
package bib

import (
	"github.com/pdiddy/seminar-engine/internal/rdf"
	"github.com/pdiddy/seminar-engine/pkg/types"
)

// path is one candidate lookup for a field. A zero subject marks an
// optional hop that did not resolve; the candidate never matches.
type path struct {
	subject rdf.Term
	pred    string
}

// fieldSpec binds a CSL field name to its ordered candidate paths. The
// first path with at least one object wins; later candidates are never
// consulted once one succeeds.
type fieldSpec struct {
	name  string
	paths []path
}

// recipe is the declarative field-resolution plan one producer returns
// for one work resource.
type recipe struct {
	itemType    string
	agentFields []string
	dateFields  []string
	fields      []fieldSpec
}

// producer derives a recipe for one resource of its RDF type. Producers
// that walk structural relations (containers, venues, publishers) return a
// StructuralError when a guaranteed single-valued hop is absent.
type producer struct {
	rdfType string
	build   func(g *rdf.Graph, work rdf.Term) (recipe, error)
}

// producers registers every work type, in a fixed order so record output
// order is deterministic.
var producers = []producer{
	{"bibo:BookSection", bookSection},
	{"bibo:AcademicArticle", academicArticle},
	{"bibo:Book", book},
	{":ConferencePaper", conferencePaper},
	{":Lecture", lecture},
}

// one wraps a field name and a single candidate path.
func one(name string, subject rdf.Term, pred string) fieldSpec {
	return fieldSpec{name: name, paths: []path{{subject, pred}}}
}

// container returns the resource the work is declared a part of.
func container(g *rdf.Graph, work rdf.Term) (rdf.Term, error) {
	return g.One(work, rdf.Expand("dc:isPartOf"))
}

// typedPublisher returns the first dc:publisher object declared a
// :Publisher, or a zero term when the work names none. Publisher fields
// are optional for books and chapters.
func typedPublisher(g *rdf.Graph, work rdf.Term) rdf.Term {
	publisherType := rdf.Expand(":Publisher")
	rdfType := rdf.Expand("rdf:type")
	for _, o := range g.ObjectsOf(work, rdf.Expand("dc:publisher")) {
		for _, t := range g.ObjectsOf(o, rdfType) {
			if t == publisherType {
				return o
			}
		}
	}
	return rdf.Term{}
}

func bookSection(g *rdf.Graph, work rdf.Term) (recipe, error) {
	chapter := work
	bookRes, err := container(g, chapter)
	if err != nil {
		return recipe{}, err
	}
	publisher := typedPublisher(g, bookRes)

	return recipe{
		itemType:    types.RecordChapter,
		agentFields: []string{"author", "editor"},
		dateFields:  []string{"issued"},
		fields: []fieldSpec{
			one("title", chapter, "dc:title"),
			one("page", chapter, "bibo:pages"),
			one("URL", chapter, "bibo:uri"),
			one("DOI", chapter, "bibo:doi"),
			one("author", chapter, "bibo:authorList"),
			one("container-title", bookRes, "dc:title"),
			one("issued", bookRes, "dc:date"),
			one("editor", bookRes, "bibo:editorList"),
			one("publisher", publisher, "foaf:name"),
			one("publisher-place", publisher, "address:localityName"),
		},
	}, nil
}

func academicArticle(g *rdf.Graph, work rdf.Term) (recipe, error) {
	article := work
	issue, err := container(g, article)
	if err != nil {
		return recipe{}, err
	}
	journal, err := container(g, issue)
	if err != nil {
		return recipe{}, err
	}

	return recipe{
		itemType:    types.RecordArticleJournal,
		agentFields: []string{"author"},
		dateFields:  []string{"issued"},
		fields: []fieldSpec{
			one("title", article, "dc:title"),
			one("page", article, "bibo:pages"),
			one("URL", article, "bibo:uri"),
			one("DOI", article, "bibo:doi"),
			one("author", article, "bibo:authorList"),
			one("container-title", journal, "dc:title"),
			{name: "issued", paths: []path{
				{article, "dc:date"},
				{issue, "dc:date"},
			}},
			one("volume", issue, "bibo:volume"),
			one("issue", issue, "bibo:issue"),
		},
	}, nil
}

func book(g *rdf.Graph, work rdf.Term) (recipe, error) {
	publisher := typedPublisher(g, work)

	return recipe{
		itemType:    types.RecordBook,
		agentFields: []string{"author", "editor"},
		dateFields:  []string{"issued"},
		fields: []fieldSpec{
			one("title", work, "dc:title"),
			one("page", work, "bibo:pages"),
			one("URL", work, "bibo:uri"),
			one("DOI", work, "bibo:doi"),
			one("author", work, "bibo:authorList"),
			one("editor", work, "bibo:editorList"),
			one("issued", work, "dc:date"),
			one("publisher", publisher, "foaf:name"),
			one("publisher-place", publisher, "address:localityName"),
		},
	}, nil
}

func conferencePaper(g *rdf.Graph, work rdf.Term) (recipe, error) {
	paper := work
	conference, err := g.One(paper, rdf.Expand("bibo:presentedAt"))
	if err != nil {
		return recipe{}, err
	}
	proceedings, err := g.One(paper, rdf.Expand("bibo:reproducedIn"))
	if err != nil {
		return recipe{}, err
	}
	publisher, err := g.One(proceedings, rdf.Expand("dc:publisher"))
	if err != nil {
		return recipe{}, err
	}

	return recipe{
		itemType:    types.RecordPaperConference,
		agentFields: []string{"author"},
		dateFields:  []string{"issued"},
		fields: []fieldSpec{
			one("title", paper, "dc:title"),
			one("container-title", proceedings, "dc:title"),
			one("collection-title", conference, "dc:title"),
			one("event-place", conference, "address:localityName"),
			one("publisher", publisher, "foaf:name"),
			one("publisher-place", publisher, "address:localityName"),
			one("page", paper, "bibo:pages"),
			one("URL", paper, "bibo:uri"),
			one("DOI", paper, "bibo:doi"),
			one("author", paper, "bibo:authorList"),
			one("issued", proceedings, "dc:date"),
		},
	}, nil
}

// lecture reuses the book record shape; it carries every field a lecture
// needs and citation styles render it sensibly.
func lecture(g *rdf.Graph, work rdf.Term) (recipe, error) {
	return recipe{
		itemType:    types.RecordBook,
		agentFields: []string{"author"},
		dateFields:  []string{"event-date", "issued"},
		fields: []fieldSpec{
			one("title", work, "dc:title"),
			one("URL", work, "bibo:uri"),
			one("DOI", work, "bibo:doi"),
			one("author", work, "bibo:authorList"),
			one("medium", work, "dc:format"),
			one("event-date", work, "dc:created"),
			one("issued", work, "dc:issued"),
		},
	}, nil
}
