// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package entities discovers and labels the people, journals, conferences,
// and publishers a graph mentions. Entities reachable through role lists
// (author lists, editor lists) carry those roles; entities found only via
// a type declaration carry none.
package entities

import (
	"sort"
	"strings"

	"github.com/pdiddy/seminar-engine/internal/rdf"
	"github.com/pdiddy/seminar-engine/pkg/types"
)

// RoleList names an ordered-list predicate and the role membership in
// such a list confers.
type RoleList struct {
	Role      string
	Predicate rdf.Term
}

// Category describes one class of entity: its role lists, its rdf:type,
// and how to label a discovered resource.
type Category struct {
	Name  string
	Lists []RoleList
	Type  rdf.Term
	Label func(g *rdf.Graph, t rdf.Term) string
}

// DefaultCategories returns the category registry for seminar archive
// graphs, in a fixed order so classification output is deterministic.
func DefaultCategories() []Category {
	return []Category{
		{
			Name: types.CategoryPeople,
			Lists: []RoleList{
				{Role: "author", Predicate: rdf.Expand("bibo:authorList")},
				{Role: "editor", Predicate: rdf.Expand("bibo:editorList")},
			},
			Type:  rdf.Expand("foaf:Person"),
			Label: personLabel,
		},
		{
			Name:  types.CategoryJournals,
			Type:  rdf.Expand("bibo:Journal"),
			Label: titleLabel,
		},
		{
			Name:  types.CategoryConferences,
			Type:  rdf.Expand("bibo:Conference"),
			Label: titleLabel,
		},
		{
			Name:  types.CategoryPublishers,
			Type:  rdf.Expand(":Publisher"),
			Label: nameLabel,
		},
	}
}

// Classify walks every category over the graph: first role-list members
// in list order, then rdf:type declarations, deduplicating by resource
// identity within a category and accumulating roles as a set.
func Classify(g *rdf.Graph, categories []Category) ([]types.Entity, error) {
	rdfType := rdf.Expand("rdf:type")

	var out []types.Entity
	for _, cat := range categories {
		var order []rdf.Term
		registered := make(map[rdf.Term]bool)
		roles := make(map[rdf.Term]map[string]bool)

		for _, rl := range cat.Lists {
			for _, head := range g.ObjectsOfAny(rl.Predicate) {
				members, err := g.List(head)
				if err != nil {
					return nil, err
				}
				for _, member := range members {
					if !registered[member] {
						registered[member] = true
						order = append(order, member)
					}
					if roles[member] == nil {
						roles[member] = make(map[string]bool)
					}
					roles[member][rl.Role] = true
				}
			}
		}

		for _, subj := range g.SubjectsOf(rdfType, cat.Type) {
			if !registered[subj] {
				registered[subj] = true
				order = append(order, subj)
			}
		}

		for _, subj := range order {
			out = append(out, types.Entity{
				Category: cat.Name,
				ID:       subj.Value,
				Label:    cat.Label(g, subj),
				Fragment: rdf.Fragment(subj),
				Roles:    sortedRoles(roles[subj]),
			})
		}
	}
	return out, nil
}

func sortedRoles(set map[string]bool) []string {
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for role := range set {
		out = append(out, role)
	}
	sort.Strings(out)
	return out
}

// firstLiteral returns the text of the first literal object of (t, pred),
// or an empty string.
func firstLiteral(g *rdf.Graph, t rdf.Term, pred string) string {
	for _, o := range g.ObjectsOf(t, rdf.Expand(pred)) {
		if o.IsLiteral() {
			return o.TextValue()
		}
	}
	return ""
}

// personLabel joins given name and surname, omitting absent parts.
func personLabel(g *rdf.Graph, t rdf.Term) string {
	var parts []string
	for _, pred := range []string{"foaf:givenname", "foaf:surname"} {
		if v := firstLiteral(g, t, pred); v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " ")
}

func titleLabel(g *rdf.Graph, t rdf.Term) string {
	return firstLiteral(g, t, "dc:title")
}

func nameLabel(g *rdf.Graph, t rdf.Term) string {
	return firstLiteral(g, t, "foaf:name")
}
