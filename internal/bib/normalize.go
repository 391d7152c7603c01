// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bib

import (
	"fmt"

	"github.com/pdiddy/seminar-engine/internal/rdf"
	"github.com/pdiddy/seminar-engine/pkg/types"
)

// Name-part predicates scanned when expanding an agent list member.
var namePartPreds = []struct {
	pred string
	set  func(n *types.Name, v string)
}{
	{"foaf:name", func(n *types.Name, v string) { n.Literal = v }},
	{"foaf:givenname", func(n *types.Name, v string) { n.Given = v }},
	{"foaf:surname", func(n *types.Name, v string) { n.Family = v }},
	{"bibo:suffixName", func(n *types.Name, v string) { n.Suffix = v }},
}

// Normalize builds one CSL record per bibliographic work in the graph,
// iterating the producer registry in declaration order and, per producer,
// the matching typed resources in graph discovery order.
//
// A failure while building one record aborts the whole batch: a malformed
// work indicates source data that must be fixed, not skipped.
func Normalize(g *rdf.Graph) ([]types.Record, error) {
	rdfType := rdf.Expand("rdf:type")

	var records []types.Record
	for _, p := range producers {
		for _, work := range g.SubjectsOf(rdfType, rdf.Expand(p.rdfType)) {
			rec, err := normalizeOne(g, work, p.build)
			if err != nil {
				return nil, fmt.Errorf("building record for <%s>: %w", work.Value, err)
			}
			records = append(records, rec)
		}
	}
	return records, nil
}

func normalizeOne(g *rdf.Graph, work rdf.Term, build func(*rdf.Graph, rdf.Term) (recipe, error)) (types.Record, error) {
	r, err := build(g, work)
	if err != nil {
		return types.Record{}, err
	}

	resolved := make(map[string]rdf.Term, len(r.fields))
	for _, f := range r.fields {
		for _, cand := range f.paths {
			if cand.subject.IsZero() {
				continue
			}
			if o, ok := g.FirstObjectOf(cand.subject, rdf.Expand(cand.pred)); ok {
				resolved[f.name] = o
				break
			}
		}
	}

	rec := types.Record{ID: rdf.BibID(work), Type: r.itemType}

	for _, field := range r.agentFields {
		head, ok := resolved[field]
		if !ok {
			continue
		}
		delete(resolved, field)
		agents, err := expandAgents(g, head)
		if err != nil {
			return types.Record{}, fmt.Errorf("expanding %s list: %w", field, err)
		}
		switch field {
		case "author":
			rec.Author = agents
		case "editor":
			rec.Editor = agents
		default:
			return types.Record{}, fmt.Errorf("recipe names unknown agent field %q", field)
		}
	}

	for _, field := range r.dateFields {
		raw, ok := resolved[field]
		if !ok {
			continue
		}
		delete(resolved, field)
		d, err := ParseDate(raw.TextValue())
		if err != nil {
			return types.Record{}, fmt.Errorf("parsing %s date: %w", field, err)
		}
		switch field {
		case "issued":
			rec.Issued = d
		case "event-date":
			rec.EventDate = d
		default:
			return types.Record{}, fmt.Errorf("recipe names unknown date field %q", field)
		}
	}

	for name, value := range resolved {
		if !value.IsLiteral() {
			return types.Record{}, fmt.Errorf("field %q resolved to non-literal %s", name, value)
		}
		if err := setField(&rec, name, value.TextValue()); err != nil {
			return types.Record{}, err
		}
	}

	return rec, nil
}

// expandAgents materializes a name list resource into structured names in
// list order. Per member and per name-part predicate, the first value wins.
func expandAgents(g *rdf.Graph, head rdf.Term) ([]types.Name, error) {
	members, err := g.List(head)
	if err != nil {
		return nil, err
	}
	agents := make([]types.Name, len(members))
	for i, member := range members {
		for _, part := range namePartPreds {
			if o, ok := g.FirstObjectOf(member, rdf.Expand(part.pred)); ok {
				part.set(&agents[i], o.TextValue())
			}
		}
	}
	return agents, nil
}

// setField assigns an unwrapped literal value to the record field with
// the given CSL name. An unknown name is a recipe bug.
func setField(rec *types.Record, name, value string) error {
	switch name {
	case "title":
		rec.Title = value
	case "container-title":
		rec.ContainerTitle = value
	case "collection-title":
		rec.CollectionTitle = value
	case "page":
		rec.Page = value
	case "volume":
		rec.Volume = value
	case "issue":
		rec.Issue = value
	case "medium":
		rec.Medium = value
	case "URL":
		rec.URL = value
	case "DOI":
		rec.DOI = value
	case "publisher":
		rec.Publisher = value
	case "publisher-place":
		rec.PublisherPlace = value
	case "event-place":
		rec.EventPlace = value
	default:
		return fmt.Errorf("recipe names unknown field %q", name)
	}
	return nil
}
