// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rdf

import "fmt"

// Triple is one (subject, predicate, object) statement.
type Triple struct {
	Subject   Term
	Predicate Term
	Object    Term
}

type subjectPredicate struct {
	subject   Term
	predicate Term
}

// Graph is an immutable-after-load, in-memory triple store. All lookup
// methods return terms in triple insertion order, which makes extraction
// deterministic for a given source document.
type Graph struct {
	triples   []Triple
	bySubPred map[subjectPredicate][]Term
	bySubject map[Term][]Triple
	nextBlank int
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{
		bySubPred: make(map[subjectPredicate][]Term),
		bySubject: make(map[Term][]Triple),
	}
}

// Add appends one triple to the graph.
func (g *Graph) Add(s, p, o Term) {
	t := Triple{Subject: s, Predicate: p, Object: o}
	g.triples = append(g.triples, t)
	key := subjectPredicate{s, p}
	g.bySubPred[key] = append(g.bySubPred[key], o)
	g.bySubject[s] = append(g.bySubject[s], t)
}

// Len returns the number of triples in the graph.
func (g *Graph) Len() int {
	return len(g.triples)
}

// NewBlankNode mints a blank node with a label unused by this graph's
// allocator. The Turtle parser and AddList use it for structure nodes.
func (g *Graph) NewBlankNode() Term {
	g.nextBlank++
	return NewBlank(fmt.Sprintf("gen%d", g.nextBlank))
}

// ObjectsOf returns every object of triples matching (s, p), in order.
func (g *Graph) ObjectsOf(s, p Term) []Term {
	return g.bySubPred[subjectPredicate{s, p}]
}

// FirstObjectOf returns the first object of (s, p), if any.
func (g *Graph) FirstObjectOf(s, p Term) (Term, bool) {
	objects := g.ObjectsOf(s, p)
	if len(objects) == 0 {
		return Term{}, false
	}
	return objects[0], true
}

// One returns the single object of (s, p), or a StructuralError when the
// relation is absent. Use it for hops the source data model guarantees.
func (g *Graph) One(s, p Term) (Term, error) {
	o, ok := g.FirstObjectOf(s, p)
	if !ok {
		return Term{}, &StructuralError{
			Resource: s.Value,
			Reason:   fmt.Sprintf("missing required relation <%s>", p.Value),
		}
	}
	return o, nil
}

// ObjectsOfAny returns the objects of every triple with predicate p,
// regardless of subject, deduplicated in discovery order.
func (g *Graph) ObjectsOfAny(p Term) []Term {
	var out []Term
	seen := make(map[Term]bool)
	for _, t := range g.triples {
		if t.Predicate == p && !seen[t.Object] {
			seen[t.Object] = true
			out = append(out, t.Object)
		}
	}
	return out
}

// SubjectsOf returns the subjects of every triple matching (p, o),
// deduplicated in discovery order.
func (g *Graph) SubjectsOf(p, o Term) []Term {
	var out []Term
	seen := make(map[Term]bool)
	for _, t := range g.triples {
		if t.Predicate == p && t.Object == o && !seen[t.Subject] {
			seen[t.Subject] = true
			out = append(out, t.Subject)
		}
	}
	return out
}

// TriplesOf returns every triple whose subject is s, in insertion order.
func (g *Graph) TriplesOf(s Term) []Triple {
	return g.bySubject[s]
}

// List materializes an rdf:first/rdf:rest chain starting at head into the
// member sequence it encodes. A node missing rdf:first or rdf:rest, or a
// chain that revisits a node, yields a StructuralError.
func (g *Graph) List(head Term) ([]Term, error) {
	nilTerm := NewIRI(nsRDF + "nil")
	first := NewIRI(nsRDF + "first")
	rest := NewIRI(nsRDF + "rest")

	var members []Term
	visited := make(map[Term]bool)
	for node := head; node != nilTerm; {
		if visited[node] {
			return nil, &StructuralError{Resource: head.Value, Reason: "list contains a cycle"}
		}
		visited[node] = true

		member, err := g.One(node, first)
		if err != nil {
			return nil, &StructuralError{Resource: head.Value, Reason: "malformed list: node missing rdf:first"}
		}
		members = append(members, member)

		next, err := g.One(node, rest)
		if err != nil {
			return nil, &StructuralError{Resource: head.Value, Reason: "malformed list: node missing rdf:rest"}
		}
		node = next
	}
	return members, nil
}

// AddList builds an rdf:first/rdf:rest chain for items and returns its
// head term (rdf:nil for an empty list).
func (g *Graph) AddList(items ...Term) Term {
	nilTerm := NewIRI(nsRDF + "nil")
	first := NewIRI(nsRDF + "first")
	rest := NewIRI(nsRDF + "rest")

	if len(items) == 0 {
		return nilTerm
	}
	nodes := make([]Term, len(items))
	for i := range items {
		nodes[i] = g.NewBlankNode()
	}
	for i, item := range items {
		next := nilTerm
		if i+1 < len(nodes) {
			next = nodes[i+1]
		}
		g.Add(nodes[i], first, item)
		g.Add(nodes[i], rest, next)
	}
	return nodes[0]
}

// SubgraphFrom returns a new graph holding every triple reachable from
// roots by following statements outward from their subjects. The result
// is a restricted view for scoped classification, e.g. the resources a
// meeting declares as involved.
func (g *Graph) SubgraphFrom(roots []Term) *Graph {
	sub := NewGraph()
	seen := make(map[Term]bool)
	queue := append([]Term(nil), roots...)
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		if seen[node] {
			continue
		}
		seen[node] = true
		for _, t := range g.TriplesOf(node) {
			sub.Add(t.Subject, t.Predicate, t.Object)
			if t.Object.Kind != Literal && !seen[t.Object] {
				queue = append(queue, t.Object)
			}
		}
	}
	return sub
}
