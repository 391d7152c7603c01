// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rdf

import (
	"errors"
	"testing"
)

func TestTermIdentity(t *testing.T) {
	if NewIRI("https://x.test/a") != NewIRI("https://x.test/a") {
		t.Error("equal IRIs should be the same term")
	}
	if NewIRI("https://x.test/a") == NewBlank("https://x.test/a") {
		t.Error("IRI and blank node with equal text should differ")
	}
	if NewLiteral("a") == NewLangLiteral("a", "en") {
		t.Error("plain and language-tagged literals should differ")
	}

	// Terms key maps directly.
	m := map[Term]int{NewIRI("https://x.test/a"): 1}
	if m[NewIRI("https://x.test/a")] != 1 {
		t.Error("term map lookup by value identity failed")
	}
}

func TestObjectsOfOrder(t *testing.T) {
	g := NewGraph()
	s := NewIRI("https://x.test/s")
	p := NewIRI("https://x.test/p")
	g.Add(s, p, NewLiteral("first"))
	g.Add(s, p, NewLiteral("second"))

	objects := g.ObjectsOf(s, p)
	if len(objects) != 2 || objects[0].Value != "first" || objects[1].Value != "second" {
		t.Errorf("ObjectsOf = %v, want insertion order", objects)
	}

	o, ok := g.FirstObjectOf(s, p)
	if !ok || o.Value != "first" {
		t.Errorf("FirstObjectOf = %v, %v", o, ok)
	}
}

func TestOneStructuralError(t *testing.T) {
	g := NewGraph()
	s := NewIRI("https://x.test/s")
	_, err := g.One(s, NewIRI("https://x.test/p"))

	var structural *StructuralError
	if !errors.As(err, &structural) {
		t.Fatalf("One on absent relation = %v, want StructuralError", err)
	}
	if structural.Resource != "https://x.test/s" {
		t.Errorf("StructuralError.Resource = %q", structural.Resource)
	}
}

func TestListRoundTrip(t *testing.T) {
	g := NewGraph()
	a := NewIRI("https://x.test/a")
	b := NewIRI("https://x.test/b")
	c := NewIRI("https://x.test/c")

	head := g.AddList(a, b, c)
	members, err := g.List(head)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(members) != 3 || members[0] != a || members[1] != b || members[2] != c {
		t.Errorf("List = %v, want [a b c]", members)
	}
}

func TestListEmpty(t *testing.T) {
	g := NewGraph()
	members, err := g.List(g.AddList())
	if err != nil {
		t.Fatalf("List on rdf:nil: %v", err)
	}
	if len(members) != 0 {
		t.Errorf("List = %v, want empty", members)
	}
}

func TestListCycle(t *testing.T) {
	g := NewGraph()
	first := NewIRI(nsRDF + "first")
	rest := NewIRI(nsRDF + "rest")
	n1 := NewBlank("n1")
	n2 := NewBlank("n2")
	g.Add(n1, first, NewLiteral("a"))
	g.Add(n1, rest, n2)
	g.Add(n2, first, NewLiteral("b"))
	g.Add(n2, rest, n1)

	if _, err := g.List(n1); err == nil {
		t.Error("List on a cyclic chain should fail")
	}
}

func TestSubjectsOfDeduplicates(t *testing.T) {
	g := NewGraph()
	s := NewIRI("https://x.test/s")
	p := NewIRI("https://x.test/p")
	o := NewIRI("https://x.test/o")
	g.Add(s, p, o)
	g.Add(s, p, o)

	if got := g.SubjectsOf(p, o); len(got) != 1 {
		t.Errorf("SubjectsOf = %v, want one subject", got)
	}
	if got := g.ObjectsOfAny(p); len(got) != 1 {
		t.Errorf("ObjectsOfAny = %v, want one object", got)
	}
}

func TestSubgraphFrom(t *testing.T) {
	g := NewGraph()
	p := NewIRI("https://x.test/p")
	root := NewIRI("https://x.test/root")
	mid := NewIRI("https://x.test/mid")
	leaf := NewIRI("https://x.test/leaf")
	other := NewIRI("https://x.test/other")
	g.Add(root, p, mid)
	g.Add(mid, p, leaf)
	g.Add(other, p, root)

	sub := g.SubgraphFrom([]Term{root})
	if sub.Len() != 2 {
		t.Fatalf("subgraph has %d triples, want 2", sub.Len())
	}
	if got := sub.ObjectsOf(root, p); len(got) != 1 || got[0] != mid {
		t.Errorf("subgraph lost root -> mid")
	}
	// Inbound statements are not part of the outbound closure.
	if got := sub.SubjectsOf(p, root); len(got) != 0 {
		t.Errorf("subgraph should not contain other -> root, got %v", got)
	}
}
