// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rdf provides an in-memory RDF graph: terms, an indexed triple
// store with ordered-list support, namespace expansion, and a Turtle-subset
// parser for loading seminar archive graphs.
package rdf

import "fmt"

// TermKind distinguishes the three kinds of RDF node.
type TermKind int

const (
	IRI TermKind = iota
	Blank
	Literal
)

// Term is a single RDF node. Terms are plain comparable values: two terms
// are the same resource when their kind and value (and, for literals,
// datatype and language tag) are equal, so a Term can key a map directly.
type Term struct {
	Kind     TermKind
	Value    string
	Datatype string
	Lang     string
}

// NewIRI returns an IRI term.
func NewIRI(iri string) Term {
	return Term{Kind: IRI, Value: iri}
}

// NewBlank returns a blank node term with the given label.
func NewBlank(label string) Term {
	return Term{Kind: Blank, Value: label}
}

// NewLiteral returns a plain string literal.
func NewLiteral(value string) Term {
	return Term{Kind: Literal, Value: value}
}

// NewTypedLiteral returns a literal with an explicit datatype IRI.
func NewTypedLiteral(value, datatype string) Term {
	return Term{Kind: Literal, Value: value, Datatype: datatype}
}

// NewLangLiteral returns a literal with a language tag.
func NewLangLiteral(value, lang string) Term {
	return Term{Kind: Literal, Value: value, Lang: lang}
}

// IsLiteral reports whether the term is a literal value.
func (t Term) IsLiteral() bool {
	return t.Kind == Literal
}

// IsZero reports whether the term is the zero value. Recipe paths use a
// zero subject to mark an optional hop that did not resolve.
func (t Term) IsZero() bool {
	return t == Term{}
}

// TextValue returns the lexical value of the term: the literal text, the
// IRI string, or the blank node label.
func (t Term) TextValue() string {
	return t.Value
}

// String renders the term in N-Triples style, for error messages and tests.
func (t Term) String() string {
	switch t.Kind {
	case Blank:
		return "_:" + t.Value
	case Literal:
		if t.Lang != "" {
			return fmt.Sprintf("%q@%s", t.Value, t.Lang)
		}
		if t.Datatype != "" {
			return fmt.Sprintf("%q^^<%s>", t.Value, t.Datatype)
		}
		return fmt.Sprintf("%q", t.Value)
	default:
		return "<" + t.Value + ">"
	}
}

// StructuralError reports a violated structural assumption: a resource is
// missing a relation the source data model guarantees. These abort
// processing of the offending resource rather than being skipped.
type StructuralError struct {
	Resource string
	Reason   string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("%s: %s", e.Resource, e.Reason)
}
