// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rdf

import (
	"fmt"
	"strings"
)

// Namespace IRIs for the vocabularies the seminar archive graphs use.
const (
	nsRDF     = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	nsDC      = "http://purl.org/dc/terms/"
	nsBibo    = "http://purl.org/ontology/bibo/"
	nsFOAF    = "http://xmlns.com/foaf/0.1/"
	nsTime    = "http://www.w3.org/2006/time#"
	nsLode    = "http://linkedevents.org/ontology/"
	nsAddress = "http://schemas.talis.com/2005/address/schema#"
	nsXSD     = "http://www.w3.org/2001/XMLSchema#"

	// nsLocal is the site-local vocabulary and entity namespace. Local
	// names end up after the final colon, which is what BibID strips.
	nsLocal = "https://seminar-engine.example/graph:"
)

// fragmentMarker is the path marker Fragment strips through. Everything a
// site page anchors on (meetings, people, works) lives under the /graph
// namespace, so the trailing segment is a stable anchor key.
const fragmentMarker = "/graph"

// prefixes is the canonical prefix table. The Turtle parser seeds its
// local table from it, so archive documents can use these without
// declaring them.
var prefixes = map[string]string{
	"rdf":     nsRDF,
	"dc":      nsDC,
	"bibo":    nsBibo,
	"foaf":    nsFOAF,
	"time":    nsTime,
	"lode":    nsLode,
	"address": nsAddress,
	"xsd":     nsXSD,
	"":        nsLocal,
}

// Expand resolves a prefixed name such as "dc:title" or ":meeting" to its
// canonical IRI term. It panics on an unknown prefix: expansion arguments
// are compile-time vocabulary constants, not user input.
func Expand(name string) Term {
	idx := strings.Index(name, ":")
	if idx < 0 {
		panic(fmt.Sprintf("rdf: %q is not a prefixed name", name))
	}
	ns, ok := prefixes[name[:idx]]
	if !ok {
		panic(fmt.Sprintf("rdf: unknown namespace prefix %q", name[:idx]))
	}
	return NewIRI(ns + name[idx+1:])
}

// Fragment returns the trailing segment of a term's identifier: the text
// after the last occurrence of the /graph path marker, with any leading
// separator removed. Applying it to its own result is a no-op.
func Fragment(t Term) string {
	v := t.Value
	if idx := strings.LastIndex(v, fragmentMarker); idx >= 0 {
		v = v[idx+len(fragmentMarker):]
	}
	return strings.TrimLeft(v, ":#/")
}

// BibID returns the bibliographic record id for a work reference: the
// segment after the last colon of its identifier.
func BibID(t Term) string {
	v := t.Value
	if idx := strings.LastIndex(v, ":"); idx >= 0 {
		return v[idx+1:]
	}
	return v
}
