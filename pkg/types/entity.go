// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Entity categories produced by the classifier.
const (
	CategoryPeople      = "People"
	CategoryJournals    = "Journals"
	CategoryConferences = "Conferences"
	CategoryPublishers  = "Publishers"
)

// Entity is a classified graph resource: a person, journal, conference,
// or publisher. Within one category entities are unique by ID.
type Entity struct {
	// Category is one of the Category* constants.
	Category string `json:"category" yaml:"category"`

	// ID is the resource's full identifier in the source graph.
	ID string `json:"id" yaml:"id"`

	// Label is the display name. It may be empty when the source graph
	// carries no name literal for the resource.
	Label string `json:"label" yaml:"label"`

	// Fragment is the trailing identifier segment, used as an anchor key.
	Fragment string `json:"fragment" yaml:"fragment"`

	// Roles lists every role (e.g. "author", "editor") under which the
	// entity was discovered, sorted, without duplicates. Empty for
	// entities found only through a type declaration.
	Roles []string `json:"roles,omitempty" yaml:"roles,omitempty"`
}

// Meeting is one assembled seminar meeting: its anchor fragment, starting
// time, involved entities, and the rendered agenda HTML.
type Meeting struct {
	Fragment string    `json:"fragment" yaml:"fragment"`
	Date     time.Time `json:"date" yaml:"date"`
	Entities []Entity  `json:"entities,omitempty" yaml:"entities,omitempty"`
	HTML     string    `json:"html" yaml:"html"`
}
