// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the shared value types produced by the extraction
// pipeline: CSL bibliographic records, classified entities, and assembled
// meetings.
package types

import "time"

// Record types produced by the bibliographic normalizer. Lectures reuse
// RecordBook: the CSL book shape carries every field a lecture needs.
const (
	RecordChapter         = "chapter"
	RecordArticleJournal  = "article-journal"
	RecordBook            = "book"
	RecordPaperConference = "paper-conference"
)

// Record is a normalized bibliographic entry in CSL (Citation Style
// Language) format. Field names and structure follow the CSL-JSON/CSL-YAML
// schema so that output is consumable by citation processors and reference
// managers. A field left empty was absent from the source graph.
type Record struct {
	ID   string `json:"id" yaml:"id"`
	Type string `json:"type" yaml:"type"`

	Title           string `json:"title,omitempty" yaml:"title,omitempty"`
	ContainerTitle  string `json:"container-title,omitempty" yaml:"container-title,omitempty"`
	CollectionTitle string `json:"collection-title,omitempty" yaml:"collection-title,omitempty"`
	Page            string `json:"page,omitempty" yaml:"page,omitempty"`
	Volume          string `json:"volume,omitempty" yaml:"volume,omitempty"`
	Issue           string `json:"issue,omitempty" yaml:"issue,omitempty"`
	Medium          string `json:"medium,omitempty" yaml:"medium,omitempty"`

	URL string `json:"URL,omitempty" yaml:"URL,omitempty"`
	DOI string `json:"DOI,omitempty" yaml:"DOI,omitempty"`

	Publisher      string `json:"publisher,omitempty" yaml:"publisher,omitempty"`
	PublisherPlace string `json:"publisher-place,omitempty" yaml:"publisher-place,omitempty"`
	EventPlace     string `json:"event-place,omitempty" yaml:"event-place,omitempty"`

	Author []Name `json:"author,omitempty" yaml:"author,omitempty"`
	Editor []Name `json:"editor,omitempty" yaml:"editor,omitempty"`

	Issued    *Date `json:"issued,omitempty" yaml:"issued,omitempty"`
	EventDate *Date `json:"event-date,omitempty" yaml:"event-date,omitempty"`
}

// Name represents a person's name in CSL format. Parts not present in the
// source graph stay empty.
type Name struct {
	Family  string `json:"family,omitempty" yaml:"family,omitempty"`
	Given   string `json:"given,omitempty" yaml:"given,omitempty"`
	Suffix  string `json:"suffix,omitempty" yaml:"suffix,omitempty"`
	Literal string `json:"literal,omitempty" yaml:"literal,omitempty"`
}

// Date represents a date in CSL format using date-parts. Partial precision
// is expressed by shorter inner arrays: [[2019]] is a year-only date.
type Date struct {
	DateParts [][]int `json:"date-parts" yaml:"date-parts"`
}

// Year returns the year of the first date-part, or zero when unknown.
func (d *Date) Year() int {
	if d == nil || len(d.DateParts) == 0 || len(d.DateParts[0]) == 0 {
		return 0
	}
	return d.DateParts[0][0]
}

// Time converts the first date-part to a time.Time at UTC midnight,
// defaulting missing month and day to January 1.
func (d *Date) Time() time.Time {
	if d.Year() == 0 {
		return time.Time{}
	}
	parts := d.DateParts[0]
	month, day := 1, 1
	if len(parts) > 1 {
		month = parts[1]
	}
	if len(parts) > 2 {
		day = parts[2]
	}
	return time.Date(parts[0], time.Month(month), day, 0, 0, 0, 0, time.UTC)
}
