// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cite

import (
	"strings"
	"testing"

	"github.com/pdiddy/seminar-engine/internal/rdf"
	"github.com/pdiddy/seminar-engine/pkg/types"
)

func render(t *testing.T, rec types.Record) string {
	t.Helper()
	html, err := HTMLRenderer{}.Render(rec, "apa", "en-US")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	return html
}

func TestRenderWrapperShape(t *testing.T) {
	html := render(t, types.Record{ID: "x", Type: types.RecordBook, Title: "T"})

	lines := strings.Split(html, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3 (bib-body, entry, close)", len(lines))
	}
	if lines[0] != `<div class="csl-bib-body">` {
		t.Errorf("first line = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], `  <div class="csl-entry">`) || !strings.HasSuffix(lines[1], "</div>") {
		t.Errorf("entry line = %q", lines[1])
	}
	if lines[2] != "</div>" {
		t.Errorf("last line = %q", lines[2])
	}
}

func TestRenderArticle(t *testing.T) {
	html := render(t, types.Record{
		ID:             "smith-2019",
		Type:           types.RecordArticleJournal,
		Title:          "On Things",
		ContainerTitle: "Journal of Stuff",
		Volume:         "11",
		Issue:          "2",
		Page:           "100-115",
		Author: []types.Name{
			{Given: "Ada", Family: "Smith"},
			{Given: "Bo", Family: "Jones"},
		},
		Issued: &types.Date{DateParts: [][]int{{2019, 3}}},
	})

	for _, want := range []string{
		"Smith, A. & Jones, B. (2019).",
		"On Things.",
		"<i>Journal of Stuff</i>, <i>11</i>(2), 100-115.",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("entry missing %q:\n%s", want, html)
		}
	}
}

func TestRenderChapterEditors(t *testing.T) {
	html := render(t, types.Record{
		ID:             "c",
		Type:           types.RecordChapter,
		Title:          "A Chapter",
		ContainerTitle: "The Book",
		Page:           "3-14",
		Author:         []types.Name{{Given: "Ada", Family: "Smith"}},
		Editor: []types.Name{
			{Given: "Ed", Family: "Itor"},
			{Given: "Co", Family: "Editor"},
		},
		Publisher: "Big Press",
		Issued:    &types.Date{DateParts: [][]int{{1938}}},
	})

	if !strings.Contains(html, "In E. Itor & C. Editor (Eds.), <i>The Book</i> (pp. 3-14).") {
		t.Errorf("editor clause wrong:\n%s", html)
	}
	if !strings.Contains(html, "Big Press.") {
		t.Errorf("publisher missing:\n%s", html)
	}
}

func TestRenderDOITrailsWithoutPeriod(t *testing.T) {
	html := render(t, types.Record{
		ID:    "d",
		Type:  types.RecordArticleJournal,
		Title: "T",
		DOI:   "10.1000/xyz123",
	})
	if !strings.Contains(html, "https://doi.org/10.1000/xyz123</div>") {
		t.Errorf("DOI should end the entry bare, before the closing div:\n%s", html)
	}
}

func TestRenderWithoutDOIEndsWithPeriod(t *testing.T) {
	html := render(t, types.Record{ID: "p", Type: types.RecordBook, Title: "T"})
	if !strings.Contains(html, ".</div>") {
		t.Errorf("entry should end on a sentence boundary:\n%s", html)
	}
}

func TestRenderLectureMedium(t *testing.T) {
	html := render(t, types.Record{
		ID:     "l",
		Type:   types.RecordBook,
		Title:  "Pragmatism",
		Medium: "Audio recording",
	})
	if !strings.Contains(html, "<i>Pragmatism</i> [Audio recording].") {
		t.Errorf("medium bracket missing:\n%s", html)
	}
}

func TestRenderUnknownStyle(t *testing.T) {
	_, err := HTMLRenderer{}.Render(types.Record{}, "vancouver", "en-US")
	if err == nil {
		t.Error("unknown style should fail")
	}
}

func TestRenderUnsupportedLocale(t *testing.T) {
	_, err := HTMLRenderer{}.Render(types.Record{}, "apa", "de-DE")
	if err == nil {
		t.Error("unsupported locale should fail")
	}
}

func TestBibliography(t *testing.T) {
	g, err := rdf.ParseTurtle(strings.NewReader(`
:solo-book a bibo:Book ;
    dc:title "Solo" ;
    dc:date "2001" .
`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	entries, err := Bibliography(g, HTMLRenderer{}, "apa", "en-US")
	if err != nil {
		t.Fatalf("Bibliography: %v", err)
	}
	entry, ok := entries["solo-book"]
	if !ok {
		t.Fatalf("entries = %v, want key solo-book", entries)
	}
	if !strings.Contains(entry, "<i>Solo</i>") {
		t.Errorf("entry = %q", entry)
	}
}
