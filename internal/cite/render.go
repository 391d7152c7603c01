// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cite renders normalized CSL records as HTML citation entries.
// Output follows the citeproc bibliography shape — a csl-bib-body wrapper
// around one csl-entry div per record — so downstream fragment surgery
// (wrapper stripping, sentence-boundary checks) has a stable target.
package cite

import (
	"fmt"
	"strings"

	"github.com/pdiddy/seminar-engine/internal/bib"
	"github.com/pdiddy/seminar-engine/internal/rdf"
	"github.com/pdiddy/seminar-engine/pkg/types"
)

// Renderer converts one normalized record into citation HTML in a given
// style and locale.
type Renderer interface {
	Render(rec types.Record, style, locale string) (string, error)
}

// HTMLRenderer is the built-in Renderer. It is stateless and safe for
// concurrent use.
type HTMLRenderer struct{}

// styles maps style names to entry formatters.
var styles = map[string]func(types.Record) string{
	"apa": apaEntry,
}

// Render formats rec as an HTML bibliography fragment. The empty style
// and locale select "apa" and "en-US"; only en-US phrasing is shipped.
func (HTMLRenderer) Render(rec types.Record, style, locale string) (string, error) {
	if style == "" {
		style = "apa"
	}
	if locale == "" {
		locale = "en-US"
	}
	format, ok := styles[style]
	if !ok {
		return "", fmt.Errorf("unknown citation style %q", style)
	}
	if locale != "en-US" {
		return "", fmt.Errorf("unsupported locale %q", locale)
	}
	return "<div class=\"csl-bib-body\">\n  <div class=\"csl-entry\">" +
		format(rec) + "</div>\n</div>", nil
}

// Bibliography normalizes every work in the graph and renders each record,
// returning a record-id to HTML map for schedule assembly.
func Bibliography(g *rdf.Graph, r Renderer, style, locale string) (map[string]string, error) {
	records, err := bib.Normalize(g)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(records))
	for _, rec := range records {
		html, err := r.Render(rec, style, locale)
		if err != nil {
			return nil, fmt.Errorf("rendering citation for %q: %w", rec.ID, err)
		}
		out[rec.ID] = html
	}
	return out, nil
}

// apaEntry builds an APA-style entry. Absent fields drop out of the
// sentence they would have joined.
func apaEntry(rec types.Record) string {
	var sentences []string

	head := familyFirstNames(rec.Author)
	if year := rec.Issued.Year(); year != 0 {
		head = joinNonEmpty(" ", head, fmt.Sprintf("(%d).", year))
	} else if head != "" {
		head += "."
	}
	if head != "" {
		sentences = append(sentences, head)
	}

	switch rec.Type {
	case types.RecordArticleJournal:
		sentences = appendSentence(sentences, rec.Title)
		ref := italic(rec.ContainerTitle)
		if rec.Volume != "" {
			vol := italic(rec.Volume)
			if rec.Issue != "" {
				vol += "(" + rec.Issue + ")"
			}
			ref = joinNonEmpty(", ", ref, vol)
		}
		ref = joinNonEmpty(", ", ref, rec.Page)
		sentences = appendSentence(sentences, ref)
	case types.RecordChapter:
		sentences = appendSentence(sentences, rec.Title)
		in := ""
		if eds := givenFirstNames(rec.Editor); eds != "" {
			suffix := " (Ed.),"
			if len(rec.Editor) > 1 {
				suffix = " (Eds.),"
			}
			in = "In " + eds + suffix
		}
		book := italic(rec.ContainerTitle)
		if rec.Page != "" {
			book += " (pp. " + rec.Page + ")"
		}
		sentences = appendSentence(sentences, joinNonEmpty(" ", in, book))
		sentences = appendSentence(sentences, joinNonEmpty(", ", rec.Publisher, rec.PublisherPlace))
	case types.RecordPaperConference:
		sentences = appendSentence(sentences, rec.Title)
		proc := italic(rec.ContainerTitle)
		if rec.Page != "" {
			proc += " (pp. " + rec.Page + ")"
		}
		if proc != "" {
			proc = "In " + proc
		}
		sentences = appendSentence(sentences, proc)
		sentences = appendSentence(sentences, joinNonEmpty(", ", rec.CollectionTitle, rec.EventPlace))
		sentences = appendSentence(sentences, joinNonEmpty(", ", rec.Publisher, rec.PublisherPlace))
	default:
		title := italic(rec.Title)
		if rec.Medium != "" {
			title += " [" + rec.Medium + "]"
		}
		sentences = appendSentence(sentences, title)
		sentences = appendSentence(sentences, joinNonEmpty(", ", rec.Publisher, rec.PublisherPlace))
	}

	entry := strings.Join(sentences, " ")
	if rec.DOI != "" {
		entry = joinNonEmpty(" ", entry, "https://doi.org/"+rec.DOI)
	}
	return entry
}

// familyFirstNames renders names in reference-list order: "Neurath, O.,
// Carnap, R., & Morris, C." A literal-only name is used verbatim.
func familyFirstNames(names []types.Name) string {
	parts := make([]string, 0, len(names))
	for _, n := range names {
		s := n.Literal
		if n.Family != "" {
			s = joinNonEmpty(", ", n.Family, initials(n.Given))
			s = joinNonEmpty(", ", s, n.Suffix)
		} else if s == "" {
			s = n.Given
		}
		if s != "" {
			parts = append(parts, s)
		}
	}
	return ampersandList(parts)
}

// givenFirstNames renders names in running-text order: "O. Neurath &
// R. Carnap", as APA's editor clause wants.
func givenFirstNames(names []types.Name) string {
	parts := make([]string, 0, len(names))
	for _, n := range names {
		s := n.Literal
		if n.Family != "" {
			s = joinNonEmpty(" ", initials(n.Given), n.Family)
		} else if s == "" {
			s = n.Given
		}
		if s != "" {
			parts = append(parts, s)
		}
	}
	return ampersandList(parts)
}

func ampersandList(parts []string) string {
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	case 2:
		return parts[0] + " & " + parts[1]
	default:
		return strings.Join(parts[:len(parts)-1], ", ") + ", & " + parts[len(parts)-1]
	}
}

// initials abbreviates each token of a given name: "Rudolf P" -> "R. P."
func initials(given string) string {
	fields := strings.Fields(given)
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = string([]rune(f)[0]) + "."
	}
	return strings.Join(out, " ")
}

func italic(s string) string {
	if s == "" {
		return ""
	}
	return "<i>" + s + "</i>"
}

func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

// appendSentence adds text as its own sentence, supplying the closing
// period unless the text already ends with one.
func appendSentence(sentences []string, text string) []string {
	if text == "" {
		return sentences
	}
	if !strings.HasSuffix(text, ".") {
		text += "."
	}
	return append(sentences, text)
}
