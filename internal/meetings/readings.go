// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package meetings

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pdiddy/seminar-engine/internal/rdf"
)

// missingCitation is what a reading renders as when its id has no
// bibliography entry. Agendas routinely reference freshly added works, so
// this is a visible local patch, not an error.
const missingCitation = `<p style="background-color: red;">Missing citation</p>`

// doiLink matches a bare DOI URL sitting at the end of a citation entry.
var doiLink = regexp.MustCompile(`(https://doi\.org/(.*?))</div>`)

// nonWordRuns matches runs of non-alphanumeric characters within a DOI.
var nonWordRuns = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// readingsHTML renders one reading segment. Each item's bibliography
// entry is unwrapped from its csl-bib-body shell, its bare DOI URL is
// turned into a hyperlink with soft-break markers, and entries ending on
// a sentence boundary gain a "Retrieved from" link when the item itself
// carries a bibo:uri.
func readingsHTML(g *rdf.Graph, bibliography map[string]string, items []rdf.Term) string {
	var b strings.Builder
	for _, item := range items {
		entry, ok := bibliography[rdf.BibID(item)]
		if !ok {
			b.WriteString(missingCitation)
			continue
		}

		body := stripBibBody(entry)
		body = doiLink.ReplaceAllStringFunc(body, func(match string) string {
			groups := doiLink.FindStringSubmatch(match)
			url, doi := groups[1], groups[2]
			return fmt.Sprintf(`<a href="%s">doi:%s</a></div>`, url, softBreaks(doi))
		})

		if strings.HasSuffix(body, ".</div>") {
			if uri, ok := g.FirstObjectOf(item, rdf.Expand("bibo:uri")); ok {
				u := uri.TextValue()
				body = fmt.Sprintf(`%s Retrieved from <a href="%s">%s</a>.</div>`,
					strings.TrimSuffix(body, "</div>"), u, u)
			}
		}

		b.WriteString(body)
	}
	return b.String()
}

// notesHTML renders one note segment: each member's dc:description as an
// independent paragraph. A note without a description is malformed.
func notesHTML(g *rdf.Graph, items []rdf.Term) (string, error) {
	paragraphs := make([]string, len(items))
	for i, item := range items {
		desc, err := g.One(item, rdf.Expand("dc:description"))
		if err != nil {
			return "", err
		}
		paragraphs[i] = "<p>" + desc.TextValue() + "</p>"
	}
	return strings.Join(paragraphs, "\n"), nil
}

// stripBibBody drops the first and last lines of a rendered entry — the
// csl-bib-body wrapper — leaving the csl-entry fragment.
func stripBibBody(entry string) string {
	lines := strings.Split(entry, "\n")
	if len(lines) <= 2 {
		return entry
	}
	return strings.Join(lines[1:len(lines)-1], "\n")
}

// softBreaks wraps each non-alphanumeric run of a DOI in <wbr> markers so
// browsers can break the string at punctuation.
func softBreaks(doi string) string {
	return nonWordRuns.ReplaceAllString(doi, "<wbr>$0</wbr>")
}
