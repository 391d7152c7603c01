// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rdf

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
)

// ParseTurtleFile loads a Turtle document from path into a new graph.
func ParseTurtleFile(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading graph file: %w", err)
	}
	g, err := ParseTurtle(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return g, nil
}

// ParseTurtle parses a Turtle document into a new graph. The supported
// subset covers what archive documents use: @prefix and @base directives,
// IRIs, prefixed names, the "a" keyword, string/numeric/boolean literals
// with language tags and datatypes, blank nodes, blank node property
// lists, collections, and ; , . punctuation.
func ParseTurtle(r io.Reader) (*Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading turtle input: %w", err)
	}

	p := &turtleParser{
		input: string(data),
		line:  1,
		g:     NewGraph(),
		ns:    make(map[string]string, len(prefixes)),
	}
	for prefix, iri := range prefixes {
		p.ns[prefix] = iri
	}

	if err := p.parse(); err != nil {
		return nil, err
	}
	return p.g, nil
}

type turtleParser struct {
	input string
	pos   int
	line  int
	base  string
	ns    map[string]string
	g     *Graph
}

func (p *turtleParser) errf(format string, args ...any) error {
	return fmt.Errorf("turtle: line %d: "+format, append([]any{p.line}, args...)...)
}

func (p *turtleParser) parse() error {
	for {
		p.skipWhitespace()
		if p.eof() {
			return nil
		}
		if err := p.parseStatement(); err != nil {
			return err
		}
	}
}

func (p *turtleParser) parseStatement() error {
	if p.hasKeyword("@prefix") {
		return p.parsePrefix()
	}
	if p.hasKeyword("@base") {
		return p.parseBase()
	}

	subject, err := p.parseSubject()
	if err != nil {
		return err
	}
	if err := p.parsePredicateObjectList(subject); err != nil {
		return err
	}
	return p.expect('.')
}

func (p *turtleParser) parsePrefix() error {
	p.skipWhitespace()
	start := p.pos
	for !p.eof() && p.peek() != ':' {
		p.pos++
	}
	prefix := p.input[start:p.pos]
	if err := p.expect(':'); err != nil {
		return err
	}
	p.skipWhitespace()
	iri, err := p.parseIRIRef()
	if err != nil {
		return err
	}
	p.ns[prefix] = iri
	return p.expect('.')
}

func (p *turtleParser) parseBase() error {
	p.skipWhitespace()
	iri, err := p.parseIRIRef()
	if err != nil {
		return err
	}
	p.base = iri
	return p.expect('.')
}

func (p *turtleParser) parseSubject() (Term, error) {
	p.skipWhitespace()
	switch {
	case p.eof():
		return Term{}, p.errf("unexpected end of input, want subject")
	case p.peek() == '(':
		return p.parseCollection()
	case p.peek() == '[':
		return p.parseBlankPropertyList()
	default:
		return p.parseResource()
	}
}

func (p *turtleParser) parsePredicateObjectList(subject Term) error {
	for {
		p.skipWhitespace()
		if p.eof() {
			return p.errf("unexpected end of input, want predicate")
		}
		// Trailing semicolon before the closing '.' or ']'.
		if p.peek() == '.' || p.peek() == ']' {
			return nil
		}

		predicate, err := p.parsePredicate()
		if err != nil {
			return err
		}
		if err := p.parseObjectList(subject, predicate); err != nil {
			return err
		}

		p.skipWhitespace()
		if !p.eof() && p.peek() == ';' {
			p.pos++
			continue
		}
		return nil
	}
}

func (p *turtleParser) parsePredicate() (Term, error) {
	if p.hasKeyword("a") {
		return NewIRI(nsRDF + "type"), nil
	}
	return p.parseResource()
}

func (p *turtleParser) parseObjectList(subject, predicate Term) error {
	for {
		object, err := p.parseObject()
		if err != nil {
			return err
		}
		p.g.Add(subject, predicate, object)

		p.skipWhitespace()
		if !p.eof() && p.peek() == ',' {
			p.pos++
			continue
		}
		return nil
	}
}

func (p *turtleParser) parseObject() (Term, error) {
	p.skipWhitespace()
	if p.eof() {
		return Term{}, p.errf("unexpected end of input, want object")
	}
	switch c := p.peek(); {
	case c == '(':
		return p.parseCollection()
	case c == '[':
		return p.parseBlankPropertyList()
	case c == '"':
		return p.parseStringLiteral()
	case c == '+' || c == '-' || unicode.IsDigit(rune(c)):
		return p.parseNumericLiteral()
	case p.hasKeyword("true"):
		return NewTypedLiteral("true", nsXSD+"boolean"), nil
	case p.hasKeyword("false"):
		return NewTypedLiteral("false", nsXSD+"boolean"), nil
	default:
		return p.parseResource()
	}
}

// parseResource parses an IRI reference, a prefixed name, or a labeled
// blank node.
func (p *turtleParser) parseResource() (Term, error) {
	p.skipWhitespace()
	if p.eof() {
		return Term{}, p.errf("unexpected end of input, want resource")
	}
	if p.peek() == '<' {
		iri, err := p.parseIRIRef()
		if err != nil {
			return Term{}, err
		}
		return NewIRI(iri), nil
	}
	if strings.HasPrefix(p.input[p.pos:], "_:") {
		p.pos += 2
		return NewBlank(p.parseName()), nil
	}

	prefix := p.parseName()
	if p.eof() || p.peek() != ':' {
		return Term{}, p.errf("expected ':' in prefixed name after %q", prefix)
	}
	p.pos++
	local := p.parseName()
	ns, ok := p.ns[prefix]
	if !ok {
		return Term{}, p.errf("unknown namespace prefix %q", prefix)
	}
	return NewIRI(ns + local), nil
}

func (p *turtleParser) parseIRIRef() (string, error) {
	if err := p.expect('<'); err != nil {
		return "", err
	}
	start := p.pos
	for !p.eof() && p.peek() != '>' {
		if p.peek() == '\n' {
			return "", p.errf("newline inside IRI reference")
		}
		p.pos++
	}
	if p.eof() {
		return "", p.errf("unterminated IRI reference")
	}
	iri := p.input[start:p.pos]
	p.pos++
	if p.base != "" && !strings.Contains(iri, ":") {
		iri = p.base + iri
	}
	return iri, nil
}

func (p *turtleParser) parseStringLiteral() (Term, error) {
	p.pos++ // opening quote
	var b strings.Builder
	for {
		if p.eof() {
			return Term{}, p.errf("unterminated string literal")
		}
		c := p.peek()
		if c == '"' {
			p.pos++
			break
		}
		if c == '\n' {
			p.line++
		}
		if c == '\\' {
			p.pos++
			if p.eof() {
				return Term{}, p.errf("unterminated escape sequence")
			}
			switch p.peek() {
			case 't':
				b.WriteByte('\t')
			case 'n':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			case '"':
				b.WriteByte('"')
			case '\\':
				b.WriteByte('\\')
			default:
				return Term{}, p.errf("unsupported escape \\%c", p.peek())
			}
			p.pos++
			continue
		}
		b.WriteByte(c)
		p.pos++
	}

	value := b.String()
	if !p.eof() && p.peek() == '@' {
		p.pos++
		return NewLangLiteral(value, p.parseName()), nil
	}
	if strings.HasPrefix(p.input[p.pos:], "^^") {
		p.pos += 2
		dt, err := p.parseResource()
		if err != nil {
			return Term{}, err
		}
		return NewTypedLiteral(value, dt.Value), nil
	}
	return NewLiteral(value), nil
}

func (p *turtleParser) parseNumericLiteral() (Term, error) {
	start := p.pos
	if p.peek() == '+' || p.peek() == '-' {
		p.pos++
	}
	decimal := false
	for !p.eof() && (unicode.IsDigit(rune(p.peek())) || p.peek() == '.') {
		if p.peek() == '.' {
			// A '.' not followed by a digit terminates the statement.
			if p.pos+1 >= len(p.input) || !unicode.IsDigit(rune(p.input[p.pos+1])) {
				break
			}
			decimal = true
		}
		p.pos++
	}
	text := p.input[start:p.pos]
	if text == "" || text == "+" || text == "-" {
		return Term{}, p.errf("malformed numeric literal")
	}
	if decimal {
		return NewTypedLiteral(text, nsXSD+"decimal"), nil
	}
	return NewTypedLiteral(text, nsXSD+"integer"), nil
}

func (p *turtleParser) parseBlankPropertyList() (Term, error) {
	p.pos++ // '['
	node := p.g.NewBlankNode()
	p.skipWhitespace()
	if !p.eof() && p.peek() == ']' {
		p.pos++
		return node, nil
	}
	if err := p.parsePredicateObjectList(node); err != nil {
		return Term{}, err
	}
	if err := p.expect(']'); err != nil {
		return Term{}, err
	}
	return node, nil
}

func (p *turtleParser) parseCollection() (Term, error) {
	p.pos++ // '('
	var items []Term
	for {
		p.skipWhitespace()
		if p.eof() {
			return Term{}, p.errf("unterminated collection")
		}
		if p.peek() == ')' {
			p.pos++
			return p.g.AddList(items...), nil
		}
		item, err := p.parseObject()
		if err != nil {
			return Term{}, err
		}
		items = append(items, item)
	}
}

// parseName consumes a prefix or local name: letters, digits, '-', '_',
// and non-final '.' characters.
func (p *turtleParser) parseName() string {
	start := p.pos
	for !p.eof() {
		c := p.peek()
		if unicode.IsLetter(rune(c)) || unicode.IsDigit(rune(c)) || c == '-' || c == '_' {
			p.pos++
			continue
		}
		// A dot is part of the name only when a name character follows.
		if c == '.' && p.pos+1 < len(p.input) && isNameChar(p.input[p.pos+1]) {
			p.pos++
			continue
		}
		break
	}
	return p.input[start:p.pos]
}

func isNameChar(c byte) bool {
	return unicode.IsLetter(rune(c)) || unicode.IsDigit(rune(c)) || c == '-' || c == '_'
}

func (p *turtleParser) skipWhitespace() {
	for !p.eof() {
		c := p.peek()
		switch {
		case c == '\n':
			p.line++
			p.pos++
		case c == ' ' || c == '\t' || c == '\r':
			p.pos++
		case c == '#':
			for !p.eof() && p.peek() != '\n' {
				p.pos++
			}
		default:
			return
		}
	}
}

// hasKeyword consumes the keyword if it appears at the cursor followed by
// a delimiter, and reports whether it did.
func (p *turtleParser) hasKeyword(kw string) bool {
	rest := p.input[p.pos:]
	if !strings.HasPrefix(rest, kw) {
		return false
	}
	if len(rest) > len(kw) && isNameChar(rest[len(kw)]) {
		return false
	}
	if len(rest) > len(kw) && rest[len(kw)] == ':' {
		// Start of a prefixed name such as "a:thing", not a keyword.
		return false
	}
	p.pos += len(kw)
	return true
}

func (p *turtleParser) expect(c byte) error {
	p.skipWhitespace()
	if p.eof() || p.peek() != c {
		got := "end of input"
		if !p.eof() {
			got = fmt.Sprintf("%q", p.peek())
		}
		return p.errf("expected %q, got %s", c, got)
	}
	p.pos++
	return nil
}

func (p *turtleParser) peek() byte {
	return p.input[p.pos]
}

func (p *turtleParser) eof() bool {
	return p.pos >= len(p.input)
}
