// File: label.go
// Role: textual round-trip of variable labels and solver states.
//
// Grammar (whitespace-insensitive):
//
//	state := "[" ( label ( "," label )* ","? )? "]"
//	label := quote? "(" int "," int ")" quote?
//	quote := "'" | "\""
//
// This accepts both the quoted form emitted by samplers,
// "['(1, 2)', '(2, 3)']", and the bare tuple form "[(1, 2), (2, 3)]".

package core

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

type stateExpr struct {
	Labels []*labelExpr `"[" ( @@ ( "," @@ )* ","? )? "]"`
}

type labelExpr struct {
	Open  string `@Quote?`
	From  int    `"(" @Int ","`
	To    int    `@Int ")"`
	Close string `@Quote?`
}

var labelLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `-?\d+`},
	{Name: "Quote", Pattern: `['"]`},
	{Name: "Punct", Pattern: `[\[\](),]`},
	{Name: "whitespace", Pattern: `\s+`},
})

var (
	parseStateExpr = participle.MustBuild[stateExpr](participle.Lexer(labelLexer))
	parseLabelExpr = participle.MustBuild[labelExpr](participle.Lexer(labelLexer))
)

// edge converts a parsed label, rejecting unbalanced quotes.
func (l *labelExpr) edge() (Edge, error) {
	if l.Open != l.Close {
		return Edge{}, fmt.Errorf("unbalanced quotes %q/%q: %w", l.Open, l.Close, ErrBadLabel)
	}

	return Edge{From: l.From, To: l.To}, nil
}

// ParseLabel parses a single variable label such as "(12, 5)" (optionally
// quoted) back into its Edge.
func ParseLabel(s string) (Edge, error) {
	expr, err := parseLabelExpr.ParseString("", s)
	if err != nil {
		return Edge{}, fmt.Errorf("ParseLabel(%q): %v: %w", s, err, ErrBadLabel)
	}
	e, err := expr.edge()
	if err != nil {
		return Edge{}, fmt.Errorf("ParseLabel(%q): %w", s, err)
	}

	return e, nil
}

// ParseState parses a bracketed list of labels into edges, preserving order.
// "[]" yields an empty, non-nil slice.
func ParseState(s string) ([]Edge, error) {
	expr, err := parseStateExpr.ParseString("", s)
	if err != nil {
		return nil, fmt.Errorf("ParseState: %v: %w", err, ErrBadLabel)
	}
	out := make([]Edge, 0, len(expr.Labels))
	for i, l := range expr.Labels {
		e, err := l.edge()
		if err != nil {
			return nil, fmt.Errorf("ParseState: label #%d: %w", i, err)
		}
		out = append(out, e)
	}

	return out, nil
}

// FormatState renders edges in the quoted sampler form "['(1, 2)', '(2, 3)']".
// ParseState(FormatState(x)) == x for any x.
func FormatState(edges []Edge) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, e := range edges {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteByte('\'')
		sb.WriteString(e.Label())
		sb.WriteByte('\'')
	}
	sb.WriteByte(']')

	return sb.String()
}
