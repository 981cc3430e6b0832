// Package dsl parses the compact breakpoint table notation:
//
//	sm = 640
//	md = 1080
//	0..sm      => sm
//	sm+1..md   => md
//	md+1..     => lg
//	default    => "px-1"
//	strict
//
// Statements are separated by newlines or ';'. Outputs are a bare class
// token, a quoted class list, or content "text".
package dsl

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	tableLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r]+`},
		{Name: "Newline", Pattern: `\n+`},
		{Name: "Comment", Pattern: `(?:#|//)[^\n]*`},
		{Name: "Range", Pattern: `\.\.`},
		{Name: "Arrow", Pattern: `=>`},
		{Name: "Number", Pattern: `\d+`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "Punct", Pattern: `[;+=]`},
	})

	tableParser = participle.MustBuild[tableAST](
		participle.Lexer(tableLexer),
		participle.Elide("Whitespace", "Comment"),
		participle.Unquote("String"),
		participle.UseLookahead(3),
	)
)

type tableAST struct {
	Stmts []*stmtAST `parser:"( Newline | ';' )* ( @@ ( Newline | ';' )* )*"`
}

type stmtAST struct {
	Pos     lexer.Position
	Default *outAST   `parser:"  'default' Arrow @@"`
	Strict  bool      `parser:"| @'strict'"`
	Token   *tokenAST `parser:"| @@"`
	Entry   *entryAST `parser:"| @@"`
}

type tokenAST struct {
	Name  string `parser:"@Ident '='"`
	Value int    `parser:"@Number"`
}

type entryAST struct {
	Min *boundAST `parser:"@@ Range"`
	Max *boundAST `parser:"@@? Arrow"`
	Out *outAST   `parser:"@@"`
}

type boundAST struct {
	Number *int    `parser:"  @Number"`
	Token  *string `parser:"| @Ident"`
	Plus   int     `parser:"  ( '+' @Number )?"`
}

type outAST struct {
	Content *string `parser:"  'content' @String"`
	Class   *string `parser:"| @( Ident | String )"`
}

// Bound is an interval end: a literal width, or a token name plus an offset.
type Bound struct {
	Value  int
	Token  string
	Offset int
}

func (b Bound) String() string {
	if b.Token == "" {
		return fmt.Sprint(b.Value)
	}
	if b.Offset != 0 {
		return fmt.Sprintf("%s+%d", b.Token, b.Offset)
	}
	return b.Token
}

// Output is either a class string or content text.
type Output struct {
	Class     string
	Content   string
	IsContent bool
}

// Rule is one table entry in source order.
type Rule struct {
	Line   int
	Min    Bound
	Max    *Bound
	Output Output
}

// Document is a parsed table.
type Document struct {
	Tokens  map[string]int
	Rules   []Rule
	Default *Output
	Strict  bool
}

// Parse parses src. Token declarations may appear anywhere; later
// declarations override earlier ones.
func Parse(src string) (*Document, error) {
	ast, err := tableParser.ParseString("", src)
	if err != nil {
		return nil, fmt.Errorf("parse table: %w", err)
	}

	doc := &Document{Tokens: map[string]int{}}
	for _, st := range ast.Stmts {
		switch {
		case st.Default != nil:
			out := st.Default.output()
			doc.Default = &out
		case st.Strict:
			doc.Strict = true
		case st.Token != nil:
			doc.Tokens[st.Token.Name] = st.Token.Value
		case st.Entry != nil:
			rule := Rule{
				Line:   st.Pos.Line,
				Min:    st.Entry.Min.bound(),
				Output: st.Entry.Out.output(),
			}
			if st.Entry.Max != nil {
				max := st.Entry.Max.bound()
				rule.Max = &max
			}
			doc.Rules = append(doc.Rules, rule)
		}
	}
	return doc, nil
}

// Looks reports whether src appears to be written in this notation.
func Looks(src string) bool {
	return strings.Contains(src, "=>") && strings.Contains(src, "..")
}

func (b *boundAST) bound() Bound {
	if b.Number != nil {
		return Bound{Value: *b.Number + b.Plus}
	}
	return Bound{Token: *b.Token, Offset: b.Plus}
}

func (o *outAST) output() Output {
	if o.Content != nil {
		return Output{Content: *o.Content, IsContent: true}
	}
	return Output{Class: strings.TrimSpace(*o.Class)}
}
