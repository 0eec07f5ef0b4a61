package syntax

import "fmt"

// Kind classifies a token.
type Kind int

const (
	EOF Kind = iota
	HeaderName
	Int
	String
	Ident
	Alias
	LBracket
	RBracket
	LBrace
	RBrace
	LParen
	RParen
	Not
	And
	Or
	Body
	End
	Abort
)

var kindNames = [...]string{
	EOF:        "end of input",
	HeaderName: "header name",
	Int:        "integer",
	String:     "string",
	Ident:      "identifier",
	Alias:      "alias",
	LBracket:   "'['",
	RBracket:   "']'",
	LBrace:     "'{'",
	RBrace:     "'}'",
	LParen:     "'('",
	RParen:     "')'",
	Not:        "'!'",
	And:        "'&'",
	Or:         "'|'",
	Body:       "--BODY--",
	End:        "--END--",
	Abort:      "--ABORT--",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Position is a 1-based line and column in the source text.
type Position struct {
	Line, Col int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Token is a lexical unit of HOA text.
//
// Text holds the header name without its colon, the alias name without its
// '@', and the unquoted value of strings.
type Token struct {
	Kind Kind
	Text string
	Pos  Position
}

func (t Token) String() string {
	switch t.Kind {
	case HeaderName:
		return t.Text + ":"
	case Int, Ident:
		return t.Text
	case String:
		return fmt.Sprintf("%q", t.Text)
	case Alias:
		return "@" + t.Text
	}
	return t.Kind.String()
}
