package syntax

import (
	"strings"
	"unicode/utf8"
)

// Lexer splits HOA text into tokens.
type Lexer struct {
	src  string
	off  int
	line int
	col  int
}

// NewLexer creates a lexer over src.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src, line: 1, col: 1}
}

// Pos returns the position of the next unread character.
func (l *Lexer) Pos() Position {
	return Position{Line: l.line, Col: l.col}
}

// Offset returns the byte offset of the next unread character.
func (l *Lexer) Offset() int {
	return l.off
}

func (l *Lexer) peek() byte {
	if l.off >= len(l.src) {
		return 0
	}
	return l.src[l.off]
}

func (l *Lexer) advance(n int) {
	for i := 0; i < n && l.off < len(l.src); i++ {
		if l.src[l.off] == '\n' {
			l.line++
			l.col = 1
		} else {
			l.col++
		}
		l.off++
	}
}

func isIdentStart(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c) || c == '-'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// skipSpace skips white space and comments. Comments nest.
func (l *Lexer) skipSpace() error {
	for l.off < len(l.src) {
		switch c := l.peek(); {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			l.advance(1)
		case strings.HasPrefix(l.src[l.off:], "/*"):
			start := l.Pos()
			depth := 0
			for {
				switch {
				case l.off >= len(l.src):
					return errorf(start, "unterminated comment")
				case strings.HasPrefix(l.src[l.off:], "/*"):
					depth++
					l.advance(2)
				case strings.HasPrefix(l.src[l.off:], "*/"):
					depth--
					l.advance(2)
				default:
					l.advance(1)
				}
				if depth == 0 {
					break
				}
			}
		default:
			return nil
		}
	}
	return nil
}

var markers = []struct {
	text string
	kind Kind
}{
	{"--BODY--", Body},
	{"--END--", End},
	{"--ABORT--", Abort},
}

var punctuation = map[byte]Kind{
	'[': LBracket,
	']': RBracket,
	'{': LBrace,
	'}': RBrace,
	'(': LParen,
	')': RParen,
	'!': Not,
	'&': And,
	'|': Or,
}

// Next returns the next token. At the end of input it returns a token of
// kind EOF.
func (l *Lexer) Next() (Token, error) {
	if err := l.skipSpace(); err != nil {
		return Token{}, err
	}
	pos := l.Pos()
	if l.off >= len(l.src) {
		return Token{Kind: EOF, Pos: pos}, nil
	}

	rest := l.src[l.off:]
	for _, m := range markers {
		if strings.HasPrefix(rest, m.text) {
			l.advance(len(m.text))
			return Token{Kind: m.kind, Text: m.text, Pos: pos}, nil
		}
	}

	c := l.peek()
	if k, ok := punctuation[c]; ok {
		l.advance(1)
		return Token{Kind: k, Text: string(c), Pos: pos}, nil
	}

	switch {
	case c == '"':
		return l.lexString(pos)
	case isDigit(c):
		n := 0
		for n < len(rest) && isDigit(rest[n]) {
			n++
		}
		if n > 1 && rest[0] == '0' {
			return Token{}, errorf(pos, "integer %s has a leading zero", rest[:n])
		}
		l.advance(n)
		return Token{Kind: Int, Text: rest[:n], Pos: pos}, nil
	case c == '@':
		n := 1
		for n < len(rest) && isIdentPart(rest[n]) {
			n++
		}
		if n == 1 {
			return Token{}, errorf(pos, "'@' must be followed by an alias name")
		}
		l.advance(n)
		return Token{Kind: Alias, Text: rest[1:n], Pos: pos}, nil
	case isIdentStart(c):
		n := 1
		for n < len(rest) && isIdentPart(rest[n]) {
			n++
		}
		if n < len(rest) && rest[n] == ':' {
			l.advance(n + 1)
			return Token{Kind: HeaderName, Text: rest[:n], Pos: pos}, nil
		}
		l.advance(n)
		return Token{Kind: Ident, Text: rest[:n], Pos: pos}, nil
	}

	r, _ := utf8.DecodeRuneInString(rest)
	return Token{}, errorf(pos, "unexpected character %q", r)
}

func (l *Lexer) lexString(pos Position) (Token, error) {
	l.advance(1)
	var b strings.Builder
	for {
		if l.off >= len(l.src) {
			return Token{}, errorf(pos, "unterminated string")
		}
		c := l.peek()
		switch c {
		case '"':
			l.advance(1)
			return Token{Kind: String, Text: b.String(), Pos: pos}, nil
		case '\\':
			l.advance(1)
			if l.off >= len(l.src) {
				return Token{}, errorf(pos, "unterminated string")
			}
			b.WriteByte(l.peek())
			l.advance(1)
		default:
			b.WriteByte(c)
			l.advance(1)
		}
	}
}

// Tokenize returns every token of src up to and excluding EOF.
func Tokenize(src string) ([]Token, error) {
	l := NewLexer(src)
	var out []Token
	for {
		tok, err := l.Next()
		if err != nil {
			return out, err
		}
		if tok.Kind == EOF {
			return out, nil
		}
		out = append(out, tok)
	}
}
