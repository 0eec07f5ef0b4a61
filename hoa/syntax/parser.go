package syntax

import (
	"strconv"
	"strings"
)

type parser struct {
	lex   *Lexer
	tok   Token
	diags []Diagnostic
}

func newParser(src string) (*parser, error) {
	p := &parser{lex: NewLexer(src)}
	if err := p.next(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *parser) next() error {
	tok, err := p.lex.Next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *parser) warn(pos Position, msg string) {
	p.diags = append(p.diags, Diagnostic{Pos: pos, Message: msg})
}

func (p *parser) expect(k Kind) (Token, error) {
	tok := p.tok
	if tok.Kind != k {
		return tok, errorf(tok.Pos, "expected %v, found %v", k, tok)
	}
	return tok, p.next()
}

func (p *parser) expectInt() (int, error) {
	tok, err := p.expect(Int)
	if err != nil {
		return 0, err
	}
	n, convErr := strconv.Atoi(tok.Text)
	if convErr != nil {
		return 0, errorf(tok.Pos, "integer %s out of range", tok.Text)
	}
	return n, nil
}

// Parse parses a single automaton. Text after its --END-- other than white
// space and comments is an error.
func Parse(text string) (*Automaton, []Diagnostic, error) {
	p, err := newParser(text)
	if err != nil {
		return nil, nil, err
	}
	aut, err := p.automaton()
	if err != nil {
		return nil, p.diags, err
	}
	if p.tok.Kind != EOF {
		return nil, p.diags, errorf(p.tok.Pos, "unexpected %v after --END--", p.tok)
	}
	return aut, p.diags, nil
}

// ParseAll parses a sequence of automata. An automaton interrupted by
// --ABORT-- is dropped and parsing resumes after the marker. The first
// syntax error ends parsing; the automata completed before it are returned
// along with the error.
func ParseAll(text string) ([]*Automaton, []Diagnostic, error) {
	p, err := newParser(text)
	if err != nil {
		return nil, nil, err
	}
	var out []*Automaton
	for p.tok.Kind != EOF {
		aut, err := p.automaton()
		if err == errAborted {
			continue
		}
		if err != nil {
			return out, p.diags, err
		}
		out = append(out, aut)
	}
	return out, p.diags, nil
}

var errAborted = &SyntaxError{Msg: "automaton aborted"}

// automaton parses header, body and --END--. On --ABORT-- it consumes the
// marker and returns errAborted.
func (p *parser) automaton() (*Automaton, error) {
	aut := &Automaton{}
	if err := p.header(&aut.Header); err != nil {
		return nil, p.abortOr(err)
	}
	if _, err := p.expect(Body); err != nil {
		return nil, p.abortOr(err)
	}
	for p.tok.Kind == HeaderName && p.tok.Text == "State" {
		st, err := p.state()
		if err != nil {
			return nil, p.abortOr(err)
		}
		aut.States = append(aut.States, st)
	}
	if _, err := p.expect(End); err != nil {
		return nil, p.abortOr(err)
	}
	return aut, nil
}

// abortOr turns an error raised at an --ABORT-- marker into errAborted.
func (p *parser) abortOr(err error) error {
	if p.tok.Kind != Abort {
		return err
	}
	if nerr := p.next(); nerr != nil {
		return nerr
	}
	return errAborted
}

func (p *parser) header(h *Header) error {
	h.States = -1
	tok := p.tok
	if tok.Kind != HeaderName || tok.Text != "HOA" {
		return errorf(tok.Pos, "expected HOA: header, found %v", tok)
	}
	if err := p.next(); err != nil {
		return err
	}
	ver, err := p.expect(Ident)
	if err != nil {
		return err
	}
	if !strings.HasPrefix(ver.Text, "v1") {
		return errorf(ver.Pos, "unsupported HOA version %s", ver.Text)
	}
	h.Version = ver.Text

	for p.tok.Kind == HeaderName {
		name := p.tok
		if err := p.next(); err != nil {
			return err
		}
		if err := p.headerItem(h, name); err != nil {
			return err
		}
	}
	return nil
}

func (p *parser) headerItem(h *Header, name Token) error {
	var err error
	switch name.Text {
	case "HOA":
		return errorf(name.Pos, "duplicate HOA: header")
	case "States":
		if h.States >= 0 {
			return errorf(name.Pos, "duplicate States: header")
		}
		h.States, err = p.expectInt()
	case "Start":
		var conj []int
		conj, err = p.stateConj()
		h.Start = append(h.Start, conj)
	case "AP":
		err = p.aps(h, name.Pos)
	case "Alias":
		var tok Token
		if tok, err = p.expect(Alias); err != nil {
			return err
		}
		if _, dup := h.LookupAlias(tok.Text); dup {
			return errorf(tok.Pos, "alias @%s defined twice", tok.Text)
		}
		var l *Label
		if l, err = p.label(); err != nil {
			return err
		}
		h.Aliases = append(h.Aliases, AliasDef{Name: tok.Text, Label: l})
	case "Acceptance":
		if h.Acceptance != nil {
			return errorf(name.Pos, "duplicate Acceptance: header")
		}
		if h.NumSets, err = p.expectInt(); err != nil {
			return err
		}
		h.Acceptance, err = p.acceptance()
	case "acc-name":
		var tok Token
		if tok, err = p.expect(Ident); err != nil {
			return err
		}
		h.AccName = tok.Text
		for p.tok.Kind == Int || p.tok.Kind == Ident {
			h.AccParams = append(h.AccParams, p.tok.Text)
			if err = p.next(); err != nil {
				return err
			}
		}
	case "tool":
		for p.tok.Kind == String && len(h.Tool) < 2 {
			h.Tool = append(h.Tool, p.tok.Text)
			if err = p.next(); err != nil {
				return err
			}
		}
		if len(h.Tool) == 0 {
			return errorf(name.Pos, "tool: needs a tool name")
		}
	case "name":
		var tok Token
		tok, err = p.expect(String)
		h.Name = tok.Text
	case "properties":
		for p.tok.Kind == Ident {
			h.Properties = append(h.Properties, p.tok.Text)
			if err = p.next(); err != nil {
				return err
			}
		}
	default:
		item := HeaderItem{Name: name.Text, Pos: name.Pos}
		for p.tok.Kind != HeaderName && p.tok.Kind != Body && p.tok.Kind != EOF && p.tok.Kind != Abort {
			item.Values = append(item.Values, p.tok)
			if err = p.next(); err != nil {
				return err
			}
		}
		h.Extra = append(h.Extra, item)
		p.warn(name.Pos, "unknown header "+name.Text+": kept uninterpreted")
	}
	return err
}

func (p *parser) aps(h *Header, pos Position) error {
	if h.APs != nil {
		return errorf(pos, "duplicate AP: header")
	}
	n, err := p.expectInt()
	if err != nil {
		return err
	}
	h.APs = make([]string, 0, n)
	for p.tok.Kind == String {
		for _, seen := range h.APs {
			if seen == p.tok.Text {
				return errorf(p.tok.Pos, "atomic proposition %q declared twice", seen)
			}
		}
		h.APs = append(h.APs, p.tok.Text)
		if err := p.next(); err != nil {
			return err
		}
	}
	if len(h.APs) != n {
		return errorf(pos, "AP: declares %d propositions but names %d", n, len(h.APs))
	}
	return nil
}

func (p *parser) stateConj() ([]int, error) {
	n, err := p.expectInt()
	if err != nil {
		return nil, err
	}
	conj := []int{n}
	for p.tok.Kind == And {
		if err := p.next(); err != nil {
			return nil, err
		}
		if n, err = p.expectInt(); err != nil {
			return nil, err
		}
		conj = append(conj, n)
	}
	return conj, nil
}

// label parses a label expression: disjunctions of conjunctions of
// possibly negated atoms.
func (p *parser) label() (*Label, error) {
	first, err := p.labelAnd()
	if err != nil {
		return nil, err
	}
	args := []*Label{first}
	for p.tok.Kind == Or {
		if err := p.next(); err != nil {
			return nil, err
		}
		l, err := p.labelAnd()
		if err != nil {
			return nil, err
		}
		args = append(args, l)
	}
	if len(args) == 1 {
		return first, nil
	}
	return &Label{Op: LabelOr, Args: args}, nil
}

func (p *parser) labelAnd() (*Label, error) {
	first, err := p.labelAtom()
	if err != nil {
		return nil, err
	}
	args := []*Label{first}
	for p.tok.Kind == And {
		if err := p.next(); err != nil {
			return nil, err
		}
		l, err := p.labelAtom()
		if err != nil {
			return nil, err
		}
		args = append(args, l)
	}
	if len(args) == 1 {
		return first, nil
	}
	return &Label{Op: LabelAnd, Args: args}, nil
}

func (p *parser) labelAtom() (*Label, error) {
	tok := p.tok
	switch {
	case tok.Kind == Not:
		if err := p.next(); err != nil {
			return nil, err
		}
		l, err := p.labelAtom()
		if err != nil {
			return nil, err
		}
		return &Label{Op: LabelNot, Args: []*Label{l}}, nil
	case tok.Kind == LParen:
		if err := p.next(); err != nil {
			return nil, err
		}
		l, err := p.label()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(RParen); err != nil {
			return nil, err
		}
		return l, nil
	case tok.Kind == Int:
		n, err := p.expectInt()
		if err != nil {
			return nil, err
		}
		return &Label{Op: LabelAP, AP: n}, nil
	case tok.Kind == Alias:
		if err := p.next(); err != nil {
			return nil, err
		}
		return &Label{Op: LabelAlias, Alias: tok.Text}, nil
	case tok.Kind == Ident && tok.Text == "t":
		return &Label{Op: LabelTrue}, p.next()
	case tok.Kind == Ident && tok.Text == "f":
		return &Label{Op: LabelFalse}, p.next()
	}
	return nil, errorf(tok.Pos, "expected a label, found %v", tok)
}

func (p *parser) acceptance() (*Acceptance, error) {
	first, err := p.acceptanceAnd()
	if err != nil {
		return nil, err
	}
	args := []*Acceptance{first}
	for p.tok.Kind == Or {
		if err := p.next(); err != nil {
			return nil, err
		}
		a, err := p.acceptanceAnd()
		if err != nil {
			return nil, err
		}
		args = append(args, a)
	}
	if len(args) == 1 {
		return first, nil
	}
	return &Acceptance{Op: AccOr, Args: args}, nil
}

func (p *parser) acceptanceAnd() (*Acceptance, error) {
	first, err := p.acceptanceAtom()
	if err != nil {
		return nil, err
	}
	args := []*Acceptance{first}
	for p.tok.Kind == And {
		if err := p.next(); err != nil {
			return nil, err
		}
		a, err := p.acceptanceAtom()
		if err != nil {
			return nil, err
		}
		args = append(args, a)
	}
	if len(args) == 1 {
		return first, nil
	}
	return &Acceptance{Op: AccAnd, Args: args}, nil
}

func (p *parser) acceptanceAtom() (*Acceptance, error) {
	tok := p.tok
	switch {
	case tok.Kind == LParen:
		if err := p.next(); err != nil {
			return nil, err
		}
		a, err := p.acceptance()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(RParen); err != nil {
			return nil, err
		}
		return a, nil
	case tok.Kind == Ident && tok.Text == "t":
		return &Acceptance{Op: AccTrue}, p.next()
	case tok.Kind == Ident && tok.Text == "f":
		return &Acceptance{Op: AccFalse}, p.next()
	case tok.Kind == Ident && (tok.Text == "Inf" || tok.Text == "Fin"):
		a := &Acceptance{Op: AccInf}
		if tok.Text == "Fin" {
			a.Op = AccFin
		}
		if err := p.next(); err != nil {
			return nil, err
		}
		if _, err := p.expect(LParen); err != nil {
			return nil, err
		}
		if p.tok.Kind == Not {
			a.Negated = true
			if err := p.next(); err != nil {
				return nil, err
			}
		}
		n, err := p.expectInt()
		if err != nil {
			return nil, err
		}
		a.Set = n
		if _, err := p.expect(RParen); err != nil {
			return nil, err
		}
		return a, nil
	}
	return nil, errorf(tok.Pos, "expected an acceptance condition, found %v", tok)
}

func (p *parser) accSig() ([]int, error) {
	if p.tok.Kind != LBrace {
		return nil, nil
	}
	if err := p.next(); err != nil {
		return nil, err
	}
	sets := []int{}
	for p.tok.Kind == Int {
		n, err := p.expectInt()
		if err != nil {
			return nil, err
		}
		sets = append(sets, n)
	}
	if _, err := p.expect(RBrace); err != nil {
		return nil, err
	}
	return sets, nil
}

func (p *parser) bracketLabel() (*Label, error) {
	if p.tok.Kind != LBracket {
		return nil, nil
	}
	if err := p.next(); err != nil {
		return nil, err
	}
	l, err := p.label()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(RBracket); err != nil {
		return nil, err
	}
	return l, nil
}

func (p *parser) state() (State, error) {
	st := State{Pos: p.tok.Pos}
	if err := p.next(); err != nil {
		return st, err
	}
	var err error
	if st.Label, err = p.bracketLabel(); err != nil {
		return st, err
	}
	if st.ID, err = p.expectInt(); err != nil {
		return st, err
	}
	if p.tok.Kind == String {
		st.Name = p.tok.Text
		if err := p.next(); err != nil {
			return st, err
		}
	}
	if st.Acc, err = p.accSig(); err != nil {
		return st, err
	}

	for p.tok.Kind == LBracket || p.tok.Kind == Int {
		e := Edge{Pos: p.tok.Pos}
		if e.Label, err = p.bracketLabel(); err != nil {
			return st, err
		}
		if e.Label != nil && st.Label != nil {
			return st, errorf(e.Pos, "edge of state %d is labelled although the state is", st.ID)
		}
		if e.Targets, err = p.stateConj(); err != nil {
			return st, err
		}
		if e.Acc, err = p.accSig(); err != nil {
			return st, err
		}
		st.Edges = append(st.Edges, e)
	}
	return st, nil
}
