package graph_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/atlekbai/omega"
	"github.com/atlekbai/omega/alphabet"
	"github.com/atlekbai/omega/graph"
)

// counter builds a three-state counter over {a, b}: a advances, b stays.
func counter() *omega.NTS[rune, rune, bool, int] {
	ts := omega.NewNTS[rune, rune, bool, int](alphabet.CharAlphabetOfSize(2))
	for q := 0; q < 3; q++ {
		ts.AddState(q == 2)
	}
	for q := 0; q < 3; q++ {
		ts.AddEdge(omega.NewEdge(q, 'a', q, (q+1)%3))
		ts.AddEdge(omega.NewEdge(q, 'b', q, q))
	}
	ts.SetInitial(0)
	return ts
}

func naming(ts *omega.NTS[rune, rune, bool, int]) *graph.DefaultNaming[rune, rune, bool, int] {
	n := graph.NewDefaultNaming[rune, rune, bool, int](ts, "counter")
	n.Accepting = func(c bool) bool { return c }
	return n
}

func TestDotGraph(t *testing.T) {
	ts := counter()

	dot, err := graph.DotGraph[rune, rune, bool, int](ts, naming(ts))
	if err != nil {
		t.Fatalf("DotGraph() error = %v", err)
	}

	for _, want := range []string{
		`digraph "counter" {`,
		`rankdir="LR"`,
		`"q0" [label="q0: false"];`,
		`"q2" [label="q2: true", shape="doublecircle"];`,
		`"q0" -> "q1" [label="a | 0"];`,
		`"q2" -> "q0" [label="a | 2"];`,
		`"q1" -> "q1" [label="b | 1"];`,
		`init -> "q0"`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DotGraph() missing %q in:\n%s", want, dot)
		}
	}
	if !strings.HasSuffix(dot, "}") {
		t.Errorf("DotGraph() should end with a closing brace")
	}
}

func TestDotGraphIsStable(t *testing.T) {
	ts := counter()
	first, err := graph.DotGraph[rune, rune, bool, int](ts, naming(ts))
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		again, err := graph.DotGraph[rune, rune, bool, int](ts, naming(ts))
		if err != nil {
			t.Fatal(err)
		}
		if again != first {
			t.Fatalf("DotGraph() output changed between calls")
		}
	}
}

func TestDotGraphWithoutInitialState(t *testing.T) {
	ts := omega.NewNTS[rune, rune, bool, int](alphabet.CharAlphabetOfSize(1))
	ts.AddState(false)

	dot, err := graph.DotGraph[rune, rune, bool, int](ts, naming(ts))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(dot, "init") {
		t.Errorf("DotGraph() should not draw an initial marker:\n%s", dot)
	}
}

func TestWriteDotUsesStyle(t *testing.T) {
	ts := counter()
	var buf bytes.Buffer

	style := graph.NewDotGraphStyle()
	style.Rankdir = "TB"
	if err := graph.WriteDot[rune, rune, bool, int](&buf, ts, naming(ts), style); err != nil {
		t.Fatalf("WriteDot() error = %v", err)
	}
	if !strings.Contains(buf.String(), `rankdir="TB"`) {
		t.Errorf("WriteDot() ignored the style:\n%s", buf.String())
	}
}

func TestEscapeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`plain`, `plain`},
		{`say "hi"`, `say \"hi\"`},
		{`back\slash`, `back\\slash`},
		{"two\nlines", `two\nlines`},
	}
	for _, tt := range tests {
		if got := graph.EscapeLabel(tt.in); got != tt.want {
			t.Errorf("EscapeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMermaidGraph(t *testing.T) {
	ts := counter()
	dir := graph.LeftToRight

	out, err := graph.MermaidGraph[rune, rune, bool, int](ts, naming(ts), &dir)
	if err != nil {
		t.Fatalf("MermaidGraph() error = %v", err)
	}

	for _, want := range []string{
		"stateDiagram-v2",
		"direction LR",
		"q0 : q0#58; false",
		"q0 --> q1 : a | 0",
		"q2 --> q2 : b | 2",
		"[*] --> q0",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("MermaidGraph() missing %q in:\n%s", want, out)
		}
	}
}

func TestMermaidGraphWithoutDirection(t *testing.T) {
	ts := counter()

	out, err := graph.MermaidGraph[rune, rune, bool, int](ts, naming(ts), nil)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "direction") {
		t.Errorf("MermaidGraph() should not set a direction:\n%s", out)
	}
}

func TestParseMermaidDirection(t *testing.T) {
	tests := []struct {
		code string
		want graph.MermaidGraphDirection
		ok   bool
	}{
		{"LR", graph.LeftToRight, true},
		{"rl", graph.RightToLeft, true},
		{"TD", graph.TopToBottom, true},
		{"BT", graph.BottomToTop, true},
		{"sideways", graph.TopToBottom, false},
	}
	for _, tt := range tests {
		got, ok := graph.ParseMermaidDirection(tt.code)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseMermaidDirection(%q) = %v, %v, want %v, %v", tt.code, got, ok, tt.want, tt.ok)
		}
	}
}

// spacedNaming gives states identifiers Mermaid cannot use directly.
type spacedNaming struct {
	*graph.DefaultNaming[rune, rune, bool, int]
}

func (spacedNaming) StateID(q omega.StateIndex, _ bool) string {
	return []string{"start state", "start-state", "end"}[q]
}

func TestMermaidGraphSanitizesNames(t *testing.T) {
	ts := counter()

	out, err := graph.MermaidGraph[rune, rune, bool, int](ts, spacedNaming{naming(ts)}, nil)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"startstate --> ", "startstate_1", "[*] --> startstate"} {
		if !strings.Contains(out, want) {
			t.Errorf("MermaidGraph() missing %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "start state -->") {
		t.Errorf("MermaidGraph() left an unsanitized name:\n%s", out)
	}
}

// clashingNaming gives every state the same identifier.
type clashingNaming struct {
	*graph.DefaultNaming[rune, rune, bool, int]
}

func (clashingNaming) StateID(omega.StateIndex, bool) string { return "q" }

func TestDuplicateStateIDs(t *testing.T) {
	ts := counter()

	_, err := graph.DotGraph[rune, rune, bool, int](ts, clashingNaming{naming(ts)})
	var re *graph.RenderError
	if !errors.As(err, &re) {
		t.Fatalf("DotGraph() error = %v, want *RenderError", err)
	}
	if !strings.Contains(re.Error(), "share the identifier") {
		t.Errorf("unexpected message %q", re.Error())
	}
}

func TestStateGraphStructure(t *testing.T) {
	ts := counter()

	sg, err := graph.NewStateGraph[rune, rune, bool, int](ts, naming(ts))
	if err != nil {
		t.Fatal(err)
	}
	if len(sg.States) != 3 {
		t.Fatalf("len(States) = %d, want 3", len(sg.States))
	}
	if len(sg.Transitions) != 6 {
		t.Errorf("len(Transitions) = %d, want 6", len(sg.Transitions))
	}
	if sg.InitialState == nil || sg.InitialState.NodeName != "q0" {
		t.Errorf("InitialState = %v, want q0", sg.InitialState)
	}
	q1 := sg.States["q1"]
	if len(q1.Leaving) != 2 || len(q1.Arriving) != 2 {
		t.Errorf("q1 has %d leaving and %d arriving, want 2 and 2", len(q1.Leaving), len(q1.Arriving))
	}
	selfLoops := 0
	for _, tr := range sg.Transitions {
		if tr.IsSelfLoop() {
			selfLoops++
		}
	}
	if selfLoops != 3 {
		t.Errorf("self loops = %d, want 3", selfLoops)
	}
}
