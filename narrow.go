package omega

import (
	"fmt"
	"math/bits"

	"github.com/atlekbai/omega/alphabet"
)

// NarrowAlphabet converts an automaton over propositional valuations into
// one over the explicit alphabet CharAlphabetOfSize(2^APs). Every edge is
// split into one edge per valuation it matches, labelled with the valuation
// packed as a letter. State indices, colors and the condition are kept.
// Alphabets with more than four propositions cannot be packed and return an
// error wrapping alphabet.ErrSymbolTooWide.
func NarrowAlphabet(d *DeterministicOmegaAutomaton[alphabet.PropSymbol, alphabet.PropExpression]) (*DeterministicOmegaAutomaton[rune, rune], error) {
	size := d.Alphabet().Size()
	if aps := bits.TrailingZeros(uint(size)); aps > 4 {
		return nil, &AlphabetConversionError{
			Size: size,
			Err:  fmt.Errorf("%w: %d propositions", alphabet.ErrSymbolTooWide, aps),
		}
	}
	chars := alphabet.CharAlphabetOfSize(size)
	nts := NewNTSWithCapacity[rune, rune, int, AcceptanceMask](chars, d.Size())
	if err := expandInto(nts, d); err != nil {
		return nil, &AlphabetConversionError{Size: size, Err: err}
	}
	nts.SetInitial(d.Initial())
	dts, err := NewDTS(nts)
	if err != nil {
		return nil, fmt.Errorf("narrowing produced overlapping edges: %w", err)
	}
	return &DeterministicOmegaAutomaton[rune, rune]{ts: dts, acc: d.acc}, nil
}

func expandInto(dst Sproutable[rune, int, AcceptanceMask], src TransitionSystem[alphabet.PropSymbol, alphabet.PropExpression, int, AcceptanceMask]) error {
	for q := range src.StateIndices() {
		color, _ := src.StateColor(q)
		if got := dst.AddState(color); got != q {
			panic(&InvalidOperationError{Message: fmt.Sprintf("state %d was copied to index %d", q, got)})
		}
	}
	for q := range src.StateIndices() {
		edges, _ := src.EdgesFrom(q)
		for e := range edges {
			for sym := range src.Alphabet().Symbols(e.Expression) {
				c, err := sym.Char()
				if err != nil {
					return err
				}
				dst.AddEdge(NewEdge(e.Source, c, e.Color, e.Target))
			}
		}
	}
	return nil
}

// WidenAlphabet would convert an automaton over an explicit alphabet into one
// over propositional valuations. An alphabet whose size is not a power of two
// has no such reading and yields an error wrapping ErrNotPowerOfTwo. No
// mapping from letters to valuations is defined otherwise, so every other
// alphabet yields an error wrapping ErrUnsupported.
func WidenAlphabet(d *DeterministicOmegaAutomaton[rune, rune]) (*DeterministicOmegaAutomaton[alphabet.PropSymbol, alphabet.PropExpression], error) {
	size := d.Alphabet().Size()
	if !alphabet.IsPowerOfTwo(size) {
		return nil, &AlphabetConversionError{Size: size, Err: ErrNotPowerOfTwo}
	}
	return nil, &AlphabetConversionError{
		Size: size,
		Err:  fmt.Errorf("%w: widening to %d propositions", ErrUnsupported, bits.TrailingZeros(uint(size))),
	}
}
