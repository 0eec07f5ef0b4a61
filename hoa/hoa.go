// Package hoa reads omega automata written in the Hanoi Omega-Automata
// format (HOA v1).
//
// Input may hold any number of concatenated automata. A block is the text up
// to and including an --END-- marker; an --ABORT-- marker discards the
// partial automaton preceding it. Blocks that fail to parse or convert are
// logged and skipped, so one malformed automaton never ends a batch.
package hoa

import (
	"go.uber.org/zap"

	"github.com/atlekbai/omega/hoa/syntax"
)

// ParseBlock parses a single block and converts it to an omega automaton.
func ParseBlock(block string) (*Automaton, error) {
	aut, diags, err := syntax.Parse(block)
	for _, d := range diags {
		logger().Debug("hoa diagnostic", zap.Stringer("diagnostic", d))
	}
	if err != nil {
		return nil, err
	}
	return ToOmegaAutomaton(aut)
}

// PopOmegaAutomaton returns the first automaton of text that parses and
// converts, along with the text following its block. Failing blocks before
// it are logged and skipped. If no complete block converts, ok is false and
// rest holds the unterminated remainder of text.
func PopOmegaAutomaton(text string) (aut *Automaton, rest string, ok bool) {
	for {
		block, after, found := Pop(text)
		if !found {
			return nil, text, false
		}
		aut, err := ParseBlock(block)
		if err == nil {
			return aut, after, true
		}
		logger().Warn("skipping unreadable automaton", zap.Error(err))
		text = after
	}
}

// PopDeterministicOmegaAutomaton is like PopOmegaAutomaton but also skips
// automata that are not deterministic, logging one warning for each.
func PopDeterministicOmegaAutomaton(text string) (aut *DeterministicAutomaton, rest string, ok bool) {
	for {
		a, after, found := PopOmegaAutomaton(text)
		if !found {
			return nil, after, false
		}
		d, err := a.IntoDeterministic()
		if err == nil {
			return d, after, true
		}
		logger().Warn("skipping automaton that is not deterministic", zap.Error(err))
		text = after
	}
}

// ParseAll returns every automaton of text that parses and converts.
func ParseAll(text string) []*Automaton {
	var out []*Automaton
	for {
		aut, rest, ok := PopOmegaAutomaton(text)
		if !ok {
			return out
		}
		out = append(out, aut)
		text = rest
	}
}
