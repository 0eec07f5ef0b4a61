package hoa

import (
	"bufio"
	"errors"
	"io"
	"iter"
	"strings"

	"go.uber.org/zap"
)

// Stream reads automata from a reader one block at a time. A call to Next
// consumes input line by line and never reads beyond the line holding the
// --END-- of the block it returns.
type Stream struct {
	r      *bufio.Reader
	buf    strings.Builder
	hasEnd bool // buf holds an --END--
	err    error
}

// NewStream creates a stream reading from r.
func NewStream(r io.Reader) *Stream {
	return &Stream{r: bufio.NewReader(r)}
}

// Next returns the next automaton that parses and converts. It returns false
// once the input is exhausted; a trailing unterminated block is dropped.
// Read errors other than io.EOF are available from Err.
func (s *Stream) Next() (*Automaton, bool) {
	for {
		block, ok := s.nextBlock()
		if !ok {
			return nil, false
		}
		aut, err := ParseBlock(block)
		if err == nil {
			return aut, true
		}
		logger().Warn("skipping unreadable automaton", zap.Error(err))
	}
}

func (s *Stream) nextBlock() (string, bool) {
	for {
		if s.hasEnd {
			block, rest, _ := Pop(s.buf.String())
			s.hasEnd = strings.Contains(rest, endMarker)
			if !s.hasEnd {
				rest = dropAborted(rest)
			}
			s.buf.Reset()
			s.buf.WriteString(rest)
			logger().Debug("read automaton block", zap.Int("bytes", len(block)))
			return block, true
		}
		if s.err != nil {
			return "", false
		}

		// Markers never span lines, so only the new line is searched.
		line, err := s.r.ReadString('\n')
		switch {
		case strings.Contains(line, endMarker):
			s.hasEnd = true
			s.buf.WriteString(line)
		case strings.Contains(line, abortMarker):
			s.buf.Reset()
			s.buf.WriteString(dropAborted(line))
			logger().Debug("--ABORT-- in stream, discarding partial automaton")
		default:
			s.buf.WriteString(line)
		}
		if err != nil {
			s.err = err
			if rest := strings.TrimSpace(s.buf.String()); rest != "" && !s.hasEnd {
				logger().Debug("dropping unterminated automaton at end of input", zap.Int("bytes", len(rest)))
			}
		}
	}
}

// Err returns the first read error other than io.EOF.
func (s *Stream) Err() error {
	if errors.Is(s.err, io.EOF) {
		return nil
	}
	return s.err
}

// All yields the remaining automata of the stream.
func (s *Stream) All() iter.Seq[*Automaton] {
	return func(yield func(*Automaton) bool) {
		for {
			aut, ok := s.Next()
			if !ok || !yield(aut) {
				return
			}
		}
	}
}

// DeterministicStream yields only the deterministic automata of a Stream,
// logging one warning for every automaton skipped.
type DeterministicStream struct {
	base *Stream
}

// NewDeterministicStream creates a deterministic stream reading from r.
func NewDeterministicStream(r io.Reader) *DeterministicStream {
	return &DeterministicStream{base: NewStream(r)}
}

// Next returns the next deterministic automaton.
func (s *DeterministicStream) Next() (*DeterministicAutomaton, bool) {
	for {
		aut, ok := s.base.Next()
		if !ok {
			return nil, false
		}
		d, err := aut.IntoDeterministic()
		if err == nil {
			return d, true
		}
		logger().Warn("skipping automaton that is not deterministic", zap.Error(err))
	}
}

// Err returns the first read error other than io.EOF.
func (s *DeterministicStream) Err() error {
	return s.base.Err()
}

// All yields the remaining deterministic automata.
func (s *DeterministicStream) All() iter.Seq[*DeterministicAutomaton] {
	return func(yield func(*DeterministicAutomaton) bool) {
		for {
			d, ok := s.Next()
			if !ok || !yield(d) {
				return
			}
		}
	}
}
