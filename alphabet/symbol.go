package alphabet

import (
	"fmt"
	"strconv"
	"strings"
)

// maxCharAPs is the widest symbol that still packs into one of the letters 'a'..'p'.
const maxCharAPs = 4

// PropSymbol is a valuation of the atomic propositions of a PropAlphabet.
// Bit i of the packed representation is the value of proposition i.
type PropSymbol struct {
	repr uint16
	aps  uint8
}

// NewPropSymbol creates the symbol over aps propositions whose valuation is
// given by the bits of repr. It panics if repr has bits outside the first aps.
func NewPropSymbol(repr uint16, aps int) PropSymbol {
	if aps < 0 || aps >= MaxAPs {
		panic(&ArgumentError{ParamName: "aps", Message: fmt.Sprintf("number of propositions must be in [0, %d)", MaxAPs)})
	}
	if uint32(repr) >= uint32(1)<<aps {
		panic(&ArgumentError{ParamName: "repr", Message: fmt.Sprintf("valuation %b does not fit %d propositions", repr, aps)})
	}
	return PropSymbol{repr: repr, aps: uint8(aps)}
}

// APs returns the number of propositions the symbol values.
func (s PropSymbol) APs() int {
	return int(s.aps)
}

// Bits returns the packed valuation.
func (s PropSymbol) Bits() uint16 {
	return s.repr
}

// Value returns the value of proposition i.
func (s PropSymbol) Value(i int) bool {
	return s.repr&(1<<i) != 0
}

// Char packs the symbol into one of the letters 'a'..'p'. Symbols over more
// than four propositions are rejected with ErrSymbolTooWide.
func (s PropSymbol) Char() (rune, error) {
	if s.aps > maxCharAPs {
		return 0, fmt.Errorf("%w: %d propositions, at most %d fit", ErrSymbolTooWide, s.aps, maxCharAPs)
	}
	return 'a' + rune(s.repr), nil
}

// SymbolFromChar is the inverse of PropSymbol.Char.
func SymbolFromChar(c rune, aps int) (PropSymbol, error) {
	if aps < 0 || aps > maxCharAPs {
		return PropSymbol{}, fmt.Errorf("%w: %d propositions, at most %d fit", ErrSymbolTooWide, aps, maxCharAPs)
	}
	if c < 'a' || c >= 'a'+rune(1)<<aps {
		return PropSymbol{}, &ArgumentError{
			ParamName: "c",
			Message:   fmt.Sprintf("letter %q does not denote a valuation of %d propositions", c, aps),
		}
	}
	return PropSymbol{repr: uint16(c - 'a'), aps: uint8(aps)}, nil
}

// String renders the symbol as a conjunction of literals, e.g. "0 & !1".
func (s PropSymbol) String() string {
	if s.aps == 0 {
		return "t"
	}
	lits := make([]string, s.aps)
	for i := range lits {
		if s.Value(i) {
			lits[i] = strconv.Itoa(i)
		} else {
			lits[i] = "!" + strconv.Itoa(i)
		}
	}
	return strings.Join(lits, " & ")
}
