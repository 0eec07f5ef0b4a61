package alphabet

import (
	"errors"
	"testing"
)

func TestSymbolCharRoundTrip(t *testing.T) {
	for aps := 0; aps <= 4; aps++ {
		for repr := 0; repr < 1<<aps; repr++ {
			s := NewPropSymbol(uint16(repr), aps)
			c, err := s.Char()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			back, err := SymbolFromChar(c, aps)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if back != s {
				t.Errorf("expected %v, got %v", s, back)
			}
		}
	}
}

func TestSymbolCharRejectsWideSymbols(t *testing.T) {
	s := NewPropSymbol(0b10001, 5)
	if _, err := s.Char(); !errors.Is(err, ErrSymbolTooWide) {
		t.Errorf("expected ErrSymbolTooWide, got %v", err)
	}
	if _, err := SymbolFromChar('a', 5); !errors.Is(err, ErrSymbolTooWide) {
		t.Errorf("expected ErrSymbolTooWide, got %v", err)
	}
}

func TestSymbolFromCharRange(t *testing.T) {
	if _, err := SymbolFromChar('e', 2); err == nil {
		t.Error("expected 'e' to be out of range for two propositions")
	}
	s, err := SymbolFromChar('a', 2)
	if err != nil || s.Bits() != 0 {
		t.Errorf("expected 'a' to denote the all-false valuation, got %v, %v", s, err)
	}
}

func TestNewPropSymbolValidates(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for valuation wider than the proposition count")
		}
	}()
	NewPropSymbol(0b100, 2)
}

func TestSymbolString(t *testing.T) {
	s := NewPropSymbol(0b01, 2)
	if got := s.String(); got != "0 & !1" {
		t.Errorf("expected \"0 & !1\", got %q", got)
	}
}
