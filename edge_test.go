package omega_test

import (
	"testing"

	"github.com/atlekbai/omega"
)

func TestEdge_IsSelfLoop(t *testing.T) {
	e := omega.NewEdge(1, 'a', 0, 1)
	if !e.IsSelfLoop() {
		t.Error("expected IsSelfLoop to be true for same source and target")
	}

	e2 := omega.NewEdge(1, 'a', 0, 2)
	if e2.IsSelfLoop() {
		t.Error("expected IsSelfLoop to be false for different source and target")
	}
}

func TestEdge_WithColor(t *testing.T) {
	e := omega.WithColor(omega.NewEdge(0, 'b', "x", 3), 7)
	if e.Color != 7 || e.Source != 0 || e.Target != 3 || e.Expression != 'b' {
		t.Errorf("unexpected edge %+v", e)
	}
}
