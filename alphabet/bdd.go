package alphabet

import (
	"fmt"
	"sync"

	"github.com/dalzilio/rudd"
)

// MaxAPs bounds the number of atomic propositions of a PropAlphabet. An
// alphabet must have strictly fewer propositions.
const MaxAPs = 16

// manager serializes access to the single BDD shared by all propositional
// alphabets. Variable i of the BDD is proposition i of every alphabet, so
// expressions over alphabets with the same propositions are directly
// comparable.
type manager struct {
	mu  sync.Mutex
	bdd *rudd.BDD
}

var (
	managerOnce sync.Once
	shared      *manager
)

func bdds() *manager {
	managerOnce.Do(func() {
		b, err := rudd.New(MaxAPs, rudd.Nodesize(10000), rudd.Cachesize(3000))
		if err != nil {
			panic(fmt.Sprintf("alphabet: cannot initialise BDD: %v", err))
		}
		shared = &manager{bdd: b}
	})
	return shared
}

// checked panics if the BDD reported an error for the last operation.
func (m *manager) checked(n rudd.Node) rudd.Node {
	if n == nil || m.bdd.Errored() {
		panic(fmt.Sprintf("alphabet: BDD operation failed: %s", m.bdd.Error()))
	}
	return n
}

func (m *manager) constant(v bool) rudd.Node {
	m.mu.Lock()
	defer m.mu.Unlock()
	if v {
		return m.bdd.True()
	}
	return m.bdd.False()
}

func (m *manager) literal(i int, positive bool) rudd.Node {
	m.mu.Lock()
	defer m.mu.Unlock()
	if positive {
		return m.checked(m.bdd.Ithvar(i))
	}
	return m.checked(m.bdd.NIthvar(i))
}

func (m *manager) and(x, y rudd.Node) rudd.Node {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.checked(m.bdd.And(x, y))
}

func (m *manager) or(x, y rudd.Node) rudd.Node {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.checked(m.bdd.Or(x, y))
}

func (m *manager) not(x rudd.Node) rudd.Node {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.checked(m.bdd.Not(x))
}

func (m *manager) equal(x, y rudd.Node) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.bdd.Equal(x, y)
}

func (m *manager) isConstant(x rudd.Node, v bool) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if v {
		return m.bdd.Equal(x, m.bdd.True())
	}
	return m.bdd.Equal(x, m.bdd.False())
}

// overlaps reports whether x & y is satisfiable.
func (m *manager) overlaps(x, y rudd.Node) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	conj := m.checked(m.bdd.And(x, y))
	return !m.bdd.Equal(conj, m.bdd.False())
}

// cube builds the conjunction fixing the first aps variables to the bits of repr.
func (m *manager) cube(repr uint16, aps int) rudd.Node {
	m.mu.Lock()
	defer m.mu.Unlock()
	lits := make([]rudd.Node, 0, aps)
	for i := 0; i < aps; i++ {
		if repr&(1<<i) != 0 {
			lits = append(lits, m.bdd.Ithvar(i))
		} else {
			lits = append(lits, m.bdd.NIthvar(i))
		}
	}
	if len(lits) == 0 {
		return m.bdd.True()
	}
	return m.checked(m.bdd.And(lits...))
}

// cubes returns the satisfying partial assignments of x. Each entry has one
// value per BDD variable: 0, 1, or -1 for "don't care". The cubes are
// pairwise disjoint.
func (m *manager) cubes(x rudd.Node) [][]int {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out [][]int
	err := m.bdd.Allsat(func(varset []int) error {
		c := make([]int, len(varset))
		copy(c, varset)
		out = append(out, c)
		return nil
	}, x)
	if err != nil {
		panic(fmt.Sprintf("alphabet: enumerating satisfying assignments: %v", err))
	}
	return out
}
