package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoBlocks = `HOA: v1
States: 3
Start: 0
acc-name: Buchi
Acceptance: 1 Inf(0)
AP: 1 "a"
--BODY--
State: 0
[0] 1
--ABORT--
HOA: v1
name: "branching"
States: 2
Start: 0
acc-name: Buchi
Acceptance: 1 Inf(0)
AP: 1 "a"
--BODY--
State: 0
[0] 0 {0}
[!0] 0
State: 1
[0] 0 {0}
[0] 1
[!0] 0
--END--
HOA: v1
States: 1
Start: 0
acc-name: Buchi
Acceptance: 1 Inf(0)
AP: 1 "a"
--BODY--
State: 0
[0] 0 {0}
[!0] 0
--END--
`

// run executes omegactl with args and stdin, returning its output.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("OMEGA_LOG_LEVEL", "error")

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return out.String(), err
}

func TestFilterKeepsConvertibleBlocks(t *testing.T) {
	out, err := run(t, twoBlocks, "filter")
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(out, "--END--"))
	assert.NotContains(t, out, "--ABORT--")
	assert.NotContains(t, out, "States: 3")
}

func TestFilterDeterministicFlag(t *testing.T) {
	out, err := run(t, twoBlocks, "filter", "--deterministic")
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(out, "--END--"))
	assert.Contains(t, out, "States: 1")
}

func TestFilterDeterministicFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "omega.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input:\n  deterministic_only: true\n"), 0644))

	out, err := run(t, twoBlocks, "filter", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "--END--"))

	// An explicit flag wins over the configuration.
	out, err = run(t, twoBlocks, "filter", "--config", path, "--deterministic=false")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "--END--"))
}

func TestFilterDropsBrokenBlocks(t *testing.T) {
	broken := "HOA: v1\nAP: 1 \"a\"\n--BODY--\nState: 0\n[0] 7 {\n--END--\n"
	out, err := run(t, broken+twoBlocks, "filter")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "--END--"))
}

func TestInspect(t *testing.T) {
	out, err := run(t, twoBlocks+"HOA: v1\n", "inspect")
	require.NoError(t, err)

	for _, want := range []string{
		"automaton 1",
		"name: branching",
		"states: 2 (1 reachable)",
		"deterministic: false",
		"automaton 2",
		"deterministic: true",
		"condition: Buchi",
		"trailing input without --END-- ignored",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("inspect output missing %q:\n%s", want, out)
		}
	}
}

func TestInspectReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.hoa")
	require.NoError(t, os.WriteFile(path, []byte(twoBlocks), 0644))

	out, err := run(t, "", "inspect", path)
	require.NoError(t, err)
	assert.Contains(t, out, "automaton 2")
}

func TestInspectMissingFile(t *testing.T) {
	_, err := run(t, "", "inspect", filepath.Join(t.TempDir(), "absent.hoa"))
	assert.Error(t, err)
}

func TestRenderDot(t *testing.T) {
	out, err := run(t, twoBlocks, "render", "--name", "first")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, `digraph "first" {`), out)
	assert.Contains(t, out, `rankdir="LR"`)
	assert.Contains(t, out, `init -> "q0"`)
	assert.Contains(t, out, `"q1" -> "q1"`)
}

func TestRenderMermaidSecondAutomaton(t *testing.T) {
	out, err := run(t, twoBlocks, "render", "-f", "mermaid", "--direction", "TB", "-n", "1")
	require.NoError(t, err)

	assert.Contains(t, out, "stateDiagram-v2")
	assert.Contains(t, out, "direction TB")
	assert.Contains(t, out, "q0 --> q0")
	assert.NotContains(t, out, "q1")
}

func TestRenderDeterministicOnlySkips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "omega.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input:\n  deterministic_only: true\nrender:\n  format: mermaid\n"), 0644))

	out, err := run(t, twoBlocks, "render", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "stateDiagram-v2")
	assert.NotContains(t, out, "q1")
}

func TestRenderErrors(t *testing.T) {
	tests := map[string][]string{
		"index":     {"render", "-n", "5"},
		"negative":  {"render", "-n", "-1"},
		"format":    {"render", "-f", "svg"},
		"direction": {"render", "-f", "mermaid", "--direction", "up"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := run(t, twoBlocks, args...)
			assert.Error(t, err)
		})
	}
}

func TestInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "omega.yaml")
	require.NoError(t, os.WriteFile(path, []byte("render:\n  format: png\n"), 0644))

	_, err := run(t, twoBlocks, "inspect", "--config", path)
	assert.Error(t, err)
}
