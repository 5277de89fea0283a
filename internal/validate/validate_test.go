package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumen/internal/diag"
	"lumen/internal/parser"
)

func check(t *testing.T, source string) Result {
	t.Helper()
	nodes, err := parser.Parse(source)
	require.NoError(t, err, "validator tests need a clean parse")
	return Check(nodes)
}

func TestCleanContainerPasses(t *testing.T) {
	res := check(t, `page Home:
  state count = 0
  derived doubled = count * 2
  fn inc():
    count += 1
  text doubled
  button "+" @click: inc()
`)
	assert.True(t, res.OK())
	assert.Empty(t, res.Errors)
	assert.Empty(t, res.Warnings)
}

func TestDuplicateStateDeclaration(t *testing.T) {
	res := check(t, `page P:
  state count = 0
  state count = 1
  text count
`)
	require.Len(t, res.Errors, 1)
	e := res.Errors[0]
	assert.Equal(t, diag.ErrDuplicateDeclaration, e.Code)
	assert.Contains(t, e.Message, "count")
	assert.Contains(t, e.Message, "previously declared")
	assert.Equal(t, 3, e.Position.Line, "error sits on the redeclaration")
}

func TestCrossKindCollision(t *testing.T) {
	res := check(t, `page P:
  state total = 0
  fn total():
    return 1
  text total
`)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0].Message, "previously declared as state")
}

func TestTripleDuplicateReportsTwice(t *testing.T) {
	res := check(t, `page P:
  state x = 0
  state x = 1
  state x = 2
  text x
`)
	assert.Len(t, res.Errors, 2, "each redeclaration after the first is its own error")
}

func TestDuplicatesScopedPerContainer(t *testing.T) {
	res := check(t, `page A:
  state count = 0
  text count

page B:
  state count = 0
  text count
`)
	assert.True(t, res.OK(), "the same name in two pages is fine")
}

func TestDerivedCyclePair(t *testing.T) {
	res := check(t, `page P:
  derived a = b + 1
  derived b = a + 1
  text a
`)
	require.Len(t, res.Errors, 1, "a mutual cycle is one finding, not two")
	e := res.Errors[0]
	assert.Equal(t, diag.ErrCircularDerived, e.Code)
	assert.Contains(t, e.Message, "circular")
}

func TestDerivedSelfLoop(t *testing.T) {
	res := check(t, `page P:
  derived a = a * 2
  text a
`)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0].Message, "depends on itself")
}

func TestTwoIndependentCycles(t *testing.T) {
	res := check(t, `page P:
  derived a = b
  derived b = a
  derived c = d
  derived d = c
  text a + c
`)
	assert.Len(t, res.Errors, 2)
}

func TestDerivedChainWithoutCycle(t *testing.T) {
	res := check(t, `page P:
  state base = 1
  derived a = base * 2
  derived b = a * 2
  derived c = a + b
  text c
`)
	assert.Empty(t, res.Errors)
}

func TestDerivedReadingStateIsNotACycle(t *testing.T) {
	res := check(t, `page P:
  state count = 0
  derived label = "count is {count}"
  text label
  button "+" @click: count += 1
`)
	assert.True(t, res.OK())
}

func TestUnusedStateWarning(t *testing.T) {
	res := check(t, `page P:
  state used = 0
  state orphan = 0
  text used
`)
	assert.Empty(t, res.Errors)
	require.Len(t, res.Warnings, 1)
	w := res.Warnings[0]
	assert.Equal(t, diag.WarnUnusedState, w.Code)
	assert.Contains(t, w.Message, "orphan")
	assert.Equal(t, 3, w.Position.Line)
}

func TestWatchTargetCountsAsUse(t *testing.T) {
	res := check(t, `page P:
  state n = 0
  watch n:
    log("changed")
  text "static"
`)
	assert.Empty(t, res.Warnings, "a watched state is a used state")
}

func TestStateUsedInTemplateCountsAsUse(t *testing.T) {
	res := check(t, `page P:
  state name = "x"
  text "hi {name}"
`)
	assert.Empty(t, res.Warnings)
}

func TestUnreadDerivedIsNotWarned(t *testing.T) {
	res := check(t, `page P:
  state n = 0
  derived unsurfaced = n * 2
  text n
`)
	assert.Empty(t, res.Warnings, "only state participates in the liveness pass")
}

func TestNestedStoreIsChecked(t *testing.T) {
	res := check(t, `app Shop:
  store cart:
    state items = []
    state ghost = 0
    fn add(item):
      items.push(item)
  text "shop"
`)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0].Message, "ghost")
}

func TestTopLevelStoreIsChecked(t *testing.T) {
	res := check(t, `store session:
  state token = ""
  state token = ""
`)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, diag.ErrDuplicateDeclaration, res.Errors[0].Code)
}

func TestFindingsAreDataNotFailures(t *testing.T) {
	res := check(t, `page P:
  state a = 0
  state a = 1
  derived b = b
  state quiet = 0
  text a
`)
	assert.False(t, res.OK())
	assert.Len(t, res.Errors, 2, "duplicate plus self-cycle, collected together")
	assert.Len(t, res.Warnings, 1)
}
