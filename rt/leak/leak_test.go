package leak

import (
	"bytes"
	"strings"
	"testing"

	"github.com/joshuapare/rtcore/rt/fail"
	"github.com/joshuapare/rtcore/rt/rc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cell struct {
	rc.Header
	next *cell
}

func newCell() *cell {
	c := &cell{}
	rc.Init(&c.Header, "Cell", 1)
	return c
}

func (c *cell) destroy() {
	next := c.next
	c.next = nil
	rc.Release(next, (*cell).destroy)
}

func install(t *testing.T, tr *Tracker) {
	t.Helper()
	uninstall := tr.Install()
	t.Cleanup(uninstall)
}

func TestTracker_ReleasedObjectsAreForgotten(t *testing.T) {
	var out bytes.Buffer
	tr := New(Options{Out: &out})
	install(t, tr)

	a := newCell()
	b := newCell()
	require.Equal(t, 2, tr.Len())

	rc.Release(a, (*cell).destroy)
	rc.Release(b, (*cell).destroy)
	assert.Equal(t, 0, tr.Len())

	assert.Equal(t, 0, tr.Close())
	assert.Empty(t, out.String(), "no leaks writes nothing")
}

func TestTracker_ReportsUnreleased(t *testing.T) {
	var out bytes.Buffer
	tr := New(Options{Out: &out})
	install(t, tr)

	kept := newCell()
	line := fail.Here(0).Line - 1
	rc.Retain(kept)
	freed := newCell()
	rc.Release(freed, (*cell).destroy)

	live := tr.Live()
	require.Len(t, live, 1)
	assert.Equal(t, "Cell", live[0].Type)
	assert.Equal(t, line, live[0].Site.Line)
	assert.Equal(t, uint32(2), live[0].Refs)

	n := tr.Close()
	assert.Equal(t, 1, n)
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "leak detector: 1 object(s) still alive at exit", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "  Cell allocated at "), lines[1])
	assert.Contains(t, lines[1], "leak_test.go:")
	assert.True(t, strings.HasSuffix(lines[1], "(refcount=2)"), lines[1])
	assert.Equal(t, cycleHint, lines[2])
}

func TestTracker_CycleLeaks(t *testing.T) {
	tr := New(Options{})
	install(t, tr)

	a := newCell()
	b := newCell()
	a.next = b
	b.next = a
	rc.Retain(a)
	rc.Retain(b)
	rc.Release(a, (*cell).destroy)
	rc.Release(b, (*cell).destroy)

	assert.Equal(t, 2, tr.Len())

	var out bytes.Buffer
	assert.Equal(t, 2, tr.Report(&out))
	assert.Contains(t, out.String(), "2 object(s)")
}

func TestTracker_AllocationOrder(t *testing.T) {
	tr := New(Options{})
	install(t, tr)

	var cells []*cell
	for i := range 5 {
		cells = append(cells, rc.Track(&cell{}, "Cell", fail.At("gen.src", int32(i+1), 1)))
	}
	rc.Release(cells[2], (*cell).destroy)

	var lines []int32
	for _, e := range tr.Live() {
		lines = append(lines, e.Site.Line)
	}
	assert.Equal(t, []int32{1, 2, 4, 5}, lines)
}

func TestTracker_ImmortalNotTracked(t *testing.T) {
	tr := New(Options{})
	install(t, tr)

	c := &cell{}
	c.SetImmortal()
	rc.Release(c, nil)
	assert.Equal(t, 0, tr.Len())
}

func TestTracker_UninstallRestoresPrevious(t *testing.T) {
	outer := New(Options{})
	undoOuter := outer.Install()
	defer undoOuter()

	inner := New(Options{})
	undoInner := inner.Install()
	newCell()
	undoInner()
	undoInner()

	newCell()
	assert.Equal(t, 1, inner.Len())
	assert.Equal(t, 1, outer.Len())
}

func TestTracker_NotInstalled(t *testing.T) {
	tr := New(Options{})
	newCell()
	assert.Equal(t, 0, tr.Len())
	assert.Nil(t, tr.Live())
	assert.Equal(t, 0, tr.Close())
}
