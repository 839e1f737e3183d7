package braciole

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/syncly-app/braciole/pkg/braciole/constants"
)

func testItems(names ...string) []MenuItem {
	items := make([]MenuItem, len(names))
	for i, name := range names {
		items[i] = MenuItem{Text: name}
	}
	return items
}

func testLayout() rowLayout {
	return rowLayout{
		StartY:     100,
		RowHeight:  40,
		RowSpacing: 8,
		Left:       20,
		Right:      600,
	}
}

func newTestController(options ListOptions, visibleCount int) *listController {
	c := newListController(options)
	c.layout = testLayout()
	c.visibleCount = visibleCount
	return c
}

func focusedIndices(items []MenuItem) []int {
	var focused []int
	for i, item := range items {
		if item.Focused {
			focused = append(focused, i)
		}
	}
	return focused
}

func TestListInitialFocusIsFirstItem(t *testing.T) {
	options := DefaultListOptions("Files", testItems("alpha.txt", "beta.txt", "gamma.txt"))
	c := newTestController(options, 10)

	assert.Equal(t, 0, c.selectedIndex)
	assert.Equal(t, []int{0}, focusedIndices(c.items))
}

func TestListTapActivatesRowAndFiresCallback(t *testing.T) {
	var gotIndices []int
	var gotNames []string

	options := DefaultListOptions("Files", testItems("alpha.txt", "beta.txt", "gamma.txt"))
	options.OnSelect = func(index int, item *MenuItem) {
		gotIndices = append(gotIndices, index)
		gotNames = append(gotNames, item.Text)
	}
	c := newTestController(options, 10)

	layout := testLayout()
	// Point inside the third row
	y := layout.StartY + 2*(layout.RowHeight+layout.RowSpacing) + layout.RowHeight/2

	require.True(t, c.handleTap(100, y))

	assert.Equal(t, 2, c.selectedIndex)
	assert.Equal(t, []int{2}, focusedIndices(c.items), "exactly one item is active")
	assert.Equal(t, []int{2}, gotIndices, "callback fires exactly once")
	assert.Equal(t, []string{"gamma.txt"}, gotNames)
}

func TestListTapOnActiveRowFiresAgain(t *testing.T) {
	calls := 0

	options := DefaultListOptions("Files", testItems("alpha.txt", "beta.txt"))
	options.OnSelect = func(index int, item *MenuItem) { calls++ }
	c := newTestController(options, 10)

	layout := testLayout()
	y := layout.StartY + layout.RowHeight/2

	require.True(t, c.handleTap(100, y))
	require.True(t, c.handleTap(100, y))

	assert.Equal(t, 2, calls, "re-activating the active row fires the callback again")
	assert.Equal(t, 0, c.selectedIndex)
	assert.Equal(t, []int{0}, focusedIndices(c.items))
}

func TestListTapMissesRows(t *testing.T) {
	calls := 0

	options := DefaultListOptions("Files", testItems("alpha.txt", "beta.txt"))
	options.OnSelect = func(index int, item *MenuItem) { calls++ }
	c := newTestController(options, 10)

	layout := testLayout()

	// Above the first row
	assert.False(t, c.handleTap(100, layout.StartY-5))
	// In the gap between rows
	assert.False(t, c.handleTap(100, layout.StartY+layout.RowHeight+2))
	// Left of the rows
	assert.False(t, c.handleTap(layout.Left-1, layout.StartY+5))
	// Below the last row
	y := layout.StartY + 2*(layout.RowHeight+layout.RowSpacing) + layout.RowHeight/2
	assert.False(t, c.handleTap(100, y))

	assert.Zero(t, calls)
	assert.Equal(t, 0, c.selectedIndex, "focus is unchanged when a tap misses")
}

func TestListEmptyHasNoSelectionTargets(t *testing.T) {
	calls := 0

	options := DefaultListOptions("Files", nil)
	options.OnSelect = func(index int, item *MenuItem) { calls++ }
	c := newTestController(options, 10)

	layout := testLayout()
	assert.False(t, c.handleTap(100, layout.StartY+5))

	c.moveSelection(1)
	c.moveSelection(-1)
	c.pageBy(1)

	assert.Zero(t, calls)
	assert.Empty(t, c.selectedIndices())
}

func TestListMoveSelectionWrapsAround(t *testing.T) {
	var gotIndices []int

	options := DefaultListOptions("Files", testItems("alpha.txt", "beta.txt", "gamma.txt"))
	options.OnSelect = func(index int, item *MenuItem) {
		gotIndices = append(gotIndices, index)
	}
	c := newTestController(options, 10)

	c.moveSelection(-1)
	assert.Equal(t, 2, c.selectedIndex, "moving up from the first item wraps to the last")

	c.moveSelection(1)
	assert.Equal(t, 0, c.selectedIndex, "moving down from the last item wraps to the first")

	assert.Equal(t, []int{2, 0}, gotIndices)
	assert.Equal(t, []int{0}, focusedIndices(c.items))
}

func TestListScrollFollowsFocus(t *testing.T) {
	options := DefaultListOptions("Files", testItems("a", "b", "c", "d", "e"))
	c := newTestController(options, 2)

	c.moveSelection(1)
	c.moveSelection(1)
	assert.Equal(t, 2, c.selectedIndex)
	assert.Equal(t, 1, c.visibleStart, "scrolls down to keep focus visible")

	c.moveSelection(1)
	c.moveSelection(1)
	assert.Equal(t, 4, c.selectedIndex)
	assert.Equal(t, 3, c.visibleStart)

	c.moveSelection(1)
	assert.Equal(t, 0, c.selectedIndex)
	assert.Equal(t, 0, c.visibleStart, "wrap back to the top scrolls to the top")
}

func TestListPageByClampsAtEnds(t *testing.T) {
	options := DefaultListOptions("Files", testItems("a", "b", "c", "d", "e"))
	c := newTestController(options, 2)

	c.pageBy(1)
	assert.Equal(t, 2, c.selectedIndex)

	c.pageBy(1)
	c.pageBy(1)
	assert.Equal(t, 4, c.selectedIndex, "paging stops at the last item")

	c.pageBy(-1)
	c.pageBy(-1)
	c.pageBy(-1)
	assert.Equal(t, 0, c.selectedIndex, "paging stops at the first item")
}

func TestListMultiSelectToggleAndFlags(t *testing.T) {
	items := testItems("a", "b")
	items[1].NotMultiSelectable = true

	options := DefaultListOptions("Files", items)
	options.MultiSelect = true
	c := newTestController(options, 10)

	c.toggleMark()
	assert.True(t, c.items[0].Selected)
	assert.Equal(t, []int{0}, c.selectedIndices())

	c.toggleMark()
	assert.False(t, c.items[0].Selected)
	assert.Empty(t, c.selectedIndices())

	c.moveSelection(1)
	c.toggleMark()
	assert.False(t, c.items[1].Selected, "flagged items cannot be marked")
}

func TestListReorderRespectsFlags(t *testing.T) {
	items := testItems("a", "b", "c")
	items[2].NotReorderable = true

	options := DefaultListOptions("Files", items)
	options.EnableReordering = true
	c := newTestController(options, 10)

	c.moveItem(1)
	assert.Equal(t, "b", c.items[0].Text)
	assert.Equal(t, "a", c.items[1].Text)
	assert.Equal(t, 1, c.selectedIndex, "focus follows the moved item")

	c.moveItem(1)
	assert.Equal(t, "a", c.items[1].Text, "cannot swap with a pinned item")
	assert.Equal(t, "c", c.items[2].Text)

	c.moveItem(-1)
	c.moveItem(-1)
	assert.Equal(t, "a", c.items[0].Text, "cannot move past the first item")
	assert.Equal(t, 0, c.selectedIndex)
}

func TestListSelectedIndicesSingleSelection(t *testing.T) {
	options := DefaultListOptions("Files", testItems("a", "b", "c"))
	c := newTestController(options, 10)

	c.moveSelection(1)
	assert.Equal(t, []int{1}, c.selectedIndices())
}

func TestRowLayoutHitTesting(t *testing.T) {
	layout := testLayout()

	assert.Equal(t, 0, layout.rowAt(100, layout.StartY, 0, 3))
	assert.Equal(t, 1, layout.rowAt(100, layout.StartY+layout.RowHeight+layout.RowSpacing, 0, 3))
	assert.Equal(t, -1, layout.rowAt(100, layout.StartY-1, 0, 3))
	assert.Equal(t, -1, layout.rowAt(100, layout.StartY, 0, 0), "no rows, no hits")

	// Scrolled view: the first visible row maps to the scroll offset
	assert.Equal(t, 5, layout.rowAt(100, layout.StartY, 5, 3))
}

func TestDefaultListOptions(t *testing.T) {
	options := DefaultListOptions("Files", testItems("a"))

	assert.Equal(t, "Files", options.Title)
	assert.Equal(t, constants.VirtualButtonStart, options.ConfirmButton)
	assert.Equal(t, constants.DefaultInputDelay, options.InputDelay)
	assert.False(t, options.StatusBar.Enabled)
}
