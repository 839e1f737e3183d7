package braciole

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/atomic"
)

func settingsRow(name string, optionNames ...string) ItemWithOptions {
	options := make([]Option, len(optionNames))
	for i, n := range optionNames {
		options[i] = Option{DisplayName: n, Value: n}
	}
	return ItemWithOptions{
		Item:    MenuItem{Text: name},
		Options: options,
	}
}

func TestItemWithOptionsValue(t *testing.T) {
	row := settingsRow("Sort order", "Name", "Size")

	assert.Equal(t, "Name", row.Value())

	row.SelectedOption = 1
	assert.Equal(t, "Size", row.Value())

	empty := ItemWithOptions{Item: MenuItem{Text: "Empty"}}
	assert.Equal(t, "", empty.Value())
}

func TestItemWithOptionsVisibility(t *testing.T) {
	row := settingsRow("Advanced", "On", "Off")
	assert.True(t, row.IsVisible(), "rows without a toggle are always visible")

	toggle := atomic.NewBool(false)
	row.VisibleWhen = toggle
	assert.False(t, row.IsVisible())

	toggle.Store(true)
	assert.True(t, row.IsVisible())
}

func TestOptionsListCycleWrapsAndNotifies(t *testing.T) {
	var updates []interface{}

	row := settingsRow("Sort order", "Name", "Size", "Date")
	for i := range row.Options {
		row.Options[i].OnUpdate = func(v interface{}) { updates = append(updates, v) }
	}

	s := &optionsListState{items: []ItemWithOptions{row}}

	s.cycleOption(1)
	s.cycleOption(1)
	assert.Equal(t, 2, s.items[0].SelectedOption)

	s.cycleOption(1)
	assert.Equal(t, 0, s.items[0].SelectedOption, "cycling past the last option wraps")

	s.cycleOption(-1)
	assert.Equal(t, 2, s.items[0].SelectedOption, "cycling before the first option wraps")

	assert.Equal(t, []interface{}{"Size", "Date", "Name", "Date"}, updates)
}

func TestOptionsListCycleIgnoresSingleAndClickable(t *testing.T) {
	single := settingsRow("About", "v1.0")
	clickable := ItemWithOptions{
		Item:    MenuItem{Text: "Reset"},
		Options: []Option{{DisplayName: "Reset", Type: OptionTypeClickable}},
	}

	s := &optionsListState{items: []ItemWithOptions{single, clickable}}

	s.cycleOption(1)
	assert.Equal(t, 0, s.items[0].SelectedOption)

	s.selectedIndex = 1
	s.cycleOption(1)
	assert.Equal(t, 0, s.items[1].SelectedOption)
}

func TestOptionsListFocusSkipsHiddenRows(t *testing.T) {
	hidden := atomic.NewBool(false)

	rows := []ItemWithOptions{
		settingsRow("First", "On", "Off"),
		settingsRow("Hidden", "On", "Off"),
		settingsRow("Last", "On", "Off"),
	}
	rows[1].VisibleWhen = hidden

	s := &optionsListState{items: rows, visibleCount: 10}

	s.moveFocus(1)
	assert.Equal(t, 2, s.selectedIndex, "focus jumps over hidden rows")

	s.moveFocus(1)
	assert.Equal(t, 0, s.selectedIndex, "focus wraps past the end")

	hidden.Store(true)
	s.moveFocus(1)
	assert.Equal(t, 1, s.selectedIndex, "revealed rows become focusable")
}

func TestMessageTapSelectsThenConfirms(t *testing.T) {
	c := &messageController{
		options:       []SelectionOption{{DisplayName: "Yes"}, {DisplayName: "No"}},
		selectedIndex: 0,
		optionRects: []sdl.Rect{
			{X: 100, Y: 200, W: 60, H: 30},
			{X: 200, Y: 200, W: 60, H: 30},
		},
	}

	c.handleTap(220, 210)
	assert.Equal(t, 1, c.selectedIndex, "tapping an option highlights it")
	assert.False(t, c.confirmed)

	c.handleTap(220, 210)
	assert.True(t, c.confirmed, "tapping the highlighted option confirms it")

	c.confirmed = false
	c.handleTap(500, 500)
	assert.False(t, c.confirmed, "taps outside the options do nothing")
	assert.Equal(t, 1, c.selectedIndex)
}
