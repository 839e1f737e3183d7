package braciole

import (
	"fmt"
	"time"

	"github.com/syncly-app/braciole/pkg/braciole/constants"
	"github.com/syncly-app/braciole/pkg/braciole/internal"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/atomic"
)

type OptionType int

const (
	OptionTypeStandard OptionType = iota
	OptionTypeClickable
)

// Option represents a single choice for a settings row.
// Standard options cycle with left/right; clickable options act like a
// button and exit the list when activated.
type Option struct {
	DisplayName string
	Value       interface{}
	Type        OptionType
	OnUpdate    func(newValue interface{})
}

// ItemWithOptions is a settings row: a menu item plus its choices.
// VisibleWhen can be toggled dynamically, e.g. by another row's OnUpdate.
type ItemWithOptions struct {
	Item           MenuItem
	Options        []Option
	SelectedOption int
	VisibleWhen    *atomic.Bool // nil = always visible
}

// Value returns the currently selected option's value as a string.
func (iow *ItemWithOptions) Value() interface{} {
	if len(iow.Options) == 0 || iow.Options[iow.SelectedOption].Value == nil {
		return ""
	}
	return fmt.Sprintf("%s", iow.Options[iow.SelectedOption].Value)
}

// IsVisible reports whether the row should be displayed.
func (iow *ItemWithOptions) IsVisible() bool {
	return iow.VisibleWhen == nil || iow.VisibleWhen.Load()
}

// OptionListSettings configures the OptionsList component.
type OptionListSettings struct {
	InitialSelectedIndex  int
	VisibleStartIndex     int
	DisableBackButton     bool
	UseSmallTitle         bool
	FooterHelpItems       []FooterHelpItem
	EnableHelp            bool
	HelpText              []string
	HelpExitText          string
	ActionButton          constants.VirtualButton
	SecondaryActionButton constants.VirtualButton
	ConfirmButton         constants.VirtualButton // Default: VirtualButtonStart
	StatusBar             StatusBarOptions
	ListPickerButton      constants.VirtualButton // Opens a full-screen picker for the focused row
}

// OptionsListResult is returned when the options list exits.
type OptionsListResult struct {
	Items             []ItemWithOptions
	Selected          int
	VisibleStartIndex int
	Action            ListAction
}

type optionsListState struct {
	window   *internal.Window
	renderer *sdl.Renderer

	title    string
	items    []ItemWithOptions
	settings OptionListSettings

	selectedIndex int
	visibleStart  int
	visibleCount  int

	directional   internal.DirectionalInput
	lastInputTime time.Time
	textCache     *internal.TextureCache

	help        *helpOverlay
	helpVisible bool

	finished bool
	action   ListAction
	err      error
}

// OptionsList displays a settings-style list where each row has multiple
// choices cycled with left/right. Blocks until the user exits.
// Returns ErrCancelled when the user backs out.
func OptionsList(title string, items []ItemWithOptions, settings OptionListSettings) (*OptionsListResult, error) {
	if settings.ConfirmButton == constants.VirtualButtonUnassigned {
		settings.ConfirmButton = constants.VirtualButtonStart
	}

	window := internal.GetWindow()
	state := &optionsListState{
		window:        window,
		renderer:      window.Renderer,
		title:         title,
		items:         items,
		settings:      settings,
		selectedIndex: settings.InitialSelectedIndex,
		visibleStart:  settings.VisibleStartIndex,
		directional:   internal.NewDirectionalInput(),
		lastInputTime: time.Now(),
		textCache:     internal.NewTextureCacheWithSize(48),
	}
	defer state.textCache.Destroy()

	if state.selectedIndex < 0 || state.selectedIndex >= len(items) || !itemVisibleAt(items, state.selectedIndex) {
		state.selectedIndex = firstVisible(items)
	}
	if state.visibleStart < 0 {
		state.visibleStart = 0
	}

	if settings.EnableHelp {
		state.help = newHelpOverlay("", settings.HelpText, settings.HelpExitText)
	}

	for !state.finished {
		state.handleEvents()
		state.update()
		state.render()
	}

	if state.err != nil {
		return nil, state.err
	}

	return &OptionsListResult{
		Items:             state.items,
		Selected:          state.selectedIndex,
		VisibleStartIndex: state.visibleStart,
		Action:            state.action,
	}, nil
}

func itemVisibleAt(items []ItemWithOptions, index int) bool {
	return index >= 0 && index < len(items) && items[index].IsVisible()
}

func firstVisible(items []ItemWithOptions) int {
	for i := range items {
		if items[i].IsVisible() {
			return i
		}
	}
	return 0
}

func (s *optionsListState) handleEvents() {
	processor := internal.GetInputProcessor()

	event := sdl.WaitEventTimeout(16)
	if event == nil {
		return
	}

	switch event.(type) {
	case *sdl.QuitEvent:
		s.err = ErrCancelled
		s.finished = true

	case *sdl.KeyboardEvent, *sdl.ControllerButtonEvent, *sdl.ControllerAxisEvent,
		*sdl.ControllerDeviceEvent, *sdl.JoyHatEvent:
		inputEvent := processor.ProcessSDLEvent(event.(sdl.Event))
		if inputEvent == nil {
			return
		}
		if s.directional.SetHeld(inputEvent.Button, inputEvent.Pressed) && inputEvent.Pressed {
			s.handleDirection(inputEvent.Button)
			return
		}
		if inputEvent.Pressed {
			s.handleButton(inputEvent.Button)
		}
	}
}

func (s *optionsListState) inputAllowed() bool {
	return time.Since(s.lastInputTime) >= constants.DefaultInputDelay
}

func (s *optionsListState) handleDirection(button constants.VirtualButton) {
	if !s.inputAllowed() {
		return
	}
	s.lastInputTime = time.Now()

	if s.helpVisible {
		switch button {
		case constants.VirtualButtonUp:
			s.help.scroll(-1)
		case constants.VirtualButtonDown:
			s.help.scroll(1)
		}
		return
	}

	switch button {
	case constants.VirtualButtonUp:
		s.moveFocus(-1)
	case constants.VirtualButtonDown:
		s.moveFocus(1)
	case constants.VirtualButtonLeft:
		s.cycleOption(-1)
	case constants.VirtualButtonRight:
		s.cycleOption(1)
	}
}

func (s *optionsListState) handleButton(button constants.VirtualButton) {
	if !s.inputAllowed() {
		return
	}
	s.lastInputTime = time.Now()

	if s.helpVisible {
		if button == constants.VirtualButtonB || button == constants.VirtualButtonMenu {
			s.helpVisible = false
		}
		return
	}

	switch button {
	case constants.VirtualButtonMenu:
		if s.help != nil {
			s.helpVisible = true
		}
		return
	case constants.VirtualButtonB:
		if !s.settings.DisableBackButton {
			s.err = ErrCancelled
			s.finished = true
		}
		return
	case constants.VirtualButtonA:
		if s.focusedItem() != nil && len(s.focusedItem().Options) > 0 &&
			s.focusedItem().Options[s.focusedItem().SelectedOption].Type == OptionTypeClickable {
			s.action = ListActionSelected
			s.finished = true
		}
		return
	case s.settings.ListPickerButton:
		s.openListPicker()
		return
	}

	switch button {
	case s.settings.ConfirmButton:
		s.action = ListActionConfirmed
		s.finished = true
	case s.settings.ActionButton:
		s.action = ListActionTriggered
		s.finished = true
	case s.settings.SecondaryActionButton:
		s.action = ListActionSecondaryTriggered
		s.finished = true
	}
}

// moveFocus moves to the next visible row in the given direction, wrapping.
func (s *optionsListState) moveFocus(delta int) {
	if len(s.items) == 0 {
		return
	}

	index := s.selectedIndex
	for i := 0; i < len(s.items); i++ {
		index = (index + delta + len(s.items)) % len(s.items)
		if s.items[index].IsVisible() {
			s.selectedIndex = index
			s.scrollToFocus()
			return
		}
	}
}

func (s *optionsListState) scrollToFocus() {
	if s.visibleCount <= 0 {
		return
	}
	if s.selectedIndex < s.visibleStart {
		s.visibleStart = s.selectedIndex
	} else if s.selectedIndex >= s.visibleStart+s.visibleCount {
		s.visibleStart = s.selectedIndex - s.visibleCount + 1
	}
	if s.visibleStart < 0 {
		s.visibleStart = 0
	}
}

func (s *optionsListState) focusedItem() *ItemWithOptions {
	if s.selectedIndex < 0 || s.selectedIndex >= len(s.items) {
		return nil
	}
	return &s.items[s.selectedIndex]
}

// cycleOption moves the focused row's selection, wrapping, and notifies
// the row's OnUpdate hook.
func (s *optionsListState) cycleOption(delta int) {
	item := s.focusedItem()
	if item == nil || len(item.Options) < 2 {
		return
	}
	if item.Options[item.SelectedOption].Type == OptionTypeClickable {
		return
	}

	item.SelectedOption = (item.SelectedOption + delta + len(item.Options)) % len(item.Options)

	selected := item.Options[item.SelectedOption]
	if selected.OnUpdate != nil {
		selected.OnUpdate(selected.Value)
	}
}

// openListPicker shows the focused row's options as a full-screen list.
func (s *optionsListState) openListPicker() {
	item := s.focusedItem()
	if item == nil || len(item.Options) < 2 {
		return
	}
	if item.Options[item.SelectedOption].Type == OptionTypeClickable {
		return
	}

	pickerItems := make([]MenuItem, len(item.Options))
	for i, opt := range item.Options {
		pickerItems[i] = MenuItem{Text: opt.DisplayName, Metadata: opt.Value}
	}

	pickerOptions := DefaultListOptions(item.Item.Text, pickerItems)
	pickerOptions.SelectedIndex = item.SelectedOption
	pickerOptions.UseSmallTitle = true
	pickerOptions.FooterHelpItems = DefaultFooterHelpItems()

	result, err := List(pickerOptions)
	if err != nil || result == nil || len(result.Selected) == 0 {
		return
	}

	picked := result.Selected[0]
	if picked == item.SelectedOption {
		return
	}

	item.SelectedOption = picked
	selected := item.Options[picked]
	if selected.OnUpdate != nil {
		selected.OnUpdate(selected.Value)
	}
}

func (s *optionsListState) update() {
	if direction := s.directional.Update(); direction != internal.DirectionNone {
		s.handleDirection(direction.VirtualButton())
	}
}

func (s *optionsListState) render() {
	theme := internal.GetTheme()

	s.renderer.SetDrawColor(theme.BackgroundColor.R, theme.BackgroundColor.G, theme.BackgroundColor.B, theme.BackgroundColor.A)
	s.renderer.Clear()
	s.window.RenderBackground()

	margins := internal.UniformPadding(20)
	scale := internal.GetScaleFactor()

	statusBarWidth := calculateStatusBarWidth(internal.Fonts.SmallFont, s.settings.StatusBar)
	contentTop := s.renderTitle(margins, statusBarWidth)
	renderStatusBar(s.renderer, internal.Fonts.SmallFont, s.settings.StatusBar, margins)

	rowPadding := int32(float32(10) * scale)
	rowHeight := int32(internal.Fonts.MediumFont.Height()) + 2*rowPadding
	rowSpacing := int32(float32(4) * scale)
	footerHeight := int32(internal.Fonts.SmallFont.Height()) + int32(float32(24)*scale)
	safeBottom := s.window.GetHeight() - margins.Bottom - footerHeight

	stride := rowHeight + rowSpacing
	s.visibleCount = int((safeBottom - contentTop) / stride)
	if s.visibleCount < 1 {
		s.visibleCount = 1
	}
	s.scrollToFocus()

	row := 0
	for index := s.visibleStart; index < len(s.items) && row < s.visibleCount; index++ {
		item := &s.items[index]
		if !item.IsVisible() {
			continue
		}

		y := contentTop + int32(row)*stride
		s.renderRow(index, item, margins, y, rowHeight, rowPadding)
		row++
	}

	renderFooter(s.renderer, internal.Fonts.SmallFont, s.settings.FooterHelpItems, margins.Bottom, true, true)

	if s.helpVisible {
		s.help.render(s.renderer, internal.Fonts.SmallFont)
	}

	s.window.Present()
}

func (s *optionsListState) renderTitle(margins internal.Padding, statusBarWidth int32) int32 {
	if s.title == "" {
		return margins.Top
	}

	font := internal.Fonts.LargeFont
	if s.settings.UseSmallTitle {
		font = internal.Fonts.MediumFont
	}

	theme := internal.GetTheme()
	texture := s.cachedText(s.title, int32(font.Height()), func() (*sdl.Surface, error) {
		return font.RenderUTF8Blended(s.title, theme.TextColor)
	})
	if texture == nil {
		return margins.Top
	}

	_, _, w, h, err := texture.Query()
	if err != nil {
		return margins.Top
	}

	maxWidth := s.window.GetWidth() - margins.Left - margins.Right - statusBarWidth
	displayWidth := internal.Min32(w, maxWidth)

	src := &sdl.Rect{X: 0, Y: 0, W: displayWidth, H: h}
	s.renderer.Copy(texture, src, &sdl.Rect{X: margins.Left, Y: margins.Top, W: displayWidth, H: h})

	return margins.Top + h + constants.DefaultTitleSpacing
}

func (s *optionsListState) renderRow(index int, item *ItemWithOptions, margins internal.Padding, y, rowHeight, rowPadding int32) {
	theme := internal.GetTheme()
	font := internal.Fonts.MediumFont

	rowRect := &sdl.Rect{X: margins.Left, Y: y, W: s.window.GetWidth() - margins.Left - margins.Right, H: rowHeight}

	nameColor := theme.TextColor
	valueColor := theme.HintColor
	if index == s.selectedIndex {
		internal.DrawRoundedRect(s.renderer, rowRect, rowHeight/2, theme.HighlightColor)
		nameColor = theme.HighlightedTextColor
		valueColor = theme.HighlightedTextColor
	}

	inset := rowPadding + 4

	nameTexture := s.cachedText(fmt.Sprintf("n|%d|%s", boolToInt(index == s.selectedIndex), item.Item.Text), int32(font.Height()), func() (*sdl.Surface, error) {
		return font.RenderUTF8Blended(item.Item.Text, nameColor)
	})
	if nameTexture != nil {
		_, _, w, h, err := nameTexture.Query()
		if err == nil {
			maxNameWidth := rowRect.W / 2
			displayWidth := internal.Min32(w, maxNameWidth)
			src := &sdl.Rect{X: 0, Y: 0, W: displayWidth, H: h}
			s.renderer.Copy(nameTexture, src, &sdl.Rect{X: rowRect.X + inset, Y: y + (rowHeight-h)/2, W: displayWidth, H: h})
		}
	}

	if len(item.Options) == 0 {
		return
	}

	option := item.Options[item.SelectedOption]
	valueText := option.DisplayName
	if option.Type == OptionTypeStandard && len(item.Options) > 1 {
		valueText = "< " + valueText + " >"
	}

	valueTexture := s.cachedText(fmt.Sprintf("v|%d|%s", boolToInt(index == s.selectedIndex), valueText), int32(font.Height()), func() (*sdl.Surface, error) {
		return font.RenderUTF8Blended(valueText, valueColor)
	})
	if valueTexture != nil {
		_, _, w, h, err := valueTexture.Query()
		if err == nil {
			maxValueWidth := rowRect.W/2 - inset
			displayWidth := internal.Min32(w, maxValueWidth)
			src := &sdl.Rect{X: 0, Y: 0, W: displayWidth, H: h}
			x := rowRect.X + rowRect.W - inset - displayWidth
			s.renderer.Copy(valueTexture, src, &sdl.Rect{X: x, Y: y + (rowHeight-h)/2, W: displayWidth, H: h})
		}
	}
}

func (s *optionsListState) cachedText(key string, fontHeight int32, render func() (*sdl.Surface, error)) *sdl.Texture {
	cacheKey := fmt.Sprintf("%s|%d", key, fontHeight)
	if texture := s.textCache.Get(cacheKey); texture != nil {
		return texture
	}

	surface, err := render()
	if err != nil {
		return nil
	}
	defer surface.Free()

	texture, err := s.renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil
	}

	s.textCache.Set(cacheKey, texture)
	return texture
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
