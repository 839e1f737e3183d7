package braciole

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/syncly-app/braciole/pkg/braciole/constants"
	"github.com/syncly-app/braciole/pkg/braciole/internal"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// ListOptions configures the List component.
type ListOptions struct {
	Title             string
	Items             []MenuItem
	SelectedIndex     int // Initial focused item
	VisibleStartIndex int // Initial scroll position (for scroll restoration)

	MultiSelect      bool // A toggles marks instead of exiting
	EnableReordering bool // Select toggles reorder mode

	EmptyMessage      string // Shown when Items is empty; defaults to the localized empty message
	DisableBackButton bool
	UseSmallTitle     bool
	TitleAlign        constants.TextAlign

	FooterHelpItems []FooterHelpItem

	EnableHelp   bool
	HelpTitle    string
	HelpText     []string
	HelpExitText string

	ActionButton          constants.VirtualButton // Exits with ListActionTriggered
	SecondaryActionButton constants.VirtualButton // Exits with ListActionSecondaryTriggered
	ConfirmButton         constants.VirtualButton // Exits with ListActionConfirmed

	StatusBar StatusBarOptions

	// OnSelect is invoked synchronously whenever an item becomes (or is
	// re-activated as) the focused item: on every tap, including taps on
	// the already focused row, and on directional focus changes.
	OnSelect func(index int, item *MenuItem)

	InputDelay time.Duration
}

// DefaultListOptions returns list options with standard buttons configured.
func DefaultListOptions(title string, items []MenuItem) ListOptions {
	return ListOptions{
		Title:         title,
		Items:         items,
		ConfirmButton: constants.VirtualButtonStart,
		InputDelay:    constants.DefaultInputDelay,
		StatusBar:     DefaultStatusBarOptions(),
	}
}

// rowLayout describes the on-screen geometry of list rows, used for tap
// hit-testing. Kept free of SDL state so controller logic is testable.
type rowLayout struct {
	StartY     int32
	RowHeight  int32
	RowSpacing int32
	Left       int32
	Right      int32
}

// rowAt returns the item index under the point (x, y), or -1 when the point
// misses every visible row.
func (l rowLayout) rowAt(x, y int32, firstVisible, visibleCount int) int {
	if visibleCount <= 0 || x < l.Left || x > l.Right || y < l.StartY {
		return -1
	}

	stride := l.RowHeight + l.RowSpacing
	if stride <= 0 {
		return -1
	}

	offset := y - l.StartY
	row := offset / stride
	if row >= int32(visibleCount) {
		return -1
	}
	if offset-row*stride >= l.RowHeight {
		// Tap landed in the gap between rows
		return -1
	}

	return firstVisible + int(row)
}

// listController holds the pure selection state of a List, independent of
// any rendering or SDL event machinery.
type listController struct {
	items         []MenuItem
	selectedIndex int
	visibleStart  int
	visibleCount  int
	multiSelect   bool
	reorderMode   bool
	layout        rowLayout
	onSelect      func(index int, item *MenuItem)
}

func newListController(options ListOptions) *listController {
	c := &listController{
		items:         options.Items,
		selectedIndex: options.SelectedIndex,
		visibleStart:  options.VisibleStartIndex,
		multiSelect:   options.MultiSelect,
		onSelect:      options.OnSelect,
	}

	if c.visibleStart < 0 {
		c.visibleStart = 0
	}

	// The caller-provided index is used as-is; callers are responsible for
	// passing an index that matches the items they hand over.
	if c.selectedIndex >= 0 && c.selectedIndex < len(c.items) {
		c.setFocus(c.selectedIndex)
	}

	return c
}

// setFocus makes index the single focused item.
func (c *listController) setFocus(index int) {
	for i := range c.items {
		c.items[i].Focused = false
	}
	c.selectedIndex = index
	if index >= 0 && index < len(c.items) {
		c.items[index].Focused = true
	}
}

func (c *listController) fireOnSelect() {
	if c.onSelect == nil {
		return
	}
	if c.selectedIndex < 0 || c.selectedIndex >= len(c.items) {
		return
	}
	c.onSelect(c.selectedIndex, &c.items[c.selectedIndex])
}

// handleTap activates the row under (x, y). Taps on the already focused row
// re-activate it, firing the selection callback again. Returns true when a
// row was hit.
func (c *listController) handleTap(x, y int32) bool {
	index := c.layout.rowAt(x, y, c.visibleStart, c.visibleRows())
	if index < 0 || index >= len(c.items) {
		return false
	}

	c.setFocus(index)
	c.fireOnSelect()
	return true
}

// moveSelection moves the focus by delta rows, wrapping at both ends.
func (c *listController) moveSelection(delta int) {
	if len(c.items) == 0 {
		return
	}

	next := (c.selectedIndex + delta) % len(c.items)
	if next < 0 {
		next += len(c.items)
	}

	if next == c.selectedIndex {
		return
	}

	c.setFocus(next)
	c.scrollToFocus()
	c.fireOnSelect()
}

// pageBy jumps by a full page without wrapping.
func (c *listController) pageBy(delta int) {
	if len(c.items) == 0 || c.visibleCount <= 0 {
		return
	}

	next := c.selectedIndex + delta*c.visibleCount
	if next < 0 {
		next = 0
	}
	if next >= len(c.items) {
		next = len(c.items) - 1
	}

	if next == c.selectedIndex {
		return
	}

	c.setFocus(next)
	c.scrollToFocus()
	c.fireOnSelect()
}

// scrollToFocus adjusts visibleStart so the focused item stays on screen.
func (c *listController) scrollToFocus() {
	if c.visibleCount <= 0 {
		return
	}

	if c.selectedIndex < c.visibleStart {
		c.visibleStart = c.selectedIndex
	} else if c.selectedIndex >= c.visibleStart+c.visibleCount {
		c.visibleStart = c.selectedIndex - c.visibleCount + 1
	}
	if c.visibleStart < 0 {
		c.visibleStart = 0
	}
}

// visibleRows returns how many rows are actually shown this frame.
func (c *listController) visibleRows() int {
	remaining := len(c.items) - c.visibleStart
	if remaining < 0 {
		remaining = 0
	}
	if c.visibleCount > 0 && remaining > c.visibleCount {
		return c.visibleCount
	}
	return remaining
}

// toggleMark toggles the multi-select mark on the focused item.
func (c *listController) toggleMark() {
	if c.selectedIndex < 0 || c.selectedIndex >= len(c.items) {
		return
	}
	item := &c.items[c.selectedIndex]
	if item.NotMultiSelectable {
		return
	}
	item.Selected = !item.Selected
}

// moveItem swaps the focused item with its neighbor in reorder mode.
func (c *listController) moveItem(delta int) {
	target := c.selectedIndex + delta
	if c.selectedIndex < 0 || c.selectedIndex >= len(c.items) {
		return
	}
	if target < 0 || target >= len(c.items) {
		return
	}
	if c.items[c.selectedIndex].NotReorderable || c.items[target].NotReorderable {
		return
	}

	c.items[c.selectedIndex], c.items[target] = c.items[target], c.items[c.selectedIndex]
	c.setFocus(target)
	c.scrollToFocus()
}

// selectedIndices returns the marked items in multi-select mode, or the
// focused item otherwise.
func (c *listController) selectedIndices() []int {
	if c.multiSelect {
		indices := make([]int, 0)
		for i, item := range c.items {
			if item.Selected {
				indices = append(indices, i)
			}
		}
		return indices
	}

	if c.selectedIndex >= 0 && c.selectedIndex < len(c.items) {
		return []int{c.selectedIndex}
	}
	return []int{}
}

type listState struct {
	window      *internal.Window
	renderer    *sdl.Renderer
	options     ListOptions
	controller  *listController
	directional internal.DirectionalInput

	textCache  *internal.TextureCache
	imageCache *internal.TextureCache

	marquee       internal.TextScrollData
	marqueeIndex  int
	lastInputTime time.Time

	help        *helpOverlay
	helpVisible bool

	finished bool
	action   ListAction
	err      error
}

// List displays a scrollable, selectable list of items and blocks until the
// user exits it. Exactly one item is active at any time; the component
// starts with the configured SelectedIndex focused.
//
// Returns ErrCancelled when the user backs out.
func List(options ListOptions) (*ListResult, error) {
	if options.InputDelay == 0 {
		options.InputDelay = constants.DefaultInputDelay
	}
	if options.EmptyMessage == "" {
		options.EmptyMessage = internal.Localize(internal.MsgListEmpty)
	}

	window := internal.GetWindow()
	state := &listState{
		window:        window,
		renderer:      window.Renderer,
		options:       options,
		controller:    newListController(options),
		directional:   internal.NewDirectionalInput(),
		textCache:     internal.NewTextureCacheWithSize(32),
		imageCache:    internal.NewTextureCache(),
		lastInputTime: time.Now(),
		marqueeIndex:  -1,
	}
	defer state.cleanup()

	if options.EnableHelp {
		state.help = newHelpOverlay(options.HelpTitle, options.HelpText, options.HelpExitText)
	}

	for !state.finished {
		state.handleEvents()
		state.update()
		state.render()
	}

	if state.err != nil {
		return nil, state.err
	}

	return &ListResult{
		Items:           state.controller.items,
		Selected:        state.controller.selectedIndices(),
		Action:          state.action,
		VisiblePosition: state.controller.selectedIndex - state.controller.visibleStart,
	}, nil
}

func (s *listState) cleanup() {
	s.textCache.Destroy()
	s.imageCache.Destroy()
}

func (s *listState) finish(action ListAction) {
	s.action = action
	s.finished = true
}

func (s *listState) cancel() {
	s.err = ErrCancelled
	s.finished = true
}

func (s *listState) handleEvents() {
	processor := internal.GetInputProcessor()

	event := sdl.WaitEventTimeout(16)
	if event == nil {
		return
	}

	switch e := event.(type) {
	case *sdl.QuitEvent:
		s.cancel()

	case *sdl.MouseButtonEvent:
		if e.Type == sdl.MOUSEBUTTONDOWN && e.Button == sdl.BUTTON_LEFT {
			s.handleTap(e.X, e.Y)
		}

	case *sdl.KeyboardEvent, *sdl.ControllerButtonEvent, *sdl.ControllerAxisEvent,
		*sdl.ControllerDeviceEvent, *sdl.JoyHatEvent:
		inputEvent := processor.ProcessSDLEvent(event)
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

func (s *listState) handleTap(x, y int32) {
	if s.helpVisible {
		s.helpVisible = false
		return
	}
	s.controller.handleTap(x, y)
}

func (s *listState) handleDirection(button constants.VirtualButton) {
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
		if s.controller.reorderMode {
			s.controller.moveItem(-1)
		} else {
			s.controller.moveSelection(-1)
		}
	case constants.VirtualButtonDown:
		if s.controller.reorderMode {
			s.controller.moveItem(1)
		} else {
			s.controller.moveSelection(1)
		}
	}
}

func (s *listState) handleButton(button constants.VirtualButton) {
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
	case constants.VirtualButtonL1:
		s.controller.pageBy(-1)
		return
	case constants.VirtualButtonR1:
		s.controller.pageBy(1)
		return
	case constants.VirtualButtonMenu:
		if s.help != nil {
			s.helpVisible = true
		}
		return
	case constants.VirtualButtonSelect:
		if s.options.EnableReordering {
			s.controller.reorderMode = !s.controller.reorderMode
		}
		return
	case constants.VirtualButtonB:
		if !s.options.DisableBackButton {
			s.cancel()
		}
		return
	case constants.VirtualButtonA:
		if len(s.controller.items) == 0 {
			return
		}
		if s.options.MultiSelect {
			s.controller.toggleMark()
			return
		}
		s.controller.fireOnSelect()
		s.finish(ListActionSelected)
		return
	}

	if len(s.controller.items) == 0 {
		return
	}

	switch button {
	case s.options.ConfirmButton:
		s.finish(ListActionConfirmed)
	case s.options.ActionButton:
		s.finish(ListActionTriggered)
	case s.options.SecondaryActionButton:
		s.finish(ListActionSecondaryTriggered)
	}
}

func (s *listState) inputAllowed() bool {
	return time.Since(s.lastInputTime) >= s.options.InputDelay
}

func (s *listState) update() {
	if direction := s.directional.Update(); direction != internal.DirectionNone {
		s.handleDirection(direction.VirtualButton())
	}

	s.updateMarquee()
}

func (s *listState) updateMarquee() {
	focused := s.controller.selectedIndex
	if focused != s.marqueeIndex {
		s.marqueeIndex = focused
		s.marquee = internal.TextScrollData{Direction: 1}
	}
	if s.marquee.NeedsScrolling {
		internal.UpdateTextScroll(&s.marquee, time.Now())
	}
}

func (s *listState) render() {
	theme := internal.GetTheme()

	s.renderer.SetDrawColor(theme.BackgroundColor.R, theme.BackgroundColor.G, theme.BackgroundColor.B, theme.BackgroundColor.A)
	s.renderer.Clear()
	s.window.RenderBackground()

	margins := internal.UniformPadding(20)
	statusBarWidth := calculateStatusBarWidth(internal.Fonts.SmallFont, s.options.StatusBar)

	contentTop := s.renderTitle(margins, statusBarWidth)
	renderStatusBar(s.renderer, internal.Fonts.SmallFont, s.options.StatusBar, margins)

	s.recalcLayout(margins, contentTop)

	if len(s.controller.items) == 0 {
		s.renderEmptyState()
	} else {
		s.renderRows(margins)
		s.renderScrollbar(margins)
		s.renderFocusedImage(margins)
	}

	renderFooter(s.renderer, internal.Fonts.SmallFont, s.options.FooterHelpItems, margins.Bottom, true, true)

	if s.helpVisible {
		s.help.render(s.renderer, internal.Fonts.SmallFont)
	}

	s.window.Present()
}

func (s *listState) renderTitle(margins internal.Padding, statusBarWidth int32) int32 {
	if s.options.Title == "" {
		return margins.Top
	}

	font := internal.Fonts.LargeFont
	if s.options.UseSmallTitle {
		font = internal.Fonts.MediumFont
	}

	texture := s.cachedText(s.options.Title, font, internal.GetTheme().TextColor)
	if texture == nil {
		return margins.Top
	}

	_, _, w, h, err := texture.Query()
	if err != nil {
		return margins.Top
	}

	maxWidth := s.window.GetWidth() - margins.Left - margins.Right - statusBarWidth
	displayWidth := internal.Min32(w, maxWidth)

	var x int32
	switch s.options.TitleAlign {
	case constants.TextAlignCenter:
		x = (s.window.GetWidth() - displayWidth) / 2
	case constants.TextAlignRight:
		x = s.window.GetWidth() - margins.Right - statusBarWidth - displayWidth
	default:
		x = margins.Left
	}

	src := &sdl.Rect{X: 0, Y: 0, W: displayWidth, H: h}
	s.renderer.Copy(texture, src, &sdl.Rect{X: x, Y: margins.Top, W: displayWidth, H: h})

	return margins.Top + h + constants.DefaultTitleSpacing
}

func (s *listState) recalcLayout(margins internal.Padding, contentTop int32) {
	scale := internal.GetScaleFactor()
	rowPadding := int32(float32(10) * scale)
	rowHeight := int32(internal.Fonts.MediumFont.Height()) + 2*rowPadding
	rowSpacing := int32(float32(4) * scale)

	footerHeight := int32(internal.Fonts.SmallFont.Height()) + int32(float32(24)*scale)
	safeBottom := s.window.GetHeight() - margins.Bottom - footerHeight

	right := s.window.GetWidth() - margins.Right
	if s.hasItemImages() {
		// Reserve the right third for the focused item image
		right = s.window.GetWidth() - s.window.GetWidth()/3 - margins.Right
	}

	s.controller.layout = rowLayout{
		StartY:     contentTop + constants.DefaultTitleSpacing,
		RowHeight:  rowHeight,
		RowSpacing: rowSpacing,
		Left:       margins.Left,
		Right:      right,
	}

	stride := rowHeight + rowSpacing
	available := safeBottom - s.controller.layout.StartY
	count := int(available / stride)
	if count < 1 {
		count = 1
	}
	s.controller.visibleCount = count
	s.controller.scrollToFocus()
}

func (s *listState) hasItemImages() bool {
	for _, item := range s.controller.items {
		if item.ImageFilename != "" {
			return true
		}
	}
	return false
}

func (s *listState) renderEmptyState() {
	theme := internal.GetTheme()
	font := internal.Fonts.MediumFont

	texture := s.cachedText(s.options.EmptyMessage, font, theme.HintColor)
	if texture == nil {
		return
	}

	_, _, w, h, err := texture.Query()
	if err != nil {
		return
	}

	x := (s.window.GetWidth() - w) / 2
	y := (s.window.GetHeight() - h) / 2
	s.renderer.Copy(texture, nil, &sdl.Rect{X: x, Y: y, W: w, H: h})
}

func (s *listState) renderRows(margins internal.Padding) {
	theme := internal.GetTheme()
	layout := s.controller.layout
	scale := internal.GetScaleFactor()
	textInset := int32(float32(14) * scale)

	for row := 0; row < s.controller.visibleRows(); row++ {
		index := s.controller.visibleStart + row
		item := s.controller.items[index]

		y := layout.StartY + int32(row)*(layout.RowHeight+layout.RowSpacing)
		rowRect := &sdl.Rect{X: layout.Left, Y: y, W: layout.Right - layout.Left, H: layout.RowHeight}

		textColor := theme.TextColor
		if item.Focused {
			highlight := theme.HighlightColor
			if s.controller.reorderMode {
				highlight = theme.AccentColor
			}
			internal.DrawRoundedRect(s.renderer, rowRect, layout.RowHeight/2, highlight)
			textColor = theme.HighlightedTextColor
		}

		label := item.Text
		if s.options.MultiSelect {
			mark := constants.CircleOutline
			if item.Selected {
				mark = constants.CircleChecked
			}
			if !item.NotMultiSelectable {
				label = mark + " " + label
			}
		}

		s.renderRowLabel(label, textColor, rowRect, textInset, item.Focused)
	}
}

func (s *listState) renderRowLabel(label string, color sdl.Color, rowRect *sdl.Rect, inset int32, focused bool) {
	font := internal.Fonts.MediumFont

	texture := s.cachedText(label, font, color)
	if texture == nil {
		return
	}

	_, _, w, h, err := texture.Query()
	if err != nil {
		return
	}

	maxWidth := rowRect.W - 2*inset
	textY := rowRect.Y + (rowRect.H-h)/2

	if w <= maxWidth {
		s.renderer.Copy(texture, nil, &sdl.Rect{X: rowRect.X + inset, Y: textY, W: w, H: h})
		return
	}

	if focused {
		if !s.marquee.NeedsScrolling || s.marquee.TextWidth != w {
			s.marquee = internal.TextScrollData{
				NeedsScrolling: true,
				TextWidth:      w,
				ContainerWidth: maxWidth,
				Direction:      1,
			}
		}
		src := &sdl.Rect{X: s.marquee.ScrollOffset, Y: 0, W: maxWidth, H: h}
		s.renderer.Copy(texture, src, &sdl.Rect{X: rowRect.X + inset, Y: textY, W: maxWidth, H: h})
		return
	}

	src := &sdl.Rect{X: 0, Y: 0, W: maxWidth, H: h}
	s.renderer.Copy(texture, src, &sdl.Rect{X: rowRect.X + inset, Y: textY, W: maxWidth, H: h})
}

func (s *listState) renderScrollbar(margins internal.Padding) {
	total := len(s.controller.items)
	if s.controller.visibleCount <= 0 || total <= s.controller.visibleCount {
		return
	}

	layout := s.controller.layout
	trackX := s.window.GetWidth() - margins.Right + 8
	trackY := layout.StartY
	trackHeight := int32(s.controller.visibleCount) * (layout.RowHeight + layout.RowSpacing)
	width := int32(6)

	handleHeight := internal.Max32(trackHeight*int32(s.controller.visibleCount)/int32(total), 20)
	maxStart := total - s.controller.visibleCount
	handleY := trackY
	if maxStart > 0 {
		handleY += (trackHeight - handleHeight) * int32(s.controller.visibleStart) / int32(maxStart)
	}

	internal.DrawSmoothScrollbar(s.renderer, trackX, trackY, width, trackHeight, sdl.Color{R: 50, G: 50, B: 50, A: 255})
	internal.DrawSmoothScrollbar(s.renderer, trackX, handleY, width, handleHeight, sdl.Color{R: 120, G: 120, B: 120, A: 255})
}

func (s *listState) renderFocusedImage(margins internal.Padding) {
	index := s.controller.selectedIndex
	if index < 0 || index >= len(s.controller.items) {
		return
	}

	path := s.controller.items[index].ImageFilename
	if path == "" {
		return
	}

	maxWidth := s.window.GetWidth()/3 - margins.Right
	maxHeight := s.window.GetHeight() / 2

	texture := s.imageCache.Get(path)
	if texture == nil {
		var err error
		if strings.EqualFold(filepath.Ext(path), ".svg") {
			texture, err = internal.LoadSVGTexture(s.renderer, path, maxWidth, maxHeight)
		} else {
			texture, err = img.LoadTexture(s.renderer, path)
		}
		if err != nil {
			internal.GetInternalLogger().Warn("Failed to load item image", "path", path, "error", err)
			return
		}
		s.imageCache.Set(path, texture)
	}

	_, _, w, h, err := texture.Query()
	if err != nil {
		return
	}

	if w > maxWidth {
		h = h * maxWidth / w
		w = maxWidth
	}
	if h > maxHeight {
		w = w * maxHeight / h
		h = maxHeight
	}

	x := s.window.GetWidth() - margins.Right - w
	y := (s.window.GetHeight() - h) / 2
	s.renderer.Copy(texture, nil, &sdl.Rect{X: x, Y: y, W: w, H: h})
}

func (s *listState) cachedText(text string, font *ttf.Font, color sdl.Color) *sdl.Texture {
	key := fmt.Sprintf("%s|%d|%02x%02x%02x", text, font.Height(), color.R, color.G, color.B)
	if texture := s.textCache.Get(key); texture != nil {
		return texture
	}

	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return nil
	}
	defer surface.Free()

	texture, err := s.renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil
	}

	s.textCache.Set(key, texture)
	return texture
}
