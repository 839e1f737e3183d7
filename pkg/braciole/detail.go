package braciole

import (
	"fmt"
	"time"

	"github.com/syncly-app/braciole/pkg/braciole/constants"
	"github.com/syncly-app/braciole/pkg/braciole/internal"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// MetadataItem is a label/value pair shown in an info section.
type MetadataItem struct {
	Label string
	Value string
}

const (
	SectionTypeInfo = iota
	SectionTypeDescription
	SectionTypeImage
)

// Section is one block of content on a detail screen.
type Section struct {
	Type        int
	Title       string
	Metadata    []MetadataItem
	Description string
	ImagePath   string
	MaxWidth    int32
	MaxHeight   int32
}

func NewInfoSection(title string, metadata []MetadataItem) Section {
	return Section{Type: SectionTypeInfo, Title: title, Metadata: metadata}
}

func NewDescriptionSection(title, description string) Section {
	return Section{Type: SectionTypeDescription, Title: title, Description: description}
}

func NewImageSection(title, imagePath string, maxWidth, maxHeight int32) Section {
	return Section{Type: SectionTypeImage, Title: title, ImagePath: imagePath, MaxWidth: maxWidth, MaxHeight: maxHeight}
}

// DetailScreenOptions configures the DetailScreen component.
type DetailScreenOptions struct {
	Sections      []Section
	EnableAction  bool
	ActionButton  constants.VirtualButton // Exits with DetailActionTriggered when EnableAction is set
	ShowScrollbar bool
	StatusBar     StatusBarOptions
}

// DefaultDetailScreenOptions returns detail options with a scrollbar and the
// A button as the action trigger.
func DefaultDetailScreenOptions(sections []Section) DetailScreenOptions {
	return DetailScreenOptions{
		Sections:      sections,
		ActionButton:  constants.VirtualButtonA,
		ShowScrollbar: true,
	}
}

// DetailScreenResult is returned when the detail screen exits.
type DetailScreenResult struct {
	Action DetailAction
}

type detailState struct {
	window          *internal.Window
	renderer        *sdl.Renderer
	title           string
	options         DetailScreenOptions
	footerHelpItems []FooterHelpItem

	scrollY       int32
	targetScrollY int32
	maxScrollY    int32
	scrollSpeed   int32

	directional   internal.DirectionalInput
	lastInputTime time.Time

	imageTextures map[int]*sdl.Texture
	textCache     *internal.TextureCache

	action DetailAction
}

// DetailScreen displays a scrollable screen of titled sections and blocks
// until the user acts on it or backs out.
// Returns ErrCancelled when the user backs out.
func DetailScreen(title string, options DetailScreenOptions, footerHelpItems []FooterHelpItem) (*DetailScreenResult, error) {
	window := internal.GetWindow()

	state := &detailState{
		window:          window,
		renderer:        window.Renderer,
		title:           title,
		options:         options,
		footerHelpItems: footerHelpItems,
		scrollSpeed:     85,
		directional:     internal.NewDirectionalInput(),
		lastInputTime:   time.Now(),
		imageTextures:   make(map[int]*sdl.Texture),
		textCache:       internal.NewTextureCacheWithSize(32),
		action:          DetailActionNone,
	}
	defer state.cleanup()

	state.loadImages()

	for state.action == DetailActionNone {
		state.handleEvents()
		state.update()
		state.render()
	}

	if state.action == DetailActionCancelled {
		return nil, ErrCancelled
	}
	return &DetailScreenResult{Action: state.action}, nil
}

func (s *detailState) cleanup() {
	s.textCache.Destroy()
	for _, texture := range s.imageTextures {
		if texture != nil {
			texture.Destroy()
		}
	}
}

func (s *detailState) loadImages() {
	for i, section := range s.options.Sections {
		if section.Type != SectionTypeImage || section.ImagePath == "" {
			continue
		}
		texture, err := img.LoadTexture(s.renderer, section.ImagePath)
		if err != nil {
			internal.GetInternalLogger().Warn("Failed to load detail image", "path", section.ImagePath, "error", err)
			continue
		}
		s.imageTextures[i] = texture
	}
}

func (s *detailState) handleEvents() {
	processor := internal.GetInputProcessor()

	event := sdl.WaitEventTimeout(16)
	if event == nil {
		return
	}

	switch event.(type) {
	case *sdl.QuitEvent:
		s.action = DetailActionCancelled

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

func (s *detailState) handleDirection(button constants.VirtualButton) {
	if time.Since(s.lastInputTime) < constants.DefaultInputDelay {
		return
	}
	s.lastInputTime = time.Now()

	switch button {
	case constants.VirtualButtonUp:
		s.targetScrollY = internal.Max32(0, s.targetScrollY-s.scrollSpeed)
	case constants.VirtualButtonDown:
		s.targetScrollY = internal.Min32(s.maxScrollY, s.targetScrollY+s.scrollSpeed)
	}
}

func (s *detailState) handleButton(button constants.VirtualButton) {
	if time.Since(s.lastInputTime) < constants.DefaultInputDelay {
		return
	}
	s.lastInputTime = time.Now()

	switch button {
	case constants.VirtualButtonB:
		s.action = DetailActionCancelled
	case s.options.ActionButton:
		if s.options.EnableAction {
			s.action = DetailActionTriggered
		}
	}
}

func (s *detailState) update() {
	if direction := s.directional.Update(); direction != internal.DirectionNone {
		s.handleDirection(direction.VirtualButton())
	}

	// Smooth scroll towards the target
	s.scrollY += int32(float32(s.targetScrollY-s.scrollY) * 0.3)
	if diff := s.targetScrollY - s.scrollY; diff > -2 && diff < 2 {
		s.scrollY = s.targetScrollY
	}
}

func (s *detailState) render() {
	theme := internal.GetTheme()

	s.renderer.SetDrawColor(theme.BackgroundColor.R, theme.BackgroundColor.G, theme.BackgroundColor.B, theme.BackgroundColor.A)
	s.renderer.Clear()
	s.window.RenderBackground()

	margins := internal.UniformPadding(20)
	footerHeight := int32(internal.Fonts.SmallFont.Height()) + 24
	safeAreaHeight := s.window.GetHeight() - margins.Bottom - footerHeight

	statusBarWidth := calculateStatusBarWidth(internal.Fonts.SmallFont, s.options.StatusBar)

	contentWidth := s.window.GetWidth() - margins.Left - margins.Right
	if s.options.ShowScrollbar {
		contentWidth -= 25
	}

	y := s.renderDetailTitle(margins, statusBarWidth)
	for i, section := range s.options.Sections {
		if i > 0 {
			y += 30
		}
		y = s.renderSection(i, section, margins, contentWidth, y, safeAreaHeight)
	}

	totalContentHeight := y + s.scrollY + margins.Bottom
	s.maxScrollY = internal.Max32(0, totalContentHeight-safeAreaHeight)

	renderStatusBar(s.renderer, internal.Fonts.SmallFont, s.options.StatusBar, margins)
	s.renderScrollbar(safeAreaHeight)
	renderFooter(s.renderer, internal.Fonts.SmallFont, s.footerHelpItems, margins.Bottom, true, true)

	s.window.Present()
}

func (s *detailState) renderDetailTitle(margins internal.Padding, statusBarWidth int32) int32 {
	startY := margins.Top - s.scrollY
	if s.title == "" {
		return startY + constants.DefaultTitleSpacing
	}

	theme := internal.GetTheme()
	texture := s.cachedSectionText(s.title, internal.Fonts.LargeFont, theme.TextColor)
	if texture == nil {
		return startY + constants.DefaultTitleSpacing
	}

	_, _, w, h, err := texture.Query()
	if err != nil {
		return startY + constants.DefaultTitleSpacing
	}

	maxWidth := s.window.GetWidth() - margins.Left - margins.Right - statusBarWidth
	displayWidth := internal.Min32(w, maxWidth)

	rect := sdl.Rect{X: margins.Left, Y: startY, W: displayWidth, H: h}
	if rectVisible(rect, s.window.GetHeight()) {
		src := &sdl.Rect{X: 0, Y: 0, W: displayWidth, H: h}
		s.renderer.Copy(texture, src, &rect)
	}

	return startY + h + constants.DefaultTitleSpacing
}

func (s *detailState) renderSection(index int, section Section, margins internal.Padding, contentWidth, y, safeAreaHeight int32) int32 {
	theme := internal.GetTheme()

	if section.Title != "" {
		texture := s.cachedSectionText(section.Title, internal.Fonts.MediumFont, theme.TextColor)
		if texture != nil {
			_, _, w, h, err := texture.Query()
			if err == nil {
				rect := sdl.Rect{X: margins.Left, Y: y, W: w, H: h}
				if rectVisible(rect, safeAreaHeight) {
					s.renderer.Copy(texture, nil, &rect)
				}
				y += h + 10
			}
		}

		if y >= 0 && y <= safeAreaHeight {
			s.renderer.SetDrawColor(theme.HintColor.R, theme.HintColor.G, theme.HintColor.B, 120)
			s.renderer.DrawLine(margins.Left, y, margins.Left+contentWidth, y)
		}
		y += 15
	}

	switch section.Type {
	case SectionTypeInfo:
		return s.renderInfo(section, margins, contentWidth, y, safeAreaHeight)
	case SectionTypeDescription:
		return s.renderDescription(section, margins, contentWidth, y, safeAreaHeight)
	case SectionTypeImage:
		return s.renderImage(index, section, margins, y, safeAreaHeight)
	}
	return y
}

func (s *detailState) renderInfo(section Section, margins internal.Padding, contentWidth, y, safeAreaHeight int32) int32 {
	theme := internal.GetTheme()
	font := internal.Fonts.SmallFont
	fontHeight := int32(font.Height())

	for _, item := range section.Metadata {
		labelTexture := s.cachedSectionText(item.Label+":", font, theme.HintColor)
		labelWidth := int32(0)
		if labelTexture != nil {
			_, _, w, h, err := labelTexture.Query()
			if err == nil {
				labelWidth = w
				rect := sdl.Rect{X: margins.Left, Y: y, W: w, H: h}
				if rectVisible(rect, safeAreaHeight) {
					s.renderer.Copy(labelTexture, nil, &rect)
				}
			}
		}

		valueHeight := fontHeight
		if item.Value != "" {
			valueX := margins.Left + labelWidth + 10
			maxValueWidth := contentWidth - labelWidth - 10
			valueHeight = internal.RenderMultilineText(s.renderer, item.Value, font, maxValueWidth, valueX, y, theme.TextColor, constants.TextAlignLeft)
			if valueHeight < fontHeight {
				valueHeight = fontHeight
			}
		}

		y += valueHeight + 10
	}

	return y + 5
}

func (s *detailState) renderDescription(section Section, margins internal.Padding, contentWidth, y, safeAreaHeight int32) int32 {
	if section.Description == "" {
		return y
	}

	theme := internal.GetTheme()
	height := internal.RenderMultilineText(s.renderer, section.Description, internal.Fonts.SmallFont, contentWidth, margins.Left, y, theme.TextColor, constants.TextAlignLeft)
	return y + height + 15
}

func (s *detailState) renderImage(index int, section Section, margins internal.Padding, y, safeAreaHeight int32) int32 {
	texture, ok := s.imageTextures[index]
	if !ok || texture == nil {
		return y
	}

	_, _, w, h, err := texture.Query()
	if err != nil {
		return y
	}

	maxWidth := section.MaxWidth
	if maxWidth == 0 {
		maxWidth = s.window.GetWidth() / 2
	}
	maxHeight := section.MaxHeight
	if maxHeight == 0 {
		maxHeight = safeAreaHeight / 2
	}

	if w > maxWidth {
		h = h * maxWidth / w
		w = maxWidth
	}
	if h > maxHeight {
		w = w * maxHeight / h
		h = maxHeight
	}

	rect := sdl.Rect{X: (s.window.GetWidth() - w) / 2, Y: y, W: w, H: h}
	if rectVisible(rect, safeAreaHeight) {
		s.renderer.Copy(texture, nil, &rect)
	}

	return y + h + 15
}

func (s *detailState) renderScrollbar(safeAreaHeight int32) {
	if !s.options.ShowScrollbar || s.maxScrollY <= 0 {
		return
	}

	width := int32(8)
	trackY := int32(5)
	trackHeight := safeAreaHeight - 10

	totalContentHeight := s.maxScrollY + safeAreaHeight
	handleHeight := int32(float64(trackHeight) * float64(safeAreaHeight) / float64(totalContentHeight))
	handleHeight = internal.Max32(handleHeight, 20)

	var handleY int32
	switch {
	case s.scrollY <= 0:
		handleY = 0
	case s.scrollY >= s.maxScrollY:
		handleY = trackHeight - handleHeight
	default:
		handleY = int32(float64(s.scrollY) * float64(trackHeight-handleHeight) / float64(s.maxScrollY))
	}

	x := s.window.GetWidth() - width - 6
	internal.DrawSmoothScrollbar(s.renderer, x, trackY, width, trackHeight, sdl.Color{R: 50, G: 50, B: 50, A: 255})
	internal.DrawSmoothScrollbar(s.renderer, x, trackY+handleY, width, handleHeight, sdl.Color{R: 120, G: 120, B: 120, A: 255})
}

func (s *detailState) cachedSectionText(text string, font *ttf.Font, color sdl.Color) *sdl.Texture {
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

func rectVisible(rect sdl.Rect, viewportHeight int32) bool {
	return rect.Y+rect.H >= 0 && rect.Y <= viewportHeight
}
