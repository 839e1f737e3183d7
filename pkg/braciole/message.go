package braciole

import (
	"time"

	"github.com/syncly-app/braciole/pkg/braciole/constants"
	"github.com/syncly-app/braciole/pkg/braciole/internal"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// SelectionMessageSettings configures the selection message component.
type SelectionMessageSettings struct {
	ConfirmButton     constants.VirtualButton // Default: VirtualButtonA
	BackButton        constants.VirtualButton // Default: VirtualButtonB
	DisableBackButton bool
	InitialSelection  int
}

// SelectionOption is one of the horizontally arranged choices.
type SelectionOption struct {
	DisplayName string
	Value       interface{}
}

// SelectionMessageResult is returned when the user confirms a choice.
type SelectionMessageResult struct {
	SelectedIndex int
	SelectedValue interface{}
}

type messageController struct {
	message       string
	options       []SelectionOption
	selectedIndex int
	confirmButton constants.VirtualButton
	backButton    constants.VirtualButton
	disableBack   bool
	footerItems   []FooterHelpItem
	inputDelay    time.Duration
	lastInputTime time.Time
	optionRects   []sdl.Rect
	confirmed     bool
	cancelled     bool
}

// SelectionMessage displays a message with horizontally selectable options.
// Navigate with left/right or tap an option; confirm with the confirm button.
// Tapping the already highlighted option confirms it.
// Returns ErrCancelled if the user backs out.
func SelectionMessage(message string, options []SelectionOption, footerHelpItems []FooterHelpItem, settings SelectionMessageSettings) (*SelectionMessageResult, error) {
	if len(options) == 0 {
		return nil, ErrCancelled
	}

	window := internal.GetWindow()
	renderer := window.Renderer

	if footerHelpItems == nil {
		footerHelpItems = []FooterHelpItem{
			{ButtonName: "B", HelpText: internal.Localize(internal.MsgFooterBack)},
			{ButtonName: "A", HelpText: internal.Localize(internal.MsgFooterConfirm)},
		}
	}

	c := &messageController{
		message:       message,
		options:       options,
		selectedIndex: settings.InitialSelection,
		confirmButton: settings.ConfirmButton,
		backButton:    settings.BackButton,
		disableBack:   settings.DisableBackButton,
		footerItems:   footerHelpItems,
		inputDelay:    constants.DefaultInputDelay,
		lastInputTime: time.Now(),
	}

	if c.confirmButton == constants.VirtualButtonUnassigned {
		c.confirmButton = constants.VirtualButtonA
	}
	if c.backButton == constants.VirtualButtonUnassigned {
		c.backButton = constants.VirtualButtonB
	}
	if c.selectedIndex < 0 || c.selectedIndex >= len(options) {
		c.selectedIndex = 0
	}

	for !c.confirmed && !c.cancelled {
		c.handleEvents()
		c.render(renderer, window)
	}

	if c.cancelled {
		return nil, ErrCancelled
	}

	return &SelectionMessageResult{
		SelectedIndex: c.selectedIndex,
		SelectedValue: c.options[c.selectedIndex].Value,
	}, nil
}

func (c *messageController) handleEvents() {
	processor := internal.GetInputProcessor()

	event := sdl.WaitEventTimeout(16)
	if event == nil {
		return
	}

	switch e := event.(type) {
	case *sdl.QuitEvent:
		c.cancelled = true

	case *sdl.MouseButtonEvent:
		if e.Type == sdl.MOUSEBUTTONDOWN && e.Button == sdl.BUTTON_LEFT {
			c.handleTap(e.X, e.Y)
		}

	case *sdl.KeyboardEvent, *sdl.ControllerButtonEvent, *sdl.ControllerAxisEvent,
		*sdl.ControllerDeviceEvent, *sdl.JoyHatEvent:
		inputEvent := processor.ProcessSDLEvent(event)
		if inputEvent == nil || !inputEvent.Pressed {
			return
		}

		if time.Since(c.lastInputTime) < c.inputDelay {
			return
		}
		c.lastInputTime = time.Now()

		switch inputEvent.Button {
		case constants.VirtualButtonLeft:
			c.selectedIndex--
			if c.selectedIndex < 0 {
				c.selectedIndex = len(c.options) - 1
			}
		case constants.VirtualButtonRight:
			c.selectedIndex++
			if c.selectedIndex >= len(c.options) {
				c.selectedIndex = 0
			}
		case c.confirmButton, constants.VirtualButtonStart:
			c.confirmed = true
		case c.backButton:
			if !c.disableBack {
				c.cancelled = true
			}
		}
	}
}

// handleTap highlights the tapped option; tapping the highlighted option
// confirms it.
func (c *messageController) handleTap(x, y int32) {
	for i, rect := range c.optionRects {
		point := sdl.Point{X: x, Y: y}
		if point.InRect(&rect) {
			if i == c.selectedIndex {
				c.confirmed = true
			} else {
				c.selectedIndex = i
			}
			return
		}
	}
}

func (c *messageController) render(renderer *sdl.Renderer, window *internal.Window) {
	theme := internal.GetTheme()

	renderer.SetDrawColor(theme.BackgroundColor.R, theme.BackgroundColor.G, theme.BackgroundColor.B, theme.BackgroundColor.A)
	renderer.Clear()
	window.RenderBackground()

	windowWidth := window.GetWidth()
	windowHeight := window.GetHeight()

	messageFont := internal.Fonts.SmallFont
	optionFont := internal.Fonts.MediumFont

	maxMessageWidth := internal.Min32(int32(float64(windowWidth)*0.75), 800)

	fontHeight := int32(messageFont.Height())
	lineSpacing := fontHeight / 5
	lineCount := int32(len(internal.WrapText(c.message, messageFont, maxMessageWidth)))
	messageHeight := lineCount*(fontHeight+lineSpacing) - lineSpacing
	if messageHeight < 0 {
		messageHeight = 0
	}

	optionHeight := int32(optionFont.Height())
	spacing := int32(30)
	startY := (windowHeight - messageHeight - spacing - optionHeight) / 2

	centerX := windowWidth / 2
	internal.RenderMultilineText(renderer, c.message, messageFont, maxMessageWidth, centerX, startY, theme.TextColor, constants.TextAlignCenter)

	c.renderOptions(renderer, centerX, startY+messageHeight+spacing, optionFont)

	renderFooter(renderer, internal.Fonts.SmallFont, c.footerItems, 20, true, true)

	window.Present()
}

func (c *messageController) renderOptions(renderer *sdl.Renderer, centerX, y int32, font *ttf.Font) {
	theme := internal.GetTheme()

	leftArrow := "<  "
	rightArrow := "  >"
	separator := "  |  "

	leftArrowWidth := textWidth(font, leftArrow)
	rightArrowWidth := textWidth(font, rightArrow)
	separatorWidth := textWidth(font, separator)

	optionWidths := make([]int32, len(c.options))
	totalOptionsWidth := int32(0)
	for i, opt := range c.options {
		optionWidths[i] = textWidth(font, opt.DisplayName)
		totalOptionsWidth += optionWidths[i]
		if i < len(c.options)-1 {
			totalOptionsWidth += separatorWidth
		}
	}

	totalWidth := leftArrowWidth + totalOptionsWidth + rightArrowWidth
	x := centerX - totalWidth/2

	fontHeight := int32(font.Height())
	c.optionRects = c.optionRects[:0]

	renderMessageText(renderer, font, leftArrow, x, y, theme.HintColor)
	x += leftArrowWidth

	for i, opt := range c.options {
		color := theme.HintColor
		if i == c.selectedIndex {
			color = theme.TextColor
		}
		renderMessageText(renderer, font, opt.DisplayName, x, y, color)
		c.optionRects = append(c.optionRects, sdl.Rect{X: x, Y: y, W: optionWidths[i], H: fontHeight})
		x += optionWidths[i]

		if i < len(c.options)-1 {
			renderMessageText(renderer, font, separator, x, y, theme.HintColor)
			x += separatorWidth
		}
	}

	renderMessageText(renderer, font, rightArrow, x, y, theme.HintColor)
}

func textWidth(font *ttf.Font, text string) int32 {
	width, _, err := font.SizeUTF8(text)
	if err != nil {
		return 0
	}
	return int32(width)
}

func renderMessageText(renderer *sdl.Renderer, font *ttf.Font, text string, x, y int32, color sdl.Color) {
	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return
	}
	defer texture.Destroy()

	renderer.Copy(texture, nil, &sdl.Rect{X: x, Y: y, W: surface.W, H: surface.H})
}
