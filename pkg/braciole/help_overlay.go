package braciole

import (
	"github.com/syncly-app/braciole/pkg/braciole/constants"
	"github.com/syncly-app/braciole/pkg/braciole/internal"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// helpOverlay dims the screen and lists control hints. Components that set
// EnableHelp show it on the Menu button.
type helpOverlay struct {
	title        string
	lines        []string
	exitText     string
	scrollOffset int32
}

func newHelpOverlay(title string, lines []string, exitText string) *helpOverlay {
	if title == "" {
		title = internal.Localize(internal.MsgHelpTitle)
	}
	return &helpOverlay{
		title:    title,
		lines:    lines,
		exitText: exitText,
	}
}

func (h *helpOverlay) scroll(direction int) {
	const step = 40
	h.scrollOffset += int32(direction) * step
	if h.scrollOffset < 0 {
		h.scrollOffset = 0
	}
}

func (h *helpOverlay) render(renderer *sdl.Renderer, font *ttf.Font) {
	window := internal.GetWindow()
	theme := internal.GetTheme()

	width := window.GetWidth()
	height := window.GetHeight()

	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)
	renderer.SetDrawColor(0, 0, 0, 220)
	renderer.FillRect(&sdl.Rect{X: 0, Y: 0, W: width, H: height})

	margins := internal.UniformPadding(40)
	contentWidth := width - margins.Left - margins.Right
	y := margins.Top - h.scrollOffset

	y += renderOverlayLine(renderer, h.title, internal.Fonts.MediumFont, margins.Left, y, theme.TextColor)
	y += 20

	for _, line := range h.lines {
		if line == "" {
			y += int32(font.Height())
			continue
		}
		y += internal.RenderMultilineText(renderer, line, font, contentWidth, margins.Left, y, theme.TextColor, constants.TextAlignLeft)
		y += 8
	}

	if h.exitText != "" {
		exitY := height - margins.Bottom - int32(font.Height())
		renderOverlayLine(renderer, h.exitText, font, margins.Left, exitY, theme.HintColor)
	}
}

func renderOverlayLine(renderer *sdl.Renderer, text string, font *ttf.Font, x, y int32, color sdl.Color) int32 {
	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return 0
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return 0
	}
	defer texture.Destroy()

	renderer.Copy(texture, nil, &sdl.Rect{X: x, Y: y, W: surface.W, H: surface.H})
	return surface.H
}
