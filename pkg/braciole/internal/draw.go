package internal

import (
	"strings"
	"time"

	"github.com/syncly-app/braciole/pkg/braciole/constants"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// Min32 returns the smaller of two int32 values.
func Min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

// Max32 returns the larger of two int32 values.
func Max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

// HexToColor converts a 0xRRGGBB value to an opaque sdl.Color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 255,
	}
}

// DrawRoundedRect fills a rectangle with rounded corners.
// Rendered as horizontal strips so it works on any renderer backend.
func DrawRoundedRect(renderer *sdl.Renderer, rect *sdl.Rect, radius int32, color sdl.Color) {
	if rect.W <= 0 || rect.H <= 0 {
		return
	}

	maxRadius := Min32(rect.W, rect.H) / 2
	if radius > maxRadius {
		radius = maxRadius
	}

	r, g, b, a, _ := renderer.GetDrawColor()
	renderer.SetDrawColor(color.R, color.G, color.B, color.A)

	if radius <= 0 {
		renderer.FillRect(rect)
		renderer.SetDrawColor(r, g, b, a)
		return
	}

	// Center body between the rounded corner bands
	renderer.FillRect(&sdl.Rect{X: rect.X, Y: rect.Y + radius, W: rect.W, H: rect.H - 2*radius})

	for dy := int32(0); dy < radius; dy++ {
		// Horizontal inset of the corner arc at this row
		offset := radius - dy
		inset := radius - isqrt32(radius*radius-offset*offset)

		top := &sdl.Rect{X: rect.X + inset, Y: rect.Y + dy, W: rect.W - 2*inset, H: 1}
		bottom := &sdl.Rect{X: rect.X + inset, Y: rect.Y + rect.H - 1 - dy, W: rect.W - 2*inset, H: 1}
		renderer.FillRect(top)
		renderer.FillRect(bottom)
	}

	renderer.SetDrawColor(r, g, b, a)
}

func isqrt32(v int32) int32 {
	if v <= 0 {
		return 0
	}
	x := v
	for {
		next := (x + v/x) / 2
		if next >= x {
			return x
		}
		x = next
	}
}

// WrapText splits text into lines that fit within maxWidth when rendered
// with the given font. Existing newlines are preserved.
func WrapText(text string, font *ttf.Font, maxWidth int32) []string {
	var lines []string

	for _, raw := range strings.Split(text, "\n") {
		if raw == "" {
			lines = append(lines, "")
			continue
		}

		words := strings.Fields(raw)
		current := ""
		for _, word := range words {
			test := current
			if test != "" {
				test += " "
			}
			test += word

			width, _, _ := font.SizeUTF8(test)
			if int32(width) > maxWidth && current != "" {
				lines = append(lines, current)
				current = word
			} else {
				current = test
			}
		}
		if current != "" {
			lines = append(lines, current)
		}
	}

	return lines
}

// RenderMultilineText word-wraps text to maxWidth and renders it line by line.
// anchorX is the left edge for TextAlignLeft, the center for TextAlignCenter,
// and the right edge for TextAlignRight. Returns the total rendered height.
func RenderMultilineText(renderer *sdl.Renderer, text string, font *ttf.Font, maxWidth int32, anchorX, y int32, color sdl.Color, align constants.TextAlign) int32 {
	if text == "" {
		return 0
	}

	fontHeight := int32(font.Height())
	lineSpacing := fontHeight / 5
	lineY := y

	for _, line := range WrapText(text, font, maxWidth) {
		if line == "" {
			lineY += fontHeight + lineSpacing
			continue
		}

		surface, err := font.RenderUTF8Blended(line, color)
		if err != nil {
			continue
		}
		texture, err := renderer.CreateTextureFromSurface(surface)
		if err != nil {
			surface.Free()
			continue
		}

		var x int32
		switch align {
		case constants.TextAlignLeft:
			x = anchorX
		case constants.TextAlignCenter:
			x = anchorX - surface.W/2
		case constants.TextAlignRight:
			x = anchorX - surface.W
		}

		renderer.Copy(texture, nil, &sdl.Rect{X: x, Y: lineY, W: surface.W, H: surface.H})
		texture.Destroy()
		surface.Free()

		lineY += fontHeight + lineSpacing
	}

	return lineY - y
}

// DrawSmoothScrollbar draws a vertical scrollbar segment with rounded ends.
func DrawSmoothScrollbar(renderer *sdl.Renderer, x, y, width, height int32, color sdl.Color) {
	DrawRoundedRect(renderer, &sdl.Rect{X: x, Y: y, W: width, H: height}, width/2, color)
}

// TextScrollData tracks marquee scrolling for text wider than its container.
type TextScrollData struct {
	NeedsScrolling      bool
	TextWidth           int32
	ContainerWidth      int32
	ScrollOffset        int32
	Direction           int
	LastDirectionChange *time.Time
}

// UpdateTextScroll advances the marquee offset, pausing at each end.
func UpdateTextScroll(data *TextScrollData, now time.Time) {
	const pauseTime = 1500 * time.Millisecond
	if data.LastDirectionChange != nil && now.Sub(*data.LastDirectionChange) < pauseTime {
		return
	}

	const scrollIncrement = int32(2)
	data.ScrollOffset += int32(data.Direction) * scrollIncrement

	maxOffset := data.TextWidth - data.ContainerWidth
	if data.ScrollOffset <= 0 {
		data.ScrollOffset = 0
		if data.Direction < 0 {
			data.Direction = 1
			changed := now
			data.LastDirectionChange = &changed
		}
	} else if data.ScrollOffset >= maxOffset {
		data.ScrollOffset = maxOffset
		if data.Direction > 0 {
			data.Direction = -1
			changed := now
			data.LastDirectionChange = &changed
		}
	}
}
