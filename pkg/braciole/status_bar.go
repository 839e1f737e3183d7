package braciole

import (
	"strings"
	"time"

	"github.com/syncly-app/braciole/pkg/braciole/internal"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// StatusBarOptions configures the status pill drawn in the top-right corner.
type StatusBarOptions struct {
	Enabled     bool
	Text        string // Status text, e.g. "3 buckets"
	Icon        string // Optional icon-font glyph prepended to the text (see constants icons)
	IconSVGPath string // Optional SVG icon rendered inside the pill, before the text
	ShowClock   bool   // Append the current time (HH:MM)
}

// DefaultStatusBarOptions returns a disabled status bar.
func DefaultStatusBarOptions() StatusBarOptions {
	return StatusBarOptions{}
}

var statusIconCache = internal.NewTextureCache()

func (opts StatusBarOptions) composedText() string {
	parts := make([]string, 0, 3)
	if opts.Icon != "" {
		parts = append(parts, opts.Icon)
	}
	if opts.Text != "" {
		parts = append(parts, opts.Text)
	}
	if opts.ShowClock {
		parts = append(parts, time.Now().Format("15:04"))
	}
	return strings.Join(parts, "  ")
}

// calculateStatusBarWidth returns the horizontal space the status bar pill
// occupies, so titles can clip around it. Zero when disabled.
func calculateStatusBarWidth(font *ttf.Font, opts StatusBarOptions) int32 {
	if !opts.Enabled {
		return 0
	}

	text := opts.composedText()
	if text == "" && opts.IconSVGPath == "" {
		return 0
	}

	scale := internal.GetScaleFactor()
	padding := int32(float32(14) * scale)

	width := 2 * padding
	if text != "" {
		if w, _, err := font.SizeUTF8(text); err == nil {
			width += int32(w)
		}
	}
	if opts.IconSVGPath != "" {
		// Square icon sized to the font height plus a small gap
		width += int32(font.Height()) + padding/2
	}
	return width
}

func renderStatusBar(renderer *sdl.Renderer, font *ttf.Font, opts StatusBarOptions, margins internal.Padding) {
	if !opts.Enabled {
		return
	}

	text := opts.composedText()
	if text == "" && opts.IconSVGPath == "" {
		return
	}

	window := internal.GetWindow()
	theme := internal.GetTheme()
	scale := internal.GetScaleFactor()

	padding := int32(float32(14) * scale)
	paddingY := int32(float32(6) * scale)
	fontHeight := int32(font.Height())
	iconSize := fontHeight

	pillWidth := calculateStatusBarWidth(font, opts)
	pillHeight := fontHeight + 2*paddingY

	x := window.GetWidth() - margins.Right - pillWidth
	y := margins.Top

	internal.DrawRoundedRect(renderer, &sdl.Rect{X: x, Y: y, W: pillWidth, H: pillHeight}, pillHeight/2, theme.AccentColor)

	contentX := x + padding

	if opts.IconSVGPath != "" {
		icon := statusIconCache.Get(opts.IconSVGPath)
		if icon == nil {
			loaded, err := internal.LoadSVGTexture(renderer, opts.IconSVGPath, iconSize, iconSize)
			if err != nil {
				internal.GetInternalLogger().Warn("Failed to load status bar icon", "path", opts.IconSVGPath, "error", err)
			} else {
				statusIconCache.Set(opts.IconSVGPath, loaded)
				icon = loaded
			}
		}
		if icon != nil {
			renderer.Copy(icon, nil, &sdl.Rect{X: contentX, Y: y + paddingY, W: iconSize, H: iconSize})
		}
		contentX += iconSize + padding/2
	}

	if text != "" {
		surface, err := font.RenderUTF8Blended(text, theme.ButtonLabelColor)
		if err != nil {
			return
		}
		defer surface.Free()

		texture, err := renderer.CreateTextureFromSurface(surface)
		if err != nil {
			return
		}
		defer texture.Destroy()

		renderer.Copy(texture, nil, &sdl.Rect{X: contentX, Y: y + paddingY, W: surface.W, H: surface.H})
	}
}
