package braciole

import (
	"github.com/syncly-app/braciole/pkg/braciole/internal"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// FooterHelpItem is a button hint shown in the footer, e.g. {"A", "Select"}.
type FooterHelpItem struct {
	ButtonName string
	HelpText   string
}

// DefaultFooterHelpItems returns the localized standard back/select hints.
func DefaultFooterHelpItems() []FooterHelpItem {
	return []FooterHelpItem{
		{ButtonName: "B", HelpText: internal.Localize(internal.MsgFooterBack)},
		{ButtonName: "A", HelpText: internal.Localize(internal.MsgFooterSelect)},
	}
}

// renderFooter draws button help pills along the bottom edge of the window.
// When alignRight is true the pills hug the right margin, which is where all
// stock components place them.
func renderFooter(renderer *sdl.Renderer, font *ttf.Font, helpItems []FooterHelpItem, bottomMargin int32, alignRight bool, usePills bool) {
	if len(helpItems) == 0 {
		return
	}

	window := internal.GetWindow()
	theme := internal.GetTheme()
	scale := internal.GetScaleFactor()

	fontHeight := int32(font.Height())
	pillPaddingX := int32(float32(14) * scale)
	pillPaddingY := int32(float32(6) * scale)
	itemGap := int32(float32(24) * scale)
	labelGap := int32(float32(10) * scale)

	pillHeight := fontHeight + 2*pillPaddingY
	y := window.GetHeight() - bottomMargin - pillHeight

	type measured struct {
		item        FooterHelpItem
		buttonWidth int32
		helpWidth   int32
	}

	items := make([]measured, 0, len(helpItems))
	totalWidth := int32(0)
	for _, item := range helpItems {
		bw, _, err := font.SizeUTF8(item.ButtonName)
		if err != nil {
			continue
		}
		hw := int32(0)
		if item.HelpText != "" {
			w, _, err := font.SizeUTF8(item.HelpText)
			if err == nil {
				hw = int32(w)
			}
		}
		m := measured{item: item, buttonWidth: int32(bw), helpWidth: hw}
		items = append(items, m)

		totalWidth += m.buttonWidth + 2*pillPaddingX
		if hw > 0 {
			totalWidth += labelGap + hw
		}
	}
	if len(items) > 1 {
		totalWidth += itemGap * int32(len(items)-1)
	}

	margin := int32(float32(20) * scale)
	x := margin
	if alignRight {
		x = window.GetWidth() - margin - totalWidth
	}

	for _, m := range items {
		pillWidth := m.buttonWidth + 2*pillPaddingX

		if usePills {
			pillRect := &sdl.Rect{X: x, Y: y, W: pillWidth, H: pillHeight}
			internal.DrawRoundedRect(renderer, pillRect, pillHeight/2, theme.AccentColor)
		}

		buttonColor := theme.ButtonLabelColor
		if !usePills {
			buttonColor = theme.TextColor
		}
		renderFooterText(renderer, font, m.item.ButtonName, x+pillPaddingX, y+pillPaddingY, buttonColor)
		x += pillWidth

		if m.helpWidth > 0 {
			renderFooterText(renderer, font, m.item.HelpText, x+labelGap, y+pillPaddingY, theme.HintColor)
			x += labelGap + m.helpWidth
		}

		x += itemGap
	}
}

func renderFooterText(renderer *sdl.Renderer, font *ttf.Font, text string, x, y int32, color sdl.Color) {
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
