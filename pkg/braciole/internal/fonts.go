package internal

import (
	"os"

	"github.com/veandco/go-sdl2/ttf"
)

// FontSet holds the loaded UI fonts at their scaled sizes.
type FontSet struct {
	ExtraLargeFont *ttf.Font
	LargeFont      *ttf.Font
	MediumFont     *ttf.Font
	SmallFont      *ttf.Font
	TinyFont       *ttf.Font
}

// Fonts is the active font set, populated during Init.
var Fonts FontSet

// FontSizes defines the unscaled point sizes for each font slot.
type FontSizes struct {
	ExtraLarge int
	Large      int
	Medium     int
	Small      int
	Tiny       int
}

// DefaultFontSizes are tuned for a 1024x768 logical resolution and scale
// with the display.
var DefaultFontSizes = FontSizes{
	ExtraLarge: 40,
	Large:      32,
	Medium:     26,
	Small:      22,
	Tiny:       16,
}

// fallbackFontPaths are tried when the theme font is missing. Desktop dev
// machines rarely have the CFW fonts installed.
var fallbackFontPaths = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
}

// GetScaleFactor returns the UI scale relative to the 768px baseline height.
func GetScaleFactor() float32 {
	if window == nil {
		return 1.0
	}

	scale := float32(window.GetHeight()) / 768.0
	if scale < 0.5 {
		scale = 0.5
	}
	return scale
}

func resolveFontPath() string {
	if path := GetTheme().FontPath; path != "" {
		if _, err := os.Stat(path); err == nil {
			return path
		}
		GetInternalLogger().Warn("Theme font not found, trying fallbacks", "path", path)
	}

	for _, path := range fallbackFontPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func initFonts(sizes FontSizes) {
	path := resolveFontPath()
	if path == "" {
		GetInternalLogger().Error("No usable UI font found")
		os.Exit(1)
	}

	scale := GetScaleFactor()
	open := func(size int) *ttf.Font {
		font, err := ttf.OpenFont(path, int(float32(size)*scale))
		if err != nil {
			GetInternalLogger().Error("Failed to open font", "path", path, "size", size, "error", err)
			os.Exit(1)
		}
		return font
	}

	Fonts = FontSet{
		ExtraLargeFont: open(sizes.ExtraLarge),
		LargeFont:      open(sizes.Large),
		MediumFont:     open(sizes.Medium),
		SmallFont:      open(sizes.Small),
		TinyFont:       open(sizes.Tiny),
	}
}

func closeFonts() {
	for _, font := range []*ttf.Font{
		Fonts.ExtraLargeFont,
		Fonts.LargeFont,
		Fonts.MediumFont,
		Fonts.SmallFont,
		Fonts.TinyFont,
	} {
		if font != nil {
			font.Close()
		}
	}
	Fonts = FontSet{}
}
