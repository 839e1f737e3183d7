package internal

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/veandco/go-sdl2/sdl"
)

// Theme defines the visual appearance of the UI framework.
// Colors are typically loaded from CFW theme files (NextUI, Cannoli).
type Theme struct {
	HighlightColor       sdl.Color // Selected item background, footer button background
	AccentColor          sdl.Color // Pill backgrounds, status bar pill
	ButtonLabelColor     sdl.Color // Button label text (inside pills)
	TextColor            sdl.Color // Default text color
	HighlightedTextColor sdl.Color // Text on highlighted items
	HintColor            sdl.Color // Help text, status bar text
	BackgroundColor      sdl.Color // Screen background color
	FontPath             string    // Path to the primary UI font
	BackgroundImagePath  string    // Path to the background image
}

var currentTheme Theme

// SetTheme sets the active theme for the framework.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	return currentTheme
}

// ThemeFile is the on-disk TOML representation of a theme override.
// All fields are optional; zero values leave the base theme untouched.
type ThemeFile struct {
	Colors struct {
		Highlight       uint32 `toml:"highlight"`
		Accent          uint32 `toml:"accent"`
		ButtonLabel     uint32 `toml:"button_label"`
		Text            uint32 `toml:"text"`
		HighlightedText uint32 `toml:"highlighted_text"`
		Hint            uint32 `toml:"hint"`
		Background      uint32 `toml:"background"`
	} `toml:"colors"`
	FontPath            string `toml:"font"`
	BackgroundImagePath string `toml:"background_image"`
}

// LoadThemeFile reads a TOML theme override from disk.
func LoadThemeFile(path string) (*ThemeFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var tf ThemeFile
	if err := toml.Unmarshal(data, &tf); err != nil {
		return nil, err
	}
	return &tf, nil
}

// Apply overlays the non-zero fields of the theme file onto a base theme.
func (tf *ThemeFile) Apply(base Theme) Theme {
	if tf.Colors.Highlight != 0 {
		base.HighlightColor = HexToColor(tf.Colors.Highlight)
	}
	if tf.Colors.Accent != 0 {
		base.AccentColor = HexToColor(tf.Colors.Accent)
	}
	if tf.Colors.ButtonLabel != 0 {
		base.ButtonLabelColor = HexToColor(tf.Colors.ButtonLabel)
	}
	if tf.Colors.Text != 0 {
		base.TextColor = HexToColor(tf.Colors.Text)
	}
	if tf.Colors.HighlightedText != 0 {
		base.HighlightedTextColor = HexToColor(tf.Colors.HighlightedText)
	}
	if tf.Colors.Hint != 0 {
		base.HintColor = HexToColor(tf.Colors.Hint)
	}
	if tf.Colors.Background != 0 {
		base.BackgroundColor = HexToColor(tf.Colors.Background)
	}
	if tf.FontPath != "" {
		base.FontPath = tf.FontPath
	}
	if tf.BackgroundImagePath != "" {
		base.BackgroundImagePath = tf.BackgroundImagePath
	}
	return base
}
