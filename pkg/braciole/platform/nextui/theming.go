// Package nextui provides theming support for the NextUI custom firmware.
package nextui

import (
	"os"

	"github.com/syncly-app/braciole/pkg/braciole/internal"
)

// ThemeFileEnvVar overrides the path to the NextUI theme override file.
const ThemeFileEnvVar = "NEXTUI_THEME_FILE"

// DefaultThemeFilePath is where NextUI installs keep theme overrides.
const DefaultThemeFilePath = "/mnt/SDCARD/.userdata/shared/theme.toml"

// InitNextUITheme creates the NextUI dark theme, applying the on-card TOML
// override file when present.
func InitNextUITheme() internal.Theme {
	theme := internal.Theme{
		HighlightColor:       internal.HexToColor(0xFFFFFF),
		AccentColor:          internal.HexToColor(0x9B2257),
		ButtonLabelColor:     internal.HexToColor(0x000000),
		HintColor:            internal.HexToColor(0x9E9E9E),
		TextColor:            internal.HexToColor(0xFFFFFF),
		HighlightedTextColor: internal.HexToColor(0x000000),
		BackgroundColor:      internal.HexToColor(0x000000),
		FontPath:             "/mnt/SDCARD/.system/res/BPreplayBold-unhinted.otf",
		BackgroundImagePath:  "/mnt/SDCARD/bg.png",
	}

	path := os.Getenv(ThemeFileEnvVar)
	if path == "" {
		path = DefaultThemeFilePath
	}
	if override, err := internal.LoadThemeFile(path); err == nil {
		theme = override.Apply(theme)
	}

	return theme
}
