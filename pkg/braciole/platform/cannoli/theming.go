// Package cannoli provides theming support for the Cannoli custom firmware.
// Cannoli is a community-developed CFW for retro handheld gaming devices.
package cannoli

import (
	"github.com/syncly-app/braciole/pkg/braciole/internal"
)

// ThemeFilePath is where Cannoli installs keep optional theme overrides.
const ThemeFilePath = "/mnt/SDCARD/System/theme.toml"

// InitCannoliTheme creates a theme with Cannoli's default colors and the
// specified font, applying the on-card TOML override file when present.
func InitCannoliTheme(fontPath string) internal.Theme {
	theme := internal.Theme{
		HighlightColor:       internal.HexToColor(0xFFFFFF),
		AccentColor:          internal.HexToColor(0x008080),
		ButtonLabelColor:     internal.HexToColor(0x000000),
		HintColor:            internal.HexToColor(0x000000),
		TextColor:            internal.HexToColor(0xFFFFFF),
		HighlightedTextColor: internal.HexToColor(0x000000),
		BackgroundColor:      internal.HexToColor(0xFFFFFF),
		FontPath:             fontPath,
	}

	if override, err := internal.LoadThemeFile(ThemeFilePath); err == nil {
		theme = override.Apply(theme)
	}

	return theme
}
