// Package braciole provides a UI framework for building graphical
// applications on embedded Linux handhelds, particularly devices running
// custom firmware like NextUI or Cannoli. It was built as the component kit
// for the Syncly storage client.
//
// The package handles SDL initialization, input processing, theming, and
// localization, and provides blocking UI components: selectable lists,
// settings lists, detail views, and dialogs.
package braciole

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/syncly-app/braciole/pkg/braciole/constants"
	"github.com/syncly-app/braciole/pkg/braciole/internal"
	"github.com/syncly-app/braciole/pkg/braciole/platform/cannoli"
	"github.com/syncly-app/braciole/pkg/braciole/platform/nextui"
)

// Options configures the braciole UI framework initialization.
type Options struct {
	WindowTitle          string                 // Window title displayed in windowed mode
	ShowBackground       bool                   // Whether to render the theme background
	WindowOptions        internal.WindowOptions // SDL window flags (borderless, resizable, etc.)
	PrimaryThemeColorHex uint32                 // Custom accent color (ignored on NextUI which uses system theme)
	IsCannoli            bool                   // Enable Cannoli CFW theming
	IsNextUI             bool                   // Enable NextUI CFW theming and power button handling
	ControllerConfigFile string                 // Path to custom controller mapping file (JSON)
	TranslationFiles     []string               // Paths to TOML message files for extra languages
	LogPath              string                 // Full path for log file including filename (creates parent directories)
	FlipFaceButtons      bool                   // Use direct face button mapping (A=A, B=B) instead of Nintendo-style swap
}

// Init initializes the SDL subsystems, theming, localization, and input
// handling. Must be called before any other braciole functions.
func Init(options Options) {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	if os.Getenv(constants.DebugEnvVar) != "" {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	// Set face button flip preference before input mapping is loaded
	internal.SetFlipFaceButtons(options.FlipFaceButtons)

	if options.ControllerConfigFile != "" {
		data, err := os.ReadFile(options.ControllerConfigFile)
		if err != nil {
			internal.GetInternalLogger().Error("Failed to read controller config", "path", options.ControllerConfigFile, "error", err)
		} else {
			internal.SetInputMappingBytes(data)
		}
	}

	for _, path := range options.TranslationFiles {
		data, err := os.ReadFile(path)
		if err != nil {
			internal.GetInternalLogger().Error("Failed to read translation file", "path", path, "error", err)
			continue
		}
		if err := internal.LoadTranslationBytes(filepath.Base(path), data); err != nil {
			internal.GetInternalLogger().Error("Failed to parse translation file", "path", path, "error", err)
		}
	}

	pbc := internal.PowerButtonConfig{}

	if options.IsNextUI {
		internal.SetTheme(nextui.InitNextUITheme())

		// TG5050 exposes the power button on event2, all others on event1
		powerDevicePath := "/dev/input/event1"
		if strings.Contains(strings.ToUpper(os.Getenv("PLATFORM")), "TG5050") {
			powerDevicePath = "/dev/input/event2"
		}

		pbc = internal.PowerButtonConfig{
			ButtonCode:      116,
			DevicePath:      powerDevicePath,
			ShortPressMax:   2 * time.Second,
			CoolDownTime:    1 * time.Second,
			SuspendScript:   "/mnt/SDCARD/.system/tg5040/bin/suspend",
			ShutdownCommand: "/sbin/poweroff",
		}
	} else {
		internal.SetTheme(cannoli.InitCannoliTheme("/mnt/SDCARD/System/fonts/Cannoli.ttf"))
	}

	if options.PrimaryThemeColorHex != 0 && !options.IsNextUI {
		theme := internal.GetTheme()
		theme.AccentColor = internal.HexToColor(options.PrimaryThemeColorHex)
		internal.SetTheme(theme)
	}

	internal.Init(options.WindowTitle, options.ShowBackground, options.WindowOptions, pbc)
}

// Close releases all SDL resources and shuts down the UI framework.
// Must be called before program exit to prevent resource leaks.
func Close() {
	internal.SDLCleanup()
}

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// SetInputMappingBytes loads a custom input mapping from JSON bytes.
// Use this to override the default controller/keyboard bindings.
func SetInputMappingBytes(data []byte) {
	internal.SetInputMappingBytes(data)
}

// SetFlipFaceButtons enables or disables direct face button mapping.
// When true, uses A=A, B=B, X=X, Y=Y instead of the default Nintendo-style swap.
// Call before Init() to take effect.
func SetFlipFaceButtons(flip bool) {
	internal.SetFlipFaceButtons(flip)
}

// GetWindow returns the underlying SDL window wrapper for advanced use cases.
func GetWindow() *internal.Window {
	return internal.GetWindow()
}

// HideWindow hides the application window.
func HideWindow() {
	internal.GetWindow().Window.Hide()
}

// ShowWindow shows the application window.
func ShowWindow() {
	internal.GetWindow().Window.Show()
}
