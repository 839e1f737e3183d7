package internal

import (
	"os"

	"github.com/syncly-app/braciole/pkg/braciole/constants"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

var window *Window

func Init(title string, showBackground bool, winOpts WindowOptions, pbc PowerButtonConfig) {
	if err := sdl.Init(sdl.INIT_VIDEO |
		img.INIT_PNG | img.INIT_JPG | img.INIT_WEBP |
		sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		GetInternalLogger().Error("SDL init failed", "error", err)
		os.Exit(1)
	}

	if err := ttf.Init(); err != nil {
		GetInternalLogger().Error("TTF init failed", "error", err)
		os.Exit(1)
	}

	InitInputProcessor()

	// Apply default window options if none specified
	if winOpts.IsZero() {
		winOpts = WindowOptions{Resizable: true}
	}

	window = initWindow(title, showBackground, winOpts)

	initFonts(DefaultFontSizes)

	if pbc.DevicePath != "" && !constants.IsDevMode() {
		window.initPowerButtonHandling(pbc)
	}
}

func SDLCleanup() {
	window.closeWindow()
	CloseAllControllers()
	closeFonts()
	ttf.Quit()
	img.Quit()
	sdl.Quit()
	CloseLogger()
}
