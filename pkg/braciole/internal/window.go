package internal

import (
	"os"
	"strconv"
	"sync"

	"github.com/syncly-app/braciole/pkg/braciole/constants"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

// Window wraps SDL window and renderer with additional state for the UI framework.
type Window struct {
	Window            *sdl.Window
	Renderer          *sdl.Renderer
	Title             string
	Background        *sdl.Texture
	DisplayBackground bool
	PowerButtonWG     sync.WaitGroup
	powerButtonActive bool
	hasVSync          bool
	lastPresentTime   uint64
}

func initWindow(title string, displayBackground bool, winOpts WindowOptions) *Window {
	displayIndex := 0
	displayMode, err := sdl.GetCurrentDisplayMode(displayIndex)

	if err != nil {
		GetInternalLogger().Error("Failed to get display mode", "error", err)
	}

	return initWindowWithSize(title, displayMode.W, displayMode.H, displayBackground, winOpts)
}

func devWindowDimension(envVar string, fallback int32) int32 {
	v := os.Getenv(envVar)
	if v == "" {
		return fallback
	}

	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		GetInternalLogger().Warn("Invalid window dimension; using default", "var", envVar, "value", v, "error", err)
		return fallback
	}
	return int32(n)
}

func initWindowWithSize(title string, width, height int32, displayBackground bool, winOpts WindowOptions) *Window {
	x, y := int32(0), int32(0)

	if constants.IsDevMode() {
		winOpts.Borderless = false

		x, y = int32(50), int32(50)
		width = devWindowDimension(constants.WindowWidthEnvVar, 1024)
		height = devWindowDimension(constants.WindowHeightEnvVar, 768)
	}

	windowFlags := winOpts.ToSDLFlags()

	GetInternalLogger().Debug("Initializing SDL window", "width", width, "height", height)

	window, err := sdl.CreateWindow(title, x, y, width, height, windowFlags)
	if err != nil {
		panic(err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC|sdl.RENDERER_TARGETTEXTURE)
	if err != nil {
		GetInternalLogger().Error("Failed to create renderer", "error", err)
		os.Exit(1)
	}

	renderer.SetLogicalSize(width, height)

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	win := &Window{
		Window:            window,
		Renderer:          renderer,
		Title:             title,
		DisplayBackground: displayBackground,
		hasVSync:          vsync,
	}

	win.loadBackground()

	return win
}

func (window *Window) initPowerButtonHandling(pbc PowerButtonConfig) {
	window.PowerButtonWG.Add(1)
	window.powerButtonActive = true

	go PowerButtonHandler(&window.PowerButtonWG, pbc)
}

func (window *Window) loadBackground() {
	img.Init(img.INIT_PNG)

	path := GetTheme().BackgroundImagePath
	if override := os.Getenv(constants.BackgroundPathEnvVar); override != "" {
		path = override
	}
	if path == "" {
		window.Background = nil
		return
	}

	bgTexture, err := img.LoadTexture(window.Renderer, path)
	if err != nil {
		GetInternalLogger().Warn("Failed to load background image", "path", path, "error", err)
		window.Background = nil
		return
	}
	window.Background = bgTexture
}

func (window *Window) closeWindow() {
	if window.powerButtonActive {
		window.PowerButtonWG.Done()
	}

	if window.Background != nil {
		window.Background.Destroy()
	}
	window.Renderer.Destroy()
	window.Window.Destroy()

	img.Quit()
}

func GetWindow() *Window {
	return window
}

func (window *Window) GetWidth() int32 {
	w, _ := window.Window.GetSize()
	return w
}

func (window *Window) GetHeight() int32 {
	_, h := window.Window.GetSize()
	return h
}

func (window *Window) RenderBackground() {
	if window.Background != nil {
		window.Renderer.Copy(window.Background, nil, &sdl.Rect{X: 0, Y: 0, W: window.GetWidth(), H: window.GetHeight()})
	}
}

// Present swaps the render buffer and enforces ~60fps frame timing
// when VSync is not available. Use this instead of renderer.Present().
func (w *Window) Present() {
	w.Renderer.Present()
	if !w.hasVSync {
		now := sdl.GetTicks64()
		if elapsed := now - w.lastPresentTime; elapsed < 16 {
			sdl.Delay(uint32(16 - elapsed))
		}
		w.lastPresentTime = sdl.GetTicks64()
	}
}

// ResetBackground reloads the background texture after a theme change.
func ResetBackground() {
	window.loadBackground()
}
