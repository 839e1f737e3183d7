package internal

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/sdl"
)

// LoadSVGTexture rasterizes an SVG file into a texture, scaled to fit within
// maxWidth x maxHeight while preserving the aspect ratio.
func LoadSVGTexture(renderer *sdl.Renderer, path string, maxWidth, maxHeight int32) (*sdl.Texture, error) {
	icon, err := oksvg.ReadIcon(path, oksvg.WarnErrorMode)
	if err != nil {
		return nil, fmt.Errorf("read svg %s: %w", path, err)
	}

	if icon.ViewBox.W <= 0 || icon.ViewBox.H <= 0 {
		return nil, fmt.Errorf("svg %s has an empty viewbox", path)
	}

	scale := float64(maxWidth) / icon.ViewBox.W
	if s := float64(maxHeight) / icon.ViewBox.H; s < scale {
		scale = s
	}

	width := int(icon.ViewBox.W * scale)
	height := int(icon.ViewBox.H * scale)
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, rgba, rgba.Bounds())
	dasher := rasterx.NewDasher(width, height, scanner)

	icon.SetTarget(0, 0, float64(width), float64(height))
	icon.Draw(dasher, 1.0)

	// RGBA pixel memory order matches ABGR8888 on little-endian targets
	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&rgba.Pix[0]),
		int32(width), int32(height),
		32, int32(width*4),
		uint32(sdl.PIXELFORMAT_ABGR8888),
	)
	if err != nil {
		return nil, fmt.Errorf("create surface for %s: %w", path, err)
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, fmt.Errorf("create texture for %s: %w", path, err)
	}
	return texture, nil
}
