// Package assets supplies the Texture and SVG capabilities consumed by
// the scene tree. The layout engine only ever sees natural width,
// height and aspect ratio; pixel data and vector contents are for the
// renderer.
package assets

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"sync"
)

// Texture holds RGBA pixel data with a natural size. It participates in
// layout like a normal element: with no styled size it uses its natural
// dimensions, with one dimension set the aspect ratio is preserved, and
// with both set it stretches to fit.
type Texture struct {
	pix    *image.RGBA
	width  int
	height int
}

// FromRGBA creates a texture from raw RGBA pixels, 4 bytes per pixel in
// row-major order. A size mismatch is a programming error and panics.
func FromRGBA(data []byte, width, height int) *Texture {
	if len(data) != width*height*4 {
		panic(fmt.Sprintf("assets: texture data size mismatch: expected %d bytes for %dx%d RGBA, got %d",
			width*height*4, width, height, len(data)))
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	copy(img.Pix, data)
	return &Texture{pix: img, width: width, height: height}
}

// FromImage creates a texture from a decoded image.
func FromImage(img image.Image) *Texture {
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return &Texture{pix: rgba, width: b.Dx(), height: b.Dy()}
}

// textureCache caches decoded textures by path.
var textureCache = struct {
	mu    sync.RWMutex
	cache map[string]*Texture
}{cache: make(map[string]*Texture)}

// Load reads and decodes an image file (png, jpeg or gif), caching the
// result by path.
func Load(path string) (*Texture, error) {
	textureCache.mu.RLock()
	if tex, ok := textureCache.cache[path]; ok {
		textureCache.mu.RUnlock()
		return tex, nil
	}
	textureCache.mu.RUnlock()

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}
	tex := FromImage(img)

	textureCache.mu.Lock()
	textureCache.cache[path] = tex
	textureCache.mu.Unlock()
	return tex, nil
}

// Width returns the natural width in pixels.
func (t *Texture) Width() float64 {
	return float64(t.width)
}

// Height returns the natural height in pixels.
func (t *Texture) Height() float64 {
	return float64(t.height)
}

// AspectRatio returns width / height.
func (t *Texture) AspectRatio() float64 {
	if t.height == 0 {
		return 0
	}
	return float64(t.width) / float64(t.height)
}

// Image returns the backing pixels for the renderer.
func (t *Texture) Image() *image.RGBA {
	return t.pix
}
