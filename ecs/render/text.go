package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const textCacheSize = 256

// TextCache rasterizes strings into images. Score labels redraw every frame
// but cycle through a small set of strings, so rendered images are kept in
// an LRU.
type TextCache struct {
	face  font.Face
	cache *lru.Cache[string, *ebiten.Image]
}

// NewTextCache creates a cache over the built-in bitmap face.
func NewTextCache() *TextCache {
	cache, err := lru.New[string, *ebiten.Image](textCacheSize)
	if err != nil {
		panic(fmt.Sprintf("render: text cache: %v", err))
	}
	return &TextCache{face: basicfont.Face7x13, cache: cache}
}

// Render returns an image of the text in the given color.
func (t *TextCache) Render(text string, col color.Color) *ebiten.Image {
	if text == "" {
		return nil
	}
	key := cacheKey(text, col)
	if img, ok := t.cache.Get(key); ok {
		return img
	}

	bounds, _ := font.BoundString(t.face, text)
	w := (bounds.Max.X - bounds.Min.X).Ceil()
	h := (bounds.Max.Y - bounds.Min.Y).Ceil()
	if w <= 0 || h <= 0 {
		return nil
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	drawer := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: t.face,
		Dot:  fixed.Point26_6{X: -bounds.Min.X, Y: -bounds.Min.Y},
	}
	drawer.DrawString(text)

	img := ebiten.NewImageFromImage(dst)
	t.cache.Add(key, img)
	return img
}

func cacheKey(text string, col color.Color) string {
	r, g, b, a := col.RGBA()
	return fmt.Sprintf("%s|%04x%04x%04x%04x", text, r, g, b, a)
}
