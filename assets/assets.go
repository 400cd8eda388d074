// Package assets builds every sprite and sound at startup. The game ships
// no binary art: shapes are rasterized in code and effects are synthesized
// square waves, which keeps the repo free of copyrighted arcade assets.
package assets

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"pacman/levels"
	"pacman/maze"
)

// TileSize is the on-screen size of one board tile in pixels.
const TileSize = 8

// SpriteSize is the character sprite frame size in pixels.
const SpriteSize = 16

var (
	colPacman     = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	colWall       = color.RGBA{R: 33, G: 33, B: 222, A: 255}
	colWallFlash  = color.RGBA{R: 222, G: 222, B: 255, A: 255}
	colDoor       = color.RGBA{R: 255, G: 184, B: 222, A: 255}
	colPellet     = color.RGBA{R: 255, G: 183, B: 174, A: 255}
	colFrightBody = color.RGBA{R: 33, G: 33, B: 255, A: 255}
	colFlashBody  = color.RGBA{R: 222, G: 222, B: 255, A: 255}
	colEyeWhite   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colPupil      = color.RGBA{R: 33, G: 33, B: 255, A: 255}
)

// GhostColor returns the body color for a ghost by name index
// (blinky, pinky, inky, clyde).
func GhostColor(index int) color.RGBA {
	switch index {
	case 0:
		return color.RGBA{R: 255, G: 0, B: 0, A: 255}
	case 1:
		return color.RGBA{R: 255, G: 184, B: 255, A: 255}
	case 2:
		return color.RGBA{R: 0, G: 255, B: 255, A: 255}
	default:
		return color.RGBA{R: 255, G: 184, B: 81, A: 255}
	}
}

// PacmanSheet returns a 3-frame strip: closed, open small, open large.
// The base sprite faces left; the render system rotates it per heading.
func PacmanSheet() *ebiten.Image {
	mouths := []float64{0, 0.3, 0.8} // mouth half-angle in radians
	img := image.NewRGBA(image.Rect(0, 0, SpriteSize*len(mouths), SpriteSize))

	for frame, half := range mouths {
		cx := float64(frame*SpriteSize) + SpriteSize/2 - 0.5
		cy := SpriteSize/2 - 0.5
		r := float64(SpriteSize)/2 - 1.5

		for y := 0; y < SpriteSize; y++ {
			for x := frame * SpriteSize; x < (frame+1)*SpriteSize; x++ {
				dx := float64(x) - cx
				dy := float64(y) - cy
				if dx*dx+dy*dy > r*r {
					continue
				}
				// The mouth is a wedge around the leftward axis.
				if half > 0 {
					ang := math.Atan2(dy, dx)
					diff := math.Abs(math.Abs(ang) - math.Pi)
					if diff < half {
						continue
					}
				}
				img.Set(x, y, colPacman)
			}
		}
	}
	return ebiten.NewImageFromImage(img)
}

// GhostSheet returns a 2-frame strip (skirt wiggle) in the given body color.
func GhostSheet(body color.RGBA) *ebiten.Image {
	return ghostSheet(body, true)
}

// FrightenedSheet returns the blue (or white, when flashing) ghost strip.
func FrightenedSheet(flash bool) *ebiten.Image {
	body := colFrightBody
	if flash {
		body = colFlashBody
	}
	return ghostSheet(body, false)
}

func ghostSheet(body color.RGBA, eyes bool) *ebiten.Image {
	img := image.NewRGBA(image.Rect(0, 0, SpriteSize*2, SpriteSize))
	for frame := 0; frame < 2; frame++ {
		drawGhostBody(img, frame*SpriteSize, body, frame == 1)
		if eyes {
			drawGhostEyes(img, frame*SpriteSize)
		} else {
			// Frightened face: two small square eyes.
			fillRect(img, frame*SpriteSize+4, 6, 2, 2, colEyeWhite)
			fillRect(img, frame*SpriteSize+10, 6, 2, 2, colEyeWhite)
		}
	}
	return ebiten.NewImageFromImage(img)
}

// EyesImage is the sprite for an eaten ghost heading home.
func EyesImage() *ebiten.Image {
	img := image.NewRGBA(image.Rect(0, 0, SpriteSize, SpriteSize))
	drawGhostEyes(img, 0)
	return ebiten.NewImageFromImage(img)
}

func drawGhostBody(img *image.RGBA, ox int, body color.RGBA, altSkirt bool) {
	cx := float64(ox) + SpriteSize/2 - 0.5
	cy := float64(SpriteSize)/2 - 0.5
	r := float64(SpriteSize)/2 - 1.5

	// Dome.
	for y := 0; y < SpriteSize/2; y++ {
		for x := ox; x < ox+SpriteSize; x++ {
			dx := float64(x) - cx
			dy := float64(y) - cy
			if dx*dx+dy*dy <= r*r {
				img.Set(x, y, body)
			}
		}
	}
	// Torso.
	fillRect(img, ox+2, SpriteSize/2, SpriteSize-4, SpriteSize/2-3, body)
	// Skirt: alternating teeth, phase-shifted between the two frames.
	for x := 0; x < SpriteSize-4; x++ {
		phase := x / 2
		if altSkirt {
			phase++
		}
		if phase%2 == 0 {
			fillRect(img, ox+2+x, SpriteSize-3, 1, 2, body)
		}
	}
}

func drawGhostEyes(img *image.RGBA, ox int) {
	fillRect(img, ox+3, 4, 4, 5, colEyeWhite)
	fillRect(img, ox+9, 4, 4, 5, colEyeWhite)
	fillRect(img, ox+4, 6, 2, 2, colPupil)
	fillRect(img, ox+10, 6, 2, 2, colPupil)
}

func fillRect(img *image.RGBA, x, y, w, h int, c color.RGBA) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			img.Set(xx, yy, c)
		}
	}
}

// PelletImage returns the small dot sprite.
func PelletImage() *ebiten.Image {
	img := image.NewRGBA(image.Rect(0, 0, TileSize, TileSize))
	fillRect(img, 3, 3, 2, 2, colPellet)
	return ebiten.NewImageFromImage(img)
}

// PowerPelletImage returns the energizer sprite.
func PowerPelletImage() *ebiten.Image {
	img := image.NewRGBA(image.Rect(0, 0, TileSize, TileSize))
	cx, cy := float64(TileSize)/2-0.5, float64(TileSize)/2-0.5
	r := float64(TileSize)/2 - 1
	for y := 0; y < TileSize; y++ {
		for x := 0; x < TileSize; x++ {
			dx, dy := float64(x)-cx, float64(y)-cy
			if dx*dx+dy*dy <= r*r {
				img.Set(x, y, colPellet)
			}
		}
	}
	return ebiten.NewImageFromImage(img)
}

// FruitImage returns a simple colored sprite for a bonus symbol.
func FruitImage(s levels.Symbol) *ebiten.Image {
	var body color.RGBA
	switch s {
	case levels.Cherries:
		body = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	case levels.Strawberry:
		body = color.RGBA{R: 255, G: 64, B: 64, A: 255}
	case levels.Peach:
		body = color.RGBA{R: 255, G: 184, B: 81, A: 255}
	case levels.Apple:
		body = color.RGBA{R: 222, G: 0, B: 0, A: 255}
	case levels.Grapes:
		body = color.RGBA{R: 64, G: 222, B: 64, A: 255}
	case levels.Galaxian:
		body = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	case levels.Bell:
		body = color.RGBA{R: 255, G: 222, B: 64, A: 255}
	default:
		body = color.RGBA{R: 64, G: 222, B: 255, A: 255}
	}

	img := image.NewRGBA(image.Rect(0, 0, SpriteSize, SpriteSize))
	cx, cy := float64(SpriteSize)/2-0.5, float64(SpriteSize)/2+1.5
	r := float64(SpriteSize)/2 - 3
	for y := 0; y < SpriteSize; y++ {
		for x := 0; x < SpriteSize; x++ {
			dx, dy := float64(x)-cx, float64(y)-cy
			if dx*dx+dy*dy <= r*r {
				img.Set(x, y, body)
			}
		}
	}
	// Stem.
	fillRect(img, SpriteSize/2-1, 1, 1, 4, color.RGBA{R: 132, G: 99, B: 33, A: 255})
	return ebiten.NewImageFromImage(img)
}

// LifeIconImage is the small pacman used as a life indicator.
func LifeIconImage() *ebiten.Image {
	sheet := PacmanSheet()
	return sheet.SubImage(image.Rect(SpriteSize, 0, 2*SpriteSize, SpriteSize)).(*ebiten.Image)
}

// BoardImage rasterizes the maze walls and door once.
func BoardImage(m *maze.Map) *ebiten.Image {
	return boardImage(m, colWall)
}

// BoardFlashImage is the white-walled variant shown while a cleared level
// flashes.
func BoardFlashImage(m *maze.Map) *ebiten.Image {
	return boardImage(m, colWallFlash)
}

func boardImage(m *maze.Map, wall color.RGBA) *ebiten.Image {
	img := image.NewRGBA(image.Rect(0, 0, m.Width()*TileSize, m.Height()*TileSize))
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			loc := maze.Loc(float64(x), float64(y))
			// Board rows are stored y-up; the image is y-down.
			py := (m.Height() - 1 - y) * TileSize
			if m.Blocked(loc) && !m.InHouse(loc) {
				fillRect(img, x*TileSize+1, py+1, TileSize-2, TileSize-2, wall)
			}
			if loc == m.DoorCenter() || loc.Sub(maze.Loc(0.5, 0)) == m.DoorCenter() || loc.Add(maze.Loc(0.5, 0)) == m.DoorCenter() {
				fillRect(img, x*TileSize, py+3, TileSize, 2, colDoor)
			}
		}
	}
	return ebiten.NewImageFromImage(img)
}
