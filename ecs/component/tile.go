package component

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/softpine/spiderden/common"
	"github.com/softpine/spiderden/ecs"
)

// Tile renders one cell of a tile map: a fixed source rect in the tileset
// drawn at a fixed screen position. Tiles have no transform and never move.
type Tile struct {
	ecs.Base

	Texture *ebiten.Image
	Src     image.Rectangle
	Dest    common.Vector2
	Size    int
	Scale   float64
}

// NewTile creates a tile for tileset cell (srcX, srcY) drawn at (x, y).
func NewTile(texture *ebiten.Image, srcX, srcY int, x, y float64, size int, scale float64) *Tile {
	return &Tile{
		Texture: texture,
		Src:     image.Rect(srcX, srcY, srcX+size, srcY+size),
		Dest:    common.Vector2{X: x, Y: y},
		Size:    size,
		Scale:   scale,
	}
}

func (t *Tile) Draw(screen *ebiten.Image) {
	if screen == nil || t.Texture == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(t.Scale, t.Scale)
	op.GeoM.Translate(t.Dest.X, t.Dest.Y)
	screen.DrawImage(t.Texture.SubImage(t.Src).(*ebiten.Image), op)
}
