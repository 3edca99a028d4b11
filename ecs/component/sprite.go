package component

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/softpine/spiderden/ecs"
)

// Animation names one row of a sprite sheet: Index selects the row, Frames
// how many frames the row holds, and Delay how many ticks each frame lasts.
type Animation struct {
	Index  int
	Frames int
	Delay  int
}

// Sprite renders its entity's texture at the transform position. Animated
// sprites cycle through sheet frames on an internal tick counter so playback
// is deterministic under a fixed timestep.
type Sprite struct {
	ecs.Base

	Texture  *ebiten.Image
	Animated bool
	// AnimIndex selects the active sheet row when no named animation is
	// playing.
	AnimIndex int

	animations map[string]Animation
	frames     int
	delay      int
	tick       int
	flip       bool

	src       image.Rectangle
	transform *Transform
}

// NewSprite creates a static sprite for the given texture.
func NewSprite(texture *ebiten.Image) *Sprite {
	return &Sprite{Texture: texture}
}

// NewAnimatedSprite creates a sprite with a named animation set and starts
// the given animation.
func NewAnimatedSprite(texture *ebiten.Image, animations map[string]Animation, play string) *Sprite {
	s := &Sprite{
		Texture:    texture,
		Animated:   true,
		animations: animations,
	}
	s.Play(play)
	return s
}

func (s *Sprite) Init() {
	tr, err := ecs.Get[*Transform](s.Entity())
	if err == nil {
		s.transform = tr
		s.src = image.Rect(0, 0, tr.Width, tr.Height)
	}
}

// Play switches to the named animation. Unknown names are ignored so a
// missing prefab entry degrades to the current frame row.
func (s *Sprite) Play(name string) {
	anim, ok := s.animations[name]
	if !ok {
		return
	}
	s.AnimIndex = anim.Index
	s.frames = anim.Frames
	s.delay = anim.Delay
}

// SetFlip mirrors the sprite horizontally; used when the entity faces left.
func (s *Sprite) SetFlip(flip bool) { s.flip = flip }

func (s *Sprite) Update() {
	if s.transform == nil {
		return
	}
	s.tick++
	if s.Animated && s.frames > 0 && s.delay > 0 {
		frame := (s.tick / s.delay) % s.frames
		s.src.Min.X = s.transform.Width * frame
		s.src.Max.X = s.src.Min.X + s.transform.Width
	}
	s.src.Min.Y = s.AnimIndex * s.transform.Height
	s.src.Max.Y = s.src.Min.Y + s.transform.Height
}

func (s *Sprite) Draw(screen *ebiten.Image) {
	if screen == nil || s.Texture == nil || s.transform == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	if s.flip {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(float64(s.transform.Width), 0)
	}
	op.GeoM.Scale(s.transform.Scale, s.transform.Scale)
	op.GeoM.Translate(s.transform.Position.X, s.transform.Position.Y)
	screen.DrawImage(s.Texture.SubImage(s.src).(*ebiten.Image), op)
}
