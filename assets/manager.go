package assets

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/softpine/spiderden/common"
	"github.com/softpine/spiderden/ecs"
	"github.com/softpine/spiderden/ecs/component"
	"github.com/softpine/spiderden/prefabs"
)

// Manager caches textures by id and assembles the stock entity kinds from
// their prefab specs. It holds the ECS manager so factories can spawn
// entities directly, the way the rest of the game does.
type Manager struct {
	manager  *ecs.Manager
	textures map[string]*ebiten.Image
}

// NewManager creates an asset manager spawning into m.
func NewManager(m *ecs.Manager) *Manager {
	return &Manager{
		manager:  m,
		textures: make(map[string]*ebiten.Image),
	}
}

// AddTexture loads the image at path and caches it under id. A missing or
// undecodable file is an error; nothing is cached for it.
func (a *Manager) AddTexture(id, path string) error {
	img, err := LoadImage(path)
	if err != nil {
		return fmt.Errorf("assets: add texture %q: %w", id, err)
	}
	a.textures[id] = img
	return nil
}

// GetTexture returns the texture cached under id.
func (a *Manager) GetTexture(id string) (*ebiten.Image, error) {
	img, ok := a.textures[id]
	if !ok {
		return nil, fmt.Errorf("assets: texture %q not loaded", id)
	}
	return img, nil
}

// CreateSpider spawns a monster at (x, y), scaled by scale, tagged into
// group. Stats come from the spider prefab; the collider insets scale with
// the body.
func (a *Manager) CreateSpider(x, y, scale float64, group ecs.Group) (*ecs.Entity, error) {
	spec, err := prefabs.LoadEntitySpec("spider.yaml")
	if err != nil {
		return nil, fmt.Errorf("assets: create spider: %w", err)
	}
	tex, err := a.GetTexture(spec.Texture)
	if err != nil {
		return nil, fmt.Errorf("assets: create spider: %w", err)
	}

	e := a.manager.AddEntity()
	tr, err := ecs.Add(e, component.NewTransform(x, y, spec.Transform.Width, spec.Transform.Height, scale))
	if err != nil {
		return nil, err
	}
	tr.Speed = spec.Transform.Speed
	tr.SpeedLo = spec.Transform.SpeedLo
	tr.SpeedHi = spec.Transform.SpeedHi

	if _, err := ecs.Add(e, component.NewAnimatedSprite(tex, animations(spec), "walk")); err != nil {
		return nil, err
	}
	col := component.NewCollider(component.TagMonster,
		spec.Collider.OffsetX*scale, spec.Collider.OffsetY*scale,
		spec.Collider.Width*scale, spec.Collider.Height*scale)
	if _, err := ecs.Add(e, col); err != nil {
		return nil, err
	}
	if err := e.AddGroup(group); err != nil {
		return nil, err
	}
	return e, nil
}

// CreateProjectile spawns a projectile at pos heading along vel, with the
// given travel range and per-frame speed, tagged into group.
func (a *Manager) CreateProjectile(pos, vel common.Vector2, rng, speed float64, texID string, group ecs.Group) (*ecs.Entity, error) {
	spec, err := prefabs.LoadEntitySpec("projectile.yaml")
	if err != nil {
		return nil, fmt.Errorf("assets: create projectile: %w", err)
	}
	tex, err := a.GetTexture(texID)
	if err != nil {
		return nil, fmt.Errorf("assets: create projectile: %w", err)
	}

	e := a.manager.AddEntity()
	if _, err := ecs.Add(e, component.NewTransform(pos.X, pos.Y, spec.Transform.Width, spec.Transform.Height, spec.Transform.Scale)); err != nil {
		return nil, err
	}
	if _, err := ecs.Add(e, component.NewSprite(tex)); err != nil {
		return nil, err
	}
	if _, err := ecs.Add(e, component.NewProjectile(rng, speed, vel)); err != nil {
		return nil, err
	}
	col := component.NewCollider(component.TagProjectile,
		spec.Collider.OffsetX, spec.Collider.OffsetY,
		spec.Collider.Width, spec.Collider.Height)
	if _, err := ecs.Add(e, col); err != nil {
		return nil, err
	}
	if err := e.AddGroup(group); err != nil {
		return nil, err
	}
	return e, nil
}

// CreatePlayer assembles the player from its prefab at (x, y), reading input
// and firing through fire.
func (a *Manager) CreatePlayer(x, y float64, input component.Input, fire component.FireFunc, group ecs.Group) (*ecs.Entity, error) {
	spec, err := prefabs.LoadEntitySpec("player.yaml")
	if err != nil {
		return nil, fmt.Errorf("assets: create player: %w", err)
	}
	tex, err := a.GetTexture(spec.Texture)
	if err != nil {
		return nil, fmt.Errorf("assets: create player: %w", err)
	}

	e := a.manager.AddEntity()
	tr, err := ecs.Add(e, component.NewTransform(x, y, spec.Transform.Width, spec.Transform.Height, spec.Transform.Scale))
	if err != nil {
		return nil, err
	}
	tr.Speed = spec.Transform.Speed
	tr.Facing = common.Vector2{Y: 1}

	if _, err := ecs.Add(e, component.NewAnimatedSprite(tex, animations(spec), "idle")); err != nil {
		return nil, err
	}
	if _, err := ecs.Add(e, component.NewController(input, fire)); err != nil {
		return nil, err
	}
	col := component.NewCollider(component.TagPlayer,
		spec.Collider.OffsetX, spec.Collider.OffsetY,
		spec.Collider.Width, spec.Collider.Height)
	if _, err := ecs.Add(e, col); err != nil {
		return nil, err
	}
	if err := e.AddGroup(group); err != nil {
		return nil, err
	}
	return e, nil
}

func animations(spec prefabs.EntitySpec) map[string]component.Animation {
	out := make(map[string]component.Animation, len(spec.Animations))
	for name, a := range spec.Animations {
		out[name] = component.Animation{Index: a.Index, Frames: a.Frames, Delay: a.Delay}
	}
	return out
}
