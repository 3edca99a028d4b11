// Package game assembles the scene and runs the per-frame simulation on top
// of the ecs runtime: transform integration, group-scoped collision
// resolution, monster pursuit, and projectile lifecycle.
package game

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"

	"github.com/softpine/spiderden/assets"
	"github.com/softpine/spiderden/common"
	"github.com/softpine/spiderden/ecs"
	"github.com/softpine/spiderden/ecs/component"
	"github.com/softpine/spiderden/prefabs"
	"github.com/softpine/spiderden/tilemap"
)

const (
	// TileSize is the tileset cell size in texture pixels; tiles render at
	// twice that.
	TileSize = 32
	mapScale = 2

	mapRows = 11
	mapCols = 11

	// BaseWidth and BaseHeight are the fixed render resolution.
	BaseWidth  = mapCols * TileSize * mapScale
	BaseHeight = mapRows * TileSize * mapScale

	projectileRange = 200
	projectileSpeed = 4
	spiderCount     = 3
)

// Config carries the host flags into the game.
type Config struct {
	Debug        bool
	WatchPrefabs bool
}

// Game owns the whole simulation state: the ecs manager, the asset manager,
// the player handle, and the frame protocol. It implements ebiten.Game.
type Game struct {
	cfg Config
	log zerolog.Logger

	manager *ecs.Manager
	assets  *assets.Manager
	scene   *tilemap.Map
	player  *ecs.Entity

	// lastPlayerPos is the player position as of the last frame in which the
	// player overlapped no terrain; terrain contact rolls back to it.
	lastPlayerPos common.Vector2

	rng     *rand.Rand
	watcher *prefabs.Watcher

	paused  bool
	quit    bool
	pauseUI *ebitenui.UI

	frames int
}

// NewGame loads textures and maps, assembles the player and the starting
// monsters, and returns a game ready for ebiten.RunGame.
func NewGame(cfg Config, logger zerolog.Logger) (*Game, error) {
	manager := ecs.NewManager()
	am := assets.NewManager(manager)

	g := &Game{
		cfg:     cfg,
		log:     logger,
		manager: manager,
		assets:  am,
		rng:     rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
	}

	textures := map[string]string{
		"terrain":    "images/tileset.png",
		"player":     "images/player.png",
		"monster":    "images/monster.png",
		"projectile": "images/projectile.png",
	}
	for id, path := range textures {
		if err := am.AddTexture(id, path); err != nil {
			return nil, fmt.Errorf("game: %w", err)
		}
	}

	g.scene = tilemap.New(manager, am, "terrain", mapScale, TileSize)
	maps := []struct {
		path  string
		group ecs.Group
	}{
		{"maps/map01bg.map", GroupMapBackground},
		{"maps/map01.map", GroupMap},
		{"maps/map01fx.map", GroupMapFX},
	}
	for _, m := range maps {
		if err := g.scene.LoadMap(m.path, mapRows, mapCols, m.group); err != nil {
			return nil, fmt.Errorf("game: %w", err)
		}
	}
	if err := g.scene.LoadColliders("maps/map01colliders.map", mapRows, mapCols, GroupColliders); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	cell := float64(g.scene.ScaledTileSize())
	player, err := am.CreatePlayer(5*cell-16, 2*cell-16, Keyboard{}, g.fireProjectile, GroupPlayers)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	g.player = player
	if tr, err := ecs.Get[*component.Transform](player); err == nil {
		g.lastPlayerPos = tr.Position
	}

	for i := 0; i < spiderCount; i++ {
		scale := 0.2 + g.rng.Float64()*(1.5-0.2)
		x := float64(1+g.rng.IntN(mapCols-2)) * cell
		y := float64(1+g.rng.IntN(mapRows-2)) * cell
		if _, err := am.CreateSpider(x, y, scale, GroupMonsters); err != nil {
			return nil, fmt.Errorf("game: %w", err)
		}
	}

	g.pauseUI = newPauseUI(g)

	if cfg.WatchPrefabs {
		w, err := prefabs.NewWatcher("prefabs")
		if err != nil {
			g.log.Warn().Err(err).Msg("prefab watcher unavailable")
		} else {
			g.watcher = w
		}
	}

	g.log.Info().
		Int("entities", len(manager.Entities())).
		Int("colliders", len(manager.Group(GroupColliders))).
		Msg("scene ready")
	return g, nil
}

// Update runs one frame of the simulation.
func (g *Game) Update() error {
	if g.quit {
		g.Close()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.drainWatcher()
	g.step()
	g.frames++
	return nil
}

// Draw renders the frame back to front by group, the real layering contract;
// Manager.Draw is deliberately bypassed.
func (g *Game) Draw(screen *ebiten.Image) {
	for _, group := range []ecs.Group{
		GroupMapBackground,
		GroupMap,
		GroupProjectiles,
		GroupPlayers,
		GroupMonsters,
		GroupMapFX,
	} {
		for _, e := range g.manager.Group(group) {
			e.Draw(screen)
		}
	}

	if g.paused {
		g.pauseUI.Draw(screen)
	}
	if g.cfg.Debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("frame %d  fps %.1f", g.frames, ebiten.ActualFPS()))
	}
}

// Layout fixes the render resolution to the map footprint.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return BaseWidth, BaseHeight
}

// Close releases host resources (the prefab watcher).
func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
		g.watcher = nil
	}
}

func (g *Game) fireProjectile(pos, dir common.Vector2) {
	origin := pos.Add(common.Vector2{X: 16, Y: 16})
	if _, err := g.assets.CreateProjectile(origin, dir, projectileRange, projectileSpeed, "projectile", GroupProjectiles); err != nil {
		g.log.Error().Err(err).Msg("spawn projectile")
		return
	}
	g.log.Debug().Float64("x", origin.X).Float64("y", origin.Y).Msg("projectile fired")
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	reload := false
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.log.Info().Str("file", name).Msg("prefab changed")
			reload = true
		case err := <-g.watcher.Errors:
			if err != nil {
				g.log.Warn().Err(err).Msg("prefab watcher")
			}
		default:
			if reload {
				g.reloadMonsterStats()
			}
			return
		}
	}
}

// reloadMonsterStats re-reads the spider prefab and applies the speed range
// to every live monster, so tuning the YAML takes effect without a restart.
func (g *Game) reloadMonsterStats() {
	spec, err := prefabs.LoadEntitySpec("spider.yaml")
	if err != nil {
		g.log.Warn().Err(err).Msg("reload spider prefab")
		return
	}
	for _, m := range g.manager.Group(GroupMonsters) {
		tr, err := ecs.Get[*component.Transform](m)
		if err != nil {
			continue
		}
		tr.Speed = spec.Transform.Speed
		tr.SpeedLo = spec.Transform.SpeedLo
		tr.SpeedHi = spec.Transform.SpeedHi
	}
	g.log.Info().
		Float64("speed_lo", spec.Transform.SpeedLo).
		Float64("speed_hi", spec.Transform.SpeedHi).
		Msg("monster stats reloaded")
}
