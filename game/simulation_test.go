package game

import (
	"math/rand/v2"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/softpine/spiderden/common"
	"github.com/softpine/spiderden/ecs"
	"github.com/softpine/spiderden/ecs/component"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	return &Game{
		log:     zerolog.Nop(),
		manager: ecs.NewManager(),
		rng:     rand.New(rand.NewPCG(1, 2)),
	}
}

func addActor(t *testing.T, g *Game, tag string, x, y float64, group ecs.Group) (*ecs.Entity, *component.Transform) {
	t.Helper()
	e := g.manager.AddEntity()
	tr, err := ecs.Add(e, component.NewTransform(x, y, 32, 32, 1))
	require.NoError(t, err)
	_, err = ecs.Add(e, component.NewCollider(tag, 0, 0, 32, 32))
	require.NoError(t, err)
	require.NoError(t, e.AddGroup(group))
	return e, tr
}

func addTerrain(t *testing.T, g *Game, x, y float64) *ecs.Entity {
	t.Helper()
	e := g.manager.AddEntity()
	_, err := ecs.Add(e, component.NewStaticCollider(component.TagTerrain,
		common.Rect{X: x, Y: y, Width: 64, Height: 64}))
	require.NoError(t, err)
	require.NoError(t, e.AddGroup(GroupColliders))
	return e
}

func TestTerrainCollisionRollsBackPlayer(t *testing.T) {
	g := newTestGame(t)
	player, tr := addActor(t, g, component.TagPlayer, 0, 0, GroupPlayers)
	g.player = player
	addTerrain(t, g, 40, 0)

	// Clean frame: snapshot taken at the resting position.
	g.step()
	require.Equal(t, common.Vector2{}, g.lastPlayerPos)

	// Walk into the wall. The move itself happens, then resolution snaps the
	// position back to the last clean snapshot.
	tr.Velocity = common.Vector2{X: 1}
	tr.Speed = 10
	g.step()
	assert.Equal(t, common.Vector2{}, tr.Position)

	// The same thing holds on every subsequent frame.
	g.step()
	assert.Equal(t, common.Vector2{}, tr.Position)
}

func TestCleanMoveAdvancesSnapshot(t *testing.T) {
	g := newTestGame(t)
	player, tr := addActor(t, g, component.TagPlayer, 0, 0, GroupPlayers)
	g.player = player
	addTerrain(t, g, 500, 500)

	tr.Velocity = common.Vector2{X: 1}
	tr.Speed = 10
	g.step()
	assert.Equal(t, common.Vector2{X: 10}, tr.Position)
	assert.Equal(t, common.Vector2{X: 10}, g.lastPlayerPos)
}

func TestMonsterChase(t *testing.T) {
	cases := []struct {
		name             string
		monsterX         float64
		monsterY         float64
		wantVX, wantVY   float64
	}{
		{"above_right_of_player", 200, 50, -1, 1},
		{"below_left_of_player", 20, 300, 1, -1},
		{"at_player", 100, 100, 1, 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := newTestGame(t)
			player, _ := addActor(t, g, component.TagPlayer, 100, 100, GroupPlayers)
			g.player = player
			_, mtr := addActor(t, g, component.TagMonster, c.monsterX, c.monsterY, GroupMonsters)
			mtr.SpeedLo = 1.0
			mtr.SpeedHi = 3.5

			g.updateMonsters()
			assert.Equal(t, c.wantVX, mtr.Velocity.X)
			assert.Equal(t, c.wantVY, mtr.Velocity.Y)
			assert.GreaterOrEqual(t, mtr.Speed, mtr.SpeedLo)
			assert.LessOrEqual(t, mtr.Speed, mtr.SpeedHi)
		})
	}
}

func TestMonsterSpeedJitterVaries(t *testing.T) {
	g := newTestGame(t)
	player, _ := addActor(t, g, component.TagPlayer, 0, 0, GroupPlayers)
	g.player = player
	_, mtr := addActor(t, g, component.TagMonster, 300, 300, GroupMonsters)
	mtr.SpeedLo = 1.0
	mtr.SpeedHi = 3.5

	seen := make(map[float64]bool)
	for i := 0; i < 16; i++ {
		g.updateMonsters()
		seen[mtr.Speed] = true
	}
	assert.Greater(t, len(seen), 1, "speed should be rejittered every frame")
}

func TestProjectileDestroysMonster(t *testing.T) {
	g := newTestGame(t)
	player, _ := addActor(t, g, component.TagPlayer, 500, 500, GroupPlayers)
	g.player = player
	monster, _ := addActor(t, g, component.TagMonster, 100, 100, GroupMonsters)
	proj, _ := addActor(t, g, component.TagProjectile, 110, 110, GroupProjectiles)

	g.resolveProjectiles()
	assert.False(t, proj.Active())
	assert.False(t, monster.Active())

	// Both stay observable through this frame and vanish after refresh.
	assert.Len(t, g.manager.Group(GroupMonsters), 1)
	assert.Len(t, g.manager.Group(GroupProjectiles), 1)
	g.manager.Refresh()
	assert.Empty(t, g.manager.Group(GroupMonsters))
	assert.Empty(t, g.manager.Group(GroupProjectiles))
}

func TestProjectileHitsTerrainAloneDies(t *testing.T) {
	g := newTestGame(t)
	player, _ := addActor(t, g, component.TagPlayer, 500, 500, GroupPlayers)
	g.player = player
	monster, _ := addActor(t, g, component.TagMonster, 300, 20, GroupMonsters)
	terrain := addTerrain(t, g, 80, 80)
	proj, _ := addActor(t, g, component.TagProjectile, 100, 100, GroupProjectiles)

	g.resolveProjectiles()
	assert.False(t, proj.Active())
	assert.True(t, monster.Active())
	assert.True(t, terrain.Active())

	g.manager.Refresh()
	assert.Empty(t, g.manager.Group(GroupProjectiles))
	assert.Len(t, g.manager.Group(GroupColliders), 1)
}

func TestDoubleDestroyIsIdempotent(t *testing.T) {
	g := newTestGame(t)
	player, _ := addActor(t, g, component.TagPlayer, 500, 500, GroupPlayers)
	g.player = player
	// Two projectiles overlapping the same monster in one frame.
	monster, _ := addActor(t, g, component.TagMonster, 100, 100, GroupMonsters)
	addActor(t, g, component.TagProjectile, 105, 105, GroupProjectiles)
	addActor(t, g, component.TagProjectile, 95, 95, GroupProjectiles)

	g.resolveProjectiles()
	assert.False(t, monster.Active())
	g.manager.Refresh()
	assert.Empty(t, g.manager.Group(GroupMonsters))
	assert.Empty(t, g.manager.Group(GroupProjectiles))
	assert.Len(t, g.manager.Entities(), 1) // only the player survives
}
