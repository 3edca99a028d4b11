package game

import (
	"github.com/softpine/spiderden/collision"
	"github.com/softpine/spiderden/ecs"
	"github.com/softpine/spiderden/ecs/component"
)

// step runs one simulation frame. Refresh comes first, so entities destroyed
// last frame stay observable for exactly one extra update/draw cycle before
// being reclaimed here.
func (g *Game) step() {
	g.manager.Refresh()
	g.manager.Update()

	g.resolveTerrainCollision()
	g.updateMonsters()
	g.resolveProjectiles()
}

// resolveTerrainCollision keeps the player out of terrain with a rollback
// policy: while the player is clear of all terrain colliders its position is
// snapshotted, and on any overlap it snaps back to the last clean snapshot
// rather than resolving penetration depth.
func (g *Game) resolveTerrainCollision() {
	playerCol, err := ecs.Get[*component.Collider](g.player)
	if err != nil {
		return
	}
	playerTr, err := ecs.Get[*component.Transform](g.player)
	if err != nil {
		return
	}

	blocked := false
	for _, c := range g.manager.Group(GroupColliders) {
		col, err := ecs.Get[*component.Collider](c)
		if err != nil || col.Tag != component.TagTerrain {
			continue
		}
		if collision.AABB(col.Rect, playerCol.Rect) {
			blocked = true
			break
		}
	}

	if !blocked {
		g.lastPlayerPos = playerTr.Position
		return
	}
	playerTr.Position = g.lastPlayerPos
	g.log.Debug().Msg("bumped into terrain")
}

// updateMonsters jitters each monster's speed within its prefab range and
// steers it toward the player one axis at a time: the velocity sign on each
// axis follows the player's relative position, so the chase is stair-stepped
// rather than a straight line.
func (g *Game) updateMonsters() {
	playerTr, err := ecs.Get[*component.Transform](g.player)
	if err != nil {
		return
	}
	playerCol, _ := ecs.Get[*component.Collider](g.player)

	for _, m := range g.manager.Group(GroupMonsters) {
		tr, err := ecs.Get[*component.Transform](m)
		if err != nil {
			continue
		}

		if tr.SpeedHi > tr.SpeedLo {
			tr.Speed = tr.SpeedLo + g.rng.Float64()*(tr.SpeedHi-tr.SpeedLo)
		}

		if playerTr.Position.X < tr.Position.X {
			tr.Velocity.X = -1
		} else {
			tr.Velocity.X = 1
		}
		if playerTr.Position.Y < tr.Position.Y {
			tr.Velocity.Y = -1
		} else {
			tr.Velocity.Y = 1
		}

		if playerCol != nil {
			if col, err := ecs.Get[*component.Collider](m); err == nil &&
				collision.AABB(col.Rect, playerCol.Rect) {
				g.log.Debug().Msg("spider on the player")
			}
		}
	}
}

// resolveProjectiles destroys projectiles on contact: a monster hit takes
// both entities out, a terrain hit only the projectile. Multiple overlaps in
// one frame may destroy the same entity more than once, which is fine because
// Destroy only sets a flag; the next refresh reclaims everything at once.
func (g *Game) resolveProjectiles() {
	for _, p := range g.manager.Group(GroupProjectiles) {
		pCol, err := ecs.Get[*component.Collider](p)
		if err != nil {
			continue
		}

		for _, m := range g.manager.Group(GroupMonsters) {
			mCol, err := ecs.Get[*component.Collider](m)
			if err != nil {
				continue
			}
			if collision.AABB(mCol.Rect, pCol.Rect) {
				p.Destroy()
				m.Destroy()
				g.log.Info().Msg("spider shot")
			}
		}

		for _, c := range g.manager.Group(GroupColliders) {
			col, err := ecs.Get[*component.Collider](c)
			if err != nil || col.Tag != component.TagTerrain {
				continue
			}
			if collision.AABB(col.Rect, pCol.Rect) {
				p.Destroy()
				g.log.Debug().Msg("projectile hit terrain")
			}
		}
	}
}
