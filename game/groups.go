package game

import "github.com/softpine/spiderden/ecs"

// Entity groups. Draw order walks these back to front: background tiles,
// main tiles, projectiles, players, monsters, fx tiles.
const (
	GroupMapBackground ecs.Group = iota
	GroupMap
	GroupMapFX
	GroupPlayers
	GroupMonsters
	GroupColliders
	GroupProjectiles
)
