// Package tilemap turns text grid files into tile and collider entities.
// Each map file is rows of comma-separated tile indices into the bound
// tileset; the core only sees the ordinary entities this produces.
package tilemap

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/softpine/spiderden/assets"
	"github.com/softpine/spiderden/common"
	"github.com/softpine/spiderden/ecs"
	"github.com/softpine/spiderden/ecs/component"
)

// Map spawns tile entities for one tileset. Tiles are placed on a fixed
// screen grid of tileSize*scale pixel cells.
type Map struct {
	manager   *ecs.Manager
	assets    *assets.Manager
	textureID string
	scale     float64
	tileSize  int
}

// New creates a map bound to the tileset texture registered under textureID.
func New(m *ecs.Manager, a *assets.Manager, textureID string, scale float64, tileSize int) *Map {
	return &Map{
		manager:   m,
		assets:    a,
		textureID: textureID,
		scale:     scale,
		tileSize:  tileSize,
	}
}

// ScaledTileSize returns the on-screen size of one cell in pixels.
func (m *Map) ScaledTileSize() int {
	return int(float64(m.tileSize) * m.scale)
}

// LoadMap reads a rows x cols grid from path and spawns one tile entity per
// cell into group. The cell value selects the tile within the tileset row.
func (m *Map) LoadMap(path string, rows, cols int, group ecs.Group) error {
	grid, err := m.readGrid(path, rows, cols)
	if err != nil {
		return err
	}
	tex, err := m.assets.GetTexture(m.textureID)
	if err != nil {
		return fmt.Errorf("tilemap: load %s: %w", path, err)
	}

	cell := m.ScaledTileSize()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			srcX := grid[r][c] * m.tileSize
			e := m.manager.AddEntity()
			tile := component.NewTile(tex, srcX, 0, float64(c*cell), float64(r*cell), m.tileSize, m.scale)
			if _, err := ecs.Add(e, tile); err != nil {
				return fmt.Errorf("tilemap: load %s: %w", path, err)
			}
			if err := e.AddGroup(group); err != nil {
				return fmt.Errorf("tilemap: load %s: %w", path, err)
			}
		}
	}
	return nil
}

// LoadColliders reads a rows x cols grid from path and spawns one static
// terrain collider entity, tagged into group, for every non-zero cell.
func (m *Map) LoadColliders(path string, rows, cols int, group ecs.Group) error {
	grid, err := m.readGrid(path, rows, cols)
	if err != nil {
		return err
	}

	cell := m.ScaledTileSize()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if grid[r][c] == 0 {
				continue
			}
			e := m.manager.AddEntity()
			rect := common.Rect{
				X:      float64(c * cell),
				Y:      float64(r * cell),
				Width:  float64(cell),
				Height: float64(cell),
			}
			if _, err := ecs.Add(e, component.NewStaticCollider(component.TagTerrain, rect)); err != nil {
				return fmt.Errorf("tilemap: load colliders %s: %w", path, err)
			}
			if err := e.AddGroup(group); err != nil {
				return fmt.Errorf("tilemap: load colliders %s: %w", path, err)
			}
		}
	}
	return nil
}

func (m *Map) readGrid(path string, rows, cols int) ([][]int, error) {
	data, err := assets.ReadMap(path)
	if err != nil {
		return nil, fmt.Errorf("tilemap: %w", err)
	}
	return parseGrid(path, data, rows, cols)
}

func parseGrid(path string, data []byte, rows, cols int) ([][]int, error) {
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) < rows {
		return nil, fmt.Errorf("tilemap: %s: have %d rows, want %d", path, len(lines), rows)
	}

	grid := make([][]int, rows)
	for r := 0; r < rows; r++ {
		fields := strings.Split(strings.TrimSpace(lines[r]), ",")
		if len(fields) < cols {
			return nil, fmt.Errorf("tilemap: %s row %d: have %d cols, want %d", path, r, len(fields), cols)
		}
		grid[r] = make([]int, cols)
		for c := 0; c < cols; c++ {
			v, err := strconv.Atoi(strings.TrimSpace(fields[c]))
			if err != nil {
				return nil, fmt.Errorf("tilemap: %s row %d col %d: %w", path, r, c, err)
			}
			grid[r][c] = v
		}
	}
	return grid, nil
}
