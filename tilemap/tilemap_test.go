package tilemap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/softpine/spiderden/assets"
	"github.com/softpine/spiderden/ecs"
	"github.com/softpine/spiderden/ecs/component"
)

const collidersGroup ecs.Group = 5

func TestLoadCollidersFromEmbeddedMap(t *testing.T) {
	world := ecs.NewManager()
	am := assets.NewManager(world)
	m := New(world, am, "terrain", 2, 32)

	require.NoError(t, m.LoadColliders("maps/map01colliders.map", 11, 11, collidersGroup))

	group := world.Group(collidersGroup)
	// 40 border cells plus 5 interior wall cells.
	assert.Len(t, group, 45)

	cell := float64(m.ScaledTileSize())
	first := group[0]
	col, err := ecs.Get[*component.Collider](first)
	require.NoError(t, err)
	assert.Equal(t, component.TagTerrain, col.Tag)
	assert.Equal(t, cell, col.Rect.Width)
	assert.Equal(t, cell, col.Rect.Height)
}

func TestParseGrid(t *testing.T) {
	cases := []struct {
		name    string
		data    string
		rows    int
		cols    int
		wantErr string
	}{
		{"valid", "0,1\n1,0\n", 2, 2, ""},
		{"short_rows", "0,1\n", 2, 2, "rows"},
		{"short_cols", "0\n1,0\n", 2, 2, "cols"},
		{"not_a_number", "0,x\n1,0\n", 2, 2, "invalid syntax"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			grid, err := parseGrid("test.map", []byte(c.data), c.rows, c.cols)
			if c.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), c.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, [][]int{{0, 1}, {1, 0}}, grid)
		})
	}
}

func TestParseGridTrimsWhitespace(t *testing.T) {
	grid, err := parseGrid("test.map", []byte(" 1 , 2 \r\n 3 , 4 \n"), 2, 2)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2}, {3, 4}}, grid)
}
