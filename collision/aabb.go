// Package collision holds the pure geometry used by the gameplay code.
package collision

import (
	"github.com/jakecoffman/cp"

	"github.com/softpine/spiderden/common"
)

// AABB reports whether two axis-aligned rectangles overlap.
func AABB(a, b common.Rect) bool {
	return bb(a).Intersects(bb(b))
}

func bb(r common.Rect) cp.BB {
	return cp.BB{L: r.X, B: r.Y, R: r.X + r.Width, T: r.Y + r.Height}
}
