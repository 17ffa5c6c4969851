// Package spatial provides a uniform hash-grid index over 3D points for
// proximity queries. It backs overlapping-vertex detection.
package spatial

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// Point is an indexed position fed into the grid.
type Point struct {
	Index    int
	Position mgl64.Vec3
}

// Grid buckets points into cells of roughly epsilon size so that a
// within-epsilon query only has to scan the 27 surrounding cells. Query
// results are independent of insertion order.
//
// A Grid is immutable after Build and safe for concurrent reads.
type Grid struct {
	cellSize float64
	cells    map[cellKey][]Point
}

type cellKey struct {
	X, Y, Z int
}

// Build constructs a grid with the given cell size from the points. Cell
// size should be at least the largest epsilon that will be queried.
func Build(points []Point, cellSize float64) *Grid {
	if cellSize <= 0 {
		cellSize = 1e-6
	}
	g := &Grid{
		cellSize: cellSize,
		cells:    make(map[cellKey][]Point),
	}
	for _, p := range points {
		k := g.key(p.Position)
		g.cells[k] = append(g.cells[k], p)
	}
	return g
}

func (g *Grid) key(p mgl64.Vec3) cellKey {
	return cellKey{
		X: int(math.Floor(p.X() / g.cellSize)),
		Y: int(math.Floor(p.Y() / g.cellSize)),
		Z: int(math.Floor(p.Z() / g.cellSize)),
	}
}

// Near returns the indices of all points within eps of p, sorted ascending.
// A point at exactly distance eps is included. The query point itself is
// included when it was inserted (callers filter their own index if needed).
func (g *Grid) Near(p mgl64.Vec3, eps float64) []int {
	if eps < 0 {
		return nil
	}
	center := g.key(p)
	// eps may exceed the cell size; widen the scan accordingly.
	reach := int(math.Ceil(eps/g.cellSize)) + 1
	epsSq := eps * eps

	var out []int
	for dx := -reach; dx <= reach; dx++ {
		for dy := -reach; dy <= reach; dy++ {
			for dz := -reach; dz <= reach; dz++ {
				k := cellKey{center.X + dx, center.Y + dy, center.Z + dz}
				for _, q := range g.cells[k] {
					d := q.Position.Sub(p)
					if d.Dot(d) <= epsSq {
						out = append(out, q.Index)
					}
				}
			}
		}
	}
	sort.Ints(out)
	return out
}

// Len returns the number of indexed points.
func (g *Grid) Len() int {
	n := 0
	for _, pts := range g.cells {
		n += len(pts)
	}
	return n
}
