package memory

import (
	"deliveryzone/internal/domain/geometry"

	"github.com/dhconnelly/rtreego"
	"github.com/google/uuid"
)

const (
	treeDimensions = 2
	treeMinFanout  = 25
	treeMaxFanout  = 50

	// rtreego rejects zero-length sides, so degenerate extents and point probes are padded.
	minRectSide = 1e-9
)

// areaEntry is an R-tree leaf for one polygon, keyed by the owning zone or restaurant.
type areaEntry struct {
	id   uuid.UUID
	ring geometry.Ring
	rect rtreego.Rect
}

// Bounds implements the rtreego.Spatial interface
func (e *areaEntry) Bounds() rtreego.Rect {
	return e.rect
}

func newAreaEntry(id uuid.UUID, ring geometry.Ring) *areaEntry {
	return &areaEntry{id: id, ring: ring, rect: ringRect(ring)}
}

func newTree() *rtreego.Rtree {
	return rtreego.NewTree(treeDimensions, treeMinFanout, treeMaxFanout)
}

func ringRect(ring geometry.Ring) rtreego.Rect {
	bound := ring.Bound()
	width := max(bound.Max[0]-bound.Min[0], minRectSide)
	height := max(bound.Max[1]-bound.Min[1], minRectSide)

	rect, _ := rtreego.NewRect(rtreego.Point{bound.Min[0], bound.Min[1]}, []float64{width, height})

	return rect
}

func pointRect(p geometry.Point) rtreego.Rect {
	return rtreego.Point{p[0], p[1]}.ToRect(minRectSide)
}

// search returns the entries whose ring contains p.
func search(tree *rtreego.Rtree, p geometry.Point) []*areaEntry {
	candidates := tree.SearchIntersect(pointRect(p))
	hits := make([]*areaEntry, 0, len(candidates))
	for _, c := range candidates {
		entry, ok := c.(*areaEntry)
		if !ok || !geometry.RingContains(entry.ring, p) {
			continue
		}
		hits = append(hits, entry)
	}

	return hits
}
