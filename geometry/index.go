package geometry

import (
	"sort"

	"github.com/dhconnelly/rtreego"
)

// haloSpan is large enough to contain any realistic tile-local
// coordinate (vertices are int32) while still leaving headroom for the
// halo rectangles built below.
const haloSpan = 1 << 30

// featureBox adapts one projected feature's bounding box to rtreego.Spatial.
type featureBox struct {
	index  int
	bounds *rtreego.Rect
}

func (f *featureBox) Bounds() *rtreego.Rect {
	return f.bounds
}

// IndexFeatureBounds builds an r-tree over every feature's bounding box
// and reports the indices of features whose bounds fall outside
// [0, extent] x [0, extent] — the GeometryOutOfBounds self-consistency
// check spec.md §4.6 assigns to the GeoJSON projection helper. Features
// with no coordinates (should not occur on a valid tile) are skipped.
//
// The out-of-bounds set is produced by querying the tree against four
// halo rectangles that together cover every point outside the valid
// extent square, rather than by comparing each feature's bounds
// directly: a feature whose box intersects a halo rectangle is, by
// construction, out of bounds on that rectangle's side. This makes the
// returned *rtreego.Rtree the actual mechanism behind the report, not
// a side structure a caller could drop without changing the result.
func IndexFeatureBounds(d *Decoded, extent uint32) (*rtreego.Rtree, []int, error) {
	tree := rtreego.NewTree(2, 4, 16)

	projected, err := ProjectAll(d)
	if err != nil {
		return nil, nil, err
	}

	for i, p := range projected {
		minX, minY, maxX, maxY, ok := p.bounds()
		if !ok {
			continue
		}

		rect, err := rtreego.NewRect(rtreego.Point{float64(minX), float64(minY)},
			[]float64{float64(maxX-minX) + 1, float64(maxY-minY) + 1})
		if err != nil {
			return nil, nil, err
		}

		tree.Insert(&featureBox{index: i, bounds: rect})
	}

	outOfBounds, err := queryOutOfBounds(tree, extent)
	if err != nil {
		return nil, nil, err
	}

	return tree, outOfBounds, nil
}

// queryOutOfBounds searches tree against the four halos surrounding
// [0, extent] x [0, extent] and returns the union of features found,
// sorted ascending and deduplicated (a feature overflowing on two
// sides at once would otherwise surface in more than one halo's
// results).
func queryOutOfBounds(tree *rtreego.Rtree, extent uint32) ([]int, error) {
	halos, err := boundsHalos(extent)
	if err != nil {
		return nil, err
	}

	seen := make(map[int]bool)

	for _, halo := range halos {
		for _, result := range tree.SearchIntersect(halo) {
			seen[result.(*featureBox).index] = true
		}
	}

	out := make([]int, 0, len(seen))
	for idx := range seen {
		out = append(out, idx)
	}

	sort.Ints(out)

	return out, nil
}

// boundsHalos builds the four rectangles covering every point strictly
// outside [0, extent] x [0, extent]: left of x=0, right of x=extent,
// below y=0, and above y=extent. A feature's bounding box intersects
// one of these iff it has a coordinate on that side of the valid
// extent square, exactly the condition the direct min/max comparison
// this replaces was checking.
func boundsHalos(extent uint32) ([]*rtreego.Rect, error) {
	e := float64(extent)

	left, err := rtreego.NewRect(rtreego.Point{-haloSpan, -haloSpan}, []float64{haloSpan - 1, 2 * haloSpan})
	if err != nil {
		return nil, err
	}

	right, err := rtreego.NewRect(rtreego.Point{e + 1, -haloSpan}, []float64{haloSpan, 2 * haloSpan})
	if err != nil {
		return nil, err
	}

	bottom, err := rtreego.NewRect(rtreego.Point{-haloSpan, -haloSpan}, []float64{2 * haloSpan, haloSpan - 1})
	if err != nil {
		return nil, err
	}

	top, err := rtreego.NewRect(rtreego.Point{-haloSpan, e + 1}, []float64{2 * haloSpan, haloSpan})
	if err != nil {
		return nil, err
	}

	return []*rtreego.Rect{left, right, bottom, top}, nil
}
