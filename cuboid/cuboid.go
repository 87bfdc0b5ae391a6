// Package cuboid counts the lit cells of the submarine reactor (2021 day 22)
// by keeping the lit region as a set of pairwise disjoint boxes. Cells are
// never enumerated, so steps spanning ±100000 on every axis are cheap.
package cuboid

import (
	"fmt"
	"math"
	"math/bits"

	aoc "github.com/kecors/aoc21"
)

// Range is the closed interval [Low, High]. Low <= High.
type Range struct {
	Low  int64 `validate:"ltefield=High"`
	High int64
}

// Len is the number of integers in r.
func (r Range) Len() int64 {
	return r.High - r.Low + 1
}

// Overlaps reports whether r and o share at least one integer.
func (r Range) Overlaps(o Range) bool {
	return !(o.High < r.Low || o.Low > r.High)
}

// Intersect returns the part of r inside o.
func (r Range) Intersect(o Range) (Range, bool) {
	if !r.Overlaps(o) {
		return Range{}, false
	}
	return Range{max(r.Low, o.Low), min(r.High, o.High)}, true
}

// IntersectSplit cuts r at the boundaries of o. It returns nil when they are
// disjoint; otherwise the piece of r below o (if any), the overlap, and the
// piece of r above o (if any), in that order. The pieces exactly cover r.
func (r Range) IntersectSplit(o Range) []Range {
	mid, ok := r.Intersect(o)
	if !ok {
		return nil
	}
	out := make([]Range, 0, 3)
	if r.Low < mid.Low {
		out = append(out, Range{r.Low, mid.Low - 1})
	}
	out = append(out, mid)
	if mid.High < r.High {
		out = append(out, Range{mid.High + 1, r.High})
	}
	return out
}

func (r Range) String() string {
	return fmt.Sprintf("%d..%d", r.Low, r.High)
}

// Cuboid is an axis-aligned box of unit cells.
type Cuboid struct {
	X, Y, Z Range
}

// Count is the number of cells in c. The product must fit in an int64;
// see Volume.
func (c Cuboid) Count() int64 {
	return c.X.Len() * c.Y.Len() * c.Z.Len()
}

// Volume is the number of cells in c. ok is false when it does not fit in
// an int64.
func (c Cuboid) Volume() (n int64, ok bool) {
	v := uint64(1)
	for _, r := range []Range{c.X, c.Y, c.Z} {
		// High >= Low, so the wrapped difference is exact as a uint64.
		l := uint64(r.High-r.Low) + 1
		if l == 0 {
			return 0, false
		}
		hi, lo := bits.Mul64(v, l)
		if hi != 0 {
			return 0, false
		}
		v = lo
	}
	if v > math.MaxInt64 {
		return 0, false
	}
	return int64(v), true
}

// Intersects reports whether c and o share a cell.
func (c Cuboid) Intersects(o Cuboid) bool {
	return c.X.Overlaps(o.X) && c.Y.Overlaps(o.Y) && c.Z.Overlaps(o.Z)
}

// Clip returns the part of c inside bounds.
func (c Cuboid) Clip(bounds Cuboid) (Cuboid, bool) {
	x, okX := c.X.Intersect(bounds.X)
	y, okY := c.Y.Intersect(bounds.Y)
	z, okZ := c.Z.Intersect(bounds.Z)
	if !okX || !okY || !okZ {
		return Cuboid{}, false
	}
	return Cuboid{x, y, z}, true
}

// Fragment splits c along the faces of o. The pieces partition c; exactly
// one of them intersects o. It returns nil when c and o are disjoint.
func (c Cuboid) Fragment(o Cuboid) []Cuboid {
	if !c.Intersects(o) {
		return nil
	}
	xs := c.X.IntersectSplit(o.X)
	ys := c.Y.IntersectSplit(o.Y)
	zs := c.Z.IntersectSplit(o.Z)
	out := make([]Cuboid, 0, len(xs)*len(ys)*len(zs))
	for _, x := range xs {
		for _, y := range ys {
			for _, z := range zs {
				out = append(out, Cuboid{x, y, z})
			}
		}
	}
	return out
}

// Cells calls f for every cell of c. It is meant for small boxes only.
func (c Cuboid) Cells(f func(aoc.Pt3[int64])) {
	for z := c.Z.Low; z <= c.Z.High; z++ {
		for y := c.Y.Low; y <= c.Y.High; y++ {
			for x := c.X.Low; x <= c.X.High; x++ {
				f(aoc.Pt3[int64]{X: x, Y: y, Z: z})
			}
		}
	}
}

func (c Cuboid) String() string {
	return fmt.Sprintf("x=%v,y=%v,z=%v", c.X, c.Y, c.Z)
}
