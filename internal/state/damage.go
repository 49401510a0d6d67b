package state

import (
	"math"
	"sync"
)

// Region is an axis-aligned area of a surface.
type Region struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// SegmentRegion is the bounding box of the segment from a to b, grown by
// pad on every side.
func SegmentRegion(a, b Point, pad float64) Region {
	minX, maxX := math.Min(a.X, b.X), math.Max(a.X, b.X)
	minY, maxY := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)
	return Region{
		X:      minX - pad,
		Y:      minY - pad,
		Width:  maxX - minX + 2*pad,
		Height: maxY - minY + 2*pad,
	}
}

// Union returns the smallest region covering r and o.
func (r Region) Union(o Region) Region {
	minX := math.Min(r.X, o.X)
	minY := math.Min(r.Y, o.Y)
	maxX := math.Max(r.X+r.Width, o.X+o.Width)
	maxY := math.Max(r.Y+r.Height, o.Y+o.Height)
	return Region{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Damage accumulates the area changed since it was last taken.
type Damage struct {
	region Region
	dirty  bool
	mu     sync.Mutex
}

func (d *Damage) Add(r Region) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.dirty {
		d.region = d.region.Union(r)
		return
	}
	d.region = r
	d.dirty = true
}

// Take returns the accumulated region and resets it. ok is false when
// nothing changed.
func (d *Damage) Take() (Region, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	r, ok := d.region, d.dirty
	d.region = Region{}
	d.dirty = false
	return r, ok
}
