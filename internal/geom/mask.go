package geom

// Mask is a per-pixel collision mask.
type Mask struct {
	W, H int
	bits []bool
}

// NewMask returns an empty w x h mask.
func NewMask(w, h int) *Mask {
	return &Mask{W: w, H: h, bits: make([]bool, w*h)}
}

// DiscMask returns a mask with a filled disc of the given diameter.
func DiscMask(diameter int) *Mask {
	if diameter < 1 {
		diameter = 1
	}
	m := NewMask(diameter, diameter)
	r := 0.5 * float64(diameter)
	for y := 0; y < diameter; y++ {
		for x := 0; x < diameter; x++ {
			dx := float64(x) + 0.5 - r
			dy := float64(y) + 0.5 - r
			if dx*dx+dy*dy <= r*r {
				m.Set(x, y, true)
			}
		}
	}
	return m
}

// Set writes one pixel. Out-of-bounds writes are ignored.
func (m *Mask) Set(x, y int, on bool) {
	if x >= 0 && x < m.W && y >= 0 && y < m.H {
		m.bits[y*m.W+x] = on
	}
}

// Get reads one pixel. Out-of-bounds reads are false.
func (m *Mask) Get(x, y int) bool {
	if x >= 0 && x < m.W && y >= 0 && y < m.H {
		return m.bits[y*m.W+x]
	}
	return false
}

// Count returns the number of set pixels.
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}

// Overlap reports whether any set pixel of o, placed with its top-left
// corner at (dx, dy) relative to m, coincides with a set pixel of m.
func (m *Mask) Overlap(o *Mask, dx, dy int) bool {
	x0, x1 := max(0, dx), min(m.W, dx+o.W)
	y0, y1 := max(0, dy), min(m.H, dy+o.H)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if m.bits[y*m.W+x] && o.bits[(y-dy)*o.W+(x-dx)] {
				return true
			}
		}
	}
	return false
}
