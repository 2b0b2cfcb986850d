package level

// Ground is the result of a ground query: either no ground, or a surface at
// a height.
type Ground struct {
	height float64
	ok     bool
}

func NoGround() Ground { return Ground{} }

func GroundAt(height float64) Ground { return Ground{height: height, ok: true} }

// Height returns the surface height and whether there is ground at all.
func (g Ground) Height() (float64, bool) { return g.height, g.ok }

func (g Ground) Exists() bool { return g.ok }
