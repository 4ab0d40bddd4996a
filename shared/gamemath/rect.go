package gamemath

// Point is a 2D position.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned box. The left and top edges are inclusive and the
// right and bottom edges exclusive, so a box never contains its own Right()
// or Bottom() coordinate.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Left() float64    { return r.X }
func (r Rect) Top() float64     { return r.Y }
func (r Rect) Right() float64   { return r.X + r.W }
func (r Rect) Bottom() float64  { return r.Y + r.H }
func (r Rect) CenterX() float64 { return r.X + r.W/2 }
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

func (r Rect) TopLeft() Point     { return Point{r.Left(), r.Top()} }
func (r Rect) MidTop() Point      { return Point{r.CenterX(), r.Top()} }
func (r Rect) TopRight() Point    { return Point{r.Right(), r.Top()} }
func (r Rect) MidLeft() Point     { return Point{r.Left(), r.CenterY()} }
func (r Rect) MidRight() Point    { return Point{r.Right(), r.CenterY()} }
func (r Rect) BottomLeft() Point  { return Point{r.Left(), r.Bottom()} }
func (r Rect) MidBottom() Point   { return Point{r.CenterX(), r.Bottom()} }
func (r Rect) BottomRight() Point { return Point{r.Right(), r.Bottom()} }

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left() && p.X < r.Right() && p.Y >= r.Top() && p.Y < r.Bottom()
}

// Overlaps reports whether r and o share a region of positive area.
func (r Rect) Overlaps(o Rect) bool {
	return r.Left() < o.Right() && o.Left() < r.Right() &&
		r.Top() < o.Bottom() && o.Top() < r.Bottom()
}

// Penetration returns the overlap depth of r into o on each axis. Both values
// are zero when the boxes do not overlap.
func (r Rect) Penetration(o Rect) (dx, dy float64) {
	if !r.Overlaps(o) {
		return 0, 0
	}
	dx = min(r.Right(), o.Right()) - max(r.Left(), o.Left())
	dy = min(r.Bottom(), o.Bottom()) - max(r.Top(), o.Top())
	return dx, dy
}
