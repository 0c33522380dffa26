package common

// Rect is an axis-aligned rectangle anchored at its minimum corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// CenteredRect builds a rect of the given size around center.
func CenteredRect(center Vec, width, height float64) Rect {
	return Rect{
		X:      center.X - width*0.5,
		Y:      center.Y - height*0.5,
		Width:  width,
		Height: height,
	}
}

// Contains reports whether p lies inside r. The max edges are exclusive.
func (r Rect) Contains(p Vec) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}

func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

func (r Rect) Center() Vec {
	return Vec{X: r.X + r.Width*0.5, Y: r.Y + r.Height*0.5}
}
