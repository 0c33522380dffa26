package obj

import "github.com/milk9111/zombierun/common"

// Camera maps y-up world space, centered on the origin, to y-down screen
// pixels. It never moves; the world scrolls past it instead.
type Camera struct {
	screenW int
	screenH int
	zoom    float64
}

// NewCamera creates a camera with the given logical screen size and zoom.
func NewCamera(screenW, screenH int, zoom float64) *Camera {
	c := &Camera{zoom: 1}
	c.SetScreenSize(screenW, screenH)
	c.SetZoom(zoom)
	return c
}

// FitCamera picks the zoom that shows viewWidth world units across the screen.
func FitCamera(screenW, screenH int, viewWidth float64) *Camera {
	zoom := 1.0
	if viewWidth > 0 && screenW > 0 {
		zoom = float64(screenW) / viewWidth
	}
	return NewCamera(screenW, screenH, zoom)
}

func (c *Camera) SetZoom(z float64) {
	if z <= 0 {
		return
	}
	c.zoom = z
}

func (c *Camera) Zoom() float64 {
	return c.zoom
}

func (c *Camera) SetScreenSize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	c.screenW = w
	c.screenH = h
}

// ToScreen converts a world point to screen pixels.
func (c *Camera) ToScreen(p common.Vec) (float64, float64) {
	return float64(c.screenW)/2 + p.X*c.zoom, float64(c.screenH)/2 - p.Y*c.zoom
}

// ToWorld is the inverse of ToScreen.
func (c *Camera) ToWorld(x, y float64) common.Vec {
	return common.V((x-float64(c.screenW)/2)/c.zoom, (float64(c.screenH)/2-y)/c.zoom)
}

// RectToScreen converts a world rect to its screen-space top-left and size.
func (c *Camera) RectToScreen(r common.Rect) (x, y, w, h float64) {
	x, y = c.ToScreen(common.V(r.X, r.Y+r.Height))
	return x, y, r.Width * c.zoom, r.Height * c.zoom
}
