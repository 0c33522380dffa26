package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/zombierun/common"
	"github.com/milk9111/zombierun/ecs/component"
	"github.com/milk9111/zombierun/obj"
)

const (
	textScale     = 2
	groundSpacing = 40.0
)

var (
	colorSky       = color.RGBA{24, 20, 37, 255}
	colorGround    = color.RGBA{90, 78, 68, 255}
	colorPlayer    = color.RGBA{80, 160, 230, 255}
	colorBullet    = color.RGBA{250, 220, 90, 255}
	colorZombie    = color.RGBA{110, 190, 90, 255}
	colorCorpse    = color.RGBA{120, 120, 110, 255}
	colorVulture   = color.RGBA{170, 110, 200, 255}
	colorDiving    = color.RGBA{230, 80, 80, 255}
	colorText      = color.RGBA{240, 240, 240, 255}
	colorIndicator = color.RGBA{250, 220, 90, 255}
	colorOverlay   = color.RGBA{0, 0, 0, 160}
)

type renderer struct {
	face text.Face
}

func newRenderer() *renderer {
	return &renderer{face: text.NewGoXFace(basicfont.Face7x13)}
}

func (r *renderer) draw(screen *ebiten.Image, g *Game) {
	screen.Fill(colorSky)
	w := g.sim.World()
	cam := g.camera

	r.drawGround(screen, cam, g.defs.Player.Center.Y-12, w.ElapsedSeconds*g.defs.Player.Speed)

	for _, v := range g.collisions.Vultures() {
		if !v.Active() && v.Animator().Current() != component.ClipVultureDying {
			continue
		}
		r.drawBody(screen, cam, v.Rect(), vultureColor(v.Animator()))
	}
	for _, z := range g.collisions.Zombies() {
		if !z.Active() {
			continue
		}
		r.drawBody(screen, cam, z.Rect(), zombieColor(z.Animator()))
	}
	for _, b := range g.collisions.Bullets() {
		if b.Active() {
			r.drawBody(screen, cam, b.Rect(), colorBullet)
		}
	}
	p := g.collisions.Player()
	r.drawBody(screen, cam, p.Rect(), playerColor(p.Animator()))

	r.drawHUD(screen, g)
}

// drawGround draws the ground line and ticks that scroll with the distance
// run so far.
func (r *renderer) drawGround(screen *ebiten.Image, cam *obj.Camera, y, distance float64) {
	width := float64(screen.Bounds().Dx())
	_, sy := cam.ToScreen(common.V(0, y))
	vector.StrokeLine(screen, 0, float32(sy), float32(width), float32(sy), 2, colorGround, false)

	left := cam.ToWorld(0, sy).X
	right := cam.ToWorld(width, sy).X
	first := math.Floor((left+distance)/groundSpacing) * groundSpacing
	for x := first; x-distance <= right; x += groundSpacing {
		tx, _ := cam.ToScreen(common.V(x-distance, y))
		vector.StrokeLine(screen, float32(tx), float32(sy), float32(tx)-6, float32(sy)+8, 1, colorGround, false)
	}
}

func (r *renderer) drawBody(screen *ebiten.Image, cam *obj.Camera, rect common.Rect, clr color.Color) {
	x, y, w, h := cam.RectToScreen(rect)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func (r *renderer) drawHUD(screen *ebiten.Image, g *Game) {
	sw := float64(screen.Bounds().Dx())
	sh := float64(screen.Bounds().Dy())
	h := g.hud

	r.text(screen, h.BulletText(), 16, 16, text.AlignStart, colorText, 1)
	r.text(screen, h.KillText(), sw-16, 16, text.AlignEnd, colorText, 1)
	if g.sim.World().AutoFire {
		r.text(screen, "AUTO", sw/2, 16, text.AlignCenter, colorIndicator, 1)
	}

	for _, ind := range h.Indicators() {
		x, y := g.camera.ToScreen(ind.Source)
		r.text(screen, ind.Text, x, y-ind.Rise(), text.AlignCenter, colorIndicator, 1-ind.Progress)
	}

	if offset, alpha := h.Banner(); alpha > 0 {
		r.text(screen, "PIERCING ROUNDS", sw/2, sh/3+offset, text.AlignCenter, colorIndicator, alpha)
	}

	if h.StartScreen() {
		vector.DrawFilledRect(screen, 0, 0, float32(sw), float32(sh), colorOverlay, false)
		title := "ZOMBIE RUN"
		if g.sim.World().IsDead {
			title = "YOU DIED"
		}
		r.text(screen, title, sw/2, sh/2-40, text.AlignCenter, colorText, 1)
		r.text(screen, "ENTER to start   J/K to shoot   A auto fire", sw/2, sh/2+10, text.AlignCenter, colorText, 0.8)
	}
}

func (r *renderer) text(screen *ebiten.Image, s string, x, y float64, align text.Align, clr color.Color, alpha float64) {
	if alpha <= 0 {
		return
	}
	op := &text.DrawOptions{}
	op.PrimaryAlign = align
	op.GeoM.Scale(textScale, textScale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(screen, s, r.face, op)
}

func (r *renderer) debugText(screen *ebiten.Image, s string) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(8, float64(screen.Bounds().Dy())-20)
	op.ColorScale.ScaleWithColor(colorText)
	text.Draw(screen, s, r.face, op)
}

func playerColor(a *obj.Animator) color.Color {
	switch a.Current() {
	case component.ClipPlayerDying:
		return fade(colorPlayer, 1-a.Progress()*0.7)
	case component.ClipPlayerShootingUp:
		if !a.Finished(component.ClipPlayerShootingUp) {
			return colorBullet
		}
	}
	return colorPlayer
}

func zombieColor(a *obj.Animator) color.Color {
	if a.Current() == component.ClipZombieDying {
		return fade(colorCorpse, 1-a.Progress()*0.5)
	}
	return colorZombie
}

func vultureColor(a *obj.Animator) color.Color {
	switch a.Current() {
	case component.ClipVultureDiving:
		return colorDiving
	case component.ClipVultureDying:
		return fade(colorCorpse, 1-a.Progress())
	}
	return colorVulture
}

func fade(c color.RGBA, alpha float64) color.Color {
	a := common.Clamp01(alpha)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}
