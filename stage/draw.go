package stage

import (
	"image"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/slidebutton"
)

// Glyph metrics of ebitenutil.DebugPrint.
const (
	glyphWidth  = 6
	glyphHeight = 16
)

// Draw clears the screen and paints the view tree in child order.
func (s *Scene) Draw(screen *ebiten.Image) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	screen.Fill(toRGBA(s.background, 1))
	count := s.drawNode(screen, s.view.Root)

	if s.debug {
		s.logger.Debug("frame drawn", "frame", s.frame, "nodes", count, "elapsed", time.Since(t0))
	}
}

// drawNode paints n and its children and returns the number of nodes drawn.
func (s *Scene) drawNode(screen *ebiten.Image, n *Node) int {
	if !n.Visible {
		return 0
	}
	alpha := n.WorldAlpha()
	if alpha <= 0 {
		return 0
	}

	target := screen
	if n.Clipped {
		target = s.clipTarget(screen, n)
		if target == nil {
			return 0
		}
	}

	count := 1
	x, y := n.WorldPosition()
	if n.Text != "" {
		s.drawText(target, n, x, y, alpha)
	} else if n.Color.A > 0 && n.Width > 0 && n.Height > 0 {
		s.drawRect(target, x, y, n.Width, n.Height, n.Color, alpha)
	}
	for _, c := range n.children {
		count += s.drawNode(screen, c)
	}
	return count
}

// clipTarget returns the sub-image of screen covering the node's clip span,
// or nil when the span is empty.
func (s *Scene) clipTarget(screen *ebiten.Image, n *Node) *ebiten.Image {
	var px float64
	if n.Parent != nil {
		px, _ = n.Parent.WorldPosition()
	}
	left := int(math.Floor(px + n.ClipLeft))
	right := int(math.Ceil(px + n.ClipRight))
	if right <= left {
		return nil
	}
	b := screen.Bounds()
	r := image.Rect(left, b.Min.Y, right, b.Max.Y).Intersect(b)
	if r.Empty() {
		return nil
	}
	return screen.SubImage(r).(*ebiten.Image)
}

func (s *Scene) drawRect(target *ebiten.Image, x, y, w, h float64, c slidebutton.Color, alpha float64) {
	if s.white == nil {
		s.white = ebiten.NewImage(1, 1)
		s.white.Fill(color.White)
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	scaleColor(&op.ColorScale, c, alpha)
	target.DrawImage(s.white, &op)
}

// drawText renders the debug font into a scratch image, then tints and
// centers it inside the node.
func (s *Scene) drawText(target *ebiten.Image, n *Node, x, y, alpha float64) {
	w := len(n.Text) * glyphWidth
	if w == 0 {
		return
	}
	if s.textBuf == nil || s.textBuf.Bounds().Dx() < w {
		s.textBuf = ebiten.NewImage(max(w, 256), glyphHeight)
	}
	s.textBuf.Clear()
	ebitenutil.DebugPrint(s.textBuf, n.Text)

	var op ebiten.DrawImageOptions
	op.GeoM.Translate(
		math.Round(x+(n.Width-float64(w))/2),
		math.Round(y+(n.Height-glyphHeight)/2),
	)
	scaleColor(&op.ColorScale, n.Color, alpha)
	target.DrawImage(s.textBuf.SubImage(image.Rect(0, 0, w, glyphHeight)).(*ebiten.Image), &op)
}

// scaleColor applies a non-premultiplied color and alpha as a premultiplied
// color scale.
func scaleColor(cs *ebiten.ColorScale, c slidebutton.Color, alpha float64) {
	a := float32(c.A * alpha)
	cs.Scale(float32(c.R)*a, float32(c.G)*a, float32(c.B)*a, a)
}

func toRGBA(c slidebutton.Color, alpha float64) color.RGBA {
	a := c.A * alpha
	return color.RGBA{
		R: uint8(c.R*a*255 + 0.5),
		G: uint8(c.G*a*255 + 0.5),
		B: uint8(c.B*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}
