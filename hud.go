package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/Vann06/gloamway/common"
)

var (
	menuBackground  = color.NRGBA{R: 8, G: 8, B: 14, A: 255}
	menuTitleColor  = color.NRGBA{R: 255, G: 240, B: 120, A: 255}
	menuTextColor   = color.NRGBA{R: 230, G: 230, B: 230, A: 255}
	menuDimColor    = color.NRGBA{R: 150, G: 150, B: 160, A: 255}
	caughtTextColor = color.NRGBA{R: 240, G: 70, B: 70, A: 255}
)

var hudFace ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)

func drawCenteredText(dst *ebiten.Image, s string, y int, c color.NRGBA) {
	w, _ := ebtext.Measure(s, hudFace, 0)
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(float64(common.BaseWidth)/2-w/2, float64(y))
	op.ColorScale.ScaleWithColor(c)
	ebtext.Draw(dst, s, hudFace, op)
}

// drawOverlay dims the whole frame under an end-of-run message.
func drawOverlay(dst *ebiten.Image, alpha uint8) {
	vector.DrawFilledRect(dst, 0, 0, common.BaseWidth, common.BaseHeight, color.NRGBA{A: alpha}, false)
}
