package desktop

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tomz197/cannonfall/internal/draw"
	"github.com/tomz197/cannonfall/internal/loop"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

var background = color.RGBA{R: 12, G: 12, B: 20, A: 255}

var palette = map[draw.Color]color.RGBA{
	draw.ColorGreen:  {R: 40, G: 200, B: 70, A: 255},
	draw.ColorRed:    {R: 230, G: 50, B: 50, A: 255},
	draw.ColorBlue:   {R: 60, G: 110, B: 240, A: 255},
	draw.ColorWhite:  {R: 240, G: 240, B: 240, A: 255},
	draw.ColorYellow: {R: 245, G: 215, B: 60, A: 255},
}

// rgba returns the window colour for a palette entry.
func rgba(c draw.Color) color.RGBA {
	if col, ok := palette[c]; ok {
		return col
	}
	return palette[draw.ColorWhite]
}

// renderer draws commands onto an ebiten image.
type renderer struct {
	fillImg *ebiten.Image // 1x1 white source for polygon triangles
	face    font.Face
	vs      []ebiten.Vertex
	is      []uint16
}

func newRenderer() *renderer {
	return &renderer{face: basicfont.Face7x13}
}

func (r *renderer) drawCommands(dst *ebiten.Image, cmds []draw.Command) {
	for _, cmd := range cmds {
		col := rgba(cmd.Color)
		switch cmd.Kind {
		case draw.KindRect:
			vector.DrawFilledRect(dst, float32(cmd.X), float32(cmd.Y), float32(cmd.W), float32(cmd.H), col, false)
		case draw.KindCircle:
			vector.DrawFilledCircle(dst, float32(cmd.X), float32(cmd.Y), float32(cmd.R), col, true)
		case draw.KindPolygon:
			r.fillPolygon(dst, cmd.Points, col)
		case draw.KindText:
			text.Draw(dst, cmd.Text, r.face, int(cmd.X), int(cmd.Y), col)
		}
	}
}

func (r *renderer) fillPolygon(dst *ebiten.Image, points []draw.Point, col color.RGBA) {
	if len(points) < 3 {
		return
	}
	if r.fillImg == nil {
		r.fillImg = ebiten.NewImage(1, 1)
		r.fillImg.Fill(color.White)
	}

	var path vector.Path
	path.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	r.vs, r.is = path.AppendVerticesAndIndicesForFilling(r.vs[:0], r.is[:0])
	for i := range r.vs {
		r.vs[i].SrcX = 0
		r.vs[i].SrcY = 0
		r.vs[i].ColorR = float32(col.R) / 255
		r.vs[i].ColorG = float32(col.G) / 255
		r.vs[i].ColorB = float32(col.B) / 255
		r.vs[i].ColorA = float32(col.A) / 255
	}
	dst.DrawTriangles(r.vs, r.is, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// drawCentered draws lines of text centred horizontally, starting at
// baseline y.
func (r *renderer) drawCentered(dst *ebiten.Image, y int, col color.Color, lines ...string) int {
	width := dst.Bounds().Dx()
	lineHeight := r.face.Metrics().Height.Ceil() + 4
	for _, line := range lines {
		b := text.BoundString(r.face, line)
		text.Draw(dst, line, r.face, (width-b.Dx())/2, y, col)
		y += lineHeight
	}
	return y
}

func (g *Game) drawMenu(dst *ebiten.Image) {
	r := g.renderer
	y := dst.Bounds().Dy()/2 - 100
	y = r.drawCentered(dst, y, rgba(draw.ColorYellow), "C A N N O N F A L L")
	y = r.drawCentered(dst, y, rgba(draw.ColorWhite), "Shoot the falling blocks before they land")

	y += 20
	for i, d := range loop.Difficulties {
		line := fmt.Sprintf("%d  %-6s  a target every %.1fs", i+1, strings.ToUpper(d.Name), d.SpawnInterval.Seconds())
		col := rgba(draw.ColorWhite)
		if d == g.selected {
			line = "> " + line + " <"
			col = rgba(draw.ColorGreen)
		}
		y = r.drawCentered(dst, y, col, line)
	}

	y += 20
	y = r.drawCentered(dst, y, rgba(draw.ColorWhite),
		"Arrows / A D    move",
		"SPACE / tap     fire",
		"ESC / Q         quit",
	)
	r.drawCentered(dst, y+20, rgba(draw.ColorYellow), "Press 1, 2 or 3 to start, or tap")
}

func (g *Game) drawOver(dst *ebiten.Image) {
	r := g.renderer
	y := dst.Bounds().Dy()/2 - 40
	y = r.drawCentered(dst, y, rgba(draw.ColorRed), "GAME OVER")
	y = r.drawCentered(dst, y+10, rgba(draw.ColorWhite),
		fmt.Sprintf("Score: %d", g.final),
		fmt.Sprintf("Best: %d  (%s)", g.best, g.selected),
	)
	r.drawCentered(dst, y+10, rgba(draw.ColorYellow),
		"SPACE, Enter or tap to restart",
		"1 2 3 to change difficulty",
	)
}
