package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	hudFace = text.NewGoXFace(basicfont.Face7x13)

	colorRevealed = color.RGBA{214, 214, 206, 255}
	colorHidden   = color.RGBA{120, 130, 150, 255}
	colorGridLine = color.RGBA{70, 70, 80, 255}
	colorMine     = color.RGBA{20, 20, 20, 255}
	colorExploded = color.RGBA{210, 40, 40, 255}
	colorHUD      = color.RGBA{240, 240, 240, 255}

	countColors = [9]color.RGBA{
		{},
		{25, 60, 200, 255},
		{20, 130, 40, 255},
		{200, 30, 30, 255},
		{20, 20, 120, 255},
		{120, 20, 20, 255},
		{20, 120, 120, 255},
		{0, 0, 0, 255},
		{90, 90, 90, 255},
	}
)

// Render draws background, board and HUD. Effects are drawn afterwards by
// the effect system.
func (s *Session) Render(screen *ebiten.Image) {
	s.assets.DrawBackground(screen, s.cfg.Assets.Background)

	b := s.Board
	size := float32(s.Layout.CellSize)
	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.Cols(); c++ {
			x, y := s.Layout.CellOrigin(r, c)
			s.drawCell(screen, r, c, x, y, size)
		}
	}

	hud := fmt.Sprintf("Score %d   Bombs %d   %s", b.Score, s.Bombs, s.status())
	opts := &text.DrawOptions{}
	opts.GeoM.Translate(float64(s.Layout.OriginX), 10)
	opts.ColorScale.ScaleWithColor(colorHUD)
	text.Draw(screen, hud, hudFace, opts)
}

func (s *Session) drawCell(screen *ebiten.Image, r, c int, x, y, size float32) {
	b := s.Board
	mine := b.Mines.At(r, c)

	switch {
	case mine && s.State == StateLost:
		fill := colorRevealed
		if b.Selected.At(r, c) {
			fill = colorExploded
		}
		vector.DrawFilledRect(screen, x, y, size, size, fill, false)
		vector.DrawFilledCircle(screen, x+size/2, y+size/2, size/4, colorMine, true)

	case b.Selected.At(r, c) && !mine:
		vector.DrawFilledRect(screen, x, y, size, size, colorRevealed, false)
		if n := b.Count(r, c); n > 0 {
			opts := &text.DrawOptions{}
			opts.GeoM.Translate(float64(x+size/2-3), float64(y+size/2-7))
			opts.ColorScale.ScaleWithColor(countColors[n])
			text.Draw(screen, fmt.Sprint(n), hudFace, opts)
		}

	default:
		vector.DrawFilledRect(screen, x, y, size, size, colorHidden, false)
		s.assets.DrawTile(screen, s.cfg.Assets.Tile, s.Layout.CellSize, s.Layout.CellSize, float64(x), float64(y))
	}

	vector.StrokeRect(screen, x, y, size, size, 1, colorGridLine, false)
}

func (s *Session) status() string {
	switch s.State {
	case StateWon:
		return "cleared! press R"
	case StateLost:
		return "boom! press R"
	}
	return ""
}
