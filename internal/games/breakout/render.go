package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// BlockChar fills every cell covered by an entity.
const BlockChar = '█'

// Render rasterizes the playfield into dst, scaling pixels to cells.
// Any entity that overlaps the playfield covers at least one cell, so a
// 20 pixel ball stays visible on a small terminal.
func (s *State) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	for _, brick := range s.Bricks.All() {
		s.fill(dst, brick)
	}
	s.fill(dst, s.Paddle)
	s.fill(dst, s.Ball)
}

// fill paints the cells covered by e.
func (s *State) fill(dst *core.Screen, e Entity) {
	screenW, screenH := s.screenSize()
	sx := float64(dst.Width()) / screenW
	sy := float64(dst.Height()) / screenH

	x0 := int(math.Floor(e.X * sx))
	x1 := int(math.Ceil(e.Right() * sx))
	y0 := int(math.Floor(e.Y * sy))
	y1 := int(math.Ceil(e.Bottom() * sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	dst.FillCells(x0, y0, x1, y1, BlockChar, e.Color)
}
