// Package breakout implements the brick breaker simulation: a paddle, a
// ball and a field of bricks advanced one frame at a time by Step.
package breakout

import (
	"iter"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// BrickField is a fixed set of brick slots created once per game.
// Slot indices never shift: removing a brick only clears its alive flag,
// so iteration order is the creation order for the whole game.
type BrickField struct {
	bricks []Entity
	alive  []bool
	count  int
}

// NewBrickField builds the grid described by cfg.
// Bricks are created column by column from the top-left corner, and the k-th
// brick's color is interpolated from StartColor toward EndColor by
// k/(n-1).
func NewBrickField(cfg config.BricksConfig) *BrickField {
	n := cfg.BrickCount()
	bricks := make([]Entity, 0, n)

	k := 0
	for i := range cfg.Columns {
		for j := range cfg.Rows {
			var factor float32
			if n > 1 {
				factor = float32(k) / float32(n-1)
			}
			bricks = append(bricks, Entity{
				Rect: core.NewRect(
					float64(i)*(cfg.Width+cfg.Gap),
					float64(j)*(cfg.Height+cfg.Gap),
					cfg.Width, cfg.Height,
				),
				Color: cfg.StartColor.Lerp(cfg.EndColor.RGB, factor),
			})
			k++
		}
	}

	return NewBrickFieldFrom(bricks)
}

// NewBrickFieldFrom builds a field from explicit bricks, all alive.
func NewBrickFieldFrom(bricks []Entity) *BrickField {
	alive := make([]bool, len(bricks))
	for i := range alive {
		alive[i] = true
	}
	return &BrickField{
		bricks: bricks,
		alive:  alive,
		count:  len(bricks),
	}
}

// Len returns the number of slots, removed bricks included.
func (f *BrickField) Len() int {
	return len(f.bricks)
}

// Count returns the number of bricks still alive.
func (f *BrickField) Count() int {
	return f.count
}

// Alive reports whether slot i still holds a brick.
func (f *BrickField) Alive(i int) bool {
	return i >= 0 && i < len(f.alive) && f.alive[i]
}

// Brick returns the brick in slot i, alive or not.
func (f *BrickField) Brick(i int) Entity {
	return f.bricks[i]
}

// Remove destroys the brick in slot i. Removing an empty slot is a no-op.
func (f *BrickField) Remove(i int) {
	if !f.Alive(i) {
		return
	}
	f.alive[i] = false
	f.count--
}

// All yields the live bricks in slot order.
func (f *BrickField) All() iter.Seq2[int, Entity] {
	return func(yield func(int, Entity) bool) {
		for i, b := range f.bricks {
			if !f.alive[i] {
				continue
			}
			if !yield(i, b) {
				return
			}
		}
	}
}
