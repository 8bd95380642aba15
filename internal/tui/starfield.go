package tui

import (
	"math/rand"

	"github.com/yumegusa/nekotoki/internal/config"
)

type star struct {
	x, y   int
	bright bool
}

// StarField is the decorative overlay: a fixed set of random star positions
// regenerated on every resize, with a few stars flipping brightness each
// frame. Purely cosmetic; it carries no timing state.
type StarField struct {
	rng    *rand.Rand
	stars  []star
	width  int
	height int
}

// NewStarField creates an empty field. Positions appear on the first
// Resize. A fixed seed makes the layout deterministic for tests.
func NewStarField(seed int64) *StarField {
	return &StarField{rng: rand.New(rand.NewSource(seed))}
}

// Resize regenerates all star positions within the new bounds.
func (f *StarField) Resize(width, height int) {
	f.width, f.height = width, height
	f.stars = f.stars[:0]
	if width <= 0 || height <= 0 {
		return
	}
	for i := 0; i < config.StarCount; i++ {
		f.stars = append(f.stars, star{
			x:      f.rng.Intn(width),
			y:      f.rng.Intn(height),
			bright: f.rng.Intn(config.TwinkleFraction) == 0,
		})
	}
}

// Twinkle flips the brightness of a small random subset of stars. Called
// once per display frame.
func (f *StarField) Twinkle() {
	if len(f.stars) == 0 {
		return
	}
	n := len(f.stars) / config.TwinkleFraction
	if n < 1 {
		n = 1
	}
	for i := 0; i < n; i++ {
		idx := f.rng.Intn(len(f.stars))
		f.stars[idx].bright = !f.stars[idx].bright
	}
}

// Lines renders the field as height rows of width cells, stars drawn as
// dots and the occasional four-pointed spark.
func (f *StarField) Lines() []string {
	if f.width <= 0 || f.height <= 0 {
		return nil
	}
	grid := make([][]rune, f.height)
	for y := range grid {
		row := make([]rune, f.width)
		for x := range row {
			row[x] = ' '
		}
		grid[y] = row
	}
	for _, s := range f.stars {
		if s.y >= f.height || s.x >= f.width {
			continue
		}
		if s.bright {
			grid[s.y][s.x] = '✦'
		} else {
			grid[s.y][s.x] = '·'
		}
	}
	// Rows keep their trailing spaces so the background paints edge to edge.
	lines := make([]string, f.height)
	for y, row := range grid {
		lines[y] = string(row)
	}
	return lines
}

// Size returns the current bounds.
func (f *StarField) Size() (int, int) {
	return f.width, f.height
}
