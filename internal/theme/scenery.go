package theme

// Sprite is one decorative element in world coordinates.
type Sprite struct {
	X, Y     float64
	H        float64 // Vertical extent for tall elements, 0 for glyphs
	Glyph    string
	Rotation float64 // Degrees
}

// Scenery is the animated background of a style. It is purely cosmetic and
// advances on its own timer.
type Scenery interface {
	Step()
	Sprites() []Sprite
}

const (
	worldW = 800.0
	worldH = 500.0
)

type clouds struct{ items []Sprite }

func newClouds(rng Rand) *clouds {
	c := &clouds{}
	for range 3 {
		c.items = append(c.items, Sprite{X: rng.Float64() * worldW, Y: rng.Float64() * 200, Glyph: "☁"})
	}
	return c
}

// Step drifts every cloud left one pixel, wrapping from -100 to 900.
func (c *clouds) Step() {
	for i := range c.items {
		if c.items[i].X <= -100 {
			c.items[i].X = 900
		} else {
			c.items[i].X--
		}
	}
}

func (c *clouds) Sprites() []Sprite { return cloneSprites(c.items) }

type trees struct{ items []Sprite }

func newTrees(rng Rand) *trees {
	t := &trees{}
	for range 4 {
		h := 200 + rng.Float64()*100
		t.items = append(t.items, Sprite{X: rng.Float64() * worldW, Y: worldH - h, H: h, Glyph: "🎋"})
	}
	return t
}

// Step slides every tree left 1.5 pixels, wrapping from -50 to 850.
func (t *trees) Step() {
	for i := range t.items {
		if t.items[i].X <= -50 {
			t.items[i].X = 850
		} else {
			t.items[i].X -= 1.5
		}
	}
}

func (t *trees) Sprites() []Sprite { return cloneSprites(t.items) }

type gears struct {
	items  []Sprite
	speeds []float64
}

func newGears(rng Rand) *gears {
	g := &gears{}
	anchors := [][2]float64{{100, 100}, {200, 300}, {600, 150}, {700, 400}}
	for i, a := range anchors {
		size := 60 + rng.Float64()*40
		g.items = append(g.items, Sprite{X: a[0], Y: a[1], H: size, Glyph: "⚙"})
		speed := 1.0
		if i%2 == 1 {
			speed = -1
		}
		g.speeds = append(g.speeds, speed)
	}
	return g
}

// Step turns each gear one degree, alternating direction.
func (g *gears) Step() {
	for i := range g.items {
		g.items[i].Rotation += g.speeds[i]
	}
}

func (g *gears) Sprites() []Sprite { return cloneSprites(g.items) }

type snow struct {
	items  []Sprite
	speeds []float64
	sway   []float64
}

func newSnow(rng Rand) *snow {
	s := &snow{}
	for range 50 {
		s.items = append(s.items, Sprite{X: rng.Float64() * worldW, Y: rng.Float64() * worldH, Glyph: "·"})
		s.speeds = append(s.speeds, 1+rng.Float64()*2)
		s.sway = append(s.sway, rng.Float64()*2-1)
	}
	return s
}

// Step lets each flake fall, wrapping to the top at the bottom edge, and
// sway sideways, reversing at the side edges.
func (s *snow) Step() {
	for i := range s.items {
		f := &s.items[i]
		prevX := f.X
		if f.Y >= worldH {
			f.Y = 0
		} else {
			f.Y += s.speeds[i]
		}
		f.X += s.sway[i]
		if prevX <= 0 || prevX >= worldW {
			s.sway[i] = -s.sway[i]
		}
	}
}

func (s *snow) Sprites() []Sprite { return cloneSprites(s.items) }

func cloneSprites(in []Sprite) []Sprite {
	out := make([]Sprite, len(in))
	copy(out, in)
	return out
}
