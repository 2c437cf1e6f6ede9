package theme

import (
	"math/rand"
	"testing"
)

// fixedRand returns scripted values, repeating the last one when exhausted.
type fixedRand struct {
	floats []float64
	ints   []int
}

func (r *fixedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.5
	}
	v := r.floats[0]
	if len(r.floats) > 1 {
		r.floats = r.floats[1:]
	}
	return v
}

func (r *fixedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	if len(r.ints) > 1 {
		r.ints = r.ints[1:]
	}
	return v % n
}

func TestBuiltinStyles(t *testing.T) {
	want := []string{Classic, Metal, Bamboo, Crystal}
	got := Names()
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	glyphs := map[string]string{Classic: "☀", Metal: "⚡", Bamboo: "🍃", Crystal: "❄"}
	for i, name := range want {
		if got[i] != name {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], name)
		}
		s, err := Get(name)
		if err != nil {
			t.Fatalf("Get(%q): %v", name, err)
		}
		if s.PowerUpGlyph != glyphs[name] {
			t.Errorf("%s glyph = %q, want %q", name, s.PowerUpGlyph, glyphs[name])
		}
		if s.NewScenery == nil {
			t.Errorf("%s has no scenery", name)
		}
	}
}

func TestGetUnknown(t *testing.T) {
	if _, err := Get("neon"); err == nil {
		t.Error("expected error for unknown style")
	}
	if ValidPreference("neon") {
		t.Error("neon is not a valid preference")
	}
	if !ValidPreference(Random) || !ValidPreference(Metal) {
		t.Error("random and metal are valid preferences")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register(Style{Name: Classic})
}

func TestPickFixedPreference(t *testing.T) {
	style, last := Pick(Bamboo, Classic, &fixedRand{ints: []int{2}})
	if style != Bamboo {
		t.Errorf("style = %q, want bamboo", style)
	}
	if last != Classic {
		t.Errorf("last = %q, fixed preference must not update it", last)
	}
}

func TestPickRandomExcludesLast(t *testing.T) {
	tests := []struct {
		last string
		idx  int
		want string
	}{
		{Classic, 0, Metal},
		{Classic, 2, Crystal},
		{Metal, 0, Classic},
		{Metal, 1, Bamboo},
		{Crystal, 2, Bamboo},
	}
	for _, tt := range tests {
		style, last := Pick(Random, tt.last, &fixedRand{ints: []int{tt.idx}})
		if style != tt.want {
			t.Errorf("Pick(random, %s, %d) = %q, want %q", tt.last, tt.idx, style, tt.want)
		}
		if last != style {
			t.Errorf("last = %q, want %q", last, style)
		}
	}
}

func TestPickUnknownPreferenceActsRandom(t *testing.T) {
	style, last := Pick("neon", Classic, &fixedRand{ints: []int{0}})
	if style != Metal || last != Metal {
		t.Errorf("Pick(neon) = %q/%q, want metal/metal", style, last)
	}
}

func TestPickNeverRepeats(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	last := Classic
	for i := 0; i < 200; i++ {
		style, next := Pick(Random, last, rng)
		if style == last {
			t.Fatalf("iteration %d repeated %q", i, style)
		}
		last = next
	}
}

func TestCloudsWrap(t *testing.T) {
	c := newClouds(&fixedRand{floats: []float64{0}})
	c.items[0].X = -99
	c.Step()
	if c.items[0].X != -100 {
		t.Fatalf("X = %v, want -100", c.items[0].X)
	}
	c.Step()
	if c.items[0].X != 900 {
		t.Errorf("X = %v, want wrap to 900", c.items[0].X)
	}
}

func TestTreesWrap(t *testing.T) {
	tr := newTrees(&fixedRand{floats: []float64{0}})
	tr.items[0].X = -49
	tr.Step()
	if tr.items[0].X != -50.5 {
		t.Fatalf("X = %v, want -50.5", tr.items[0].X)
	}
	tr.Step()
	if tr.items[0].X != 850 {
		t.Errorf("X = %v, want wrap to 850", tr.items[0].X)
	}
	if h := tr.items[1].H; h < 200 || h > 300 {
		t.Errorf("tree height %v outside [200, 300]", h)
	}
}

func TestGearsRotate(t *testing.T) {
	g := newGears(&fixedRand{})
	for range 10 {
		g.Step()
	}
	sprites := g.Sprites()
	if sprites[0].Rotation != 10 || sprites[1].Rotation != -10 {
		t.Errorf("rotations = %v, %v, want 10, -10", sprites[0].Rotation, sprites[1].Rotation)
	}
}

func TestSnowFallsAndBounces(t *testing.T) {
	s := newSnow(&fixedRand{floats: []float64{0.5}})
	if len(s.items) != 50 {
		t.Fatalf("flakes = %d, want 50", len(s.items))
	}

	s.items[0] = Sprite{X: 0, Y: 500}
	s.sway[0] = -0.5
	s.Step()
	if s.items[0].Y != 0 {
		t.Errorf("Y = %v, want wrap to 0", s.items[0].Y)
	}
	if s.sway[0] != 0.5 {
		t.Errorf("sway = %v, want reversed 0.5", s.sway[0])
	}

	y := s.items[1].Y
	s.Step()
	if s.items[1].Y <= y {
		t.Errorf("flake did not fall: %v -> %v", y, s.items[1].Y)
	}
}

func TestSpritesAreCopies(t *testing.T) {
	c := newClouds(&fixedRand{})
	sprites := c.Sprites()
	sprites[0].X = -1000
	if c.items[0].X == -1000 {
		t.Error("Sprites() exposed internal state")
	}
}
