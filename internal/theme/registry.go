// Package theme provides the registry of obstacle styles. Styles register
// themselves in init(), carrying their palette, power-up glyph and a
// factory for their decorative scenery.
package theme

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Random is the preference value that picks a fresh style every run.
const Random = "random"

// Rand is the random source used by style selection and scenery.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Palette holds the colors a style paints with.
type Palette struct {
	Pipe    core.Color
	PipeCap core.Color
	PowerUp core.Color
	Scenery core.Color
	Ground  core.Color
}

// Style describes one registered obstacle style.
type Style struct {
	Name         string
	Title        string
	PowerUpGlyph string
	PipeRune     rune
	Palette      Palette

	// NewScenery builds the style's background elements.
	NewScenery func(rng Rand) Scenery
}

var (
	styles []Style
	byName = make(map[string]int)
	mu     sync.RWMutex
)

// Register adds a style to the registry.
// Typically called from an init() function.
// Panics if a style with the same name is already registered.
func Register(s Style) {
	mu.Lock()
	defer mu.Unlock()

	if s.Name == Random {
		panic(fmt.Sprintf("theme: %q is reserved", Random))
	}
	if _, exists := byName[s.Name]; exists {
		panic(fmt.Sprintf("theme: style %q already registered", s.Name))
	}

	byName[s.Name] = len(styles)
	styles = append(styles, s)
}

// Styles returns all registered styles in registration order.
func Styles() []Style {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]Style, len(styles))
	copy(out, styles)
	return out
}

// Names returns the registered style names in registration order.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, len(styles))
	for i, s := range styles {
		names[i] = s.Name
	}
	return names
}

// Get looks up a style by name.
func Get(name string) (Style, error) {
	mu.RLock()
	defer mu.RUnlock()

	i, ok := byName[name]
	if !ok {
		return Style{}, fmt.Errorf("theme: unknown style %q", name)
	}
	return styles[i], nil
}

// Exists checks if a style with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := byName[name]
	return ok
}

// ValidPreference reports whether pref is Random or a registered style.
func ValidPreference(pref string) bool {
	return pref == Random || Exists(pref)
}

// Pick chooses the style for a new run.
//
// A preference naming a registered style wins and leaves last untouched.
// Otherwise a style other than last is drawn uniformly from the registry and
// becomes the new last. Pick returns the chosen style and the updated last.
func Pick(pref, last string, rng Rand) (style, nextLast string) {
	if pref != Random && Exists(pref) {
		return pref, last
	}

	names := Names()
	candidates := names[:0:0]
	for _, n := range names {
		if n != last {
			candidates = append(candidates, n)
		}
	}
	if len(candidates) == 0 {
		candidates = names
	}
	if len(candidates) == 0 {
		return "", last
	}

	chosen := candidates[rng.Intn(len(candidates))]
	return chosen, chosen
}
