package theme

import "github.com/vovakirdan/tui-flappy/internal/core"

// Built-in style names.
const (
	Classic = "classic"
	Metal   = "metal"
	Bamboo  = "bamboo"
	Crystal = "crystal"
)

func init() {
	Register(Style{
		Name:         Classic,
		Title:        "Classic",
		PowerUpGlyph: "☀",
		PipeRune:     '█',
		Palette: Palette{
			Pipe:    core.ColorGreen,
			PipeCap: core.ColorBrightGreen,
			PowerUp: core.ColorBrightYellow,
			Scenery: core.ColorBrightWhite,
			Ground:  core.ColorYellow,
		},
		NewScenery: func(rng Rand) Scenery { return newClouds(rng) },
	})
	Register(Style{
		Name:         Metal,
		Title:        "Metal",
		PowerUpGlyph: "⚡",
		PipeRune:     '▓',
		Palette: Palette{
			Pipe:    core.ColorSteel,
			PipeCap: core.ColorWhite,
			PowerUp: core.ColorYellow,
			Scenery: core.ColorGray,
			Ground:  core.ColorGray,
		},
		NewScenery: func(rng Rand) Scenery { return newGears(rng) },
	})
	Register(Style{
		Name:         Bamboo,
		Title:        "Bamboo",
		PowerUpGlyph: "🍃",
		PipeRune:     '║',
		Palette: Palette{
			Pipe:    core.ColorBamboo,
			PipeCap: core.ColorGreen,
			PowerUp: core.ColorBrightGreen,
			Scenery: core.ColorGreen,
			Ground:  core.ColorOrange,
		},
		NewScenery: func(rng Rand) Scenery { return newTrees(rng) },
	})
	Register(Style{
		Name:         Crystal,
		Title:        "Crystal",
		PowerUpGlyph: "❄",
		PipeRune:     '▒',
		Palette: Palette{
			Pipe:    core.ColorIce,
			PipeCap: core.ColorBrightCyan,
			PowerUp: core.ColorBrightWhite,
			Scenery: core.ColorWhite,
			Ground:  core.ColorBrightBlue,
		},
		NewScenery: func(rng Rand) Scenery { return newSnow(rng) },
	})
}
