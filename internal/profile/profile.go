// Package profile keeps the persisted player state: high score, top-N
// leaderboard, volume and theme preference. Values are read once at load and
// written through on every change; unreadable values fall back to defaults.
package profile

import (
	"encoding/json"
	"errors"
	"io"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// Storage keys.
const (
	KeyHighScore       = "highScore"
	KeyLeaderboard     = "leaderboard"
	KeyVolume          = "gameVolume"
	KeyThemePreference = "themePreference"
)

// Defaults applied when a stored value is missing or corrupt.
const (
	DefaultVolume          = 50
	DefaultThemePreference = "random"
	DefaultBoardSize       = 3
	MaxNameLength          = 16
	AnonymousName          = "Anonymous"
)

// Entry is one leaderboard record.
type Entry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
	Emoji string `json:"emoji"`
}

// Profile is the in-memory view of persisted player state.
// It is not safe for concurrent use.
type Profile struct {
	kv        storage.KV
	logger    *log.Logger
	boardSize int

	highScore int
	board     []Entry
	volume    int
	themePref string
}

// Load reads every key from kv. Missing or corrupt values are replaced by
// defaults and never returned as errors. A nil logger discards output.
func Load(kv storage.KV, boardSize int, logger *log.Logger) *Profile {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if boardSize <= 0 {
		boardSize = DefaultBoardSize
	}
	p := &Profile{
		kv:        kv,
		logger:    logger,
		boardSize: boardSize,
		volume:    DefaultVolume,
		themePref: DefaultThemePreference,
	}

	if raw, ok := p.read(KeyHighScore); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil && n >= 0 {
			p.highScore = n
		} else {
			p.logger.Warn("ignoring corrupt high score", "value", raw)
		}
	}

	if raw, ok := p.read(KeyLeaderboard); ok {
		var entries []Entry
		if err := json.Unmarshal([]byte(raw), &entries); err != nil {
			p.logger.Warn("ignoring corrupt leaderboard", "error", err)
		} else {
			p.board = normalize(entries, p.boardSize)
		}
	}

	if raw, ok := p.read(KeyVolume); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
			p.volume = ClampVolume(n)
		} else {
			p.logger.Warn("ignoring corrupt volume", "value", raw)
		}
	}

	if raw, ok := p.read(KeyThemePreference); ok && strings.TrimSpace(raw) != "" {
		p.themePref = strings.TrimSpace(raw)
	}

	return p
}

func (p *Profile) read(key string) (string, bool) {
	if p.kv == nil {
		return "", false
	}
	raw, err := p.kv.Get(key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			p.logger.Warn("profile read failed", "key", key, "error", err)
		}
		return "", false
	}
	return raw, true
}

func (p *Profile) write(key, value string) {
	if p.kv == nil {
		return
	}
	if err := p.kv.Set(key, value); err != nil {
		p.logger.Warn("profile write failed", "key", key, "error", err)
	}
}

// HighScore returns the best score seen so far.
func (p *Profile) HighScore() int { return p.highScore }

// RecordScore raises the high score to score if it is higher and persists
// it. Reports whether the high score changed.
func (p *Profile) RecordScore(score int) bool {
	if score <= p.highScore {
		return false
	}
	p.highScore = score
	p.write(KeyHighScore, strconv.Itoa(score))
	return true
}

// Leaderboard returns a copy of the entries, best first.
func (p *Profile) Leaderboard() []Entry {
	out := make([]Entry, len(p.board))
	copy(out, p.board)
	return out
}

// Qualifies reports whether score earns a leaderboard slot: the board has
// room, or score beats the lowest entry.
func (p *Profile) Qualifies(score int) bool {
	if len(p.board) < p.boardSize {
		return true
	}
	return score > p.board[len(p.board)-1].Score
}

// Insert adds e, keeps the board sorted by score descending with earlier
// entries first on ties, truncates it, and persists it.
func (p *Profile) Insert(e Entry) []Entry {
	e.Name = CleanName(e.Name)
	p.board = normalize(append(p.board, e), p.boardSize)

	data, err := json.Marshal(p.board)
	if err != nil {
		p.logger.Warn("cannot encode leaderboard", "error", err)
	} else {
		p.write(KeyLeaderboard, string(data))
	}
	return p.Leaderboard()
}

// Volume returns the volume in [0, 100].
func (p *Profile) Volume() int { return p.volume }

// SetVolume clamps v to [0, 100], persists it and returns the stored value.
func (p *Profile) SetVolume(v int) int {
	p.volume = ClampVolume(v)
	p.write(KeyVolume, strconv.Itoa(p.volume))
	return p.volume
}

// ThemePreference returns a style name or "random".
func (p *Profile) ThemePreference() string { return p.themePref }

// SetThemePreference persists pref. An empty pref resets to "random".
func (p *Profile) SetThemePreference(pref string) {
	pref = strings.TrimSpace(pref)
	if pref == "" {
		pref = DefaultThemePreference
	}
	p.themePref = pref
	p.write(KeyThemePreference, pref)
}

// ClampVolume limits v to [0, 100].
func ClampVolume(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// CleanName trims name, caps it at MaxNameLength runes and substitutes
// AnonymousName for an empty result.
func CleanName(name string) string {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) > MaxNameLength {
		name = strings.TrimSpace(string([]rune(name)[:MaxNameLength]))
	}
	if name == "" {
		return AnonymousName
	}
	return name
}

func normalize(entries []Entry, size int) []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if len(out) > size {
		out = out[:size]
	}
	return out
}
