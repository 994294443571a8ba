// Package platformer implements a single-screen tile platformer.
// The player runs and jumps through an ASCII level; every tick is resolved
// against the level tiles by the physics package, so the game doubles as an
// interactive view of the collision resolver.
package platformer

import (
	"fmt"

	"github.com/vovakirdan/tilephys/internal/config"
	"github.com/vovakirdan/tilephys/internal/core"
	"github.com/vovakirdan/tilephys/internal/physics"
	"github.com/vovakirdan/tilephys/internal/registry"
	"github.com/vovakirdan/tilephys/internal/tilemap"
)

// Visual characters for rendering
const (
	PlayerChar = '@'
	TileChar   = '█'
	ExitChar   = '▒'
)

// hudRows is the number of screen rows reserved above the level.
const hudRows = 2

// Game implements the platformer logic.
type Game struct {
	cfg      config.PlatformerConfig
	fixed    *config.PlatformerConfig // Overrides config loading, used by tests and custom callers
	level    tilemap.Map
	player   core.Rect
	velY     int
	moveDir  int // -1 left, 1 right
	moveHold int // Ticks left on the last run key press
	contact  physics.Contact
	ticks    int
	score    int
	won      bool
	gameOver bool
	paused   bool
	runtime  core.RuntimeConfig
}

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new platformer instance that loads its config on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a platformer bound to cfg instead of the config
// search path.
func NewWithConfig(cfg config.PlatformerConfig) *Game {
	return &Game{fixed: &cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "platformer"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Tile Platformer"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	var cfg config.PlatformerConfig
	if g.fixed != nil {
		cfg = *g.fixed
	} else {
		loaded, err := config.LoadPlatformer(configPath)
		if err != nil {
			loaded = config.DefaultPlatformerConfig()
		}
		cfg = loaded
	}

	level, err := tilemap.Parse(cfg.Level.Rows, cfg.Unit, cfg.Unit)
	if err != nil {
		cfg = config.DefaultPlatformerConfig()
		level, _ = tilemap.Parse(cfg.Level.Rows, cfg.Unit, cfg.Unit)
	}

	g.cfg = cfg
	g.level = level
	g.player = level.SpawnRect(cfg.Player.Width, cfg.Player.Height)
	g.velY = 0
	g.moveDir = 0
	g.moveHold = 0
	g.contact = physics.Contacts(g.player, level.Tiles)
	g.ticks = 0
	g.score = 0
	g.won = false
	g.gameOver = false
	g.paused = false
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.ticks++
	p := g.cfg.Physics

	// Terminals only report key presses, so one press keeps the player
	// running for a few ticks.
	switch {
	case in.Has(core.ActionLeft):
		g.moveDir, g.moveHold = -1, p.MoveHoldTicks
	case in.Has(core.ActionRight):
		g.moveDir, g.moveHold = 1, p.MoveHoldTicks
	}
	velX := 0
	if g.moveHold > 0 {
		velX = g.moveDir * p.RunSpeed
		g.moveHold--
	}

	if in.Has(core.ActionJump) && physics.IsOnFloor(g.player, g.level.Tiles) {
		g.velY = -p.JumpImpulse
	}

	g.velY += p.Gravity
	if g.velY > p.MaxFallSpeed {
		g.velY = p.MaxFallSpeed
	}

	physics.MoveAndCollide(&g.player, g.level.Tiles, velX, g.velY)
	g.contact = physics.Contacts(g.player, g.level.Tiles)

	if g.contact.Floor && g.velY > 0 {
		g.velY = 0
	}
	if g.contact.Ceiling && g.velY < 0 {
		g.velY = 0
	}

	switch {
	case g.level.HasExit && g.player.Overlaps(g.level.Exit):
		g.won = true
		g.gameOver = true
		g.score = max(1, g.cfg.Scoring.ParTicks-g.ticks)
	case g.player.Y >= g.level.Height:
		g.gameOver = true
		g.score = 0
	}

	return core.StepResult{State: g.State()}
}

// Player returns the player box in world units.
func (g *Game) Player() core.Rect {
	return g.player
}

// Contact returns the adjacency flags after the last tick.
func (g *Game) Contact() physics.Contact {
	return g.contact
}

// Won reports whether the player reached the exit.
func (g *Game) Won() bool {
	return g.won
}

// Ticks returns the number of simulated ticks since Reset.
func (g *Game) Ticks() int {
	return g.ticks
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	unit := g.cfg.Unit
	cols := g.level.Width / unit
	ox := max(0, (dst.Width()-cols)/2)
	oy := hudRows

	for _, t := range g.level.Tiles {
		cell := t.Scale(unit)
		dst.DrawRect(cell.Offset(ox, oy), TileChar, core.ColorBlue)
	}
	if g.level.HasExit {
		cell := g.level.Exit.Scale(unit)
		dst.DrawRect(cell.Offset(ox, oy), ExitChar, core.ColorGreen)
	}

	// The player is narrower than a cell; draw it where its feet are.
	px := (g.player.X + g.player.W/2) / unit
	py := (g.player.Bottom() - 1) / unit
	dst.SetColor(ox+px, oy+py, PlayerChar, core.ColorYellow)

	dst.DrawText(2, 0, fmt.Sprintf(" %s  Time: %d ", g.cfg.Level.Name, g.ticks))
	g.drawContacts(dst, ox+cols-1)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.gameOver {
		if g.won {
			g.drawCenteredMessage(dst, "LEVEL CLEAR", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
		} else {
			g.drawCenteredMessage(dst, "YOU FELL", "Press R to restart")
		}
	}
}

// drawContacts shows the floor, ceiling and wall flags, right-aligned to x.
func (g *Game) drawContacts(dst *core.Screen, right int) {
	flags := []struct {
		label string
		on    bool
	}{
		{"FLOOR", g.contact.Floor},
		{"CEIL", g.contact.Ceiling},
		{"WALL", g.contact.Wall},
	}

	width := 0
	for _, f := range flags {
		width += len(f.label) + 1
	}
	x := max(0, right-width+1)
	for _, f := range flags {
		c := core.ColorGray
		if f.on {
			c = core.ColorCyan
		}
		for i, r := range f.label {
			dst.SetColor(x+i, 0, r, c)
		}
		x += len(f.label) + 1
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	dst.DrawText(box.X+(boxW-len(title))/2, box.Y+1, title)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("platformer", func() registry.Game {
		return New()
	})
}
