package platformer

import (
	"github.com/automoto/platformer/shared/leveldata"
	"github.com/charmbracelet/log"
)

// Options tune how the controller runs a level.
type Options struct {
	// RestoreOnRestart rebuilds collectibles and enemies from the level on
	// restart. When false only the player and the counter are reset, so
	// anything consumed in the previous run stays gone.
	RestoreOnRestart bool
}

// DefaultOptions restores the full level on restart.
func DefaultOptions() Options {
	return Options{RestoreOnRestart: true}
}

// Controller sequences Menu, Playing and GameOver and owns everything a
// playthrough mutates.
type Controller struct {
	level *leveldata.Level
	opts  Options

	screen  Screen
	state   GameState
	player  *Player
	arena   *Arena
	message string
	quit    bool
}

// NewController prepares a playthrough of level, starting on the menu.
func NewController(level *leveldata.Level, opts Options) *Controller {
	c := &Controller{
		level:  level,
		opts:   opts,
		screen: ScreenMenu,
		arena:  NewArena(level),
	}
	c.resetPlayer()
	return c
}

func (c *Controller) Screen() Screen          { return c.screen }
func (c *Controller) State() GameState        { return c.state }
func (c *Controller) Player() *Player         { return c.player }
func (c *Controller) Arena() *Arena           { return c.arena }
func (c *Controller) Level() *leveldata.Level { return c.level }

// Message is the collision message from the most recent tick.
func (c *Controller) Message() string { return c.message }

// Quitting reports whether Quit was called.
func (c *Controller) Quitting() bool { return c.quit }

// Start leaves the menu for a fresh Playing state.
func (c *Controller) Start() {
	if c.screen != ScreenMenu {
		return
	}
	c.screen = ScreenPlaying
	c.state = StatePlaying
	log.Info("level started", "level", c.level.Name, "collectibles", c.arena.Total)
}

// Tick runs one gameplay frame: the player first, then every enemy patrol.
// A terminal result moves the controller to GameOver. Outside Playing it does
// nothing and returns the current state.
func (c *Controller) Tick(in Input) Result {
	if c.screen != ScreenPlaying || c.state.Terminal() {
		return Result{State: c.state, Collected: c.arena.Collected}
	}

	res := c.player.Update(c.arena, in)
	c.arena.UpdateEnemies()

	c.state = res.State
	c.message = res.Message
	if res.State.Terminal() {
		c.screen = ScreenGameOver
		log.Info("level finished", "state", res.State, "collected", res.Collected, "total", c.arena.Total)
	}
	return res
}

// Restart returns from GameOver to the menu with a fresh player and counter.
func (c *Controller) Restart() {
	if c.screen != ScreenGameOver {
		return
	}
	if c.opts.RestoreOnRestart {
		c.arena = NewArena(c.level)
	} else {
		c.arena.Collected = 0
	}
	c.resetPlayer()
	c.state = StatePlaying
	c.message = ""
	c.screen = ScreenMenu
}

// Quit asks the host loop to stop.
func (c *Controller) Quit() {
	c.quit = true
}

func (c *Controller) resetPlayer() {
	c.player = NewPlayer(c.level.Spawn.X, c.level.Spawn.Y)
}
