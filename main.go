// platformer is a small 2D platformer: run, jump, stomp patrolling enemies
// and pick up every collectible in the level.
//
// Usage:
//
//	platformer [--level name|path]   - Play a level (default: level1)
//	platformer levels                - List the bundled levels
//	platformer check <name|path>     - Report layout problems in a level
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/automoto/platformer/assets"
	"github.com/automoto/platformer/config"
	"github.com/automoto/platformer/fonts"
	"github.com/automoto/platformer/platformer"
	"github.com/automoto/platformer/scenes"
	"github.com/automoto/platformer/shared/leveldata"
	"github.com/automoto/platformer/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene      Scene
	controller *platformer.Controller
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(c *platformer.Controller) *Game {
	g := &Game{
		controller: c,
	}
	g.scene = scenes.ForScreen(g, c).(Scene)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.controller.Quitting() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

var (
	flagLevel      string
	flagDebug      bool
	flagFullscreen bool
)

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "A 2D platformer: collect everything, avoid the enemies",
	Long: `Move with A/D or the arrow keys, jump with Space. Land on an enemy to
defeat it; touch it any other way and the run is over. Collect every item to win.

Examples:
  platformer
  platformer --level towers
  platformer --level ./mylevel.yaml --skip-menu
  platformer levels
  platformer check caverns`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Verbose logging and the in-game debug overlay")

	rootCmd.Flags().StringVar(&flagLevel, "level", assets.DefaultLevel, "Bundled level name or path to a level file")
	rootCmd.Flags().BoolVar(&config.Debug.SkipMenu, "skip-menu", false, "Start playing immediately")
	rootCmd.Flags().BoolVar(&config.Debug.LegacyRestart, "legacy-restart", false,
		"Restart resets only the player and counter, leaving consumed items gone")
	rootCmd.Flags().BoolVar(&flagFullscreen, "fullscreen", false, "Start in fullscreen")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		setupLogger(flagDebug)
		config.Debug.Overlay = flagDebug
	}

	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(checkCmd)
}

func setupLogger(debug bool) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "platformer",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	log.SetDefault(logger)
}

func runPlay(cmd *cobra.Command, args []string) error {
	level, err := loadLevel(flagLevel)
	if err != nil {
		return err
	}
	log.Info("level loaded", "name", level.Name, "source", level.Source,
		"platforms", len(level.Platforms), "collectibles", len(level.Collectibles), "enemies", len(level.Enemies))

	for _, f := range platformer.AuditLevel(level) {
		log.Warn("level layout", "finding", f.String())
	}

	if err := loadFonts(); err != nil {
		return err
	}

	opts := platformer.DefaultOptions()
	opts.RestoreOnRestart = !config.Debug.LegacyRestart
	controller := platformer.NewController(level, opts)
	if config.Debug.SkipMenu {
		controller.Start()
	}

	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.TPS)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Warn("settings will not be saved", "err", err)
	}
	if _, err := systems.LoadSettings(); err != nil {
		log.Warn("using default settings", "err", err)
	}
	systems.ApplySettings()
	if flagFullscreen {
		systems.SetFullscreen(true)
	}

	if err := ebiten.RunGame(NewGame(controller)); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

func loadFonts() error {
	sizes := []struct {
		name fonts.FontName
		size float64
	}{
		{fonts.Title, config.Menu.TitleSize},
		{fonts.Button, config.Menu.ButtonTextSize},
		{fonts.HUD, config.HUD.TextSize},
		{fonts.Toast, config.Toast.TextSize},
		{fonts.Small, 20},
	}
	for _, s := range sizes {
		if err := fonts.LoadFontWithSize(s.name, goregular.TTF, s.size); err != nil {
			return err
		}
	}
	return nil
}

// loadLevel accepts a path on disk or the name of a bundled level, with or
// without its extension.
func loadLevel(name string) (*leveldata.Level, error) {
	if _, err := os.Stat(name); err == nil {
		return leveldata.LoadFile(name)
	}
	if strings.ContainsAny(name, `/\`) {
		return nil, fmt.Errorf("%w: %s", leveldata.ErrMissingFile, name)
	}

	levelPath, ok := leveldata.Resolve(assets.Levels, assets.LevelsDir, name)
	if !ok {
		names, _ := leveldata.List(assets.Levels, assets.LevelsDir)
		if guess, found := leveldata.Suggest(name, names); found {
			return nil, fmt.Errorf("%w: no level %q, did you mean %q?", leveldata.ErrMissingFile, name, guess)
		}
		return nil, fmt.Errorf("%w: no level %q (see 'platformer levels')", leveldata.ErrMissingFile, name)
	}
	return leveldata.Load(assets.Levels, levelPath)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
