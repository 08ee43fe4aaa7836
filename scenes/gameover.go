package scenes

import (
	"sync"

	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/platformer"
	"github.com/automoto/platformer/systems"
	"github.com/automoto/platformer/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameOverScene displays the game over screen
type GameOverScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	controller   *platformer.Controller
	gameOverUI   *ui.GameOverUI
	once         sync.Once
}

// NewGameOverScene creates a new game over scene
func NewGameOverScene(sc SceneChanger, c *platformer.Controller) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, controller: c}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
	gs.gameOverUI.Update()

	follow(gs.sceneChanger, gs.controller, platformer.ScreenGameOver)
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.GameOver.BackgroundColor)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
	gs.gameOverUI.UI.Draw(screen)
}

func (gs *GameOverScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())
	systems.AttachSession(gs.ecs, gs.controller)

	gs.ecs.AddSystem(systems.UpdateInput)
	gs.ecs.AddSystem(systems.UpdateGameOver)

	gs.ecs.AddRenderer(cfg.LayerWorld, systems.DrawGameOver)

	gs.gameOverUI = ui.NewGameOverUI(gs.controller.Restart)
}
