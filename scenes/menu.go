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

// MenuScene displays the main menu
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	controller   *platformer.Controller
	menuUI       *ui.MenuUI
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger, c *platformer.Controller) *MenuScene {
	return &MenuScene{sceneChanger: sc, controller: c}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
	ms.menuUI.Update()

	follow(ms.sceneChanger, ms.controller, platformer.ScreenMenu)
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent flashes from OS window background
	screen.Fill(cfg.Menu.BackgroundColor)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
	ms.menuUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())
	systems.AttachSession(ms.ecs, ms.controller)

	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.UpdateMenu)

	ms.ecs.AddRenderer(cfg.LayerWorld, systems.DrawMenu)

	ms.menuUI = ui.NewMenuUI(ms.controller.Start, ms.controller.Quit)
}
