package scenes

import (
	"sync"

	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/platformer"
	"github.com/automoto/platformer/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlatformerScene runs the level while the controller is playing.
type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	controller   *platformer.Controller
	once         sync.Once
}

// NewPlatformerScene creates a new platformer scene
func NewPlatformerScene(sc SceneChanger, c *platformer.Controller) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, controller: c}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()

	follow(ps.sceneChanger, ps.controller, platformer.ScreenPlaying)
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Menu.BackgroundColor)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())
	systems.AttachSession(ecs, ps.controller)

	// Input first; camera follows last frame's position before the tick
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateCamera)
	ecs.AddSystem(systems.UpdatePlay)
	ecs.AddSystem(systems.UpdateToast)

	ecs.AddRenderer(cfg.LayerWorld, systems.DrawWorld)
	ecs.AddRenderer(cfg.LayerHUD, systems.DrawHUD)
	ecs.AddRenderer(cfg.LayerDebug, systems.DrawDebug)

	ps.ecs = ecs
}
