package systems

import (
	"github.com/automoto/platformer/components"
	"github.com/automoto/platformer/platformer"
	"github.com/yohamta/donburi/ecs"
)

// AttachSession stores the controller as the scene's Session singleton.
func AttachSession(ecs *ecs.ECS, c *platformer.Controller) {
	entry, ok := components.Session.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Session))
	}
	components.Session.SetValue(entry, components.SessionData{Controller: c})
}

// getController returns the scene's controller, or nil when none is attached.
func getController(ecs *ecs.ECS) *platformer.Controller {
	entry, ok := components.Session.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Session.Get(entry).Controller
}
