package systems

import (
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlay runs one gameplay frame: player, then enemy patrols. A non-empty
// collision message is handed to the toast.
func UpdatePlay(ecs *ecs.ECS) {
	c := getController(ecs)
	if c == nil {
		return
	}

	res := c.Tick(PlayerInput(getOrCreateInput(ecs)))
	if res.Message != "" {
		ShowToast(ecs, res.Message)
	}
}
