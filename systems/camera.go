package systems

import (
	"github.com/automoto/platformer/components"
	"github.com/automoto/platformer/config"
	"github.com/automoto/platformer/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera centres the camera on the player, keeping the view inside the
// level. A level narrower or shorter than the screen is centred instead.
// Runs before UpdatePlay, so it follows last frame's position.
func UpdateCamera(e *ecs.ECS) {
	c := getController(e)
	if c == nil {
		return
	}
	camera := getOrCreateCamera(e)
	player := c.Player()

	targetX := player.Position.X + player.Size.X/2
	targetY := player.Position.Y + player.Size.Y/2

	screenWidth := float64(config.C.Width)
	screenHeight := float64(config.C.Height)
	levelWidth := config.World.Width
	levelHeight := config.World.Height

	if levelWidth >= screenWidth {
		targetX = gamemath.Clamp(targetX, screenWidth/2, levelWidth-screenWidth/2)
	} else {
		targetX = levelWidth / 2
	}
	if levelHeight >= screenHeight {
		targetY = gamemath.Clamp(targetY, screenHeight/2, levelHeight-screenHeight/2)
	} else {
		targetY = levelHeight / 2
	}

	camera.Position.X = gamemath.Approach(camera.Position.X, targetX, config.Camera.FollowSmoothing)
	camera.Position.Y = gamemath.Approach(camera.Position.Y, targetY, config.Camera.FollowSmoothing)
}

// getOrCreateCamera returns the camera singleton, creating it at the level
// centre the first time.
func getOrCreateCamera(e *ecs.ECS) *components.CameraData {
	entry, ok := components.Camera.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Camera))
		camera := components.Camera.Get(entry)
		camera.Position.X = config.World.Width / 2
		camera.Position.Y = config.World.Height / 2
	}
	return components.Camera.Get(entry)
}

// cameraOffset is added to world coordinates to get screen coordinates.
func cameraOffset(e *ecs.ECS, screenWidth, screenHeight int) (float64, float64) {
	camera := getOrCreateCamera(e)
	return float64(screenWidth)/2 - camera.Position.X, float64(screenHeight)/2 - camera.Position.Y
}
