package scenes

import (
	"github.com/automoto/platformer/platformer"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// ForScreen creates the scene that presents the controller's current screen.
func ForScreen(sc SceneChanger, c *platformer.Controller) interface{} {
	switch c.Screen() {
	case platformer.ScreenPlaying:
		return NewPlatformerScene(sc, c)
	case platformer.ScreenGameOver:
		return NewGameOverScene(sc, c)
	default:
		return NewMenuScene(sc, c)
	}
}

// follow swaps scenes when the controller has moved away from the screen
// the current scene presents. It reports whether a change was made.
func follow(sc SceneChanger, c *platformer.Controller, shown platformer.Screen) bool {
	if c.Quitting() || c.Screen() == shown {
		return false
	}
	sc.ChangeScene(ForScreen(sc, c))
	return true
}
