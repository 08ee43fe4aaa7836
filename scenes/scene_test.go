package scenes

import (
	"testing"

	"github.com/automoto/platformer/platformer"
	"github.com/automoto/platformer/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingChanger struct {
	scenes []interface{}
}

func (r *recordingChanger) ChangeScene(scene interface{}) {
	r.scenes = append(r.scenes, scene)
}

// emptyLevel has no collectibles, so the first playing tick wins.
func emptyLevel() *leveldata.Level {
	return &leveldata.Level{
		Name:  "empty",
		Spawn: leveldata.Point{X: 100, Y: 350},
		Platforms: []leveldata.Placement{
			{X: 0, Y: 1040, W: 1920, H: 40},
		},
	}
}

func TestFollow(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(c *platformer.Controller)
		shown     platformer.Screen
		wantSwap  bool
		wantScene interface{}
	}{
		{
			name:  "menu stays on menu",
			setup: func(c *platformer.Controller) {},
			shown: platformer.ScreenMenu,
		},
		{
			name:      "start swaps menu for play",
			setup:     func(c *platformer.Controller) { c.Start() },
			shown:     platformer.ScreenMenu,
			wantSwap:  true,
			wantScene: &PlatformerScene{},
		},
		{
			name: "finished run swaps play for game over",
			setup: func(c *platformer.Controller) {
				c.Start()
				c.Tick(platformer.Input{})
			},
			shown:     platformer.ScreenPlaying,
			wantSwap:  true,
			wantScene: &GameOverScene{},
		},
		{
			name: "restart swaps game over for menu",
			setup: func(c *platformer.Controller) {
				c.Start()
				c.Tick(platformer.Input{})
				c.Restart()
			},
			shown:     platformer.ScreenGameOver,
			wantSwap:  true,
			wantScene: &MenuScene{},
		},
		{
			name: "quitting holds the current scene",
			setup: func(c *platformer.Controller) {
				c.Start()
				c.Quit()
			},
			shown: platformer.ScreenMenu,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := platformer.NewController(emptyLevel(), platformer.DefaultOptions())
			tt.setup(c)
			sc := &recordingChanger{}

			swapped := follow(sc, c, tt.shown)

			assert.Equal(t, tt.wantSwap, swapped)
			if !tt.wantSwap {
				assert.Empty(t, sc.scenes)
				return
			}
			require.Len(t, sc.scenes, 1)
			assert.IsType(t, tt.wantScene, sc.scenes[0])
		})
	}
}

func TestForScreenSharesController(t *testing.T) {
	c := platformer.NewController(emptyLevel(), platformer.DefaultOptions())
	c.Start()
	sc := &recordingChanger{}

	scene, ok := ForScreen(sc, c).(*PlatformerScene)
	require.True(t, ok)
	assert.Same(t, c, scene.controller)
}
