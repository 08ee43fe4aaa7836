package platformer

import (
	"image/color"

	"github.com/automoto/platformer/shared/leveldata"
)

// Enemy patrols horizontally between StartX-MoveRange and StartX+MoveRange.
type Enemy struct {
	Entity
	Speed       float64
	MoveRange   float64
	MovingRight bool

	startX float64
}

// NewEnemy creates an enemy that starts moving right from x. A non-positive
// speed or negative range falls back to the level defaults.
func NewEnemy(x, y, w, h float64, clr color.RGBA, speed, moveRange float64) *Enemy {
	if speed <= 0 {
		speed = leveldata.DefaultEnemySpeed
	}
	if moveRange < 0 {
		moveRange = leveldata.DefaultEnemyMoveRange
	}
	return &Enemy{
		Entity:      NewEntity(x, y, w, h, clr),
		Speed:       speed,
		MoveRange:   moveRange,
		MovingRight: true,
		startX:      x,
	}
}

// StartX is the x position the enemy was created at.
func (e *Enemy) StartX() float64 {
	return e.startX
}

// Update advances the patrol by one frame.
func (e *Enemy) Update() {
	if e.MovingRight {
		e.Position.X += e.Speed
	} else {
		e.Position.X -= e.Speed
	}

	// Both bounds are checked every frame.
	if e.Position.X > e.startX+e.MoveRange {
		e.MovingRight = false
	}
	if e.Position.X < e.startX-e.MoveRange {
		e.MovingRight = true
	}
}
