package platformer

import (
	"slices"

	cfg "github.com/automoto/platformer/config"
	dmath "github.com/yohamta/donburi/features/math"
)

// Input is the per-frame control snapshot the player consumes.
type Input struct {
	Left  bool // held
	Right bool // held
	Jump  bool // pressed this frame
}

// Result reports what one player update did.
type Result struct {
	State     GameState
	Message   string // empty when nothing worth reporting happened
	Collected int    // arena count after the update
	Picked    int    // collectibles consumed this frame
	Defeated  int    // enemies stomped this frame
}

// Player is the controllable rectangle.
type Player struct {
	Entity
	Velocity dmath.Vec2
	OnGround bool
}

// NewPlayer returns a player at rest at (x, y).
func NewPlayer(x, y float64) *Player {
	return &Player{
		Entity: NewEntity(x, y, cfg.Player.Width, cfg.Player.Height, cfg.Player.Color),
	}
}

// Update advances the player one frame against the arena, consuming
// collectibles and enemies it touches. The order of the steps decides
// tie-breaks when several collisions land on the same frame.
func (p *Player) Update(a *Arena, in Input) Result {
	res := Result{State: StatePlaying}

	p.Velocity.Y += cfg.Player.Gravity
	switch {
	case in.Left:
		p.Velocity.X = -cfg.Player.MoveSpeed
	case in.Right:
		p.Velocity.X = cfg.Player.MoveSpeed
	default:
		p.Velocity.X = 0
	}
	if in.Jump && p.OnGround {
		p.Velocity.Y = cfg.Player.JumpForce
		p.OnGround = false
	}

	p.Position.X += p.Velocity.X
	p.Position.Y += p.Velocity.Y

	p.clampToWorld(&res)

	// Later platforms overwrite earlier ones.
	for i := range a.Platforms {
		if p.Overlaps(&a.Platforms[i]) {
			p.Position.Y = a.Platforms[i].Position.Y - p.Size.Y
			p.OnGround = true
			p.Velocity.Y = 0
		}
	}

	for i := len(a.Collectibles) - 1; i >= 0; i-- {
		if p.Overlaps(&a.Collectibles[i]) {
			a.Collectibles = slices.Delete(a.Collectibles, i, i+1)
			a.Collected++
			res.Picked++
		}
	}

	for i := len(a.Enemies) - 1; i >= 0; i-- {
		if !p.Overlaps(&a.Enemies[i].Entity) {
			continue
		}
		if p.Velocity.Y > 0 {
			a.Enemies = slices.Delete(a.Enemies, i, i+1)
			p.Velocity.Y = cfg.Player.JumpForce / 2
			res.Defeated++
			continue
		}
		res.State = StateLost
		res.Message = cfg.Message.Killed
		res.Collected = a.Collected
		return res
	}

	res.Collected = a.Collected
	if a.Collected == a.Total {
		res.State = StateWon
	}
	return res
}

// clampToWorld keeps the player inside the level. Every edge is checked, so
// the last violated edge names the message. Landing on the floor this way
// does not count as standing on ground.
func (p *Player) clampToWorld(res *Result) {
	maxX := cfg.World.Width - p.Size.X
	maxY := cfg.World.Height - p.Size.Y

	if p.Position.X < 0 {
		p.Position.X = 0
		res.Message = cfg.Message.Wall
	}
	if p.Position.X > maxX {
		p.Position.X = maxX
		res.Message = cfg.Message.Wall
	}
	if p.Position.Y < 0 {
		p.Position.Y = 0
		res.Message = cfg.Message.Ceiling
	}
	if p.Position.Y > maxY {
		p.Position.Y = maxY
		res.Message = cfg.Message.Ground
	}
}
