package platformer

import (
	"github.com/automoto/platformer/shared/leveldata"
	"github.com/charmbracelet/log"
)

// Arena owns the mutable entity lists of one playthrough. Platforms are never
// modified after creation.
type Arena struct {
	Platforms    []Entity
	Collectibles []Entity
	Enemies      []*Enemy

	Collected int
	Total     int // collectible count at creation
}

// NewArena builds fresh entity lists from a level, keeping document order.
func NewArena(level *leveldata.Level) *Arena {
	a := &Arena{
		Platforms:    make([]Entity, 0, len(level.Platforms)),
		Collectibles: make([]Entity, 0, len(level.Collectibles)),
		Enemies:      make([]*Enemy, 0, len(level.Enemies)),
	}

	for _, p := range level.Platforms {
		a.Platforms = append(a.Platforms, NewEntity(p.X, p.Y, p.W, p.H, p.Color))
		log.Debug("created platform", "x", p.X, "y", p.Y, "w", p.W, "h", p.H)
	}
	for _, c := range level.Collectibles {
		a.Collectibles = append(a.Collectibles, NewEntity(c.X, c.Y, c.W, c.H, c.Color))
		log.Debug("created collectible", "x", c.X, "y", c.Y)
	}
	for _, e := range level.Enemies {
		a.Enemies = append(a.Enemies, NewEnemy(e.X, e.Y, e.W, e.H, e.Color, e.Speed, e.MoveRange))
		log.Debug("created enemy", "x", e.X, "y", e.Y, "speed", e.Speed, "range", e.MoveRange)
	}

	a.Total = len(a.Collectibles)
	return a
}

// UpdateEnemies advances every enemy's patrol by one frame.
func (a *Arena) UpdateEnemies() {
	for _, e := range a.Enemies {
		e.Update()
	}
}

// Draw paints platforms, collectibles and enemies in that order.
func (a *Arena) Draw(r Renderer) {
	for i := range a.Platforms {
		a.Platforms[i].Draw(r)
	}
	for i := range a.Collectibles {
		a.Collectibles[i].Draw(r)
	}
	for _, e := range a.Enemies {
		e.Draw(r)
	}
}
