// Package leveldata parses level description files (JSON, YAML or Tiled TMX)
// into a validated Level. It has no dependencies on ebitengine, donburi or
// resolv. Pure data only.
package leveldata

import "image/color"

// Defaults applied when a level document leaves an optional field out.
const (
	DefaultEnemySpeed     = 3.0
	DefaultEnemyMoveRange = 100.0
)

var (
	// DefaultSpawn is where the player starts when the document names no spawn.
	DefaultSpawn = Point{X: 100, Y: 350}

	DefaultPlatformColor    = color.RGBA{R: 130, G: 130, B: 130, A: 255}
	DefaultCollectibleColor = color.RGBA{R: 253, G: 249, B: 0, A: 255}
	DefaultEnemyColor       = color.RGBA{R: 200, G: 122, B: 255, A: 255}
)

// Level is a finalized, validated level description. Lists keep document order.
type Level struct {
	Name         string
	Source       string
	Spawn        Point
	Platforms    []Placement
	Collectibles []Placement
	Enemies      []EnemyPlacement
}

// Point is a world position in pixels.
type Point struct {
	X, Y float64
}

// Placement is a coloured rectangle; both size components are > 0.
type Placement struct {
	X, Y, W, H float64
	Color      color.RGBA
}

// EnemyPlacement is a placement that patrols horizontally around its start.
type EnemyPlacement struct {
	Placement
	Speed     float64 // > 0, pixels per frame
	MoveRange float64 // >= 0, half-width of the patrol segment
}
