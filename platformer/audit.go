package platformer

import (
	"fmt"

	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/shared/gamemath"
	"github.com/automoto/platformer/shared/leveldata"
	"github.com/solarlune/resolv"
)

const (
	tagPlatform    = "platform"
	tagCollectible = "collectible"
	tagEnemy       = "enemy"

	auditCellSize = 32
)

// Finding is a level layout problem. Findings are warnings; the level still
// plays.
type Finding struct {
	Subject string // e.g. "enemies[2]"
	Problem string
}

func (f Finding) String() string {
	return f.Subject + ": " + f.Problem
}

// AuditLevel looks for layouts that load fine but play badly: entities outside
// the world, enemy patrols that leave it, a spawn point inside a platform or
// enemy, and collectibles sunk into platforms.
func AuditLevel(level *leveldata.Level) []Finding {
	var findings []Finding
	add := func(subject, format string, args ...any) {
		findings = append(findings, Finding{Subject: subject, Problem: fmt.Sprintf(format, args...)})
	}

	world := gamemath.Rect{W: cfg.World.Width, H: cfg.World.Height}
	space := resolv.NewSpace(int(world.W), int(world.H), auditCellSize, auditCellSize)

	for i, p := range level.Platforms {
		subject := fmt.Sprintf("platforms[%d]", i)
		if !placementRect(p).Inside(world) {
			add(subject, "extends outside the %gx%g world", world.W, world.H)
		}
		space.Add(auditObject(placementRect(p), subject, tagPlatform))
	}
	for i, c := range level.Collectibles {
		subject := fmt.Sprintf("collectibles[%d]", i)
		if !placementRect(c).Inside(world) {
			add(subject, "extends outside the %gx%g world", world.W, world.H)
		}
		space.Add(auditObject(placementRect(c), subject, tagCollectible))
	}
	for i, e := range level.Enemies {
		subject := fmt.Sprintf("enemies[%d]", i)
		r := placementRect(e.Placement)
		if !r.Inside(world) {
			add(subject, "extends outside the %gx%g world", world.W, world.H)
		}
		// The patrol turns only after passing a bound, so it overshoots by
		// up to one step on each side.
		minX, maxX := e.X-e.MoveRange-e.Speed, e.X+e.MoveRange+e.Speed+e.W
		if minX < 0 || maxX > world.W {
			add(subject, "patrol %g..%g leaves the world", minX, maxX)
		}
		space.Add(auditObject(r, subject, tagEnemy))
	}

	spawn := gamemath.Rect{X: level.Spawn.X, Y: level.Spawn.Y, W: cfg.Player.Width, H: cfg.Player.Height}
	if !spawn.Inside(world) {
		add("spawn", "player at (%g, %g) starts outside the world", spawn.X, spawn.Y)
	}
	for _, hit := range overlapping(space, spawn, tagPlatform, tagEnemy) {
		if hit.HasTags(tagEnemy) {
			add("spawn", "player starts touching %s", hit.Data)
		} else {
			add("spawn", "player starts inside %s", hit.Data)
		}
	}

	for i, c := range level.Collectibles {
		for _, hit := range overlapping(space, placementRect(c), tagPlatform) {
			add(fmt.Sprintf("collectibles[%d]", i), "sunk into %s", hit.Data)
		}
	}

	if len(level.Collectibles) == 0 {
		add("collectibles", "none placed; the level is won on the first frame")
	}

	return findings
}

func placementRect(p leveldata.Placement) gamemath.Rect {
	return gamemath.Rect{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

func auditObject(r gamemath.Rect, subject string, tags ...string) *resolv.Object {
	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	obj.Data = subject
	return obj
}

// overlapping returns the objects with the given tags whose boxes overlap r.
// The space only narrows the candidates; the exact test is the same open
// interval overlap the player uses.
func overlapping(space *resolv.Space, r gamemath.Rect, tags ...string) []*resolv.Object {
	// Padded by a pixel so the cell lookup never misses a fractional overlap.
	query := resolv.NewObject(r.X-1, r.Y-1, r.W+2, r.H+2)
	space.Add(query)
	defer space.Remove(query)

	check := query.Check(0, 0, tags...)
	if check == nil {
		return nil
	}

	var hits []*resolv.Object
	for _, obj := range check.Objects {
		if r.Overlaps(gamemath.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}) {
			hits = append(hits, obj)
		}
	}
	return hits
}
