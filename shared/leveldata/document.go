package leveldata

import (
	"fmt"
	"image/color"
)

// document mirrors the on-disk layout shared by the JSON and YAML formats.
// Pointer fields let build tell an absent field from a zero value.
type document struct {
	Name         string      `json:"name" yaml:"name"`
	Spawn        *vec        `json:"spawn" yaml:"spawn"`
	Platforms    []rawObject `json:"platforms" yaml:"platforms"`
	Collectibles []rawObject `json:"collectibles" yaml:"collectibles"`
	Enemies      []rawObject `json:"enemies" yaml:"enemies"`
}

type vec struct {
	X *float64 `json:"x" yaml:"x"`
	Y *float64 `json:"y" yaml:"y"`
}

type rgba struct {
	R *int `json:"r" yaml:"r"`
	G *int `json:"g" yaml:"g"`
	B *int `json:"b" yaml:"b"`
	A *int `json:"a" yaml:"a"`
}

type rawObject struct {
	Position  *vec     `json:"position" yaml:"position"`
	Size      *vec     `json:"size" yaml:"size"`
	Color     *rgba    `json:"color" yaml:"color"`
	Speed     *float64 `json:"speed" yaml:"speed"`
	MoveRange *float64 `json:"moveRange" yaml:"moveRange"`
}

// build validates doc and converts it into a Level.
func build(doc *document, source string) (*Level, error) {
	level := &Level{
		Name:   doc.Name,
		Source: source,
		Spawn:  DefaultSpawn,
	}

	if doc.Spawn != nil {
		x, y, err := doc.Spawn.point(source, "spawn")
		if err != nil {
			return nil, err
		}
		level.Spawn = Point{X: x, Y: y}
	}

	for i, raw := range doc.Platforms {
		p, err := raw.placement(source, fmt.Sprintf("platforms[%d]", i), DefaultPlatformColor)
		if err != nil {
			return nil, err
		}
		level.Platforms = append(level.Platforms, p)
	}

	for i, raw := range doc.Collectibles {
		p, err := raw.placement(source, fmt.Sprintf("collectibles[%d]", i), DefaultCollectibleColor)
		if err != nil {
			return nil, err
		}
		level.Collectibles = append(level.Collectibles, p)
	}

	for i, raw := range doc.Enemies {
		e, err := raw.enemy(source, fmt.Sprintf("enemies[%d]", i))
		if err != nil {
			return nil, err
		}
		level.Enemies = append(level.Enemies, e)
	}

	return level, nil
}

func (v *vec) point(source, field string) (float64, float64, error) {
	if v.X == nil {
		return 0, 0, &FieldError{Source: source, Field: field + ".x", Reason: "missing"}
	}
	if v.Y == nil {
		return 0, 0, &FieldError{Source: source, Field: field + ".y", Reason: "missing"}
	}
	return *v.X, *v.Y, nil
}

func (c *rgba) toRGBA(source, field string) (color.RGBA, error) {
	channels := []struct {
		name string
		v    *int
	}{{"r", c.R}, {"g", c.G}, {"b", c.B}, {"a", c.A}}

	var out [4]uint8
	for i, ch := range channels {
		if ch.v == nil {
			// Alpha may be omitted; the colour is then opaque.
			if ch.name == "a" {
				out[i] = 255
				continue
			}
			return color.RGBA{}, &FieldError{Source: source, Field: field + "." + ch.name, Reason: "missing"}
		}
		if *ch.v < 0 || *ch.v > 255 {
			return color.RGBA{}, &FieldError{Source: source, Field: field + "." + ch.name,
				Reason: fmt.Sprintf("channel %d outside 0..255", *ch.v)}
		}
		out[i] = uint8(*ch.v)
	}
	return color.RGBA{R: out[0], G: out[1], B: out[2], A: out[3]}, nil
}

func (o rawObject) placement(source, field string, fallback color.RGBA) (Placement, error) {
	if o.Position == nil {
		return Placement{}, &FieldError{Source: source, Field: field + ".position", Reason: "missing"}
	}
	x, y, err := o.Position.point(source, field+".position")
	if err != nil {
		return Placement{}, err
	}

	if o.Size == nil {
		return Placement{}, &FieldError{Source: source, Field: field + ".size", Reason: "missing"}
	}
	w, h, err := o.Size.point(source, field+".size")
	if err != nil {
		return Placement{}, err
	}
	if w <= 0 || h <= 0 {
		return Placement{}, &FieldError{Source: source, Field: field + ".size",
			Reason: fmt.Sprintf("must be positive, got %gx%g", w, h)}
	}

	c := fallback
	if o.Color != nil {
		if c, err = o.Color.toRGBA(source, field+".color"); err != nil {
			return Placement{}, err
		}
	}

	return Placement{X: x, Y: y, W: w, H: h, Color: c}, nil
}

func (o rawObject) enemy(source, field string) (EnemyPlacement, error) {
	p, err := o.placement(source, field, DefaultEnemyColor)
	if err != nil {
		return EnemyPlacement{}, err
	}

	e := EnemyPlacement{Placement: p, Speed: DefaultEnemySpeed, MoveRange: DefaultEnemyMoveRange}
	if o.Speed != nil {
		if *o.Speed <= 0 {
			return EnemyPlacement{}, &FieldError{Source: source, Field: field + ".speed",
				Reason: fmt.Sprintf("must be positive, got %g", *o.Speed)}
		}
		e.Speed = *o.Speed
	}
	if o.MoveRange != nil {
		if *o.MoveRange < 0 {
			return EnemyPlacement{}, &FieldError{Source: source, Field: field + ".moveRange",
				Reason: fmt.Sprintf("must not be negative, got %g", *o.MoveRange)}
		}
		e.MoveRange = *o.MoveRange
	}
	return e, nil
}
