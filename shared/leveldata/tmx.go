package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strconv"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Object group names recognised in a TMX level.
const (
	groupPlatforms    = "platforms"
	groupCollectibles = "collectibles"
	groupEnemies      = "enemies"
	groupSpawn        = "spawn"
)

// loadTMX parses a Tiled map whose object groups hold the level placements.
// Object colours come from a "color" string property (#RRGGBB or #AARRGGBB);
// enemies may carry "speed" and "moveRange" float properties.
func loadTMX(fsys fs.FS, tmxPath string) (*Level, error) {
	if _, err := fs.Stat(fsys, tmxPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingFile, tmxPath)
		}
		return nil, fmt.Errorf("stat %s: %w", tmxPath, err)
	}

	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("%w: load TMX %s: %v", ErrMalformedDocument, tmxPath, err)
	}

	doc := &document{Name: strings.TrimSuffix(path.Base(tmxPath), ".tmx")}

	for _, og := range levelMap.ObjectGroups {
		for i, o := range og.Objects {
			field := fmt.Sprintf("%s[%d]", og.Name, i)
			switch og.Name {
			case groupPlatforms, groupCollectibles, groupEnemies:
				raw, err := tmxObject(o, tmxPath, field, og.Name == groupEnemies)
				if err != nil {
					return nil, err
				}
				switch og.Name {
				case groupPlatforms:
					doc.Platforms = append(doc.Platforms, raw)
				case groupCollectibles:
					doc.Collectibles = append(doc.Collectibles, raw)
				default:
					doc.Enemies = append(doc.Enemies, raw)
				}
			case groupSpawn:
				if doc.Spawn == nil {
					x, y := o.X, o.Y
					doc.Spawn = &vec{X: &x, Y: &y}
				}
			}
		}
	}

	return build(doc, tmxPath)
}

func tmxObject(o *tiled.Object, source, field string, patrol bool) (rawObject, error) {
	x, y, w, h := o.X, o.Y, o.Width, o.Height
	raw := rawObject{
		Position: &vec{X: &x, Y: &y},
		Size:     &vec{X: &w, Y: &h},
	}

	if s := o.Properties.GetString("color"); s != "" {
		c, err := parseHexColor(s)
		if err != nil {
			return rawObject{}, &FieldError{Source: source, Field: field + ".color", Reason: err.Error()}
		}
		raw.Color = c
	}

	if !patrol {
		return raw, nil
	}

	for _, prop := range []struct {
		name string
		dst  **float64
	}{{"speed", &raw.Speed}, {"moveRange", &raw.MoveRange}} {
		s := o.Properties.GetString(prop.name)
		if s == "" {
			continue
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return rawObject{}, &FieldError{Source: source, Field: field + "." + prop.name,
				Reason: fmt.Sprintf("not a number: %q", s)}
		}
		*prop.dst = &v
	}
	return raw, nil
}

// parseHexColor accepts Tiled's #RRGGBB and #AARRGGBB forms.
func parseHexColor(s string) (*rgba, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return nil, fmt.Errorf("colour %q is not #RRGGBB or #AARRGGBB", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("colour %q: %v", s, err)
	}

	a := 255
	if len(hex) == 8 {
		a = int(v >> 24 & 0xff)
	}
	r, g, b := int(v>>16&0xff), int(v>>8&0xff), int(v&0xff)
	return &rgba{R: &r, G: &g, B: &b, A: &a}, nil
}
