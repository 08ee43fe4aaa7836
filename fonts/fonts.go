package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
)

type FontName string

const (
	Title  FontName = "title"
	Button FontName = "button"
	HUD    FontName = "hud"
	Toast  FontName = "toast"
	Small  FontName = "small"
)

// Get returns the face registered under f. It panics if the font was never
// loaded.
func (f FontName) Get() text.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]text.Face{}
)

// LoadFontWithSize parses ttf and registers it under name at the given size.
func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	var face font.Face = truetype.NewFace(fontData, &truetype.Options{Size: size})
	fonts[name] = text.NewGoXFace(face)
	return nil
}

func getFont(name FontName) text.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
