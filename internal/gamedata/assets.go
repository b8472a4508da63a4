package gamedata

import (
	"github.com/lucasb-eyer/go-colorful"
)

// AssetDef is a texture drawn as terminal art, loaded from JSON.
type AssetDef struct {
	ID     string   `json:"id"`     // Lookup key (e.g., "sym1")
	Name   string   `json:"name"`   // Display name (e.g., "Star")
	Color  string   `json:"color"`  // Hex color code (e.g., "#FF2A5C")
	Art    []string `json:"art"`    // Rows of characters, drawn centred on the node
	Frames []string `json:"frames"` // Optional rotation frames for single-cell art
}

// Colour returns the asset colour, falling back to white.
func (a *AssetDef) Colour() colorful.Color {
	c, err := ParseHexColor(a.Color)
	if err != nil {
		return colorful.Color{R: 1, G: 1, B: 1}
	}
	return c
}

// Size returns the art size in cells.
func (a *AssetDef) Size() (width, height int) {
	for _, row := range a.Art {
		if n := len([]rune(row)); n > width {
			width = n
		}
	}
	return width, len(a.Art)
}

// AssetsFile represents the structure of assets.json.
type AssetsFile struct {
	Assets []AssetDef `json:"assets"`
}

// LoadAssets loads asset definitions from the embedded assets.json file.
func LoadAssets() ([]AssetDef, error) {
	file, err := Load[AssetsFile]("assets.json")
	if err != nil {
		return nil, err
	}
	return file.Assets, nil
}
