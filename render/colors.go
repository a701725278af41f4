package render

import "github.com/gdamore/tcell/v2"

// Cell colors
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbWall       = tcell.NewRGBColor(120, 120, 140) // Slate gray
	RgbBody       = tcell.NewRGBColor(0, 200, 0)     // Normal green
	RgbHead       = tcell.NewRGBColor(50, 255, 50)   // Bright green
	RgbFruit      = tcell.NewRGBColor(255, 80, 80)   // Normal red
	RgbStatusText = tcell.NewRGBColor(255, 255, 255) // White
	RgbGameOver   = tcell.NewRGBColor(255, 165, 0)   // Orange
)

// Palette maps each kind of cell to a glyph and style
type Palette struct {
	Wall, Body, Head, Fruit, Empty rune

	WallStyle  tcell.Style
	BodyStyle  tcell.Style
	HeadStyle  tcell.Style
	FruitStyle tcell.Style
	EmptyStyle tcell.Style
	TextStyle  tcell.Style
	EndStyle   tcell.Style
}
