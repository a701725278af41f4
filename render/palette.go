package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/term-snake/constant"
)

// TerminalPalette draws solid blocks told apart by color
func TerminalPalette() Palette {
	base := tcell.StyleDefault.Background(RgbBackground)
	return Palette{
		Wall:  constant.GlyphWall,
		Body:  constant.GlyphBody,
		Head:  constant.GlyphHead,
		Fruit: constant.GlyphFruit,
		Empty: constant.GlyphEmpty,

		WallStyle:  base.Foreground(RgbWall),
		BodyStyle:  base.Foreground(RgbBody),
		HeadStyle:  base.Foreground(RgbHead),
		FruitStyle: base.Foreground(RgbFruit),
		EmptyStyle: base,
		TextStyle:  base.Foreground(RgbStatusText),
		EndStyle:   base.Foreground(RgbGameOver).Bold(true),
	}
}

// TextPalette uses one distinct ASCII glyph per cell kind and no color
func TextPalette() Palette {
	return Palette{
		Wall:  constant.TextWall,
		Body:  constant.TextBody,
		Head:  constant.TextHead,
		Fruit: constant.TextFruit,
		Empty: constant.TextEmpty,

		WallStyle:  tcell.StyleDefault,
		BodyStyle:  tcell.StyleDefault,
		HeadStyle:  tcell.StyleDefault,
		FruitStyle: tcell.StyleDefault,
		EmptyStyle: tcell.StyleDefault,
		TextStyle:  tcell.StyleDefault,
		EndStyle:   tcell.StyleDefault,
	}
}
