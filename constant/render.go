package constant

// Glyphs
const (
	GlyphWall  = '█'
	GlyphBody  = '█'
	GlyphHead  = '█'
	GlyphFruit = '█'
	GlyphEmpty = ' '
)

// Headless buffer glyphs, distinct so tests can read the grid
const (
	TextWall  = '#'
	TextBody  = 'o'
	TextHead  = '@'
	TextFruit = '*'
	TextEmpty = '.'
)

// StatusLineGap is the number of rows between the bottom wall and the score line
const StatusLineGap = 1
