// Package render turns ray hits into a frame of shading glyphs.
package render

// Glyphs is the character set a frame is drawn with.
type Glyphs struct {
	HorizontalWall rune
	VerticalWall   rune
	Floor          rune
	Ceiling        rune
	TopCap         rune // lower half block, sits on top of the wall run
	BottomCap      rune // upper half block, hangs under the wall run
	Error          rune
}

// DefaultGlyphs uses the block shading characters.
var DefaultGlyphs = Glyphs{
	HorizontalWall: '█',
	VerticalWall:   '▓',
	Floor:          '░',
	Ceiling:        ' ',
	TopCap:         '▄',
	BottomCap:      '▀',
	Error:          '?',
}

// ShadeColumn returns exactly screenHeight glyphs for a wall slice of the
// given projected height, centred vertically. Heights of 2*screenHeight or
// more fill the column with wall; negative heights fill it with the error
// glyph.
func ShadeColumn(height, screenHeight int, wall rune, g Glyphs) []rune {
	return shadeInto(make([]rune, screenHeight), height, wall, g)
}

// shadeInto writes the column into dst, whose length is the screen height.
func shadeInto(dst []rune, height int, wall rune, g Glyphs) []rune {
	n := len(dst)
	switch {
	case height >= n*2:
		fill(dst, wall)
		return dst
	case height < 0:
		fill(dst, g.Error)
		return dst
	}

	half := height / 2
	run := half / 2
	topLen := n / 2
	top, bottom := dst[:topLen], dst[topLen:]

	// Top half is right-aligned: ceiling, optional cap, wall run.
	i := len(top) - run
	if i < 0 {
		i = 0
	}
	fill(top[i:], wall)
	if half%2 == 1 && i > 0 {
		i--
		top[i] = g.TopCap
	}
	fill(top[:i], g.Ceiling)

	// Bottom half is left-aligned: wall run, optional cap, floor.
	j := run
	if j > len(bottom) {
		j = len(bottom)
	}
	fill(bottom[:j], wall)
	if half%2 == 1 && j < len(bottom) {
		bottom[j] = g.BottomCap
		j++
	}
	fill(bottom[j:], g.Floor)

	return dst
}

func fill(s []rune, r rune) {
	for i := range s {
		s[i] = r
	}
}
