// Package palette holds the ANSI color palettes behind the built-in themes.
package palette

import "strconv"

// SGR attribute sequences.
const (
	Reset     = "\x1b[0m"
	Bold      = "\x1b[1m"
	Italic    = "\x1b[3m"
	Underline = "\x1b[4m"
)

// Palette maps semantic roles to ANSI color prefixes.
type Palette struct {
	Text        string
	H1          string
	H2          string
	H3          string
	Strong      string
	ListMarker  string
	TableBorder string
	TableHeader string
	Rule        string
}

// RGB returns a 24-bit foreground color sequence.
func RGB(r, g, b uint8) string {
	return "\x1b[38;2;" + strconv.Itoa(int(r)) + ";" + strconv.Itoa(int(g)) + ";" + strconv.Itoa(int(b)) + "m"
}

func hex(v uint32) string {
	return RGB(uint8(v>>16), uint8(v>>8), uint8(v))
}

var (
	PaletteDefault = Palette{
		Text:        "",
		H1:          hex(0x5fafff),
		H2:          hex(0x87d7af),
		H3:          hex(0xd7af87),
		Strong:      hex(0xffffff),
		ListMarker:  hex(0x5fafff),
		TableBorder: hex(0x6c6c6c),
		TableHeader: hex(0xd7d7ff),
		Rule:        hex(0x4e4e4e),
	}
	// PaletteStone follows the warm stone grays of the web view.
	PaletteStone = Palette{
		Text:        hex(0x44403c),
		H1:          hex(0x1c1917),
		H2:          hex(0x292524),
		H3:          hex(0x292524),
		Strong:      hex(0x1c1917),
		ListMarker:  hex(0x44403c),
		TableBorder: hex(0xa8a29e),
		TableHeader: hex(0x1c1917),
		Rule:        hex(0xe7e5e4),
	}
	PaletteDoomGruvbox = Palette{
		Text:        hex(0xebdbb2),
		H1:          hex(0xfb4934),
		H2:          hex(0xfabd2f),
		H3:          hex(0xb8bb26),
		Strong:      hex(0xfe8019),
		ListMarker:  hex(0x83a598),
		TableBorder: hex(0x665c54),
		TableHeader: hex(0xd3869b),
		Rule:        hex(0x504945),
	}
	PaletteDoomDracula = Palette{
		Text:        hex(0xf8f8f2),
		H1:          hex(0xff79c6),
		H2:          hex(0xbd93f9),
		H3:          hex(0x8be9fd),
		Strong:      hex(0xffb86c),
		ListMarker:  hex(0x50fa7b),
		TableBorder: hex(0x6272a4),
		TableHeader: hex(0xf1fa8c),
		Rule:        hex(0x44475a),
	}
	PaletteDoomNord = Palette{
		Text:        hex(0xd8dee9),
		H1:          hex(0x88c0d0),
		H2:          hex(0x81a1c1),
		H3:          hex(0x5e81ac),
		Strong:      hex(0xebcb8b),
		ListMarker:  hex(0xa3be8c),
		TableBorder: hex(0x4c566a),
		TableHeader: hex(0xb48ead),
		Rule:        hex(0x434c5e),
	}
	PaletteSolarizedDark = Palette{
		Text:        hex(0x839496),
		H1:          hex(0xcb4b16),
		H2:          hex(0xb58900),
		H3:          hex(0x859900),
		Strong:      hex(0x93a1a1),
		ListMarker:  hex(0x268bd2),
		TableBorder: hex(0x586e75),
		TableHeader: hex(0x6c71c4),
		Rule:        hex(0x073642),
	}
	PaletteSolarizedLight = Palette{
		Text:        hex(0x657b83),
		H1:          hex(0xcb4b16),
		H2:          hex(0xb58900),
		H3:          hex(0x859900),
		Strong:      hex(0x586e75),
		ListMarker:  hex(0x268bd2),
		TableBorder: hex(0x93a1a1),
		TableHeader: hex(0x6c71c4),
		Rule:        hex(0xeee8d5),
	}
	PaletteGithubLight = Palette{
		Text:        hex(0x24292f),
		H1:          hex(0x0550ae),
		H2:          hex(0x0969da),
		H3:          hex(0x8250df),
		Strong:      hex(0x1f2328),
		ListMarker:  hex(0xbc4c00),
		TableBorder: hex(0xd0d7de),
		TableHeader: hex(0x116329),
		Rule:        hex(0xd8dee4),
	}
	PaletteGithubDark = Palette{
		Text:        hex(0xc9d1d9),
		H1:          hex(0x79c0ff),
		H2:          hex(0x58a6ff),
		H3:          hex(0xd2a8ff),
		Strong:      hex(0xf0f6fc),
		ListMarker:  hex(0xffa657),
		TableBorder: hex(0x30363d),
		TableHeader: hex(0x7ee787),
		Rule:        hex(0x21262d),
	}
	PaletteTokyoNight = Palette{
		Text:        hex(0xa9b1d6),
		H1:          hex(0x7aa2f7),
		H2:          hex(0xbb9af7),
		H3:          hex(0x7dcfff),
		Strong:      hex(0xe0af68),
		ListMarker:  hex(0x9ece6a),
		TableBorder: hex(0x414868),
		TableHeader: hex(0xf7768e),
		Rule:        hex(0x292e42),
	}
)
