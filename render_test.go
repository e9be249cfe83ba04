package mdblock

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/require"

	"pkt.systems/mdblock/internal/palette"
)

var ansiRegexp = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiRegexp.ReplaceAllString(s, "")
}

func renderString(t *testing.T, src string, width int, theme Theme, opts ...RenderOption) string {
	t.Helper()
	var out bytes.Buffer
	err := Render(RenderRequest{
		Reader:  strings.NewReader(src),
		Writer:  &out,
		Width:   width,
		Theme:   theme,
		Options: opts,
	})
	require.NoError(t, err)
	return out.String()
}

func TestRenderBoringLayout(t *testing.T) {
	src := strings.Join([]string{
		"# Title",
		"",
		"Para **bold** text.",
		"",
		"- one",
		"- two",
		"",
		"| A | B |",
		"|---|---|",
		"| 1 | 22 |",
	}, "\n")

	out := renderString(t, src, 0, BoringTheme())
	want := strings.Join([]string{
		"Title",
		"─────",
		"",
		"Para bold text.",
		"",
		"• one",
		"• two",
		"",
		"┌───┬────┐",
		"│ A │ B  │",
		"├───┼────┤",
		"│ 1 │ 22 │",
		"└───┴────┘",
	}, "\n") + "\n"
	require.Equal(t, want, out)
	require.NotContains(t, out, "\x1b")
}

func TestRenderHeadingTiers(t *testing.T) {
	out := renderString(t, "# One\n## Two\n#### Four", 0, BoringTheme())
	require.Equal(t, "One\n───\n\nTwo\n\nFour\n", out)

	styledOut := renderString(t, "# One\n## Two\n### Three", 0, DefaultTheme())
	require.Contains(t, styledOut, palette.PaletteDefault.H1)
	require.Contains(t, styledOut, palette.PaletteDefault.H2)
	require.Contains(t, styledOut, palette.PaletteDefault.H3)
	require.Contains(t, styledOut, palette.Reset)
}

func TestRenderStrongAndTableStyles(t *testing.T) {
	out := renderString(t, "x **b**\n\n| H |\n|---|\n| v |", 0, DefaultTheme())
	require.Contains(t, out, palette.PaletteDefault.Strong+"b"+palette.Reset)
	require.Contains(t, out, palette.PaletteDefault.TableHeader)
	require.Contains(t, out, palette.PaletteDefault.TableBorder)
	require.Equal(t, "x b\n\n┌───┐\n│ H │\n├───┤\n│ v │\n└───┘\n", stripANSI(out))
}

func TestRenderWrapsParagraphs(t *testing.T) {
	out := renderString(t, "Remote work adoption rose sharply", 20, BoringTheme())
	require.Equal(t, "Remote work adoption\nrose sharply\n", out)
}

func TestRenderListHangingIndent(t *testing.T) {
	out := renderString(t, "- alpha beta gamma delta", 12, BoringTheme())
	require.Equal(t, "• alpha beta\n  gamma\n  delta\n", out)

	out = renderString(t, "- a\n- b", 0, BoringTheme(), WithBullet("-"))
	require.Equal(t, "- a\n- b\n", out)
}

func TestRenderTableFitsWidth(t *testing.T) {
	src := "| Column One | Two |\n|---|---|\n| a very long cell value | x |"
	out := renderString(t, src, 20, DefaultTheme())
	plain := stripANSI(out)
	for _, line := range strings.Split(strings.TrimSuffix(plain, "\n"), "\n") {
		require.LessOrEqual(t, runewidth.StringWidth(line), 20, "line %q too wide", line)
	}
	require.Contains(t, plain, "a very lo…")
	require.Contains(t, plain, "Column One")
}

func TestRenderTableRaggedAndHeaderOnly(t *testing.T) {
	out := renderString(t, "| A | B |\n|---|---|\n| 1 |\n| 1 | 2 | 3 |", 0, BoringTheme(), WithASCIITables(true))
	want := strings.Join([]string{
		"+---+---+---+",
		"| A | B |   |",
		"+---+---+---+",
		"| 1 |   |   |",
		"| 1 | 2 | 3 |",
		"+---+---+---+",
	}, "\n") + "\n"
	require.Equal(t, want, out)

	out = renderString(t, "| only | header |", 0, BoringTheme())
	require.Equal(t, "┌──────┬────────┐\n│ only │ header │\n└──────┴────────┘\n", out)
}

func TestRenderWideRunes(t *testing.T) {
	out := renderString(t, "| 变量 | x |\n|---|---|\n| 强度 | y |", 0, BoringTheme())
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	width := runewidth.StringWidth(lines[0])
	for _, line := range lines {
		require.Equal(t, width, runewidth.StringWidth(line), "misaligned line %q", line)
	}
}

func TestRenderEmptyInput(t *testing.T) {
	require.Equal(t, "", renderString(t, "", 80, DefaultTheme()))
	require.Equal(t, "", renderString(t, "\n\n|\n", 80, DefaultTheme()))
}

func TestRenderRejectsNilIO(t *testing.T) {
	require.Error(t, Render(RenderRequest{Writer: &bytes.Buffer{}}))
	require.Error(t, Render(RenderRequest{Reader: strings.NewReader("x")}))
	require.Error(t, RenderBlocks(nil, nil, 0, nil))
}
