package mdblock

import (
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"

	"pkt.systems/mdblock/internal/palette"
)

const ellipsis = "…"

// truncateWithEllipsis shortens styled text to limit printable columns.
func truncateWithEllipsis(text string, limit int) string {
	if ansi.PrintableRuneWidth(text) <= limit {
		return text
	}
	if limit <= 0 {
		return ""
	}
	out := truncate.StringWithTail(text, uint(limit), ellipsis)
	if strings.Contains(out, "\x1b[") && !strings.HasSuffix(out, palette.Reset) {
		out += palette.Reset
	}
	return out
}

func padRight(text string, width int) string {
	if gap := width - ansi.PrintableRuneWidth(text); gap > 0 {
		return text + strings.Repeat(" ", gap)
	}
	return text
}

// wrapText word-wraps styled text to width. Words longer than width are
// only broken when hard is set.
func wrapText(text string, width int, hard bool) string {
	if width <= 0 {
		return text
	}
	out := wordwrap.String(text, width)
	if hard {
		out = wrap.String(out, width)
	}
	return out
}
