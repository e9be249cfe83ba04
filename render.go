package mdblock

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/indent"

	"pkt.systems/mdblock/internal/palette"
)

// RenderRequest configures Render.
type RenderRequest struct {
	Reader       io.Reader
	Writer       io.Writer
	Width        int
	Theme        Theme
	Options      []RenderOption
	ParseOptions []ParseOption
}

// Render parses Markdown from Reader and writes styled text to Writer.
func Render(req RenderRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("render: reader is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("render: writer is nil")
	}
	blocks, err := ParseReader(ParseRequest{Reader: req.Reader, Options: req.ParseOptions})
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return RenderBlocks(req.Writer, blocks, req.Width, req.Theme, req.Options...)
}

// RenderBlocks writes blocks to w as styled terminal text, separated by
// blank lines. A width <= 0 disables wrapping.
func RenderBlocks(w io.Writer, blocks []Block, width int, theme Theme, opts ...RenderOption) error {
	if w == nil {
		return fmt.Errorf("render: writer is nil")
	}
	if theme == nil {
		theme = DefaultTheme()
	}
	r := &blockRenderer{
		out:    bufio.NewWriter(w),
		width:  width,
		styles: theme.Styles(),
		cfg:    newRenderConfig(opts),
	}
	for _, b := range blocks {
		r.renderBlock(b)
	}
	if err := r.out.Flush(); err != nil {
		return fmt.Errorf("render: write: %w", err)
	}
	return nil
}

type blockRenderer struct {
	out    *bufio.Writer
	width  int
	styles Styles
	cfg    renderConfig
	wrote  bool
}

func (r *blockRenderer) renderBlock(b Block) {
	var lines []string
	switch b := b.(type) {
	case Heading:
		lines = r.headingLines(b)
	case Paragraph:
		lines = r.paragraphLines(b)
	case List:
		lines = r.listLines(b)
	case Table:
		lines = r.tableLines(b)
	}
	if len(lines) == 0 {
		return
	}
	if r.wrote {
		_ = r.out.WriteByte('\n')
	}
	for _, line := range lines {
		_, _ = r.out.WriteString(line)
		_ = r.out.WriteByte('\n')
	}
	r.wrote = true
}

func (r *blockRenderer) headingLines(h Heading) []string {
	tier := h.Tier()
	text := r.inline(h.Spans, r.styles.Heading[tier-1])
	if text == "" {
		return nil
	}
	lines := strings.Split(wrapText(text, r.width, r.cfg.softWrap), "\n")
	if tier == 1 {
		ruleWidth := 0
		for _, line := range lines {
			if w := ansi.PrintableRuneWidth(line); w > ruleWidth {
				ruleWidth = w
			}
		}
		if r.width > 0 && ruleWidth > r.width {
			ruleWidth = r.width
		}
		lines = append(lines, styled(strings.Repeat("─", ruleWidth), r.styles.Rule))
	}
	return lines
}

func (r *blockRenderer) paragraphLines(p Paragraph) []string {
	text := r.inline(p.Spans, r.styles.Text)
	if text == "" {
		return nil
	}
	return strings.Split(wrapText(text, r.width, r.cfg.softWrap), "\n")
}

func (r *blockRenderer) listLines(l List) []string {
	marker := r.cfg.bullet
	hang := runewidth.StringWidth(marker) + 1
	avail := r.width - hang
	if r.width <= 0 || avail < 1 {
		avail = 0
	}
	lines := make([]string, 0, len(l.Items))
	for _, item := range l.Items {
		wrapped := strings.Split(wrapText(r.inline(item, r.styles.Text), avail, r.cfg.softWrap), "\n")
		lines = append(lines, styled(marker, r.styles.ListMarker)+" "+wrapped[0])
		if len(wrapped) > 1 {
			rest := indent.String(strings.Join(wrapped[1:], "\n"), uint(hang))
			lines = append(lines, strings.Split(rest, "\n")...)
		}
	}
	return lines
}

// inline styles spans against base. Strong spans use the Strong style.
func (r *blockRenderer) inline(spans []Span, base Style) string {
	var b strings.Builder
	for _, s := range spans {
		switch s.Kind {
		case SpanStrong:
			b.WriteString(styled(s.Text, combineStyles(base, r.styles.Strong)))
		default:
			b.WriteString(styled(s.Text, base))
		}
	}
	return b.String()
}

func styled(text string, st Style) string {
	if st.Prefix == "" || text == "" {
		return text
	}
	return st.Prefix + text + palette.Reset
}

func combineStyles(base Style, extra Style) Style {
	if base.Prefix == "" {
		return extra
	}
	if extra.Prefix == "" {
		return base
	}
	return Style{Prefix: base.Prefix + extra.Prefix}
}
