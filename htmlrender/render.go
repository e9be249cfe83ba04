package htmlrender

import (
	"bufio"
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"pkt.systems/mdblock"
)

// RenderRequest configures Render.
type RenderRequest struct {
	Reader       io.Reader
	Writer       io.Writer
	Config       Config
	ParseOptions []mdblock.ParseOption
}

// Render parses Markdown from Reader and writes HTML to Writer.
func Render(req RenderRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("html render: reader is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("html render: writer is nil")
	}
	blocks, err := mdblock.ParseReader(mdblock.ParseRequest{Reader: req.Reader, Options: req.ParseOptions})
	if err != nil {
		return fmt.Errorf("html render: %w", err)
	}
	return RenderBlocks(req.Writer, blocks, req.Config)
}

// RenderBlocks serializes blocks as HTML, one top-level element per line.
func RenderBlocks(w io.Writer, blocks []mdblock.Block, cfg Config) error {
	if w == nil {
		return fmt.Errorf("html render: writer is nil")
	}
	out := bufio.NewWriter(w)
	for _, n := range Nodes(blocks, cfg) {
		if err := html.Render(out, n); err != nil {
			return fmt.Errorf("html render: %w", err)
		}
		if err := out.WriteByte('\n'); err != nil {
			return fmt.Errorf("html render: write: %w", err)
		}
	}
	if err := out.Flush(); err != nil {
		return fmt.Errorf("html render: write: %w", err)
	}
	return nil
}

// Nodes converts blocks into detached HTML nodes. With Config.Wrapper set
// the result is a single div holding every block.
func Nodes(blocks []mdblock.Block, cfg Config) []*html.Node {
	b := builder{classes: cfg.Classes}
	nodes := make([]*html.Node, 0, len(blocks))
	for _, block := range blocks {
		if n := b.block(block); n != nil {
			nodes = append(nodes, n)
		}
	}
	if !cfg.Wrapper {
		return nodes
	}
	wrapper := b.element(atom.Div, classWrapper)
	for _, n := range nodes {
		wrapper.AppendChild(n)
	}
	return []*html.Node{wrapper}
}

type builder struct {
	classes bool
}

func (b builder) block(block mdblock.Block) *html.Node {
	switch block := block.(type) {
	case mdblock.Heading:
		return b.heading(block)
	case mdblock.Paragraph:
		p := b.element(atom.P, classParagraph)
		b.appendSpans(p, block.Spans)
		return p
	case mdblock.List:
		return b.list(block)
	case mdblock.Table:
		return b.table(block)
	default:
		return nil
	}
}

func (b builder) heading(h mdblock.Heading) *html.Node {
	var n *html.Node
	switch h.Tier() {
	case 1:
		n = b.element(atom.H2, classH2)
	case 2:
		n = b.element(atom.H3, classH3)
	default:
		n = b.element(atom.H4, classH4)
	}
	b.appendSpans(n, h.Spans)
	return n
}

func (b builder) list(l mdblock.List) *html.Node {
	ul := b.element(atom.Ul, classList)
	for _, item := range l.Items {
		li := b.element(atom.Li, classListItem)
		b.appendSpans(li, item)
		ul.AppendChild(li)
	}
	return ul
}

func (b builder) table(t mdblock.Table) *html.Node {
	scroll := b.element(atom.Div, classTableScroll)
	table := b.element(atom.Table, classTable)
	scroll.AppendChild(table)

	thead := b.element(atom.Thead, "")
	headRow := b.element(atom.Tr, "")
	for _, cell := range t.Header {
		th := b.element(atom.Th, classHeaderCell)
		b.appendSpans(th, cell)
		headRow.AppendChild(th)
	}
	thead.AppendChild(headRow)
	table.AppendChild(thead)

	tbody := b.element(atom.Tbody, "")
	for i, row := range t.Rows {
		class := classRow
		if i == len(t.Rows)-1 {
			class = classLastRow
		}
		tr := b.element(atom.Tr, class)
		for _, cell := range row {
			td := b.element(atom.Td, classCell)
			b.appendSpans(td, cell)
			tr.AppendChild(td)
		}
		tbody.AppendChild(tr)
	}
	table.AppendChild(tbody)
	return scroll
}

func (b builder) appendSpans(parent *html.Node, spans []mdblock.Span) {
	for _, s := range spans {
		text := &html.Node{Type: html.TextNode, Data: s.Text}
		if s.Kind != mdblock.SpanStrong {
			parent.AppendChild(text)
			continue
		}
		strong := b.element(atom.Strong, classStrong)
		strong.AppendChild(text)
		parent.AppendChild(strong)
	}
}

func (b builder) element(a atom.Atom, class string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	if b.classes && class != "" {
		n.Attr = []html.Attribute{{Key: "class", Val: class}}
	}
	return n
}
