package mdblock

import "encoding/json"

// Block is one structural unit of parsed output.
//
// The set of implementations is closed: Heading, Paragraph, List and
// Table. A type switch over those four cases is exhaustive.
type Block interface {
	Kind() BlockKind
	isBlock()
}

type blockKind uint8

// BlockKind is the exported alias of blockKind.
type BlockKind = blockKind

const (
	blockHeading blockKind = iota
	blockParagraph
	blockList
	blockTable
)

const (
	// BlockHeading identifies a Heading node.
	BlockHeading blockKind = blockHeading
	// BlockParagraph identifies a Paragraph node.
	BlockParagraph blockKind = blockParagraph
	// BlockList identifies a List node.
	BlockList blockKind = blockList
	// BlockTable identifies a Table node.
	BlockTable blockKind = blockTable
)

func (k blockKind) String() string {
	switch k {
	case blockHeading:
		return "heading"
	case blockParagraph:
		return "paragraph"
	case blockList:
		return "list"
	case blockTable:
		return "table"
	default:
		return "unknown"
	}
}

// Heading levels after shifting raw markup down by one. A single "#" renders
// as a second-level heading so a document title can sit above the content.
const (
	MinHeadingLevel = 2
	MaxHeadingLevel = 4
)

// Heading is a single-line heading.
type Heading struct {
	Level int
	Spans []Span
}

// Tier returns the style tier of the heading, 1 (most prominent) to 3.
func (h Heading) Tier() int {
	switch {
	case h.Level <= MinHeadingLevel:
		return 1
	case h.Level >= MaxHeadingLevel:
		return 3
	default:
		return h.Level - MinHeadingLevel + 1
	}
}

// Paragraph holds the spans of exactly one source line.
type Paragraph struct {
	Spans []Span
}

// List is a run of bullet lines; each item has its marker stripped.
type List struct {
	Items [][]Span
}

// Table is a run of pipe-delimited lines. Rows may be ragged.
type Table struct {
	Header [][]Span
	Rows   [][][]Span
}

func (Heading) Kind() BlockKind   { return BlockHeading }
func (Paragraph) Kind() BlockKind { return BlockParagraph }
func (List) Kind() BlockKind      { return BlockList }
func (Table) Kind() BlockKind     { return BlockTable }

func (Heading) isBlock()   {}
func (Paragraph) isBlock() {}
func (List) isBlock()      {}
func (Table) isBlock()     {}

type spanJSON struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

// MarshalJSON encodes the span as {"kind":..., "text":...}.
func (s Span) MarshalJSON() ([]byte, error) {
	return json.Marshal(spanJSON{Kind: s.Kind.String(), Text: s.Text})
}

// MarshalJSON encodes the heading with its kind tag.
func (h Heading) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind  string `json:"kind"`
		Level int    `json:"level"`
		Spans []Span `json:"spans"`
	}{blockHeading.String(), h.Level, nonNilSpans(h.Spans)})
}

// MarshalJSON encodes the paragraph with its kind tag.
func (p Paragraph) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind  string `json:"kind"`
		Spans []Span `json:"spans"`
	}{blockParagraph.String(), nonNilSpans(p.Spans)})
}

// MarshalJSON encodes the list with its kind tag.
func (l List) MarshalJSON() ([]byte, error) {
	items := make([][]Span, len(l.Items))
	for i, item := range l.Items {
		items[i] = nonNilSpans(item)
	}
	return json.Marshal(struct {
		Kind  string   `json:"kind"`
		Items [][]Span `json:"items"`
	}{blockList.String(), items})
}

// MarshalJSON encodes the table with its kind tag.
func (t Table) MarshalJSON() ([]byte, error) {
	header := make([][]Span, len(t.Header))
	for i, cell := range t.Header {
		header[i] = nonNilSpans(cell)
	}
	rows := make([][][]Span, len(t.Rows))
	for i, row := range t.Rows {
		rows[i] = make([][]Span, len(row))
		for j, cell := range row {
			rows[i][j] = nonNilSpans(cell)
		}
	}
	return json.Marshal(struct {
		Kind   string     `json:"kind"`
		Header [][]Span   `json:"header"`
		Rows   [][][]Span `json:"rows"`
	}{blockTable.String(), header, rows})
}

func nonNilSpans(spans []Span) []Span {
	if spans == nil {
		return []Span{}
	}
	return spans
}
