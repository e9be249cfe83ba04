package mdblock

import (
	"strings"
	"unicode"
)

// Parse splits text on '\n' and classifies the lines into blocks.
func Parse(text string) []Block {
	if text == "" {
		return nil
	}
	return Classify(strings.Split(text, "\n"))
}

// Classify groups lines into blocks in a single left-to-right pass.
//
// Consecutive table lines and consecutive list lines are buffered and
// flushed as one node when the next line no longer continues the run.
// Headings and paragraphs are emitted per line. Blank lines produce
// nothing. Classify never fails; malformed tables and lists degrade to
// best-effort structure.
func Classify(lines []string) []Block {
	var (
		blocks       []Block
		pendingTable []string
		pendingList  []string
	)
	for i := range lines {
		line := trimLineEnd(lines[i])
		trimmed := strings.TrimSpace(line)
		last := i == len(lines)-1

		if isTableLine(trimmed) {
			pendingTable = append(pendingTable, line)
			if last || !isTableLine(strings.TrimSpace(lines[i+1])) {
				blocks = append(blocks, flushTable(pendingTable))
				pendingTable = nil
			}
			continue
		}

		if isListLine(trimmed) {
			pendingList = append(pendingList, trimmed[len(listMarkerDash):])
			if last || !isListLine(strings.TrimSpace(lines[i+1])) {
				blocks = append(blocks, flushList(pendingList))
				pendingList = nil
			}
			continue
		}

		if level, text, ok := parseHeading(line); ok {
			blocks = append(blocks, Heading{Level: level, Spans: ResolveSpans(text)})
			continue
		}

		if trimmed == "" {
			continue
		}

		blocks = append(blocks, Paragraph{Spans: ResolveSpans(line)})
	}
	return blocks
}

const (
	tableMarker      = "|"
	listMarkerDash   = "- "
	listMarkerStar   = "* "
	headingMarker    = '#'
	maxRawHeadingTag = 3
)

func trimLineEnd(line string) string {
	return strings.TrimRightFunc(line, unicode.IsSpace)
}

func isTableLine(trimmed string) bool {
	return strings.HasPrefix(trimmed, tableMarker)
}

func isListLine(trimmed string) bool {
	return strings.HasPrefix(trimmed, listMarkerDash) || strings.HasPrefix(trimmed, listMarkerStar)
}

// parseHeading reports the rendered level and text of an unindented
// heading line. Raw levels shift down by one and cap at MaxHeadingLevel.
func parseHeading(line string) (int, string, bool) {
	if line == "" || line[0] != headingMarker {
		return 0, "", false
	}
	raw := 0
	for raw < len(line) && line[raw] == headingMarker {
		raw++
	}
	text := strings.TrimLeftFunc(line[raw:], unicode.IsSpace)
	if raw > maxRawHeadingTag {
		raw = maxRawHeadingTag
	}
	return raw + 1, text, true
}

// flushTable treats line 0 as the header and lines 2.. as body rows. Line 1
// is dropped as the separator without checking that it looks like one, so a
// two-line run loses its second line.
func flushTable(lines []string) Table {
	t := Table{Header: splitRow(lines[0])}
	if len(lines) > 2 {
		t.Rows = make([][][]Span, 0, len(lines)-2)
		for _, line := range lines[2:] {
			t.Rows = append(t.Rows, splitRow(line))
		}
	}
	return t
}

func splitRow(line string) [][]Span {
	parts := strings.Split(line, tableMarker)
	cells := make([][]Span, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		cells = append(cells, ResolveSpans(part))
	}
	return cells
}

func flushList(lines []string) List {
	items := make([][]Span, len(lines))
	for i, line := range lines {
		items[i] = ResolveSpans(line)
	}
	return List{Items: items}
}
