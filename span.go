package mdblock

import (
	"regexp"
	"strings"
)

// Span is an inline text segment with a style applied.
type Span struct {
	Kind SpanKind
	Text string
}

type spanKind uint8

// SpanKind is the exported alias of spanKind for renderers and tooling.
type SpanKind = spanKind

const (
	spanPlain spanKind = iota
	spanStrong
)

const (
	// SpanPlain represents unstyled text.
	SpanPlain spanKind = spanPlain
	// SpanStrong represents text wrapped in a pair of ** delimiters.
	SpanStrong spanKind = spanStrong
)

func (k spanKind) String() string {
	switch k {
	case spanStrong:
		return "strong"
	default:
		return "plain"
	}
}

// Plain returns an unstyled span.
func Plain(text string) Span {
	return Span{Kind: SpanPlain, Text: text}
}

// Strong returns a strong (bold) span.
func Strong(text string) Span {
	return Span{Kind: SpanStrong, Text: text}
}

const strongDelim = "**"

var strongPattern = regexp.MustCompile(`\*\*.*?\*\*`)

// ResolveSpans splits a single line into plain and strong segments.
//
// Delimited runs are matched lazily, so "**a** b **c**" yields two strong
// spans. An unterminated "**" is kept as plain text and strong content is
// not scanned again for nested markup.
func ResolveSpans(line string) []Span {
	if line == "" {
		return nil
	}
	matches := strongPattern.FindAllStringIndex(line, -1)
	if len(matches) == 0 {
		return []Span{Plain(line)}
	}
	spans := make([]Span, 0, len(matches)*2+1)
	last := 0
	for _, m := range matches {
		spans = appendPiece(spans, line[last:m[0]])
		spans = appendPiece(spans, line[m[0]:m[1]])
		last = m[1]
	}
	return appendPiece(spans, line[last:])
}

func appendPiece(spans []Span, piece string) []Span {
	if len(piece) >= 2*len(strongDelim) && strings.HasPrefix(piece, strongDelim) && strings.HasSuffix(piece, strongDelim) {
		piece = piece[len(strongDelim) : len(piece)-len(strongDelim)]
		if piece == "" {
			return spans
		}
		return append(spans, Strong(piece))
	}
	if piece == "" {
		return spans
	}
	return append(spans, Plain(piece))
}

// SpanText concatenates the text of spans without any styling.
func SpanText(spans []Span) string {
	switch len(spans) {
	case 0:
		return ""
	case 1:
		return spans[0].Text
	}
	var b strings.Builder
	for _, s := range spans {
		b.WriteString(s.Text)
	}
	return b.String()
}
