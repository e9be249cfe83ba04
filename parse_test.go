package mdblock

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseReaderStripsFrontMatter(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		src   string
		omits string
	}{
		{name: "yaml", src: "---\ntitle: Post\ndate: 2026-02-09\n---\n\n# Hello\n", omits: "title: Post"},
		{name: "toml", src: "+++\ntitle = \"Post\"\n+++\n\n# Hello\n", omits: "title = \"Post\""},
		{name: "json", src: ";;;\n{\"title\": \"Post\"}\n;;;\n\n# Hello\n", omits: "\"title\": \"Post\""},
		{name: "bom", src: "\ufeff---\ntitle: Post\n---\n# Hello\n", omits: "title: Post"},
	}
	want := []Block{Heading{Level: 2, Spans: []Span{Plain("Hello")}}}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			blocks, err := ParseReader(ParseRequest{
				Reader:  strings.NewReader(tc.src),
				Options: []ParseOption{WithFrontMatter(true)},
			})
			if err != nil {
				t.Fatalf("ParseReader: %v", err)
			}
			if diff := cmp.Diff(want, blocks); diff != "" {
				t.Fatalf("front matter %q not stripped (-want +got):\n%s", tc.omits, diff)
			}
		})
	}
}

func TestParseReaderKeepsNonFrontMatter(t *testing.T) {
	tests := []string{
		"---\n\n# Hello\n",
		"---\nplain words\n---\n",
		"---\ntitle: never closed\n# Hello\n",
	}
	for _, src := range tests {
		blocks, err := ParseReader(ParseRequest{
			Reader:  strings.NewReader(src),
			Options: []ParseOption{WithFrontMatter(true)},
		})
		if err != nil {
			t.Fatalf("ParseReader(%q): %v", src, err)
		}
		if diff := cmp.Diff(Parse(src), blocks); diff != "" {
			t.Fatalf("unexpected stripping for %q (-want +got):\n%s", src, diff)
		}
	}
}

func TestParseReaderFrontMatterOffByDefault(t *testing.T) {
	src := "---\ntitle: Post\n---\n"
	blocks, err := ParseReader(ParseRequest{Reader: strings.NewReader(src)})
	if err != nil {
		t.Fatalf("ParseReader: %v", err)
	}
	if len(blocks) != 3 {
		t.Fatalf("expected front matter lines as paragraphs, got %d blocks", len(blocks))
	}
}

func TestValidateInputRejectsInvalidUTF8(t *testing.T) {
	data := []byte{0xff, 0xfe, 0xfd}
	if err := ValidateInput(data); err != ErrInvalidUTF8 {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
}

func TestValidateInputRejectsBinary(t *testing.T) {
	data := append([]byte("hello"), 0x00)
	if err := ValidateInput(data); err != ErrBinaryInput {
		t.Fatalf("expected ErrBinaryInput, got %v", err)
	}
	noisy := bytes.Repeat([]byte{'a', 'b', 'c', 0x01}, 32)
	if err := ValidateInput(noisy); err != ErrBinaryInput {
		t.Fatalf("expected ErrBinaryInput for control-heavy input, got %v", err)
	}
}

func TestParseReaderStrictInput(t *testing.T) {
	_, err := ParseReader(ParseRequest{
		Reader:  bytes.NewReader([]byte{'#', ' ', 0xff}),
		Options: []ParseOption{WithStrictInput(true)},
	})
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
}

func TestParseReaderSanitizesByDefault(t *testing.T) {
	src := []byte("# Ti\x00tle\x1b\n\xffbody\r\n")
	blocks, err := ParseReader(ParseRequest{Reader: bytes.NewReader(src)})
	if err != nil {
		t.Fatalf("ParseReader: %v", err)
	}
	want := []Block{
		Heading{Level: 2, Spans: []Span{Plain("Title")}},
		Paragraph{Spans: []Span{Plain("body")}},
	}
	if diff := cmp.Diff(want, blocks); diff != "" {
		t.Fatalf("sanitized parse mismatch (-want +got):\n%s", diff)
	}
}

func TestParseReaderMaxBytes(t *testing.T) {
	src := strings.Repeat("x", 32)
	_, err := ParseReader(ParseRequest{
		Reader:  strings.NewReader(src),
		Options: []ParseOption{WithMaxBytes(31)},
	})
	if !errors.Is(err, ErrInputTooLarge) {
		t.Fatalf("expected ErrInputTooLarge, got %v", err)
	}
	if _, err := ParseReader(ParseRequest{
		Reader:  strings.NewReader(src),
		Options: []ParseOption{WithMaxBytes(32)},
	}); err != nil {
		t.Fatalf("expected input at the limit to parse, got %v", err)
	}
	if _, err := ParseBytes([]byte(src), WithMaxBytes(8)); !errors.Is(err, ErrInputTooLarge) {
		t.Fatalf("expected ErrInputTooLarge from ParseBytes, got %v", err)
	}
	if _, err := ParseBytes([]byte(src), WithMaxBytes(0)); err != nil {
		t.Fatalf("expected disabled limit, got %v", err)
	}
}

func TestParseReaderNormalize(t *testing.T) {
	decomposed := "Cafe\u0301"
	blocks, err := ParseReader(ParseRequest{
		Reader:  strings.NewReader(decomposed),
		Options: []ParseOption{WithNormalize(true)},
	})
	if err != nil {
		t.Fatalf("ParseReader: %v", err)
	}
	want := []Block{Paragraph{Spans: []Span{Plain("Caf\u00e9")}}}
	if diff := cmp.Diff(want, blocks); diff != "" {
		t.Fatalf("normalized parse mismatch (-want +got):\n%s", diff)
	}
}

func TestParseReaderNilReader(t *testing.T) {
	if _, err := ParseReader(ParseRequest{}); err == nil {
		t.Fatalf("expected error for nil reader")
	}
}
