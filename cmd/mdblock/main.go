package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/k0kubun/pp"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/mdblock"
	"pkt.systems/mdblock/htmlrender"
	"pkt.systems/version"
)

const (
	defaultThemeName = "default"
	defaultWidth     = 80
	defaultFormat    = "ansi"
)

func init() {
	version.SetDefaultModule("pkt.systems/mdblock")
}

type options struct {
	format      string
	themeName   string
	width       int
	outPath     string
	listThemes  bool
	boring      bool
	ascii       bool
	softWrap    bool
	bullet      string
	frontMatter bool
	nfc         bool
	strict      bool
	maxBytes    int64
	noClasses   bool
	stats       bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts options
	flags := pflag.NewFlagSet("mdblock", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&opts.format, "format", "f", defaultFormat, "Output format: ansi|plain|html|json|dump")
	flags.StringVarP(&opts.themeName, "theme", "t", defaultThemeName, "Theme name")
	flags.IntVarP(&opts.width, "width", "w", 0, "Output width override (0 uses terminal width if available)")
	flags.StringVarP(&opts.outPath, "output", "o", "", "Output file instead of stdout")
	flags.BoolVar(&opts.listThemes, "list-themes", false, "List available themes")
	flags.BoolVarP(&opts.boring, "boring", "b", false, "Generate non-ANSI output (same as --format plain)")
	flags.BoolVar(&opts.ascii, "ascii", false, "Draw table borders with ASCII")
	flags.BoolVar(&opts.softWrap, "soft-wrap", false, "Break words longer than the output width")
	flags.StringVar(&opts.bullet, "bullet", "", "List item marker (default •)")
	flags.BoolVar(&opts.frontMatter, "front-matter", false, "Strip leading YAML/TOML/JSON front matter")
	flags.BoolVar(&opts.nfc, "nfc", false, "Apply Unicode NFC normalization to input")
	flags.BoolVar(&opts.strict, "strict", false, "Reject invalid UTF-8 and binary input")
	flags.Int64Var(&opts.maxBytes, "max-bytes", mdblock.DefaultMaxBytes, "Maximum input size in bytes (0 disables)")
	flags.BoolVar(&opts.noClasses, "no-classes", false, "Omit class attributes in HTML output")
	flags.BoolVar(&opts.stats, "stats", false, "Print an input/block summary to stderr")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(stderr, version.Module(), version.Current())
		fmt.Fprintf(stderr, "Usage: mdblock [flags] [inputs...]\n")
		fmt.Fprintln(stderr, "\nIf no input is provided, Markdown is read from stdin.")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	if opts.listThemes {
		printThemes(stdout)
		return 0
	}

	format, err := resolveFormat(opts.format, opts.boring)
	if err != nil {
		fmt.Fprintf(stderr, "invalid --format %q: %v\n", opts.format, err)
		return 2
	}
	theme, ok := mdblock.ThemeByName(opts.themeName)
	if !ok {
		fmt.Fprintf(stderr, "unknown theme %q\n\n", opts.themeName)
		printThemes(stderr)
		return 2
	}

	reader, closer, err := openInputs(flags.Args(), stdin)
	if err != nil {
		fmt.Fprintf(stderr, "open input: %v\n", err)
		return 1
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	counter := &countingReader{r: reader}

	blocks, err := mdblock.ParseReader(mdblock.ParseRequest{
		Reader:  counter,
		Options: parseOptions(opts),
	})
	if err != nil {
		if errors.Is(err, mdblock.ErrInputTooLarge) {
			fmt.Fprintf(stderr, "input exceeds %s limit\n", humanize.IBytes(uint64(opts.maxBytes)))
			return 1
		}
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}

	writer, closeOut, err := resolveOutput(opts.outPath, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "open output: %v\n", err)
		return 1
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}

	if format == "plain" {
		theme = mdblock.BoringTheme()
	}
	if err := writeBlocks(writer, blocks, format, theme, opts); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", format, err)
		return 1
	}
	if opts.stats {
		printStats(stderr, counter.n, blocks)
	}
	return 0
}

func parseOptions(opts options) []mdblock.ParseOption {
	return []mdblock.ParseOption{
		mdblock.WithMaxBytes(opts.maxBytes),
		mdblock.WithStrictInput(opts.strict),
		mdblock.WithFrontMatter(opts.frontMatter),
		mdblock.WithNormalize(opts.nfc),
	}
}

func writeBlocks(w io.Writer, blocks []mdblock.Block, format string, theme mdblock.Theme, opts options) error {
	switch format {
	case "ansi", "plain":
		return mdblock.RenderBlocks(w, blocks, resolveWidth(opts.width, w), theme,
			mdblock.WithASCIITables(opts.ascii),
			mdblock.WithSoftWrap(opts.softWrap),
			mdblock.WithBullet(opts.bullet),
		)
	case "html":
		cfg := htmlrender.DefaultConfig()
		cfg.Classes = !opts.noClasses
		return htmlrender.RenderBlocks(w, blocks, cfg)
	case "json":
		if blocks == nil {
			blocks = []mdblock.Block{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(blocks)
	case "dump":
		pp.ColoringEnabled = isTerminal(w)
		_, err := pp.Fprintln(w, blocks)
		return err
	default:
		return fmt.Errorf("unsupported format")
	}
}

func resolveFormat(format string, boring bool) (string, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = defaultFormat
	}
	switch format {
	case "ansi", "plain", "html", "json", "dump":
	default:
		return "", fmt.Errorf("expected ansi|plain|html|json|dump")
	}
	if boring && format == "ansi" {
		return "plain", nil
	}
	return format, nil
}

func printThemes(w io.Writer) {
	for _, name := range mdblock.AvailableThemes() {
		fmt.Fprintln(w, name)
	}
}

func printStats(w io.Writer, n int64, blocks []mdblock.Block) {
	counts := make(map[mdblock.BlockKind]int, 4)
	for _, b := range blocks {
		counts[b.Kind()]++
	}
	fmt.Fprintf(w, "read %s, %s blocks (%d headings, %d paragraphs, %d lists, %d tables)\n",
		humanize.Bytes(uint64(n)),
		humanize.Comma(int64(len(blocks))),
		counts[mdblock.BlockHeading],
		counts[mdblock.BlockParagraph],
		counts[mdblock.BlockList],
		counts[mdblock.BlockTable],
	)
}

func resolveWidth(width int, w io.Writer) int {
	if width > 0 {
		return width
	}
	return terminalWidth(w, defaultWidth)
}

func terminalWidth(w io.Writer, fallback int) int {
	if f, ok := w.(*os.File); ok {
		fd := int(f.Fd())
		if term.IsTerminal(fd) {
			if cols, _, err := term.GetSize(fd); err == nil && cols > 0 {
				return cols
			}
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if cols, err := strconv.Atoi(value); err == nil && cols > 0 {
			return cols
		}
	}
	return fallback
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

type inputSource struct {
	open func() (io.Reader, io.Closer, error)
}

type multiInputReader struct {
	sources   []inputSource
	idx       int
	cur       io.Reader
	curCloser io.Closer
	closed    bool
}

func (m *multiInputReader) Read(p []byte) (int, error) {
	for {
		if m.closed {
			return 0, io.EOF
		}
		if m.cur == nil {
			if m.idx >= len(m.sources) {
				m.closed = true
				return 0, io.EOF
			}
			reader, closer, err := m.sources[m.idx].open()
			if err != nil {
				return 0, err
			}
			m.cur = reader
			m.curCloser = closer
			m.idx++
		}
		n, err := m.cur.Read(p)
		if n > 0 {
			return n, nil
		}
		if err == io.EOF {
			if m.curCloser != nil {
				_ = m.curCloser.Close()
			}
			m.cur = nil
			m.curCloser = nil
			continue
		}
		if err != nil {
			return 0, err
		}
	}
}

func (m *multiInputReader) Close() error {
	m.closed = true
	if m.curCloser != nil {
		return m.curCloser.Close()
	}
	return nil
}

func openInputs(args []string, stdin io.Reader) (io.Reader, io.Closer, error) {
	if len(args) == 0 {
		return stdin, nil, nil
	}
	sources := make([]inputSource, 0, len(args))
	for _, raw := range args {
		src, err := makeInputSource(raw)
		if err != nil {
			return nil, nil, err
		}
		sources = append(sources, src)
	}
	m := &multiInputReader{sources: sources}
	return m, m, nil
}

func makeInputSource(raw string) (inputSource, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return inputSource{}, fmt.Errorf("empty input argument")
	}
	u, err := url.Parse(raw)
	if err == nil && u.Scheme != "" {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return inputSource{open: func() (io.Reader, io.Closer, error) {
				return openURL(raw)
			}}, nil
		case "file":
			path := u.Path
			if path == "" {
				path = u.Host
			}
			if unescaped, err := url.PathUnescape(path); err == nil {
				path = unescaped
			}
			return inputSource{open: func() (io.Reader, io.Closer, error) {
				return openFile(path)
			}}, nil
		}
	}
	return inputSource{open: func() (io.Reader, io.Closer, error) {
		return openFile(raw)
	}}, nil
}

func openURL(raw string) (io.Reader, io.Closer, error) {
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, raw, nil)
	if err != nil {
		return nil, nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_ = resp.Body.Close()
		return nil, nil, fmt.Errorf("http %s: %s", raw, resp.Status)
	}
	return resp.Body, resp.Body, nil
}

func openFile(path string) (io.Reader, io.Closer, error) {
	clean := normalizePath(path)
	f, err := os.Open(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func resolveOutput(path string, stdout io.Writer) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return stdout, nil, nil
	}
	clean := normalizePath(path)
	dir := filepath.Dir(clean)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.Create(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
