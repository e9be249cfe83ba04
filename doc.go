// Package mdblock turns model-generated prose into typed blocks.
//
// The input dialect is a deliberately small slice of Markdown: pipe tables,
// "- " and "* " bullet lists, "#" headings and one-line paragraphs, with
// "**strong**" as the only inline style. Parsing is a single pass over the
// lines that buffers contiguous table and list lines and flushes each run
// as one node. It never fails: malformed tables and lists degrade to
// best-effort structure.
//
// Core properties:
//   - Closed set of block kinds: Heading, Paragraph, List, Table
//   - No shared state; Parse is safe for concurrent use
//   - "#" maps to a level 2 heading, leaving room for a document title
//   - Terminal rendering with themes, wrapping and box-drawn tables
//
// Example:
//
//	blocks := mdblock.Parse("# Results\n\n| A | B |\n|---|---|\n| 1 | 2 |\n")
//	err := mdblock.RenderBlocks(os.Stdout, blocks, 80, mdblock.DefaultTheme())
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Use ParseReader or HTTPParse for bounded, validated ingestion and the
// htmlrender package for HTML output.
package mdblock
