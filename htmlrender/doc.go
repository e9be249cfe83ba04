// Package htmlrender renders mdblock blocks to HTML.
//
// Blocks are converted to a golang.org/x/net/html node tree and serialized
// with html.Render, so text is always escaped. Headings map to h2-h4,
// lists to ul/li, tables to a scrollable div wrapping thead/tbody, and
// strong spans to strong elements.
//
// Example:
//
//	blocks := mdblock.Parse("# Findings\n\n- **n** = 120\n")
//	err := htmlrender.RenderBlocks(os.Stdout, blocks, htmlrender.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Set Config.Classes to false for bare markup without utility classes.
package htmlrender
