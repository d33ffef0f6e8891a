// Package markup parses the résumé Markdown dialect into a flat block model.
//
// The dialect is deliberately small:
//   - "# ", "## ", "### " headings (the space is required)
//   - "- ", "* " bullet items and "N. " numbered items, one level only
//   - **bold** and [text](url) inside paragraphs
//   - blank lines, kept as explicit spacing blocks
//
// Anything else is a paragraph. Parsing never fails: malformed input
// degrades to paragraphs of plain text.
//
// The resulting Document is the shared representation consumed by every
// renderer. It is built fresh for each export and holds no references to
// caller state.
package markup
