// Package frontmatter splits SKILL.md documents into their YAML header block
// and markdown body, and rewrites vendor header extensions into the
// base Agent Skills spec syntax.
package frontmatter

import "strings"

// Delimiter opens and closes the header block.
const Delimiter = "---"

// Document is a skill document split around its header block. Header keeps
// the text between the two delimiters verbatim, including the newline that
// follows the opening delimiter; Body keeps everything after the closing one.
type Document struct {
	Header string
	Body   string
}

// Split separates content into header and body. It reports false when the
// content does not start with the delimiter or the delimiter never appears
// a second time; such documents are headerless and must not be normalized.
func Split(content string) (Document, bool) {
	if !strings.HasPrefix(content, Delimiter) {
		return Document{}, false
	}
	rest := content[len(Delimiter):]
	header, body, found := strings.Cut(rest, Delimiter)
	if !found {
		return Document{}, false
	}
	return Document{Header: header, Body: body}, true
}

// String reassembles the document. For any content where Split succeeds,
// Split(content) followed by String returns content unchanged.
func (d Document) String() string {
	var b strings.Builder
	b.Grow(len(d.Header) + len(d.Body) + 2*len(Delimiter))
	b.WriteString(Delimiter)
	b.WriteString(d.Header)
	b.WriteString(Delimiter)
	b.WriteString(d.Body)
	return b.String()
}
