package frontmatter

import (
	"regexp"
	"sort"
	"strings"
)

// KeyAlias maps a vendor-specific header key to its base spec spelling.
type KeyAlias struct {
	From string
	To   string
}

// DefaultKeyAliases lists the vendor keys with a base spec equivalent.
var DefaultKeyAliases = []KeyAlias{
	{From: "allowed_tools", To: "allowed-tools"},
}

var (
	// flowSequencePattern matches `key: [ ... ]` anchored at a line start.
	flowSequencePattern = regexp.MustCompile(`(?m)^(\S[^:]+):\s*\[([^\]]*)\]`)
	quotedItemPattern   = regexp.MustCompile(`"([^"]*)"`)
)

// Normalizer rewrites header text into base spec syntax.
type Normalizer struct {
	aliases []KeyAlias
}

// NewNormalizer returns a Normalizer applying aliases in the given order.
// A nil slice selects DefaultKeyAliases.
func NewNormalizer(aliases []KeyAlias) *Normalizer {
	if aliases == nil {
		aliases = DefaultKeyAliases
	}
	return &Normalizer{aliases: aliases}
}

// AliasesFromMap converts a config map into aliases sorted by vendor key so
// the rewrite order does not depend on map iteration.
func AliasesFromMap(m map[string]string) []KeyAlias {
	if len(m) == 0 {
		return nil
	}
	aliases := make([]KeyAlias, 0, len(m))
	for from, to := range m {
		aliases = append(aliases, KeyAlias{From: from, To: to})
	}
	sort.Slice(aliases, func(i, j int) bool { return aliases[i].From < aliases[j].From })
	return aliases
}

// Normalize rewrites vendor keys and flow sequences in header. The key
// rewrite is a plain substring replacement of "<vendor>:" and will also hit
// occurrences inside values. changed reports whether the output differs
// from the input.
func (n *Normalizer) Normalize(header string) (out string, changed bool) {
	out = header
	for _, a := range n.aliases {
		out = strings.ReplaceAll(out, a.From+":", a.To+":")
	}
	out = flowSequencePattern.ReplaceAllStringFunc(out, expandFlowSequence)
	return out, out != header
}

// NormalizeDocument normalizes the header of d and leaves the body alone.
func (n *Normalizer) NormalizeDocument(d Document) (Document, bool) {
	header, changed := n.Normalize(d.Header)
	return Document{Header: header, Body: d.Body}, changed
}

func expandFlowSequence(match string) string {
	groups := flowSequencePattern.FindStringSubmatch(match)
	if groups == nil {
		return match
	}
	items := quotedItemPattern.FindAllStringSubmatch(groups[2], -1)
	if len(items) == 0 {
		return match
	}

	var b strings.Builder
	b.WriteString(groups[1])
	b.WriteString(":")
	for _, item := range items {
		b.WriteString("\n  - ")
		b.WriteString(item[1])
	}
	return b.String()
}
