package frontmatter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name    string
		content string
		ok      bool
		header  string
		body    string
	}{
		{
			name:    "header and body",
			content: "---\nname: demo\n---\n# Demo\n",
			ok:      true,
			header:  "\nname: demo\n",
			body:    "\n# Demo\n",
		},
		{
			name:    "no leading delimiter",
			content: "# Demo\n---\nname: demo\n---\n",
		},
		{
			name:    "leading whitespace is not a header",
			content: "\n---\nname: demo\n---\n",
		},
		{
			name:    "unterminated header",
			content: "---\nname: demo\n# Demo\n",
		},
		{
			name:    "empty header",
			content: "------\nbody",
			ok:      true,
			header:  "",
			body:    "\nbody",
		},
		{
			name:    "third delimiter stays in body",
			content: "---\nname: demo\n---\nintro\n---\nmore\n",
			ok:      true,
			header:  "\nname: demo\n",
			body:    "\nintro\n---\nmore\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, ok := Split(tt.content)
			require.Equal(t, tt.ok, ok)
			if !tt.ok {
				require.Equal(t, Document{}, doc)
				return
			}
			require.Equal(t, tt.header, doc.Header)
			require.Equal(t, tt.body, doc.Body)
			require.Equal(t, tt.content, doc.String())
		})
	}
}
