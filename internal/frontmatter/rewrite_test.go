package frontmatter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRewrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "SKILL.md")
	original := "---\nallowed_tools: [\"Read\"]\n---\n# Body\n"
	require.NoError(t, os.WriteFile(path, []byte(original), 0o600))

	doc, ok := Split(original)
	require.True(t, ok)
	doc, changed := NewNormalizer(nil).NormalizeDocument(doc)
	require.True(t, changed)

	require.NoError(t, Rewrite(path, doc, changed))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "---\nallowed-tools:\n  - Read\n---\n# Body\n", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestRewrite_UnchangedIsNoop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "SKILL.md")

	// The file does not exist, so any write attempt would surface an error.
	require.NoError(t, Rewrite(path, Document{Header: "\nname: x\n"}, false))
	_, err := os.Stat(path)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRewrite_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gone", "SKILL.md")
	err := Rewrite(path, Document{Header: "\nname: x\n"}, true)
	require.Error(t, err)
	require.ErrorIs(t, err, os.ErrNotExist)
}
