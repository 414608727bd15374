package frontmatter

import (
	"fmt"
	"os"
)

// Rewrite writes d back to path when changed is true and is a no-op
// otherwise. The file keeps its existing permission bits.
func Rewrite(path string, d Document, changed bool) error {
	if !changed {
		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(d.String()), info.Mode().Perm()); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
