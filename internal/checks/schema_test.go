package checks

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateFrontmatter(t *testing.T) {
	tests := []struct {
		name     string
		fields   map[string]any
		wantErrs []string
	}{
		{
			name:   "nil map",
			fields: nil,
		},
		{
			name: "all string fields",
			fields: map[string]any{
				"name":          "demo",
				"description":   "d",
				"license":       "MIT",
				"compatibility": "Requires git",
			},
		},
		{
			name:   "allowed-tools as string",
			fields: map[string]any{"allowed-tools": "Read Grep"},
		},
		{
			name:   "allowed-tools as block list",
			fields: map[string]any{"allowed-tools": []any{"Read", "Grep"}},
		},
		{
			name:     "allowed-tools with non-string item",
			fields:   map[string]any{"allowed-tools": []any{"Read", 3}},
			wantErrs: []string{"frontmatter /allowed-tools/1"},
		},
		{
			name:     "name is a list",
			fields:   map[string]any{"name": []any{"a"}},
			wantErrs: []string{"frontmatter /name"},
		},
		{
			name:     "metadata is a string",
			fields:   map[string]any{"metadata": "v1"},
			wantErrs: []string{"frontmatter /metadata"},
		},
		{
			name:   "unknown fields are left to the allowed-fields check",
			fields: map[string]any{"allowed_tools": true},
		},
		{
			name:   "metadata with non-string keys",
			fields: map[string]any{"metadata": map[any]any{1: "one"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateFrontmatter(tt.fields)
			require.Len(t, errs, len(tt.wantErrs), "%v", errs)
			for i, want := range tt.wantErrs {
				require.Contains(t, errs[i], want)
			}
		})
	}
}
