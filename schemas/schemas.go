// Package schemas embeds the JSON schemas used to validate skill files.
package schemas

import _ "embed"

// SkillFrontmatterSchemaJSON is the JSON schema for SKILL.md frontmatter.
//
//go:embed skill-frontmatter.schema.json
var SkillFrontmatterSchemaJSON string
