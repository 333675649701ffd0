// Package skill provides parsing and installation helpers for plugin skills.
//
// Skills are markdown prompt specifications bundled inside plugins, stored
// as skills/<name>/SKILL.md with YAML frontmatter followed by the markdown
// instructions consumed by the AI harness.
package skill

// Skill represents a parsed SKILL.md file.
type Skill struct {
	// Meta is the parsed YAML frontmatter.
	Meta Meta

	// Instructions is the markdown content after the frontmatter.
	Instructions string

	// Path is the source file path, when loaded from disk.
	Path string
}

// Meta is the YAML frontmatter of a SKILL.md file.
type Meta struct {
	// Name is the skill identifier (kebab-case). Should match the
	// directory name.
	Name string `yaml:"name"`

	// DisplayName is an optional human-readable title override.
	DisplayName string `yaml:"displayName,omitempty"`

	// Description explains what the skill does and when the harness
	// should invoke it (required).
	Description string `yaml:"description"`

	// Version is the skill version (optional, semver).
	Version string `yaml:"version,omitempty"`
}

// TargetConfig describes a known AI harness's skill installation paths.
type TargetConfig struct {
	// Name is the human-readable harness name (e.g., "Claude Code")
	Name string

	// GlobalPath is the template for global skill installation.
	// Uses {{name}} placeholder for the skill name.
	// e.g., "~/.claude/skills/{{name}}"
	GlobalPath string

	// ProjectPath is the template for project-local skill installation.
	// Uses {{name}} placeholder for the skill name.
	// e.g., ".claude/skills/{{name}}"
	ProjectPath string
}
