package skill

import (
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/plugin-stack/plugman/internal/plugin"
)

// semverPattern matches strict semver (X.Y.Z)
var semverPattern = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

// Validate checks the skill metadata for errors.
// baseDir should be the skill directory path, used to check that the skill
// name matches its directory name. Pass "" to skip the directory check.
func (s *Skill) Validate(baseDir string) *plugin.ValidationResult {
	result := &plugin.ValidationResult{}

	if s.Meta.Name == "" {
		result.AddError("name", "is required")
	} else {
		if !plugin.ValidName(s.Meta.Name) {
			result.AddError("name", "must be kebab-case (lowercase, hyphens, start with letter)")
		}

		if baseDir != "" {
			dirName := filepath.Base(baseDir)
			if s.Meta.Name != dirName {
				result.AddError("name", fmt.Sprintf("must match directory name (got %q, directory is %q)", s.Meta.Name, dirName))
			}
		}
	}

	if s.Meta.Description == "" {
		result.AddError("description", "is required")
	}

	if s.Meta.Version != "" && !semverPattern.MatchString(s.Meta.Version) {
		result.AddError("version", fmt.Sprintf("%q is not valid semver (X.Y.Z)", s.Meta.Version))
	}

	return result
}

// Title returns the human-facing label for the skill: a non-empty
// DisplayName verbatim, otherwise the title derived from Name.
func (s *Skill) Title() string {
	if s.Meta.DisplayName != "" {
		return s.Meta.DisplayName
	}
	return plugin.TitleCase(s.Meta.Name)
}
