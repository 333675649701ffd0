package skill

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	plugerrors "github.com/plugin-stack/plugman/internal/errors"
	"gopkg.in/yaml.v3"
)

// FileName is the expected skill file name within a skill directory.
const FileName = "SKILL.md"

// SkillsDir is the directory inside a plugin that holds skills.
const SkillsDir = "skills"

const frontmatterDelim = "---"

// LoadFromDir loads a skill from a directory containing SKILL.md.
func LoadFromDir(dir string) (*Skill, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading skill file: %w", err)
	}

	s, err := Parse(string(data))
	if err != nil {
		return nil, plugerrors.SkillParseError(path, err)
	}
	s.Path = path

	return s, nil
}

// Parse parses SKILL.md content: YAML frontmatter between "---" markers,
// followed by markdown instructions.
func Parse(content string) (*Skill, error) {
	rest, ok := strings.CutPrefix(content, frontmatterDelim+"\n")
	if !ok {
		return nil, fmt.Errorf("missing frontmatter: file must start with %q", frontmatterDelim)
	}

	front, body, ok := strings.Cut(rest, "\n"+frontmatterDelim)
	if !ok {
		return nil, fmt.Errorf("unterminated frontmatter: missing closing %q", frontmatterDelim)
	}

	var meta Meta
	if err := yaml.Unmarshal([]byte(front), &meta); err != nil {
		return nil, fmt.Errorf("decoding frontmatter: %w", err)
	}

	return &Skill{
		Meta:         meta,
		Instructions: strings.TrimPrefix(strings.TrimPrefix(body, "\n"), "\n"),
	}, nil
}

// ListInPlugin returns all skills bundled in a plugin directory, sorted by name.
// Directories under skills/ without a SKILL.md are skipped.
func ListInPlugin(pluginDir string) ([]*Skill, error) {
	skillsDir := filepath.Join(pluginDir, SkillsDir)

	entries, err := os.ReadDir(skillsDir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading skills dir: %w", err)
	}

	var skills []*Skill
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}

		dir := filepath.Join(skillsDir, e.Name())
		if _, err := os.Stat(filepath.Join(dir, FileName)); err != nil {
			continue
		}

		s, err := LoadFromDir(dir)
		if err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}

	sort.Slice(skills, func(i, j int) bool {
		return skills[i].Meta.Name < skills[j].Meta.Name
	})

	return skills, nil
}
