package skill

import (
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		skill   Skill
		baseDir string
		wantErr string
	}{
		{
			name:    "valid",
			skill:   Skill{Meta: Meta{Name: "code-review", Description: "x", Version: "1.0.0"}},
			baseDir: "/plugins/p/skills/code-review",
		},
		{
			name:    "missing name",
			skill:   Skill{Meta: Meta{Description: "x"}},
			wantErr: "name is required",
		},
		{
			name:    "missing description",
			skill:   Skill{Meta: Meta{Name: "code-review"}},
			wantErr: "description is required",
		},
		{
			name:    "bad name format",
			skill:   Skill{Meta: Meta{Name: "Code_Review", Description: "x"}},
			wantErr: "must be kebab-case",
		},
		{
			name:    "name directory mismatch",
			skill:   Skill{Meta: Meta{Name: "code-review", Description: "x"}},
			baseDir: "/plugins/p/skills/other-name",
			wantErr: "must match directory name",
		},
		{
			name:    "bad version",
			skill:   Skill{Meta: Meta{Name: "code-review", Description: "x", Version: "v1"}},
			wantErr: "not valid semver",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.skill.Validate(tt.baseDir)
			if tt.wantErr == "" {
				if result.HasErrors() {
					t.Errorf("unexpected errors: %v", result.Errors)
				}
				return
			}

			if !result.HasErrors() {
				t.Fatal("expected validation errors")
			}
			if !strings.Contains(result.Error(), tt.wantErr) {
				t.Errorf("errors %v, want one containing %q", result.Errors, tt.wantErr)
			}
		})
	}
}
