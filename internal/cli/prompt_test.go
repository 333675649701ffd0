package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		defaultYes bool
		want       bool
	}{
		{"explicit yes", "y\n", false, true},
		{"explicit yes word", "yes\n", false, true},
		{"explicit no", "n\n", true, false},
		{"empty uses default no", "\n", false, false},
		{"empty uses default yes", "\n", true, true},
		{"uppercase yes", "Y\n", false, true},
		{"garbage is no", "maybe\n", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := Confirm(&out, strings.NewReader(tt.input), "Proceed?", tt.defaultYes)
			if err != nil {
				t.Fatalf("Confirm: %v", err)
			}
			if got != tt.want {
				t.Errorf("Confirm(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if !strings.Contains(out.String(), "Proceed?") {
				t.Errorf("prompt not written: %q", out.String())
			}
		})
	}
}

func TestConfirm_EOF(t *testing.T) {
	var out bytes.Buffer
	if _, err := Confirm(&out, strings.NewReader(""), "Proceed?", false); err == nil {
		t.Fatal("expected error on EOF")
	}
}
