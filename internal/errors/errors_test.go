package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
)

func TestPlugError_Error(t *testing.T) {
	tests := []struct {
		name    string
		err     *PlugError
		wantStr string
	}{
		{
			name: "simple error",
			err: &PlugError{
				Code:    "TEST_001",
				Message: "test error",
			},
			wantStr: "[TEST_001] test error",
		},
		{
			name: "error with cause",
			err: &PlugError{
				Code:    "TEST_002",
				Message: "wrapped error",
				Cause:   errors.New("underlying"),
			},
			wantStr: "[TEST_002] wrapped error: underlying",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestPlugError_Unwrap(t *testing.T) {
	underlying := errors.New("underlying error")
	err := &PlugError{
		Code:    "TEST_001",
		Message: "test",
		Cause:   underlying,
	}

	if got := err.Unwrap(); got != underlying {
		t.Errorf("Unwrap() = %v, want %v", got, underlying)
	}

	// errors.Is should see through the wrapper
	if !errors.Is(err, underlying) {
		t.Error("errors.Is failed to find underlying error")
	}
}

func TestPlugError_WithDetail(t *testing.T) {
	err := New("TEST_001", "test").
		WithDetail("plugin", "hex-mcp").
		WithDetail("count", 42)

	if err.Details["plugin"] != "hex-mcp" {
		t.Errorf("Details[plugin] = %v, want hex-mcp", err.Details["plugin"])
	}
	if err.Details["count"] != 42 {
		t.Errorf("Details[count] = %v, want 42", err.Details["count"])
	}
}

func TestPlugError_MarshalJSON(t *testing.T) {
	err := New(CodePluginNotFound, "plugin not found: hex-mcp").
		WithDetail("plugin", "hex-mcp").
		WithCause(errors.New("store read failed"))

	data, jerr := json.Marshal(err)
	if jerr != nil {
		t.Fatalf("Marshal: %v", jerr)
	}

	var decoded map[string]any
	if jerr := json.Unmarshal(data, &decoded); jerr != nil {
		t.Fatalf("Unmarshal: %v", jerr)
	}

	if decoded["code"] != CodePluginNotFound {
		t.Errorf("code = %v, want %v", decoded["code"], CodePluginNotFound)
	}
	if decoded["cause"] != "store read failed" {
		t.Errorf("cause = %v, want cause message", decoded["cause"])
	}
}

func TestHasCode(t *testing.T) {
	err := PluginNotFound("hex-mcp")

	if !HasCode(err, CodePluginNotFound) {
		t.Error("HasCode = false for matching code")
	}
	if HasCode(err, CodeMarketplaceNotFound) {
		t.Error("HasCode = true for non-matching code")
	}

	// Wrapped errors unwrap to the PlugError
	wrapped := fmt.Errorf("outer: %w", err)
	if !HasCode(wrapped, CodePluginNotFound) {
		t.Error("HasCode = false for wrapped PlugError")
	}

	if HasCode(errors.New("plain"), CodePluginNotFound) {
		t.Error("HasCode = true for non-PlugError")
	}
}

func TestCode(t *testing.T) {
	if got := Code(MarketplaceNotFound("acme")); got != CodeMarketplaceNotFound {
		t.Errorf("Code = %q, want %q", got, CodeMarketplaceNotFound)
	}
	if got := Code(errors.New("plain")); got != "" {
		t.Errorf("Code = %q, want empty", got)
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *PlugError
		wantCode string
	}{
		{"PluginInvalidName", PluginInvalidName("Bad Name"), CodePluginInvalidName},
		{"PluginAlreadyExists", PluginAlreadyExists("hex-mcp", "acme"), CodePluginAlreadyExists},
		{"MarketplaceCloneError", MarketplaceCloneError("acme/plugins", errors.New("git failed")), CodeMarketplaceCloneError},
		{"SkillNotFound", SkillNotFound("hex-mcp", "review"), CodeSkillNotFound},
		{"SkillBadTarget", SkillBadTarget("vscode"), CodeSkillBadTarget},
		{"IOReadError", IOReadError("/path", errors.New("eof")), CodeIOReadError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("Code = %q, want %q", tt.err.Code, tt.wantCode)
			}
			if tt.err.Message == "" {
				t.Error("Message is empty")
			}
		})
	}
}
