package plugin

import "strings"

// TitleCase converts a kebab-case identifier into a spaced title.
// Each hyphen-separated token has its first character uppercased and the
// rest left unchanged, so embedded digits and casing survive:
//
//	"sentry"          -> "Sentry"
//	"hex-mcp"         -> "Hex Mcp"
//	"context7-plugin" -> "Context7 Plugin"
//
// Input is expected to be well-formed kebab-case. Malformed input is not
// normalized: empty tokens from doubled or leading hyphens pass through
// the join untouched.
func TitleCase(identifier string) string {
	if identifier == "" {
		return ""
	}

	tokens := strings.Split(identifier, "-")
	for i, tok := range tokens {
		if tok == "" {
			continue
		}
		tokens[i] = strings.ToUpper(tok[:1]) + tok[1:]
	}

	return strings.Join(tokens, " ")
}

// Title returns the human-facing label for the plugin.
// A non-empty DisplayName wins verbatim; otherwise the title is derived
// from Name. The result is for presentation only and must never be used
// as a lookup key.
func (m *Manifest) Title() string {
	if m.DisplayName != "" {
		return m.DisplayName
	}
	return TitleCase(m.Name)
}

// CommandName returns the identifier to use in install commands and
// anywhere else a stable, typeable token is required. It is always the
// raw kebab-case Name, regardless of any display override.
func (m *Manifest) CommandName() string {
	return m.Name
}
