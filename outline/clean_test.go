package outline

import "testing"

func TestClean(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"whitespace only", " \t\n ", ""},
		{"collapse runs", "  Getting \n\t Started  ", "Getting Started"},
		{"bullet", "• Overview", "Overview"},
		{"filled bullet", "●Overview", "Overview"},
		{"square bullet", "■  Overview", "Overview"},
		{"en dash", "– Overview", "Overview"},
		{"hyphen", "- Overview", "Overview"},
		{"only one bullet removed", "- - Overview", "- Overview"},
		{"bullet alone", "•", ""},
		{"inner dash kept", "Pre-Flight Checks", "Pre-Flight Checks"},
		{"non-breaking space", "Round\u00a0Two", "Round Two"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Clean(tt.in); got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	if got := Normalize("De\ufb01nitions"); got != "Definitions" {
		t.Errorf("Normalize ligature = %q, want %q", got, "Definitions")
	}
	if got := Normalize("\uff30\uff41\uff52\uff54 \uff11"); got != "Part 1" {
		t.Errorf("Normalize full-width = %q, want %q", got, "Part 1")
	}
	if got := Normalize("Chapter \u2163: Area in m\u00b2"); got != "Chapter IV: Area in m2" {
		t.Errorf("Normalize compatibility forms = %q, want %q", got, "Chapter IV: Area in m2")
	}
}

func TestIsUpper(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want bool
	}{
		{"ANNUAL REPORT", true},
		{"ANNUAL REPORT 2024", true},
		{"Annual Report", false},
		{"2024 - 2025", false},
		{"", false},
		{"ÉTÉ", true},
	}

	for _, tt := range tests {
		if got := isUpper(tt.in); got != tt.want {
			t.Errorf("isUpper(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
