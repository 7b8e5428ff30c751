package outline

import (
	"testing"

	"github.com/tsawler/pdfoutline/model"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	profile := model.StyleProfile{
		BodySize:      10,
		HeadingLevels: map[float64]model.Level{20: 1, 16: 2, 13: 3},
	}

	tests := []struct {
		name      string
		candidate Candidate
		wantOK    bool
		want      Classification
	}{
		{
			name:      "three part number",
			candidate: Candidate{Text: "2.3.1 Results", Size: 10},
			wantOK:    true,
			want:      Classification{Level: 3, Text: "Results", Strategy: StrategyNumbered},
		},
		{
			name:      "letter with period",
			candidate: Candidate{Text: "A. Overview", Size: 10},
			wantOK:    true,
			want:      Classification{Level: 1, Text: "Overview", Strategy: StrategyNumbered},
		},
		{
			name:      "number ignores font size",
			candidate: Candidate{Text: "1.2 Scope of Work", Size: 20},
			wantOK:    true,
			want:      Classification{Level: 2, Text: "Scope of Work", Strategy: StrategyNumbered},
		},
		{
			name:      "trailing period not counted",
			candidate: Candidate{Text: "3.4. Methods Used", Size: 10},
			wantOK:    true,
			want:      Classification{Level: 2, Text: "Methods Used", Strategy: StrategyNumbered},
		},
		{
			name:      "chapter word",
			candidate: Candidate{Text: "Chapter 3 The Journey", Size: 10},
			wantOK:    true,
			want:      Classification{Level: 1, Text: "The Journey", Strategy: StrategyNumbered},
		},
		{
			name:      "appendix letter",
			candidate: Candidate{Text: "Appendix B: Glossary", Size: 10},
			wantOK:    false,
		},
		{
			name:      "appendix letter with space",
			candidate: Candidate{Text: "Appendix B Glossary of Terms", Size: 16},
			wantOK:    true,
			want:      Classification{Level: 1, Text: "Glossary of Terms", Strategy: StrategyNumbered},
		},
		{
			name:      "number without following text is not numbered",
			candidate: Candidate{Text: "Version 2.0", Size: 16},
			wantOK:    true,
			want:      Classification{Level: 2, Text: "Version 2.0", Strategy: StrategyFontSize},
		},
		{
			name:      "font size tier",
			candidate: Candidate{Text: "Background and Context", Size: 13},
			wantOK:    true,
			want:      Classification{Level: 3, Text: "Background and Context", Strategy: StrategyFontSize},
		},
		{
			name:      "bold above body",
			candidate: Candidate{Text: "Key Findings", Size: 11, Bold: true},
			wantOK:    true,
			want:      Classification{Level: 4, Text: "Key Findings", Strategy: StrategyBold},
		},
		{
			name:      "bold at body size",
			candidate: Candidate{Text: "Key Findings", Size: 10, Bold: true},
			wantOK:    false,
		},
		{
			name:      "plain body text",
			candidate: Candidate{Text: "the quick brown fox", Size: 10},
			wantOK:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := Classify(tt.candidate, profile)
			if ok != tt.wantOK {
				t.Fatalf("Classify(%q) ok = %v, want %v", tt.candidate.Text, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Classify(%q) = %+v, want %+v", tt.candidate.Text, got, tt.want)
			}
		})
	}
}

func TestClassifyBoldTierWithoutHeadingSizes(t *testing.T) {
	t.Parallel()

	profile := model.StyleProfile{BodySize: 10, HeadingLevels: map[float64]model.Level{}}
	got, ok := Classify(Candidate{Text: "Summary of Results", Size: 12, Bold: true}, profile)
	if !ok || got.Level != 1 {
		t.Errorf("Classify() = %+v, %v; want H1 bold fallback", got, ok)
	}
}

func TestStrategyString(t *testing.T) {
	t.Parallel()

	tests := map[Strategy]string{
		StrategyNone:     "none",
		StrategyNumbered: "numbered",
		StrategyFontSize: "font-size",
		StrategyBold:     "bold",
	}
	for s, want := range tests {
		if got := s.String(); got != want {
			t.Errorf("Strategy(%d).String() = %q, want %q", int(s), got, want)
		}
	}
}
