package outline

import (
	"regexp"
	"strings"

	"github.com/tsawler/pdfoutline/model"
)

// numberedHeading matches a section number at the start of a heading:
// "1.2 ", "A. ", "Chapter 3 ", "Appendix B. ". The first group is the number
// token including any leading word.
var numberedHeading = regexp.MustCompile(`^\s*((?:(?:Appendix|Chapter|Section)\s+)?(?:[A-Z]|\d+(?:\.\d+)*))\.?\s+`)

// Strategy identifies which rule assigned a heading level
type Strategy int

const (
	StrategyNone Strategy = iota
	StrategyNumbered
	StrategyFontSize
	StrategyBold
)

// String returns a short name for the strategy
func (s Strategy) String() string {
	switch s {
	case StrategyNumbered:
		return "numbered"
	case StrategyFontSize:
		return "font-size"
	case StrategyBold:
		return "bold"
	default:
		return "none"
	}
}

// Candidate is a block that passed the heading filter
type Candidate struct {
	Text string  // cleaned block text
	Size float64 // rounded size of the block's first span
	Bold bool    // weight of the block's first span
}

// Classification is the outcome of level assignment for one candidate
type Classification struct {
	Level    model.Level
	Text     string // heading text, section number removed
	Strategy Strategy
}

// levelRule is one strategy of the classifier. Rules are pure and are tried
// in order until one matches.
type levelRule struct {
	strategy Strategy
	match    func(c Candidate, profile model.StyleProfile) (model.Level, string, bool)
}

var levelRules = []levelRule{
	{StrategyNumbered, matchNumbered},
	{StrategyFontSize, matchFontSize},
	{StrategyBold, matchBold},
}

// Classify assigns a heading level to a candidate. The second result is false
// when no strategy applies and the block is not part of the outline.
func Classify(c Candidate, profile model.StyleProfile) (Classification, bool) {
	for _, rule := range levelRules {
		if level, text, ok := rule.match(c, profile); ok {
			return Classification{Level: level, Text: text, Strategy: rule.strategy}, true
		}
	}
	return Classification{}, false
}

// matchNumbered derives the level from the depth of a section number: every
// dot inside the number adds one level, whatever the font size.
func matchNumbered(c Candidate, _ model.StyleProfile) (model.Level, string, bool) {
	m := numberedHeading.FindStringSubmatchIndex(c.Text)
	if m == nil {
		return model.LevelNone, "", false
	}
	prefix := c.Text[m[2]:m[3]]
	level := model.Level(strings.Count(prefix, ".") + 1)
	return level, strings.TrimSpace(c.Text[m[1]:]), true
}

func matchFontSize(c Candidate, profile model.StyleProfile) (model.Level, string, bool) {
	level, ok := profile.LevelFor(c.Size)
	if !ok {
		return model.LevelNone, "", false
	}
	return level, c.Text, true
}

// matchBold places bold text larger than the body one tier below the
// smallest heading size. Distinct bold sizes all share that tier.
func matchBold(c Candidate, profile model.StyleProfile) (model.Level, string, bool) {
	if !c.Bold || c.Size <= profile.BodySize {
		return model.LevelNone, "", false
	}
	return model.Level(profile.TierCount() + 1), c.Text, true
}
