package outline

import (
	"strings"

	"github.com/tsawler/pdfoutline/model"
)

// Override names a document-level rule that replaced the built outline
type Override int

const (
	OverrideNone Override = iota
	OverrideForm
	OverrideInvite
)

// String returns a short name for the override
func (o Override) String() string {
	switch o {
	case OverrideForm:
		return "form"
	case OverrideInvite:
		return "invite"
	default:
		return "none"
	}
}

// Report describes how a result was reached
type Report struct {
	// Profile is the font statistics of the document
	Profile model.StyleProfile

	// Pages and Blocks count the input examined by the outline builder
	Pages  int
	Blocks int

	// Candidates is the number of blocks that passed the heading filter
	Candidates int

	// Rejected counts filtered blocks per rule
	Rejected map[Rejection]int

	// ByStrategy counts candidates per level strategy; StrategyNone counts
	// candidates that received no level.
	ByStrategy map[Strategy]int

	// Duplicates is the number of entries removed by deduplication
	Duplicates int

	// Override is the document-level rule applied to the outline, if any
	Override Override
}

func newReport() *Report {
	return &Report{
		Rejected:   make(map[Rejection]int),
		ByStrategy: make(map[Strategy]int),
	}
}

// Pipeline infers the title and outline of a document
type Pipeline struct {
	config Config
}

// NewPipeline creates a pipeline with the default heuristics
func NewPipeline() *Pipeline {
	return &Pipeline{
		config: DefaultConfig(),
	}
}

// NewPipelineWithConfig creates a pipeline with custom heuristics
func NewPipelineWithConfig(config Config) *Pipeline {
	return &Pipeline{
		config: config,
	}
}

// Config returns the heuristics used by the pipeline
func (p *Pipeline) Config() Config {
	return p.config
}

// Run infers the title and outline of a document. It is a pure function of
// the document and the configuration: the same input always yields the same result.
func (p *Pipeline) Run(doc *model.Document) *model.Result {
	result, _ := p.run(doc, nil)
	return result
}

// Analyze is Run that also reports how the result was reached
func (p *Pipeline) Analyze(doc *model.Document) (*model.Result, *Report) {
	return p.run(doc, newReport())
}

func (p *Pipeline) run(doc *model.Document, report *Report) (*model.Result, *Report) {
	cfg := p.config

	profile := AnalyzeStyles(doc, cfg.DefaultBodySize)
	title := DetectTitle(doc.GetPage(1), profile, cfg)
	lowerTitle := strings.ToLower(title)

	if report != nil {
		report.Profile = profile
		report.Pages = doc.PageCount()
	}

	// Forms have no navigable structure
	if cfg.FormMarker != "" && strings.Contains(lowerTitle, cfg.FormMarker) {
		if report != nil {
			report.Override = OverrideForm
		}
		return model.NewResult(title, nil), report
	}

	built := buildOutline(doc, profile, cfg, report)
	entries := Dedupe(built)
	if report != nil {
		report.Duplicates = len(built) - len(entries)
	}

	if cfg.InviteMarker != "" && len(entries) <= cfg.InviteMaxEntries && strings.Contains(lowerTitle, cfg.InviteMarker) {
		if report != nil {
			report.Override = OverrideInvite
		}
		entries = nil
	}

	return model.NewResult(title, entries), report
}

// Infer runs the default pipeline on a document
func Infer(doc *model.Document) *model.Result {
	return NewPipeline().Run(doc)
}
