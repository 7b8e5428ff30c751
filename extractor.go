package pdfoutline

import (
	"errors"
	"fmt"
	"log/slog"

	applog "github.com/tsawler/pdfoutline/internal/log"
	"github.com/tsawler/pdfoutline/model"
	"github.com/tsawler/pdfoutline/outline"
	"github.com/tsawler/pdfoutline/reader"
)

// ErrNoSource is returned by terminal operations on an Extractor that has
// neither a file, a reader nor a document.
var ErrNoSource = errors.New("no filename specified")

// msgNoText is reported for documents whose pages carry no text layer
const msgNoText = "no extractable text found; the document may be scanned"

// Extractor provides a fluent interface for inferring the outline of a PDF.
// Each configuration method returns a new Extractor instance, making it
// safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Source
	filename string
	doc      *model.Document

	reader *reader.Reader

	// Lifecycle
	ownsReader   bool // true if we opened the reader and should close it
	readerOpened bool // true if reader has been opened

	// Configuration
	options ExtractOptions

	// Warnings accumulated during processing
	warnings []Warning
}

// clone creates a shallow copy of the Extractor with a deep copy of options.
// This ensures immutability - each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename:     e.filename,
		doc:          e.doc,
		reader:       e.reader,
		ownsReader:   e.ownsReader,
		readerOpened: e.readerOpened,
		options:      e.options.clone(),
		warnings:     append([]Warning(nil), e.warnings...),
	}
}

// ensureReader opens the reader if not already open.
func (e *Extractor) ensureReader() error {
	if e.readerOpened {
		return nil
	}
	if e.filename == "" {
		return ErrNoSource
	}

	r, err := reader.Open(e.filename)
	if err != nil {
		return fmt.Errorf("failed to open PDF: %w", err)
	}
	e.reader = r
	e.ownsReader = true
	e.readerOpened = true
	return nil
}

// Close releases resources associated with the Extractor.
// It is safe to call Close multiple times. A later terminal operation
// reopens the file.
func (e *Extractor) Close() error {
	if e.ownsReader && e.reader != nil {
		err := e.reader.Close()
		e.reader = nil
		e.ownsReader = false
		e.readerOpened = false
		return err
	}
	return nil
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// WithConfig replaces all heuristics. An invalid configuration is reported
// by the next terminal operation.
//
// Example:
//
//	cfg := outline.DefaultConfig()
//	cfg.FormMarker = ""
//	result, _, err := pdfoutline.Open("doc.pdf").WithConfig(cfg).Outline()
func (e *Extractor) WithConfig(config outline.Config) *Extractor {
	newExt := e.clone()
	newExt.options.config = config
	return newExt
}

// VerticalMargin sets the height of the header and footer zones in points.
//
// Example:
//
//	result, _, err := pdfoutline.Open("doc.pdf").VerticalMargin(72).Outline()
func (e *Extractor) VerticalMargin(margin float64) *Extractor {
	newExt := e.clone()
	newExt.options.config.VerticalMargin = margin
	return newExt
}

// WordBounds sets the minimum and maximum number of words in a heading.
//
// Example:
//
//	result, _, err := pdfoutline.Open("doc.pdf").WordBounds(1, 12).Outline()
func (e *Extractor) WordBounds(min, max int) *Extractor {
	newExt := e.clone()
	newExt.options.config.MinHeadingWords = min
	newExt.options.config.MaxHeadingWords = max
	return newExt
}

// WithScorer replaces the title scoring function.
func (e *Extractor) WithScorer(scorer outline.TitleScorer) *Extractor {
	newExt := e.clone()
	newExt.options.config.Scorer = scorer
	return newExt
}

// WithLogger sets the logger used for diagnostics. A nil logger discards them.
func (e *Extractor) WithLogger(logger *slog.Logger) *Extractor {
	newExt := e.clone()
	if logger == nil {
		logger = applog.Discard()
	}
	newExt.options.logger = logger
	return newExt
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Outline infers the title and heading outline of the document.
// This is a terminal operation that closes the underlying reader.
//
// Returns the result, any warnings encountered during processing,
// and an error if the document could not be read. Warnings indicate
// non-fatal issues (e.g., a page that failed to decode) where inference
// succeeded but results may be incomplete.
//
// Example:
//
//	result, warnings, err := pdfoutline.Open("document.pdf").Outline()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", pdfoutline.FormatWarnings(warnings))
//	}
func (e *Extractor) Outline() (*model.Result, []Warning, error) {
	result, _, warnings, err := e.Analyze()
	return result, warnings, err
}

// Analyze is Outline that also returns the pipeline report: the font
// statistics, filter counts and overrides behind the result.
// This is a terminal operation that closes the underlying reader.
func (e *Extractor) Analyze() (*model.Result, *outline.Report, []Warning, error) {
	if err := e.validate(); err != nil {
		return nil, nil, nil, err
	}
	defer e.Close()

	doc, err := e.document()
	if err != nil {
		return nil, nil, e.warnings, err
	}

	result, report := outline.NewPipelineWithConfig(e.options.config).Analyze(doc)
	e.options.logger.Debug("outline inferred",
		"file", e.filename,
		"pages", report.Pages,
		"body_size", report.Profile.BodySize,
		"tiers", report.Profile.TierCount(),
		"candidates", report.Candidates,
		"entries", len(result.Outline),
		"override", report.Override.String(),
	)

	return result, report, e.warnings, nil
}

// Title infers only the document title.
// This is a terminal operation that closes the underlying reader.
//
// Example:
//
//	title, err := pdfoutline.Open("document.pdf").Title()
func (e *Extractor) Title() (string, error) {
	result, _, err := e.Outline()
	if err != nil {
		return "", err
	}
	return result.Title, nil
}

// Styles returns the font statistics of the document: its body size and the
// heading tier of every larger size.
// This is a terminal operation that closes the underlying reader.
func (e *Extractor) Styles() (model.StyleProfile, error) {
	if err := e.validate(); err != nil {
		return model.StyleProfile{}, err
	}
	defer e.Close()

	doc, err := e.document()
	if err != nil {
		return model.StyleProfile{}, err
	}
	return outline.AnalyzeStyles(doc, e.options.config.DefaultBodySize), nil
}

// Document returns the parsed document the outline is inferred from.
// This is a terminal operation that closes the underlying reader.
func (e *Extractor) Document() (*model.Document, []Warning, error) {
	defer e.Close()

	doc, err := e.document()
	if err != nil {
		return nil, e.warnings, err
	}
	return doc, e.warnings, nil
}

// PageCount returns the total number of pages in the document.
// Note: This does NOT close the reader, allowing further operations.
//
// Example:
//
//	ext := pdfoutline.Open("document.pdf")
//	defer ext.Close()
//	count, err := ext.PageCount()
func (e *Extractor) PageCount() (int, error) {
	if e.doc != nil {
		return e.doc.PageCount(), nil
	}

	if err := e.ensureReader(); err != nil {
		return 0, err
	}
	return e.reader.PageCount(), nil
}

// validate reports an invalid configuration
func (e *Extractor) validate() error {
	if err := e.options.config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// document returns the supplied document or parses it from the reader,
// collecting page warnings.
func (e *Extractor) document() (*model.Document, error) {
	if e.doc != nil {
		return e.doc, nil
	}

	if err := e.ensureReader(); err != nil {
		return nil, err
	}

	e.warnings = nil
	doc, err := e.reader.Document()
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	for _, w := range e.reader.Warnings() {
		e.warnings = append(e.warnings, Warning{Page: w.Page, Message: w.Err.Error()})
	}
	if doc.PageCount() > 0 && doc.SpanCount() == 0 {
		e.warnings = append(e.warnings, Warning{Message: msgNoText})
	}

	return doc, nil
}
