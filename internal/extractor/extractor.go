// Package extractor converts PDF pages into the ordered run sequence the
// outline engine consumes. It reads glyph-level text with font metadata via
// ledongthuc/pdf and validates documents up front with pdfcpu.
package extractor

import (
	"fmt"
	"log/slog"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/chocothunder5013/coredump-round1a/internal/outline"
)

// ExtractionError reports a document the extractor could not parse
// (corrupt, encrypted or otherwise unreadable). The batch driver skips the
// document and continues with the rest.
type ExtractionError struct {
	Path string
	Err  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extracting %s: %v", e.Path, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// Extractor reads text runs from PDF files. The zero value is not usable;
// construct with New.
type Extractor struct{}

// New returns a run extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract parses the PDF at path into an ordered run sequence with page
// geometry. Runs come out in natural reading order within each page, pages
// in document order, page numbers 0-based.
func (e *Extractor) Extract(path string) (outline.Document, error) {
	if err := e.validate(path); err != nil {
		return outline.Document{}, err
	}

	f, reader, err := pdf.Open(path)
	if err != nil {
		return outline.Document{}, &ExtractionError{Path: path, Err: err}
	}
	defer func() { _ = f.Close() }()

	var doc outline.Document
	total := reader.NumPage()
	for pageNum := 1; pageNum <= total; pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		width, height := pageDimensions(page)
		doc.Pages = append(doc.Pages, outline.PageInfo{
			Number: pageNum - 1,
			Width:  width,
			Height: height,
		})

		runs, err := pageRuns(page, pageNum-1)
		if err != nil {
			// Malformed content streams on one page shouldn't lose the rest
			// of the document.
			slog.Warn("skipping unreadable page", "file", path, "page", pageNum, "error", err)
			continue
		}
		doc.Runs = append(doc.Runs, runs...)
	}

	return doc, nil
}

// validate rejects documents pdfcpu cannot read and encrypted documents,
// before any page parsing starts.
func (e *Extractor) validate(path string) error {
	ctx, err := api.ReadContextFile(path)
	if err != nil {
		return &ExtractionError{Path: path, Err: fmt.Errorf("unreadable PDF: %w", err)}
	}
	if ctx.Encrypt != nil {
		return &ExtractionError{Path: path, Err: fmt.Errorf("document is encrypted")}
	}
	return nil
}

// pageRuns extracts the run sequence of a single page. ledongthuc/pdf panics
// on some malformed content streams; that is converted into an error here so
// a bad page stays isolated.
func pageRuns(page pdf.Page, pageIndex int) (runs []outline.TextRun, err error) {
	defer func() {
		if r := recover(); r != nil {
			runs = nil
			err = fmt.Errorf("content stream parse failure: %v", r)
		}
	}()

	content := page.Content()
	return groupRuns(content.Text, pageIndex), nil
}

// Default dimensions are US letter in points.
const (
	defaultPageWidth  = 612.0
	defaultPageHeight = 792.0
)

// pageDimensions resolves the page MediaBox, walking up the page tree for
// inherited values.
func pageDimensions(page pdf.Page) (width, height float64) {
	width, height = defaultPageWidth, defaultPageHeight

	for v := page.V; !v.IsNull(); v = v.Key("Parent") {
		mb := v.Key("MediaBox")
		if mb.Kind() != pdf.Array || mb.Len() != 4 {
			continue
		}
		x0, y0 := mb.Index(0).Float64(), mb.Index(1).Float64()
		x1, y1 := mb.Index(2).Float64(), mb.Index(3).Float64()
		if x1 > x0 && y1 > y0 {
			return x1 - x0, y1 - y0
		}
	}
	return width, height
}
