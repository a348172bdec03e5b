// Package outline implements style-based heading detection for PDF documents.
// It consumes an ordered stream of styled text runs, clusters their visual
// styles, ranks the clusters into a heading hierarchy and assembles a
// hierarchical outline (title plus nested headings with page references).
package outline

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// BoundingBox is an axis-aligned rectangle in PDF user space
// (origin bottom-left, y grows upward).
type BoundingBox struct {
	X0 float64 `json:"x0"`
	Y0 float64 `json:"y0"`
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
}

// Width returns the horizontal extent of the box.
func (b BoundingBox) Width() float64 {
	return b.X1 - b.X0
}

// Height returns the vertical extent of the box.
func (b BoundingBox) Height() float64 {
	return b.Y1 - b.Y0
}

// Area returns the area of the box in square points.
func (b BoundingBox) Area() float64 {
	return b.Width() * b.Height()
}

// TextRun is a contiguous span of text sharing one visual style, as produced
// by the run extractor. Runs are immutable and arrive in natural reading
// order within a page; the engine preserves that order rather than
// re-deriving it.
type TextRun struct {
	Text       string      `json:"text"`
	Page       int         `json:"page"` // 0-based
	FontSize   float64     `json:"font_size"`
	FontFamily string      `json:"font_family"`
	Bold       bool        `json:"bold"`
	Italic     bool        `json:"italic"`
	BBox       BoundingBox `json:"bbox"`
	BaselineY  float64     `json:"baseline_y"`
}

// PageInfo carries the geometry of a single page.
type PageInfo struct {
	Number int     `json:"number"` // 0-based
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Document is the extractor's hand-off to the engine: the ordered run
// sequence plus per-page geometry for positional gates.
type Document struct {
	Runs  []TextRun  `json:"runs"`
	Pages []PageInfo `json:"pages"`
}

// defaultPageHeight is US letter in points, used when page geometry is missing.
const defaultPageHeight = 792.0

// PageHeight returns the height of the given 0-based page.
func (d Document) PageHeight(page int) float64 {
	for _, p := range d.Pages {
		if p.Number == page {
			return p.Height
		}
	}
	return defaultPageHeight
}

// StyleSignature is a discretized (size, family, weight) tuple. Two runs with
// the same signature are stylistically identical for clustering purposes.
type StyleSignature struct {
	Size   float64 // rounded to the nearest 0.5pt
	Family string
	Bold   bool
}

// NewSignature derives the style signature of a run.
func NewSignature(r TextRun) StyleSignature {
	return StyleSignature{
		Size:   roundHalf(r.FontSize),
		Family: r.FontFamily,
		Bold:   r.Bold,
	}
}

func roundHalf(v float64) float64 {
	return float64(int(v*2+0.5)) / 2
}

// HeadingLevel ranks a style cluster in the heading hierarchy. Title sorts
// above all heading levels; Body is the catch-all lowest rank and always
// exists.
type HeadingLevel int

const (
	LevelTitle HeadingLevel = -1
	LevelBody  HeadingLevel = 0
	LevelH1    HeadingLevel = 1
	LevelH2    HeadingLevel = 2
	LevelH3    HeadingLevel = 3
	LevelH4    HeadingLevel = 4
)

// IsHeading reports whether the level is one of H1..Hn.
func (l HeadingLevel) IsHeading() bool {
	return l >= LevelH1
}

// String returns the fixed serialization vocabulary: "Title", "Body", "H1"...
func (l HeadingLevel) String() string {
	switch {
	case l == LevelTitle:
		return "Title"
	case l == LevelBody:
		return "Body"
	default:
		return fmt.Sprintf("H%d", int(l))
	}
}

// ParseHeadingLevel parses the string form produced by String.
func ParseHeadingLevel(s string) (HeadingLevel, error) {
	switch s {
	case "Title":
		return LevelTitle, nil
	case "Body":
		return LevelBody, nil
	}
	if rest, ok := strings.CutPrefix(s, "H"); ok {
		n, err := strconv.Atoi(rest)
		if err == nil && n >= 1 {
			return HeadingLevel(n), nil
		}
	}
	return LevelBody, fmt.Errorf("invalid heading level %q", s)
}

// MarshalJSON encodes the level as its string form.
func (l HeadingLevel) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON decodes the string form produced by MarshalJSON.
func (l *HeadingLevel) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseHeadingLevel(s)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// OutlineNode is one entry of the final outline. Nodes keep original
// document order; they are never re-sorted by level.
type OutlineNode struct {
	Level HeadingLevel `json:"level"`
	Text  string       `json:"text"`
	Page  int          `json:"page"`
}

// Outline is the final extraction result. Title is a top-level field, not a
// list entry, and Nodes contains no Body-level entries.
type Outline struct {
	Title string        `json:"title"`
	Nodes []OutlineNode `json:"outline"`
}
