package extractor

import (
	"regexp"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/chocothunder5013/coredump-round1a/internal/outline"
)

// rowTolerance is the Y distance in points within which glyphs belong to the
// same text line.
const rowTolerance = 3.0

// wordSpaceMultiplier is the fraction of the font size above which a
// horizontal gap between glyphs becomes a space.
const wordSpaceMultiplier = 0.3

// subsetPrefix matches the 6-letter subset tag PDF producers prepend to
// embedded font names, e.g. "ABCDEE+Calibri-Bold".
var subsetPrefix = regexp.MustCompile(`^[A-Z]{6}\+`)

// fontStyle is the parsed style information carried in a PDF font name.
type fontStyle struct {
	family string
	bold   bool
	italic bool
}

// parseFontName derives family, weight and slant from a PDF font name. Font
// names are the only weight signal most PDFs carry, so the match is
// deliberately loose: any of the common bold markers counts.
func parseFontName(name string) fontStyle {
	base := strings.ToLower(subsetPrefix.ReplaceAllString(name, ""))

	style := fontStyle{
		bold: strings.Contains(base, "bold") ||
			strings.Contains(base, "black") ||
			strings.Contains(base, "heavy"),
		italic: strings.Contains(base, "italic") ||
			strings.Contains(base, "oblique"),
	}

	// Family is the name up to the first style separator:
	// "Times-BoldItalic" -> "times", "Arial,Bold" -> "arial".
	family := base
	if i := strings.IndexAny(family, "-,"); i >= 0 {
		family = family[:i]
	}
	style.family = family
	return style
}

// groupRuns converts the raw glyph stream of one page into ordered text
// runs. Glyphs are sorted into reading order (top-to-bottom, then
// left-to-right), then consecutive glyphs sharing font, size and line merge
// into a single run with a word-space heuristic on horizontal gaps.
func groupRuns(texts []pdf.Text, page int) []outline.TextRun {
	glyphs := make([]pdf.Text, 0, len(texts))
	for _, t := range texts {
		if t.S == "" {
			continue
		}
		glyphs = append(glyphs, t)
	}
	if len(glyphs) == 0 {
		return nil
	}

	sort.SliceStable(glyphs, func(i, j int) bool {
		if diff := glyphs[i].Y - glyphs[j].Y; diff > rowTolerance || diff < -rowTolerance {
			return glyphs[i].Y > glyphs[j].Y
		}
		return glyphs[i].X < glyphs[j].X
	})

	var runs []outline.TextRun
	var cur *runBuilder
	for _, g := range glyphs {
		if cur != nil && cur.accepts(g) {
			cur.add(g)
			continue
		}
		if cur != nil {
			runs = append(runs, cur.finish())
		}
		cur = newRunBuilder(g, page)
	}
	if cur != nil {
		runs = append(runs, cur.finish())
	}
	return runs
}

// runBuilder accumulates glyphs into one TextRun.
type runBuilder struct {
	page  int
	font  string
	size  float64
	style fontStyle
	text  strings.Builder
	x0    float64
	x1    float64
	y     float64
}

func newRunBuilder(g pdf.Text, page int) *runBuilder {
	b := &runBuilder{
		page:  page,
		font:  g.Font,
		size:  g.FontSize,
		style: parseFontName(g.Font),
		x0:    g.X,
		x1:    g.X + g.W,
		y:     g.Y,
	}
	b.text.WriteString(g.S)
	return b
}

// accepts reports whether the glyph continues this run: same font and size,
// same line, and no backwards jump in X.
func (b *runBuilder) accepts(g pdf.Text) bool {
	if g.Font != b.font || g.FontSize != b.size {
		return false
	}
	if g.Y > b.y+rowTolerance || g.Y < b.y-rowTolerance {
		return false
	}
	return g.X >= b.x0
}

func (b *runBuilder) add(g pdf.Text) {
	if g.X-b.x1 > wordSpaceMultiplier*b.size {
		b.text.WriteString(" ")
	}
	b.text.WriteString(g.S)
	if right := g.X + g.W; right > b.x1 {
		b.x1 = right
	}
}

func (b *runBuilder) finish() outline.TextRun {
	return outline.TextRun{
		Text:       b.text.String(),
		Page:       b.page,
		FontSize:   b.size,
		FontFamily: b.style.family,
		Bold:       b.style.bold,
		Italic:     b.style.italic,
		BBox: outline.BoundingBox{
			X0: b.x0,
			Y0: b.y,
			X1: b.x1,
			Y1: b.y + b.size,
		},
		BaselineY: b.y,
	}
}
