package extractor

import (
	"testing"

	"github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFontName(t *testing.T) {
	tests := []struct {
		name   string
		family string
		bold   bool
		italic bool
	}{
		{"Times-Roman", "times", false, false},
		{"Times-Bold", "times", true, false},
		{"Times-BoldItalic", "times", true, true},
		{"Arial,Bold", "arial", true, false},
		{"ABCDEE+Calibri-Bold", "calibri", true, false},
		{"XYZXYZ+Helvetica-Oblique", "helvetica", false, true},
		{"Roboto-Black", "roboto", true, false},
		{"NotoSansCJK-Heavy", "notosanscjk", true, false},
		{"Georgia", "georgia", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFontName(tt.name)
			assert.Equal(t, tt.family, got.family)
			assert.Equal(t, tt.bold, got.bold)
			assert.Equal(t, tt.italic, got.italic)
		})
	}
}

// glyph builds a single synthetic glyph.
func glyph(s string, font string, size, x, y float64) pdf.Text {
	return pdf.Text{Font: font, FontSize: size, X: x, Y: y, W: 0.5 * size, S: s}
}

func TestGroupRuns_JoinsGlyphsOnOneLine(t *testing.T) {
	size := 12.0
	var texts []pdf.Text
	x := 72.0
	for _, s := range []string{"H", "e", "l", "l", "o"} {
		texts = append(texts, glyph(s, "Times-Bold", size, x, 700))
		x += 0.5 * size
	}

	runs := groupRuns(texts, 0)
	require.Len(t, runs, 1)
	assert.Equal(t, "Hello", runs[0].Text)
	assert.Equal(t, "times", runs[0].FontFamily)
	assert.True(t, runs[0].Bold)
	assert.Equal(t, 0, runs[0].Page)
	assert.InDelta(t, 700.0, runs[0].BaselineY, 1e-9)
	assert.InDelta(t, 72.0, runs[0].BBox.X0, 1e-9)
}

func TestGroupRuns_InsertsWordSpaces(t *testing.T) {
	size := 12.0
	texts := []pdf.Text{
		glyph("Hello", "Times-Roman", size, 72, 700),
		// 10pt gap, well above the 0.3em threshold
		glyph("world", "Times-Roman", size, 72+0.5*size+10, 700),
	}

	runs := groupRuns(texts, 0)
	require.Len(t, runs, 1)
	assert.Equal(t, "Hello world", runs[0].Text)
}

func TestGroupRuns_SplitsOnStyleChange(t *testing.T) {
	texts := []pdf.Text{
		glyph("Heading", "Times-Bold", 18, 72, 700),
		glyph("body", "Times-Roman", 10, 120, 700),
	}

	runs := groupRuns(texts, 2)
	require.Len(t, runs, 2)
	assert.True(t, runs[0].Bold)
	assert.False(t, runs[1].Bold)
	assert.Equal(t, 2, runs[0].Page)
}

func TestGroupRuns_SplitsAcrossLines(t *testing.T) {
	texts := []pdf.Text{
		glyph("first", "Times-Roman", 12, 72, 700),
		glyph("second", "Times-Roman", 12, 72, 680),
	}

	runs := groupRuns(texts, 0)
	require.Len(t, runs, 2)
	assert.Equal(t, "first", runs[0].Text)
	assert.Equal(t, "second", runs[1].Text)
}

func TestGroupRuns_ReadingOrder(t *testing.T) {
	// Glyphs arrive out of order; grouping sorts top-to-bottom then
	// left-to-right.
	texts := []pdf.Text{
		glyph("below", "Times-Roman", 12, 72, 650),
		glyph("right", "Times-Roman", 12, 200, 700),
		glyph("left", "Times-Roman", 12, 72, 700),
	}

	runs := groupRuns(texts, 0)
	require.Len(t, runs, 2)
	assert.Equal(t, "left right", runs[0].Text)
	assert.Equal(t, "below", runs[1].Text)
}

func TestGroupRuns_RowToleranceAbsorbsJitter(t *testing.T) {
	// Baselines 2pt apart are the same visual line.
	texts := []pdf.Text{
		glyph("wavy", "Times-Roman", 12, 72, 700),
		glyph("baseline", "Times-Roman", 12, 120, 702),
	}

	runs := groupRuns(texts, 0)
	require.Len(t, runs, 1)
}

func TestGroupRuns_DropsEmptyGlyphs(t *testing.T) {
	texts := []pdf.Text{
		glyph("", "Times-Roman", 12, 72, 700),
	}
	assert.Nil(t, groupRuns(texts, 0))
	assert.Nil(t, groupRuns(nil, 0))
}
