package outline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func extractOutline(t *testing.T, runs []TextRun) *Outline {
	t.Helper()
	engine, err := NewEngine(DefaultConfig())
	require.NoError(t, err)
	o, err := engine.Extract(Document{Runs: runs})
	require.NoError(t, err)
	return o
}

func TestAssemble_JoinsCharacterFragments(t *testing.T) {
	// Extractors often hand a heading over letter by letter. Fragments on
	// the same line concatenate directly below the word-space threshold and
	// with a space above it.
	runs := append(bodyRuns(2),
		TextRun{Text: "Intro", Page: 0, FontSize: 18, FontFamily: "helvetica", Bold: true,
			BBox: BoundingBox{X0: 72, Y0: 400, X1: 110, Y1: 418}, BaselineY: 400},
		TextRun{Text: "duction", Page: 0, FontSize: 18, FontFamily: "helvetica", Bold: true,
			BBox: BoundingBox{X0: 111, Y0: 400, X1: 170, Y1: 418}, BaselineY: 400},
		TextRun{Text: "Revisited", Page: 0, FontSize: 18, FontFamily: "helvetica", Bold: true,
			BBox: BoundingBox{X0: 185, Y0: 400, X1: 250, Y1: 418}, BaselineY: 400},
		styled("Introduction Again", 1, 18, "helvetica", true, 72, 400),
	)
	o := extractOutline(t, runs)

	require.Len(t, o.Nodes, 2)
	assert.Equal(t, "Introduction Revisited", o.Nodes[0].Text)
	assert.Equal(t, 0, o.Nodes[0].Page)
}

func TestAssemble_JoinsWrappedHeadingLines(t *testing.T) {
	runs := append(bodyRuns(2),
		styled("A Very Long Heading That", 0, 18, "helvetica", true, 72, 400),
		styled("Wraps Onto A Second Line", 0, 18, "helvetica", true, 72, 378),
		styled("Unrelated", 1, 18, "helvetica", true, 72, 400),
	)
	o := extractOutline(t, runs)

	require.Len(t, o.Nodes, 2)
	assert.Equal(t, "A Very Long Heading That Wraps Onto A Second Line", o.Nodes[0].Text)
}

func TestAssemble_SplitsBeyondGapTolerance(t *testing.T) {
	// 100pt apart at 18pt is far beyond the merge tolerance: two headings.
	runs := append(bodyRuns(2),
		styled("First Section", 0, 18, "helvetica", true, 72, 500),
		styled("Second Section", 0, 18, "helvetica", true, 72, 400),
		styled("Third Section", 1, 18, "helvetica", true, 72, 400),
	)
	o := extractOutline(t, runs)

	require.Len(t, o.Nodes, 3)
	assert.Equal(t, "First Section", o.Nodes[0].Text)
	assert.Equal(t, "Second Section", o.Nodes[1].Text)
}

func TestAssemble_BodyRunBreaksAMerge(t *testing.T) {
	runs := append(bodyRuns(2),
		styled("Alpha", 0, 18, "helvetica", true, 72, 400),
		styled("interleaved body text between headings", 0, 10, "times", false, 72, 390),
		styled("Beta", 0, 18, "helvetica", true, 72, 380),
		styled("Gamma", 1, 18, "helvetica", true, 72, 400),
	)
	o := extractOutline(t, runs)

	require.Len(t, o.Nodes, 3)
	assert.Equal(t, "Alpha", o.Nodes[0].Text)
	assert.Equal(t, "Beta", o.Nodes[1].Text)
}

func TestAssemble_NoBodyNodesInOutline(t *testing.T) {
	runs := append(bodyRuns(3),
		styled("Heading", 0, 18, "helvetica", true, 72, 400),
		styled("Heading Two", 2, 18, "helvetica", true, 72, 400),
	)
	o := extractOutline(t, runs)

	for _, n := range o.Nodes {
		assert.True(t, n.Level.IsHeading(), "node %q has level %s", n.Text, n.Level)
	}
}

func TestAssemble_SmoothsLevelJumps(t *testing.T) {
	// Document order jumps from the H1 style straight to the H3 style; the
	// emitted sequence may deepen by at most one level per step.
	runs := append(bodyRuns(2),
		styled("Part", 0, 30, "helvetica", true, 72, 500),
		styled("Deep Detail", 0, 18, "helvetica", true, 72, 450),
		styled("Section", 1, 22, "helvetica", true, 72, 500),
		styled("Part Two", 1, 30, "helvetica", true, 72, 400),
	)
	o := extractOutline(t, runs)

	require.Len(t, o.Nodes, 4)
	assert.Equal(t, LevelH1, o.Nodes[0].Level)
	assert.Equal(t, LevelH2, o.Nodes[1].Level) // H3 by style, smoothed
	assert.Equal(t, LevelH2, o.Nodes[2].Level)
	assert.Equal(t, LevelH1, o.Nodes[3].Level)
}

func TestAssemble_CollapsesWhitespace(t *testing.T) {
	runs := append(bodyRuns(2),
		styled("  Getting \t Started  ", 0, 18, "helvetica", true, 72, 400),
		styled("Elsewhere", 1, 18, "helvetica", true, 72, 400),
	)
	o := extractOutline(t, runs)

	require.NotEmpty(t, o.Nodes)
	assert.Equal(t, "Getting Started", o.Nodes[0].Text)
}

func TestAssemble_TitleTakesFirstInstanceOnly(t *testing.T) {
	runs := append(bodyRuns(1),
		styled("Grand Unified Title", 0, 28, "helvetica", true, 72, 740),
		styled("Spurious Repeat", 0, 28, "helvetica", true, 72, 660),
	)
	o := extractOutline(t, runs)

	assert.Equal(t, "Grand Unified Title", o.Title)
	for _, n := range o.Nodes {
		assert.NotEqual(t, "Spurious Repeat", n.Text)
	}
}
