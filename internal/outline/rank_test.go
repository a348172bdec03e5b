package outline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rankDocument(t *testing.T, runs []TextRun, pages ...PageInfo) (Document, *Profile, []StyleCluster, []int, Ranking) {
	t.Helper()
	cfg := DefaultConfig()
	doc := Document{Runs: runs, Pages: pages}
	p, err := BuildProfile(doc, cfg)
	require.NoError(t, err)
	clusters, sigToCluster := ClusterStyles(p, cfg)
	r := RankClusters(doc, p, clusters, sigToCluster, cfg)
	return doc, p, clusters, sigToCluster, r
}

// levelOf returns the assigned level of the cluster owning the signature with
// the given size and weight.
func levelOf(t *testing.T, p *Profile, sigToCluster []int, r Ranking, size float64, bold bool) HeadingLevel {
	t.Helper()
	id := sigID(p, size, bold)
	require.GreaterOrEqual(t, id, 0, "no signature with size %.1f bold %v", size, bold)
	return r.Levels[sigToCluster[id]]
}

func TestRankClusters_BodyIsAlwaysBody(t *testing.T) {
	runs := append(bodyRuns(2),
		styled("Overview", 0, 18, "helvetica", true, 72, 400),
	)
	_, p, _, sigToCluster, r := rankDocument(t, runs)

	assert.Equal(t, LevelBody, r.Levels[r.Body])
	assert.Equal(t, sigToCluster[p.BodyID], r.Body)
}

func TestRankClusters_StrengthOrdersLevels(t *testing.T) {
	// Heading styles recur across pages, so none qualifies as the title.
	runs := append(bodyRuns(2),
		styled("Part One", 0, 24, "helvetica", true, 72, 400),
		styled("Section", 0, 18, "helvetica", true, 72, 350),
		styled("Subsection", 0, 14, "helvetica", true, 72, 300),
		styled("Part Two", 1, 24, "helvetica", true, 72, 400),
		styled("Another Section", 1, 18, "helvetica", true, 72, 350),
		styled("Another Subsection", 1, 14, "helvetica", true, 72, 300),
	)
	_, p, _, sigToCluster, r := rankDocument(t, runs)

	assert.Equal(t, -1, r.Title)
	assert.Equal(t, LevelH1, levelOf(t, p, sigToCluster, r, 24, true))
	assert.Equal(t, LevelH2, levelOf(t, p, sigToCluster, r, 18, true))
	assert.Equal(t, LevelH3, levelOf(t, p, sigToCluster, r, 14, true))
}

func TestRankClusters_TitleRequiresTopOfFirstPage(t *testing.T) {
	runs := append(bodyRuns(2),
		styled("Annual Report", 0, 24, "helvetica", true, 72, 720),
		styled("Introduction", 0, 18, "helvetica", true, 72, 400),
		styled("Methods", 1, 18, "helvetica", true, 72, 400),
	)
	_, p, _, sigToCluster, r := rankDocument(t, runs)

	assert.Equal(t, LevelTitle, levelOf(t, p, sigToCluster, r, 24, true))
	assert.Equal(t, LevelH1, levelOf(t, p, sigToCluster, r, 18, true))
	assert.GreaterOrEqual(t, r.Title, 0)
}

func TestRankClusters_NoTitleWhenBelowGate(t *testing.T) {
	// The strongest style sits mid-page; a prominent phrase that far down is
	// a heading, not the title.
	runs := append(bodyRuns(1),
		styled("Conclusions", 0, 24, "helvetica", true, 72, 400),
	)
	_, p, _, sigToCluster, r := rankDocument(t, runs)

	assert.Equal(t, -1, r.Title)
	assert.Equal(t, LevelH1, levelOf(t, p, sigToCluster, r, 24, true))
}

func TestRankClusters_NoTitleWhenStyleRecurs(t *testing.T) {
	runs := append(bodyRuns(3),
		styled("Chapter 1", 0, 24, "helvetica", true, 72, 720),
		styled("Chapter 2", 1, 24, "helvetica", true, 72, 720),
		styled("Chapter 3", 2, 24, "helvetica", true, 72, 720),
	)
	_, p, _, sigToCluster, r := rankDocument(t, runs)

	assert.Equal(t, -1, r.Title)
	assert.Equal(t, LevelH1, levelOf(t, p, sigToCluster, r, 24, true))
}

func TestRankClusters_DepthCapFoldsIntoBody(t *testing.T) {
	runs := append(bodyRuns(2),
		styled("L1", 0, 30, "helvetica", true, 72, 500),
		styled("L2", 0, 26, "helvetica", true, 72, 450),
		styled("L3", 0, 22, "helvetica", true, 72, 400),
		styled("L4", 0, 18, "helvetica", true, 72, 350),
		styled("L5", 0, 14, "helvetica", true, 72, 300),
		styled("L1 again", 1, 30, "helvetica", true, 72, 500),
	)
	_, p, _, sigToCluster, r := rankDocument(t, runs)

	assert.Equal(t, LevelH1, levelOf(t, p, sigToCluster, r, 30, true))
	assert.Equal(t, LevelH4, levelOf(t, p, sigToCluster, r, 18, true))
	// The fifth level exceeds the depth cap and folds into body text.
	assert.Equal(t, LevelBody, levelOf(t, p, sigToCluster, r, 14, true))
}

func TestRankClusters_SmallerThanBodyIsNotAHeading(t *testing.T) {
	runs := append(bodyRuns(1),
		styled("footnote text", 0, 8, "times", false, 72, 100),
	)
	_, p, _, sigToCluster, r := rankDocument(t, runs)

	assert.Equal(t, LevelBody, levelOf(t, p, sigToCluster, r, 8, false))
}

func TestRankClusters_BoldAtBodySizeIsAHeading(t *testing.T) {
	runs := append(bodyRuns(2),
		styled("Inline Heading", 0, 10, "times", true, 72, 400),
		styled("Another Inline Heading", 1, 10, "times", true, 72, 400),
	)
	_, p, _, sigToCluster, r := rankDocument(t, runs)

	assert.Equal(t, LevelH1, levelOf(t, p, sigToCluster, r, 10, true))
}

func TestRankClusters_PageGeometryDrivesTheGate(t *testing.T) {
	// On an A4 page the gate line moves; 720pt is inside the top fifth of an
	// 842pt page.
	runs := append(bodyRuns(1),
		styled("Die Verwandlung", 0, 24, "helvetica", true, 72, 720),
	)
	_, p, _, sigToCluster, r := rankDocument(t, runs, PageInfo{Number: 0, Width: 595, Height: 842})

	assert.Equal(t, LevelTitle, levelOf(t, p, sigToCluster, r, 24, true))
}
