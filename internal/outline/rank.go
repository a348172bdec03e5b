package outline

import "sort"

// Ranking assigns a HeadingLevel to every cluster, total-ordered: no two
// non-Body clusters share a level, and Body is always the lowest rank.
type Ranking struct {
	Levels   []HeadingLevel // indexed by cluster id
	Strength []float64      // indexed by cluster id
	Title    int            // cluster id assigned Title, or -1
	Body     int            // cluster id owning the body signature
}

// RankClusters orders clusters by heading strength and assigns levels.
//
// Strength combines normalized size, boldness and rarity: body text
// dominates character volume, so a small volume share is itself evidence of
// being a heading. The cluster owning the body signature is always Body
// regardless of its computed strength, and clusters no more prominent than
// the body centroid fold into Body too (a style smaller than body text is a
// footnote, not a heading).
func RankClusters(doc Document, p *Profile, clusters []StyleCluster, sigToCluster []int, cfg Config) Ranking {
	r := Ranking{
		Levels:   make([]HeadingLevel, len(clusters)),
		Strength: make([]float64, len(clusters)),
		Title:    -1,
		Body:     sigToCluster[p.BodyID],
	}

	for i, c := range clusters {
		share := 0.0
		if p.TotalChars > 0 {
			share = float64(c.CharLen) / float64(p.TotalChars)
		}
		boldness := 0.0
		if c.Bold {
			boldness = 1.0
		}
		r.Strength[i] = cfg.SizeWeight*c.CenterSize + cfg.BoldWeight*boldness + cfg.RarityWeight*(1-share)
	}

	candidates := headingCandidates(clusters, r)
	sort.SliceStable(candidates, func(i, j int) bool {
		ci, cj := candidates[i], candidates[j]
		if r.Strength[ci] != r.Strength[cj] {
			return r.Strength[ci] > r.Strength[cj]
		}
		if clusters[ci].CenterSize != clusters[cj].CenterSize {
			return clusters[ci].CenterSize > clusters[cj].CenterSize
		}
		return ci < cj
	})

	if len(candidates) > 0 && isTitleCluster(doc, p, sigToCluster, candidates[0], cfg) {
		r.Levels[candidates[0]] = LevelTitle
		r.Title = candidates[0]
		candidates = candidates[1:]
	}

	level := LevelH1
	for _, c := range candidates {
		if int(level) > cfg.MaxHeadingDepth {
			break // excess low-strength clusters stay Body
		}
		r.Levels[c] = level
		level++
	}
	return r
}

// headingCandidates returns the cluster ids eligible for heading levels: not
// the body cluster, and visually more prominent than it (larger centroid, or
// same size but bold against a regular body).
func headingCandidates(clusters []StyleCluster, r Ranking) []int {
	body := clusters[r.Body]
	var out []int
	for i, c := range clusters {
		if i == r.Body {
			continue
		}
		if c.CenterSize > body.CenterSize || (c.CenterSize == body.CenterSize && c.Bold && !body.Bold) {
			out = append(out, i)
		}
	}
	return out
}

// isTitleCluster applies the positional gate for the Title assignment: the
// top-strength cluster is the document title only when it appears near the
// top of the first page and never recurs on later pages. A large bold phrase
// buried on page 40 is not the title, and a style repeating across pages is
// a heading style, not a one-off title.
func isTitleCluster(doc Document, p *Profile, sigToCluster []int, cluster int, cfg Config) bool {
	firstPage := -1
	for i := range doc.Runs {
		if p.RunSig[i] >= 0 && (firstPage < 0 || doc.Runs[i].Page < firstPage) {
			firstPage = doc.Runs[i].Page
		}
	}
	if firstPage < 0 {
		return false
	}

	gateY := (1 - cfg.TitlePositionGate) * doc.PageHeight(firstPage)
	gatePassed := false
	for i, r := range doc.Runs {
		if p.RunSig[i] < 0 || sigToCluster[p.RunSig[i]] != cluster {
			continue
		}
		if r.Page != firstPage {
			return false
		}
		if r.BaselineY >= gateY {
			gatePassed = true
		}
	}
	return gatePassed
}
