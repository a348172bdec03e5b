package outline

import (
	"math"
	"strings"
)

// wordSpaceFactor is the horizontal gap, in multiples of the font size,
// above which two same-line fragments are joined with a space. Extractors
// commonly split a heading character by character; smaller gaps concatenate
// directly.
const wordSpaceFactor = 0.3

// sameLineFactor is the baseline distance, in multiples of the font size,
// within which two runs count as the same text line.
const sameLineFactor = 0.3

// instance accumulates the fragments of one logical heading while adjacent
// runs are merged.
type instance struct {
	level HeadingLevel
	page  int
	text  strings.Builder
	size  float64
	lastY float64
	lastX float64
}

// AssembleOutline walks the original ordered run sequence, merges adjacent
// runs belonging to the same heading instance and emits the final outline.
// Body-level runs are filtered out entirely; emitted nodes keep original
// document order. The function is pure over its inputs.
func AssembleOutline(doc Document, p *Profile, sigToCluster []int, r Ranking, cfg Config) *Outline {
	out := &Outline{Nodes: []OutlineNode{}}

	var cur *instance
	flush := func() {
		if cur == nil {
			return
		}
		text := collapseWhitespace(cur.text.String())
		if text != "" {
			if cur.level == LevelTitle {
				// First merged Title instance names the document; later
				// fragments of the title style are dropped.
				if out.Title == "" {
					out.Title = text
				}
			} else {
				out.Nodes = append(out.Nodes, OutlineNode{Level: cur.level, Text: text, Page: cur.page})
			}
		}
		cur = nil
	}

	for i, run := range doc.Runs {
		level := LevelBody
		if p.RunSig[i] >= 0 {
			level = r.Levels[sigToCluster[p.RunSig[i]]]
		}
		if level == LevelBody {
			flush()
			continue
		}

		if cur != nil && cur.level == level && cur.page == run.Page {
			if sep, ok := continuation(cur, run, cfg); ok {
				cur.text.WriteString(sep)
				cur.text.WriteString(run.Text)
				cur.lastY = run.BaselineY
				cur.lastX = run.BBox.X1
				continue
			}
		}

		flush()
		cur = &instance{level: level, page: run.Page, size: run.FontSize, lastY: run.BaselineY, lastX: run.BBox.X1}
		cur.text.WriteString(run.Text)
	}
	flush()

	smoothLevels(out.Nodes)
	return out
}

// continuation decides whether run extends the current instance and with
// which separator. Same-line fragments join directly when the horizontal gap
// is below the word-space threshold; line-wrapped headings join with a space
// while the vertical gap stays within tolerance.
func continuation(cur *instance, run TextRun, cfg Config) (string, bool) {
	size := math.Max(cur.size, run.FontSize)
	dy := cur.lastY - run.BaselineY

	if math.Abs(dy) <= sameLineFactor*size {
		if run.BBox.X0-cur.lastX < wordSpaceFactor*size {
			return "", true
		}
		return " ", true
	}
	if dy > 0 && dy <= cfg.MergeGapTolerance*size {
		return " ", true
	}
	return "", false
}

// smoothLevels enforces monotonic level consistency over the emitted nodes:
// a heading may not sit more than one level below its predecessor.
func smoothLevels(nodes []OutlineNode) {
	for i := 1; i < len(nodes); i++ {
		if nodes[i].Level > nodes[i-1].Level+1 {
			nodes[i].Level = nodes[i-1].Level + 1
		}
	}
}

// collapseWhitespace trims and squeezes internal runs of whitespace to a
// single space.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
