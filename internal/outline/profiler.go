package outline

import (
	"strings"
	"unicode/utf8"
)

// maxExampleRuns bounds how many example run indices are kept per signature.
const maxExampleRuns = 3

// SignatureStats aggregates the occurrences of one style signature.
type SignatureStats struct {
	Count    int   // number of runs
	CharLen  int   // total character length (runes)
	Examples []int // first few run indices carrying this signature
}

// Profile is the document-wide style frequency table. Signatures are
// index-based: each distinct signature gets a small integer id, and runs are
// stored as an array of ids.
type Profile struct {
	Signatures []StyleSignature
	Stats      []SignatureStats

	// RunSig maps every run index to its signature id, or -1 for runs
	// excluded as noise (whitespace-only or sub-threshold bounding box).
	// Excluded runs stay in the original sequence and reattach as Body.
	RunSig []int

	// BodyID is the signature with the greatest character volume, assumed to
	// be body text.
	BodyID int

	MinSize    float64
	MaxSize    float64
	BodySize   float64
	TotalChars int
}

// BuildProfile aggregates the style attributes of all runs into a frequency
// table with document-wide statistics. It returns ErrNoRuns when the
// sequence is empty or nothing survives noise filtering.
func BuildProfile(doc Document, cfg Config) (*Profile, error) {
	p := &Profile{
		RunSig: make([]int, len(doc.Runs)),
		BodyID: -1,
	}
	ids := make(map[StyleSignature]int)

	for i, r := range doc.Runs {
		p.RunSig[i] = -1
		if isNoise(r, cfg) {
			continue
		}

		sig := NewSignature(r)
		id, ok := ids[sig]
		if !ok {
			id = len(p.Signatures)
			ids[sig] = id
			p.Signatures = append(p.Signatures, sig)
			p.Stats = append(p.Stats, SignatureStats{})
		}
		p.RunSig[i] = id

		st := &p.Stats[id]
		st.Count++
		st.CharLen += utf8.RuneCountInString(strings.TrimSpace(r.Text))
		if len(st.Examples) < maxExampleRuns {
			st.Examples = append(st.Examples, i)
		}

		if p.MinSize == 0 || r.FontSize < p.MinSize {
			p.MinSize = r.FontSize
		}
		if r.FontSize > p.MaxSize {
			p.MaxSize = r.FontSize
		}
	}

	if len(p.Signatures) == 0 {
		return nil, ErrNoRuns
	}

	for id, st := range p.Stats {
		p.TotalChars += st.CharLen
		if p.BodyID < 0 || moreVoluminous(st, p.Stats[p.BodyID]) {
			p.BodyID = id
		}
	}
	p.BodySize = p.Signatures[p.BodyID].Size

	return p, nil
}

// Normalized returns the signature's size relative to the body-text size.
// Absolute point sizes vary by document; the relative size of a heading
// versus body text is comparably stable, which keeps the engine
// format-agnostic.
func (p *Profile) Normalized(id int) float64 {
	if p.BodySize <= 0 {
		return 1
	}
	return p.Signatures[id].Size / p.BodySize
}

// isNoise reports whether a run is excluded from the style profile.
func isNoise(r TextRun, cfg Config) bool {
	if strings.TrimSpace(r.Text) == "" {
		return true
	}
	if r.FontSize <= 0 {
		return true
	}
	return r.BBox.Area() < cfg.MinRunArea
}

// moreVoluminous orders signatures by character volume, breaking ties toward
// higher run count so the body pick stays deterministic.
func moreVoluminous(a, b SignatureStats) bool {
	if a.CharLen != b.CharLen {
		return a.CharLen > b.CharLen
	}
	return a.Count > b.Count
}
