package outline

import "fmt"

// Config holds the engine tuning parameters. It is passed explicitly into
// the pipeline entry point; the engine reads no ambient global state, so
// per-document pipeline runs can proceed fully in parallel.
type Config struct {
	// MaxHeadingDepth caps the hierarchy at H1..Hn; clusters beyond the cap
	// fold into Body.
	MaxHeadingDepth int

	// MinRunArea filters decorative glyphs: runs whose bounding box is below
	// this area (square points) are excluded from the style profile.
	MinRunArea float64

	// TitlePositionGate is the fraction of page height (from the top) within
	// which a title candidate must appear on the first page.
	TitlePositionGate float64

	// SizeEpsilon is the maximum normalized-size distance at which two style
	// signatures merge into the same cluster.
	SizeEpsilon float64

	// MergeGapTolerance is the maximum vertical gap between consecutive
	// heading lines, in multiples of the font size, for them to merge into
	// one heading instance.
	MergeGapTolerance float64

	// Strength score weights. The exact balance between size, boldness and
	// rarity is a tuned heuristic; treat these as parameters to validate
	// against a labeled corpus, not fixed constants.
	SizeWeight   float64
	BoldWeight   float64
	RarityWeight float64
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() Config {
	return Config{
		MaxHeadingDepth:   4,
		MinRunArea:        1.0,
		TitlePositionGate: 0.2,
		SizeEpsilon:       0.08,
		MergeGapTolerance: 1.6,
		SizeWeight:        0.60,
		BoldWeight:        0.25,
		RarityWeight:      0.15,
	}
}

// Validate checks the configuration and returns the first violation found.
// Configuration errors are the only fatal condition in the pipeline; they
// must be detected at startup, before any document is processed.
func (c Config) Validate() error {
	if c.MaxHeadingDepth < 1 {
		return fmt.Errorf("invalid max heading depth: %d (must be at least 1)", c.MaxHeadingDepth)
	}
	if c.MinRunArea < 0 {
		return fmt.Errorf("invalid min run area: %.2f (must not be negative)", c.MinRunArea)
	}
	if c.TitlePositionGate < 0 || c.TitlePositionGate > 1 {
		return fmt.Errorf("invalid title position gate: %.2f (must be between 0.0 and 1.0)", c.TitlePositionGate)
	}
	if c.SizeEpsilon <= 0 {
		return fmt.Errorf("invalid size epsilon: %.3f (must be positive)", c.SizeEpsilon)
	}
	if c.MergeGapTolerance <= 0 {
		return fmt.Errorf("invalid merge gap tolerance: %.2f (must be positive)", c.MergeGapTolerance)
	}
	if c.SizeWeight < 0 || c.BoldWeight < 0 || c.RarityWeight < 0 {
		return fmt.Errorf("invalid strength weights: %.2f/%.2f/%.2f (must not be negative)",
			c.SizeWeight, c.BoldWeight, c.RarityWeight)
	}
	if c.SizeWeight+c.BoldWeight+c.RarityWeight == 0 {
		return fmt.Errorf("invalid strength weights: at least one must be positive")
	}
	return nil
}
