package outline

// styled builds a text run with a synthetic bounding box derived from its
// text length. The geometry is crude but dimensionally consistent, which is
// all the pipeline needs.
func styled(text string, page int, size float64, family string, bold bool, x, y float64) TextRun {
	w := 0.5 * size * float64(len([]rune(text)))
	if w <= 0 {
		w = size
	}
	return TextRun{
		Text:       text,
		Page:       page,
		FontSize:   size,
		FontFamily: family,
		Bold:       bold,
		BBox:       BoundingBox{X0: x, Y0: y, X1: x + w, Y1: y + size},
		BaselineY:  y,
	}
}

// bodyRuns produces enough body text to dominate the character volume of any
// plausible heading set.
func bodyRuns(pages int) []TextRun {
	var runs []TextRun
	for p := 0; p < pages; p++ {
		for i := 0; i < 4; i++ {
			runs = append(runs, styled(
				"The quick brown fox jumps over the lazy dog near the riverbank.",
				p, 10, "times", false, 72, 500-float64(i)*40))
		}
	}
	return runs
}
