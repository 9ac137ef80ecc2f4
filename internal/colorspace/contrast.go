package colorspace

// lightnessStep is the fixed OKLCH lightness nudge per iteration, 2% of
// the lightness range.
const lightnessStep = 0.02

// EnsureContrast returns a variant of candidate whose contrast ratio
// against background is at least minRatio, by nudging the candidate's
// OKLCH lightness away from the background's lightness in fixed steps.
// Hue and chroma are preserved. If the budget runs out the best candidate
// seen is returned; this function never fails.
func EnsureContrast(candidate, background Color, minRatio float64, maxIterations int) Color {
	best := candidate
	bestRatio := ContrastRatio(candidate, background)
	if bestRatio >= minRatio {
		return candidate
	}

	o := RGBToOKLCH(candidate)
	bgL := RGBToOKLCH(background).L

	// Move away from the background's lightness. On a tie, dark
	// backgrounds push the candidate lighter.
	dir := 1.0
	if o.L < bgL || (o.L == bgL && bgL >= 0.5) {
		dir = -1.0
	}

	for i := 0; i < maxIterations; i++ {
		o.L = clamp01(o.L + dir*lightnessStep)
		c := OKLCHToRGB(o)
		r := ContrastRatio(c, background)
		if r >= minRatio {
			return c
		}
		if r > bestRatio {
			best, bestRatio = c, r
		}
		if o.L <= 0 || o.L >= 1 {
			break
		}
	}
	return best
}
