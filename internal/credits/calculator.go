package credits

import "math"

// Calculator turns raw message text into a billable credit amount. It holds
// no state; the zero value is ready to use and safe to share.
type Calculator struct{}

// Compute returns the credit cost of a message:
//
//	total = base(1) + charCost + wordCost + vowelBonus + lengthPenalty + uniquenessBonus
//	total *= 2 when the whole message is a palindrome
//	result = max(1, round(total, 2))
//
// Rounding is half away from zero (math.Round on cents). The floor at 1
// applies after rounding; every message bills at least one credit.
func (Calculator) Compute(text string) float64 {
	m := Analyze(text)

	total := baseCost +
		CharCost(m.Length) +
		WordCost(m.Words) +
		VowelBonus(m.PositionalVowelHits) +
		LengthPenalty(m.Length) +
		UniquenessBonus(m.Words)

	if m.Palindrome {
		total *= 2
	}

	return math.Max(1, round2(total))
}

// round2 rounds to two decimal places, half away from zero.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
