package credits

// Scoring constants. Taken together with the rules below they define the
// billing formula; change them only in lockstep with published pricing.
const (
	baseCost         = 1.0
	perCharCost      = 0.05
	vowelHitCost     = 0.3
	lengthThreshold  = 100
	lengthPenaltyFee = 5.0
	uniqueWordsBonus = -2.0

	shortWordCost  = 0.1
	mediumWordCost = 0.2
	longWordCost   = 0.3
)

// CharCost bills a flat rate per character of the raw text.
func CharCost(length int) float64 {
	return perCharCost * float64(length)
}

// WordCost classifies each word by character length and sums the bucket
// rates: 1-3 characters 0.1, 4-7 characters 0.2, 8 or more 0.3.
// Zero-length words cannot occur; the word pattern requires at least one
// character.
func WordCost(words []string) float64 {
	total := 0.0
	for _, w := range words {
		switch n := len(w); {
		case n <= 3:
			total += shortWordCost
		case n <= 7:
			total += mediumWordCost
		default:
			total += longWordCost
		}
	}
	return total
}

// VowelBonus bills 0.3 per positional vowel hit (see PositionalVowelHits).
func VowelBonus(hits int) float64 {
	return vowelHitCost * float64(hits)
}

// LengthPenalty adds a flat 5 credits for messages longer than 100
// characters, and nothing otherwise.
func LengthPenalty(length int) float64 {
	if length > lengthThreshold {
		return lengthPenaltyFee
	}
	return 0
}

// UniquenessBonus subtracts 2 credits when every word in the message is
// unique. The comparison is case-sensitive on the extracted words, so
// "Hello hello" still earns the bonus. Zero- and one-word messages are
// vacuously unique.
func UniquenessBonus(words []string) float64 {
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		if _, dup := seen[w]; dup {
			return 0
		}
		seen[w] = struct{}{}
	}
	return uniqueWordsBonus
}
