package credits

import (
	"math"
	"testing"
)

// approx reports whether two floats are equal within a billing-irrelevant
// epsilon. Rule outputs are sums of decimal constants, so tiny binary
// representation error is expected.
func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCharCost(t *testing.T) {
	if got := CharCost(25); !approx(got, 1.25) {
		t.Fatalf("CharCost(25) = %v, want 1.25", got)
	}
	if got := CharCost(0); got != 0 {
		t.Fatalf("CharCost(0) = %v, want 0", got)
	}
}

func TestWordCost_Buckets(t *testing.T) {
	// "Hi" short, the rest medium(5,7,5): 0.1 + 3*0.2 = 0.7
	if got := WordCost([]string{"Hi", "there", "amazing", "world"}); !approx(got, 0.7) {
		t.Fatalf("WordCost = %v, want 0.7", got)
	}
}

func TestWordCost_BucketBoundaries(t *testing.T) {
	cases := []struct {
		word string
		want float64
	}{
		{"a", 0.1},        // shortest possible word
		{"abc", 0.1},      // short upper bound
		{"abcd", 0.2},     // medium lower bound
		{"abcdefg", 0.2},  // medium upper bound
		{"abcdefgh", 0.3}, // long lower bound
		{"extraordinarily", 0.3},
	}
	for _, tc := range cases {
		if got := WordCost([]string{tc.word}); !approx(got, tc.want) {
			t.Errorf("WordCost([%q]) = %v, want %v", tc.word, got, tc.want)
		}
	}
}

func TestVowelBonus(t *testing.T) {
	if got := VowelBonus(0); got != 0 {
		t.Fatalf("VowelBonus(0) = %v, want 0", got)
	}
	if got := VowelBonus(3); !approx(got, 0.9) {
		t.Fatalf("VowelBonus(3) = %v, want 0.9", got)
	}
}

func TestLengthPenalty(t *testing.T) {
	if got := LengthPenalty(100); got != 0 {
		t.Fatalf("LengthPenalty(100) = %v, want 0 (threshold is exclusive)", got)
	}
	if got := LengthPenalty(101); got != 5 {
		t.Fatalf("LengthPenalty(101) = %v, want 5", got)
	}
}

func TestUniquenessBonus(t *testing.T) {
	if got := UniquenessBonus([]string{"a", "b", "c"}); got != -2 {
		t.Fatalf("all unique: got %v, want -2", got)
	}
	if got := UniquenessBonus([]string{"a", "b", "a"}); got != 0 {
		t.Fatalf("duplicate: got %v, want 0", got)
	}
	// Case-sensitive comparison: different casings are different words.
	if got := UniquenessBonus([]string{"Hello", "hello"}); got != -2 {
		t.Fatalf("case-sensitive: got %v, want -2", got)
	}
	// Vacuously unique.
	if got := UniquenessBonus(nil); got != -2 {
		t.Fatalf("no words: got %v, want -2", got)
	}
	if got := UniquenessBonus([]string{"only"}); got != -2 {
		t.Fatalf("one word: got %v, want -2", got)
	}
}
