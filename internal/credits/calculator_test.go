package credits

import (
	"strings"
	"testing"
)

func TestCompute_FloorApplied(t *testing.T) {
	// 1 + 21*0.05 + 3*0.2 + 1*0.3 + 0 - 2 = 0.95, floored to 1.
	var c Calculator
	if got := c.Compute("Hello, amazing world!"); got != 1 {
		t.Fatalf("Compute = %v, want 1", got)
	}
}

func TestCompute_NeverBelowOne(t *testing.T) {
	var c Calculator
	for _, text := range []string{
		"",
		"a",
		"hi",
		"short unique words",
		"A man a plan a canal Panama",
		strings.Repeat("na ", 60),
	} {
		if got := c.Compute(text); got < 1 {
			t.Errorf("Compute(%q) = %v, below floor of 1", text, got)
		}
	}
}

func TestCompute_PalindromeDoubling(t *testing.T) {
	// "A man a plan a canal Panama": 27 chars (1.35), words
	// [A man a plan a canal Panama] cost 1.0, one positional vowel hit
	// (0.3), "a" repeats so no uniqueness bonus. Pre-doubling 3.65,
	// palindrome doubles to 7.3.
	var c Calculator
	if got := c.Compute("A man a plan a canal Panama"); !approx(got, 7.3) {
		t.Fatalf("Compute = %v, want 7.3", got)
	}
}

func TestCompute_LongMessagePenalty(t *testing.T) {
	// 104 chars of repeated words: penalty applies, no uniqueness bonus.
	text := strings.Repeat("word ", 20) + "word" // 20*5 + 4 = 104 chars
	// 1 + 104*0.05 + 21*0.2 + penalty 5 + vowel hits.
	// "word word ...": positions divisible by 3 cycle r,d,w,o(hit),r, ...
	// within each 15-char block exactly one 'o' lands on a multiple of 3.
	var c Calculator
	got := c.Compute(text)
	if got <= 10 {
		t.Fatalf("Compute = %v, expected the length penalty to push this past 10", got)
	}
}

func TestCompute_Deterministic(t *testing.T) {
	var c Calculator
	const text = "Determinism matters for billing."
	first := c.Compute(text)
	for i := 0; i < 5; i++ {
		if got := c.Compute(text); got != first {
			t.Fatalf("run %d: got %v, want %v", i, got, first)
		}
	}
}

func TestRound2_HalfAwayFromZero(t *testing.T) {
	// 2.125 and 2.375 are exact in binary, so these pin the tie-break:
	// half away from zero, not banker's rounding.
	cases := []struct {
		in, want float64
	}{
		{2.125, 2.13},
		{2.375, 2.38},
		{-2.125, -2.13},
		{2.124, 2.12},
		{2.13, 2.13},
	}
	for _, tc := range cases {
		if got := round2(tc.in); !approx(got, tc.want) {
			t.Errorf("round2(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
