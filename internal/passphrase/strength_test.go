package passphrase

import (
	"strings"
	"testing"
)

func TestEstimateStrengthScores(t *testing.T) {
	tests := []struct {
		name        string
		password    string
		wantScore   int
		wantEntropy int
	}{
		{"empty", "", 0, 0},
		{"three lowercase", "abc", 0, 14},
		{"seven lowercase", "abcdefg", 1, 32},
		{"eight lowercase", "abcdefgh", 2, 37},
		{"eight mixed everything", "Abcdef1!", 2, 52},
		{"sixteen lower and digits", "abcdefghijkl1234", 3, 82},
		{"long diceware style", "correct horse battery staple", 4, 164},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateStrength(tt.password)
			if got.Score != tt.wantScore {
				t.Errorf("Score = %d, want %d", got.Score, tt.wantScore)
			}
			if got.EntropyBits != tt.wantEntropy {
				t.Errorf("EntropyBits = %d, want %d", got.EntropyBits, tt.wantEntropy)
			}
			if got.Feedback == "" {
				t.Error("Feedback is empty")
			}
		})
	}
}

func TestEstimateStrengthEmptyFeedback(t *testing.T) {
	got := EstimateStrength("")
	if got.Feedback != emptyFeedback {
		t.Errorf("Feedback = %q, want %q", got.Feedback, emptyFeedback)
	}
	// The empty-password feedback is distinct from the score-0 feedback.
	if got.Feedback == feedback[0] {
		t.Error("empty password feedback should differ from the score-0 feedback")
	}
}

func TestEstimateStrengthMonotonicInLength(t *testing.T) {
	// Within a fixed character class, a longer password never scores lower.
	prevScore := 0
	prevBits := 0
	for length := 1; length <= 40; length++ {
		got := EstimateStrength(strings.Repeat("a", length))
		if got.Score < prevScore {
			t.Fatalf("score dropped from %d to %d at length %d", prevScore, got.Score, length)
		}
		if got.EntropyBits < prevBits {
			t.Fatalf("entropy dropped from %d to %d at length %d", prevBits, got.EntropyBits, length)
		}
		prevScore = got.Score
		prevBits = got.EntropyBits
	}
}

func TestEstimateStrengthDeterministic(t *testing.T) {
	first := EstimateStrength("Tr0ub4dor&3")
	second := EstimateStrength("Tr0ub4dor&3")
	if first != second {
		t.Errorf("EstimateStrength is not deterministic: %+v vs %+v", first, second)
	}
}
