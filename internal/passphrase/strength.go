package passphrase

import (
	"math"
	"unicode"
)

// Strength is the result of estimating a password's resistance to guessing.
// It is a UX signal, not a cryptographic guarantee.
type Strength struct {
	Score       int // 0 (worst) to 4 (best)
	EntropyBits int
	Feedback    string
}

var feedback = [5]string{
	"Very weak: easily guessed",
	"Weak: add more length or variety",
	"Fair: usable, but longer is better",
	"Strong",
	"Very strong",
}

const emptyFeedback = "A password is required"

// EstimateStrength scores a password by estimated entropy. The charset
// size is the sum of the character classes present (26 lowercase, 26
// uppercase, 10 digits, 32 symbols) and entropy is length*log2(charset).
// Deterministic, no side effects.
func EstimateStrength(password string) Strength {
	if password == "" {
		return Strength{Score: 0, EntropyBits: 0, Feedback: emptyFeedback}
	}

	var lower, upper, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		default:
			symbol = true
		}
	}

	charset := 0
	if lower {
		charset += 26
	}
	if upper {
		charset += 26
	}
	if digit {
		charset += 10
	}
	if symbol {
		charset += 32
	}
	if charset < 1 {
		charset = 1 // log2(1) == 0, entropy degrades to zero
	}

	bits := int(float64(len([]rune(password))) * math.Log2(float64(charset)))

	score := 4
	switch {
	case bits < 28:
		score = 0
	case bits < 36:
		score = 1
	case bits < 60:
		score = 2
	case bits < 128:
		score = 3
	}

	return Strength{Score: score, EntropyBits: bits, Feedback: feedback[score]}
}
