package passphrase

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"strings"

	serrors "github.com/sealbox/sealbox/internal/errors"
)

// Separator joins the words of a generated passphrase.
const Separator = "-"

// DefaultWordCount gives roughly 77 bits of entropy against an attacker
// who knows the wordlist.
const DefaultWordCount = 6

// Generate draws wordCount independent uniform-random words from the
// wordlist and joins them with Separator. Repeats are allowed; each draw
// is independent. Indices come from 32-bit reads of crypto/rand taken
// modulo the wordlist length, a range large enough that modulo bias is
// negligible for a 256-word list.
func Generate(wordCount int) (string, error) {
	if wordCount <= 0 {
		return "", fmt.Errorf("word count must be positive: %w", serrors.ErrInvalidInput)
	}

	words := make([]string, wordCount)
	buf := make([]byte, 4)
	for i := range words {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}
		idx := binary.BigEndian.Uint32(buf) % uint32(len(wordlist))
		words[i] = wordlist[idx]
	}
	return strings.Join(words, Separator), nil
}

// Wordlist returns the fixed wordlist used by Generate.
func Wordlist() []string {
	out := make([]string, len(wordlist))
	copy(out, wordlist)
	return out
}
