// Package textproc implements the text transformations offered by the API.
package textproc

import (
	"errors"
	"strings"
)

// Capitalization rules understood by Process. Any other value leaves the
// text unchanged.
const (
	Upper = "UPPER"
	Lower = "LOWER"
)

// DefaultDuplicationFactor is used when the client does not send a factor.
const DefaultDuplicationFactor = 1

// MaxResultBytes is the largest result Process will build.
const MaxResultBytes = 1 << 20

// ErrResultTooLarge is returned when the duplicated text would exceed MaxResultBytes.
var ErrResultTooLarge = errors.New("'duplication_factor' is too large for the given text")

// Process applies the capitalization rule to text and then joins
// duplicationFactor copies of the result with newlines. Factors below 1 are
// treated as 1.
func Process(text string, duplicationFactor int, capitalization string) (string, error) {
	switch capitalization {
	case Upper:
		text = strings.ToUpper(text)
	case Lower:
		text = strings.ToLower(text)
	}

	n := max(duplicationFactor, 1)
	// n copies plus n-1 separators must fit: n*(len+1)-1 <= MaxResultBytes
	if n > (MaxResultBytes+1)/(len(text)+1) {
		return "", ErrResultTooLarge
	}

	var b strings.Builder
	b.Grow(n*(len(text)+1) - 1)
	for i := range n {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(text)
	}
	return b.String(), nil
}

// Uppercase returns text converted to upper case.
func Uppercase(text string) string {
	return strings.ToUpper(text)
}
