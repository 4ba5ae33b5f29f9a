// Package factorial computes n! over arbitrary-precision integers and parses
// the decimal tokens it is fed from the command line.
package factorial

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// ErrInvalidInteger is returned for a token that is not a base-10 integer.
var ErrInvalidInteger = errors.New("invalid integer")

var one = big.NewInt(1)

// Compute returns the product of every integer from 1 through n. The range
// is empty for n < 1, so zero and negative inputs both yield 1.
// n is not modified.
func Compute(n *big.Int) *big.Int {
	result := big.NewInt(1)
	if n == nil {
		return result
	}
	for i := big.NewInt(1); i.Cmp(n) <= 0; i.Add(i, one) {
		result.Mul(result, i)
	}
	return result
}

// ParseInput reads a signed base-10 integer of any length. Surrounding
// whitespace is ignored and single underscores may separate digits.
func ParseInput(token string) (*big.Int, error) {
	digits, ok := normalizeDigits(strings.TrimSpace(token))
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidInteger, token)
	}
	n, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidInteger, token)
	}
	return n, nil
}

// normalizeDigits validates sign, digits and digit separators and returns
// the literal with separators removed.
func normalizeDigits(s string) (string, bool) {
	body := s
	sign := ""
	if body != "" && (body[0] == '+' || body[0] == '-') {
		sign, body = body[:1], body[1:]
	}
	if body == "" {
		return "", false
	}

	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(sign)
	prevDigit := false
	for i := 0; i < len(body); i++ {
		c := body[i]
		switch {
		case c >= '0' && c <= '9':
			b.WriteByte(c)
			prevDigit = true
		case c == '_' && prevDigit && i+1 < len(body):
			prevDigit = false
		default:
			return "", false
		}
	}
	return b.String(), true
}

// Format renders the result line without a trailing newline.
func Format(n, result *big.Int) string {
	return fmt.Sprintf("factorial(%s) = %s", n.String(), result.String())
}
