package stats

import (
	"regexp"
	"strconv"
)

// maskByte replaces every byte inside a balanced parenthesised span.
// It is neither a digit, whitespace nor an operator.
const maskByte = '_'

// Operators recognised by the tokenizer.
const (
	opImplicit byte = 0
	opAdd      byte = '*'
	opMultiply byte = 'x'
)

// token is one (operator?, operand) pair.
type token struct {
	op  byte
	arg int64
}

var integerPattern = regexp.MustCompile(`-?\d+`)

// mask returns s with every balanced parenthesised span, brackets included,
// replaced by maskByte. Nested spans are masked as a whole. An unmatched
// bracket is left untouched.
func mask(s string) string {
	b := []byte(s)
	var open []int
	for i := 0; i < len(b); i++ {
		switch b[i] {
		case '(':
			open = append(open, i)
		case ')':
			if len(open) == 0 {
				continue
			}
			start := open[len(open)-1]
			open = open[:len(open)-1]
			for j := start; j <= i; j++ {
				b[j] = maskByte
			}
		}
	}
	return string(b)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

// tokenize scans an already masked string for "(op?) number" pairs.
// Anything that is not part of a pair is skipped. The second return
// value is false if an operand overflows int64.
func tokenize(masked string) ([]token, bool) {
	var tokens []token
	for i := 0; i < len(masked); {
		c := masked[i]
		op := opImplicit
		start := i
		if c == opAdd || c == opMultiply {
			j := i + 1
			for j < len(masked) && isSpace(masked[j]) {
				j++
			}
			if j >= len(masked) || !isDigit(masked[j]) {
				i++
				continue
			}
			op = c
			start = j
		} else if !isDigit(c) {
			i++
			continue
		}

		end := start
		for end < len(masked) && isDigit(masked[end]) {
			end++
		}
		n, err := strconv.ParseInt(masked[start:end], 10, 64)
		if err != nil {
			return nil, false
		}
		tokens = append(tokens, token{op: op, arg: n})
		i = end
	}
	return tokens, true
}

// fold multiplies every "x" token into the token immediately before it,
// left to right in a single pass, then sums what remains. A leading
// multiply token has nothing to fold into and is added.
func fold(tokens []token) (int64, bool) {
	folded := make([]token, 0, len(tokens))
	for _, t := range tokens {
		if t.op == opMultiply && len(folded) > 0 {
			prev := &folded[len(folded)-1]
			product, ok := mulInt64(prev.arg, t.arg)
			if !ok {
				return 0, false
			}
			prev.arg = product
			continue
		}
		folded = append(folded, t)
	}

	var sum int64
	for _, t := range folded {
		next := sum + t.arg
		if next < sum {
			return 0, false
		}
		sum = next
	}
	return sum, true
}

func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	p := a * b
	if p/b != a {
		return 0, false
	}
	return p, true
}

// Evaluate computes a sum-of-products stat expression.
//
// Numbers inside parentheses are ignored. "x" binds tighter than both
// "*" and juxtaposition, which add. Returns false if the expression has
// no operands or overflows.
func Evaluate(expr string) (int64, bool) {
	tokens, ok := tokenize(mask(expr))
	if !ok || len(tokens) == 0 {
		return 0, false
	}
	return fold(tokens)
}

// LastInteger returns the last optionally negative integer that is not
// enclosed in parentheses.
func LastInteger(s string) (int64, bool) {
	matches := integerPattern.FindAllString(mask(s), -1)
	if len(matches) == 0 {
		return 0, false
	}
	n, err := strconv.ParseInt(matches[len(matches)-1], 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
