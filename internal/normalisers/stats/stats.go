// Package stats normalises free-text move and character stats into
// canonical attribute values with a display sentiment.
package stats

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/rcashie/fb-web-import/internal/core/domain"
)

// Stat keys with special handling.
const (
	KeyDamage  = "damage"
	KeyStun    = "stun"
	KeyOnHit   = "onHit"
	KeyOnBlock = "onBlock"
)

// placeholder marks a stat with no value in source data.
const placeholder = "~"

// expressionPattern accepts "a", "a x b", "a * b x c (d)" and similar.
var expressionPattern = regexp.MustCompile(`^\d+(?:\s*[*x]\s*\d+)*(?:\s*\(\d+\))?$`)

// Result is a normalised stat value.
type Result struct {
	Value     string
	Sentiment domain.Sentiment
}

// Normalise converts a raw stat string for key into its canonical value.
// The second return value is false when the stat should be omitted:
// the raw value is empty, whitespace or the "~" placeholder.
func Normalise(key, raw string) (Result, bool) {
	src := strings.TrimSpace(raw)
	if src == "" || src == placeholder {
		return Result{}, false
	}

	switch key {
	case KeyDamage, KeyStun:
		return Result{Value: normaliseExpression(src), Sentiment: domain.SentimentNeutral}, true
	case KeyOnHit, KeyOnBlock:
		value := normaliseAdvantage(src)
		return Result{Value: value, Sentiment: advantageSentiment(value)}, true
	default:
		return Result{Value: src, Sentiment: domain.SentimentNeutral}, true
	}
}

// normaliseExpression evaluates strings matching the expression grammar
// and passes everything else through.
func normaliseExpression(src string) string {
	if !expressionPattern.MatchString(src) {
		return src
	}
	n, ok := Evaluate(src)
	if !ok {
		return src
	}
	return strconv.FormatInt(n, 10)
}

// normaliseAdvantage keeps the last free integer of a frame advantage string.
func normaliseAdvantage(src string) string {
	n, ok := LastInteger(src)
	if !ok {
		return src
	}
	return strconv.FormatInt(n, 10)
}

func advantageSentiment(value string) domain.Sentiment {
	n, err := strconv.ParseInt(value, 10, 64)
	if err == nil && n < 0 {
		return domain.SentimentNegative
	}
	return domain.SentimentPositive
}
