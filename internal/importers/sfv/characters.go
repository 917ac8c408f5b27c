package sfv

import (
	"strconv"

	"github.com/rcashie/fb-web-import/internal/core/domain"
)

// characterStats lists character stat keys and titles in display order.
var characterStats = []struct {
	key   string
	title string
}{
	{"health", "Health"},
	{"stun", "Stun"},
	{"fWalk", "Forward Walk"},
	{"bWalk", "Back Walk"},
	{"fDash", "Forward Dash"},
	{"bDash", "Back Dash"},
	{"vgauge1", "V Gauge 1"},
	{"vgauge2", "V Gauge 2"},
	{"throwHurt", "Throw Damage"},
	{"throwRange", "Throw Range"},
}

// characterProposals returns the character proposal followed by its moves.
func characterProposals(gameID, name string, data map[string]any) []domain.Proposal {
	target := gameID + "." + sanitizeForID(name)
	stats, _ := data["stats"].(map[string]any)

	proposals := []domain.Proposal{{
		Target:   target,
		ImportAs: Name,
		Document: domain.Document{
			Type:       domain.DocumentTypeCharacter,
			Game:       gameID,
			Title:      capitalize(name),
			Attributes: characterAttributes(stats),
			Names:      []string{},
			Media:      emptyMedia,
		},
	}}

	moves, _ := data["moves"].(map[string]any)
	return append(proposals, moveProposals(target, moves)...)
}

// characterAttributes keeps every stat with a non-empty, non-zero value,
// unchanged and neutral.
func characterAttributes(stats map[string]any) []domain.Attribute {
	attrs := []domain.Attribute{}
	for _, stat := range characterStats {
		value, ok := statString(stats[stat.key])
		if !ok || isZero(value) {
			continue
		}
		attrs = append(attrs, domain.Attribute{
			Title:     stat.title,
			Value:     value,
			Sentiment: domain.SentimentNeutral,
		})
	}
	return attrs
}

// isZero reports whether a stat value counts as missing: empty or numerically zero.
func isZero(value string) bool {
	if value == "" {
		return true
	}
	f, err := strconv.ParseFloat(value, 64)
	return err == nil && f == 0
}
