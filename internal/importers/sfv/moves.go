package sfv

import (
	"regexp"
	"strings"

	"github.com/rcashie/fb-web-import/internal/core/domain"
	"github.com/rcashie/fb-web-import/internal/logger"
	"github.com/rcashie/fb-web-import/internal/normalisers/stats"
)

// moveStats lists move stat keys and titles in display order.
var moveStats = []struct {
	key   string
	title string
}{
	{"startup", "Startup"},
	{"active", "Active"},
	{stats.KeyOnBlock, "On Block"},
	{"recovery", "Recovery"},
	{stats.KeyOnHit, "On Hit"},
	{stats.KeyDamage, "Damage"},
	{stats.KeyStun, "Stun"},
}

// moveSet is one group of moves in the source data.
type moveSet struct {
	key    string
	title  string
	suffix string
}

// moveSets lists move groups in output order. Normal moves have no title.
var moveSets = []moveSet{
	{key: "normal"},
	{key: "vtOne", title: "V-Trigger 1", suffix: "__vt1"},
	{key: "vtTwo", title: "V-Trigger 2", suffix: "__vt2"},
}

// triggerMarker matches the "(V-Trigger 1)" and "(VT)" name annotations
// that are replaced by the set title.
var triggerMarker = regexp.MustCompile(`(?i)\((?:v-trigger\s+\d|vt)\)`)

// moveProposals builds proposals for every move set of a character.
func moveProposals(charID string, moves map[string]any) []domain.Proposal {
	var proposals []domain.Proposal
	for _, set := range moveSets {
		setMoves, _ := moves[set.key].(map[string]any)
		proposals = append(proposals, setProposals(charID, set, setMoves)...)
	}
	return proposals
}

func setProposals(charID string, set moveSet, moves map[string]any) []domain.Proposal {
	var proposals []domain.Proposal
	for _, move := range sortedKeys(moves) {
		name := triggerMarker.ReplaceAllString(move, "")
		title := strings.TrimSpace(capitalize(name))
		target := charID + "." + sanitizeForID(name)
		if set.title != "" {
			title = set.title + " | " + title
			target += set.suffix
		}

		data, _ := moves[move].(map[string]any)
		attrs := moveAttributes(data)
		if len(attrs) == 0 {
			logger.Warn("Skipping %s: No attributes", target)
			continue
		}

		proposals = append(proposals, domain.Proposal{
			Target:   target,
			ImportAs: Name,
			Document: domain.Document{
				Type:       domain.DocumentTypeMove,
				Character:  charID,
				Title:      title,
				Attributes: attrs,
				Media:      emptyMedia,
				Names:      commonNames(title),
			},
		})
	}
	return proposals
}

// moveAttributes normalises every present move stat.
func moveAttributes(data map[string]any) []domain.Attribute {
	var attrs []domain.Attribute
	for _, stat := range moveStats {
		raw, ok := statString(data[stat.key])
		if !ok {
			continue
		}
		result, ok := stats.Normalise(stat.key, raw)
		if !ok {
			continue
		}
		attrs = append(attrs, domain.Attribute{
			Title:     stat.title,
			Value:     result.Value,
			Sentiment: result.Sentiment,
		})
	}
	return attrs
}
