package sfv

import (
	"regexp"
	"strings"
)

// nameSubstitution expands a button abbreviation into common names.
type nameSubstitution struct {
	pattern     *regexp.Regexp
	substitutes []string
}

func newSubstitution(target string, substitutes ...string) nameSubstitution {
	return nameSubstitution{
		pattern:     regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(target) + `\b`),
		substitutes: substitutes,
	}
}

var nameSubstitutions = []nameSubstitution{
	newSubstitution("LP", "Light Punch", "Jab"),
	newSubstitution("MP", "Medium Punch", "Strong"),
	newSubstitution("HP", "Hard Punch", "Fierce"),
	newSubstitution("LK", "Light Kick", "Short"),
	newSubstitution("MK", "Medium Kick", "Forward"),
	newSubstitution("HK", "Hard Kick", "Roundhouse"),
	newSubstitution("Crouch HK", "Sweep"),
}

// duplicateWords are dropped from a substitute when the title already has them.
var duplicateWords = map[string]struct{}{
	"Punch": {},
	"Kick":  {},
}

// commonNames returns alternate names for a move title by replacing the
// first occurrence of each button abbreviation with its common names.
func commonNames(title string) []string {
	names := []string{}
	titleWords := wordSet(title)
	for _, sub := range nameSubstitutions {
		loc := sub.pattern.FindStringIndex(title)
		if loc == nil {
			continue
		}
		for _, substitute := range sub.substitutes {
			substitute = removeDuplicateWords(substitute, titleWords)
			names = append(names, title[:loc[0]]+substitute+title[loc[1]:])
		}
	}
	return names
}

// removeDuplicateWords drops duplicate words from phrase that are also in
// titleWords. Repeated words in phrase are kept once.
func removeDuplicateWords(phrase string, titleWords map[string]struct{}) string {
	seen := make(map[string]struct{})
	var kept []string
	for _, word := range strings.Fields(phrase) {
		if _, ok := seen[word]; ok {
			continue
		}
		seen[word] = struct{}{}

		_, duplicate := duplicateWords[word]
		_, inTitle := titleWords[word]
		if duplicate && inTitle {
			continue
		}
		kept = append(kept, word)
	}
	return strings.Join(kept, " ")
}

func wordSet(phrase string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, word := range strings.Fields(phrase) {
		words[word] = struct{}{}
	}
	return words
}
