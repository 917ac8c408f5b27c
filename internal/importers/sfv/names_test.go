package sfv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommonNames(t *testing.T) {
	tests := []struct {
		title string
		want  []string
	}{
		{"Stand LP", []string{"Stand Light Punch", "Stand Jab"}},
		{"Stand lp", []string{"Stand Light Punch", "Stand Jab"}},
		{"Crouch HK", []string{"Crouch Hard Kick", "Crouch Roundhouse", "Sweep"}},
		{"V-Trigger 1 | Crouch HP", []string{"V-Trigger 1 | Crouch Hard Punch", "V-Trigger 1 | Crouch Fierce"}},
		{"Stand LP+LK", []string{"Stand Light Punch+LK", "Stand Jab+LK", "Stand LP+Light Kick", "Stand LP+Short"}},
		{"Stand LP Punch", []string{"Stand Light Punch", "Stand Jab Punch"}},
		{"Hadoken", []string{}},
		{"HELP", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, commonNames(tt.title))
		})
	}
}

func TestRemoveDuplicateWords(t *testing.T) {
	title := wordSet("Jump Kick")
	assert.Equal(t, "Medium", removeDuplicateWords("Medium Kick", title))
	assert.Equal(t, "Medium Punch", removeDuplicateWords("Medium Punch", title))
	assert.Equal(t, "Forward", removeDuplicateWords("Forward Forward", title))
}
