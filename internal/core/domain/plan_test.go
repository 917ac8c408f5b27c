package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChangeType_IsActionable(t *testing.T) {
	assert.True(t, ChangeNew.IsActionable())
	assert.True(t, ChangeUpdated.IsActionable())
	assert.False(t, ChangeNone.IsActionable())
	assert.False(t, ChangeIgnoredNew.IsActionable())
	assert.False(t, ChangeRemoved.IsActionable())
}

func TestAttributeState_Serialisation(t *testing.T) {
	s := AttributeState{Index: 2, Value: "-3", Sentiment: SentimentNegative}
	assert.Equal(t, `{"index":2,"sentiment":"negative","value":"-3"}`, s.JSON())
	assert.Equal(t, "2::-3::negative", s.String())
}

func TestChange_Values(t *testing.T) {
	before := &AttributeState{Index: 0, Value: "3", Sentiment: SentimentNeutral}
	after := &AttributeState{Index: 1, Value: "3", Sentiment: SentimentNeutral}

	tests := []struct {
		name    string
		change  Change
		wantOld string
		wantNew string
	}{
		{
			name:    "title",
			change:  NewTitleChange("Ryu", "RYU"),
			wantOld: "Ryu",
			wantNew: "RYU",
		},
		{
			name:    "name added",
			change:  NewNameAdded("Jab"),
			wantOld: "",
			wantNew: "Jab",
		},
		{
			name:    "name removed",
			change:  NewNameRemoved("Strong"),
			wantOld: "Strong",
			wantNew: "",
		},
		{
			name:    "attribute new",
			change:  NewAttributeChange("Startup", ChangeNew, nil, after),
			wantOld: "",
			wantNew: `{"index":1,"sentiment":"neutral","value":"3"}`,
		},
		{
			name:    "attribute updated",
			change:  NewAttributeChange("Startup", ChangeUpdated, before, after),
			wantOld: `{"index":0,"sentiment":"neutral","value":"3"}`,
			wantNew: `{"index":1,"sentiment":"neutral","value":"3"}`,
		},
		{
			name:    "attribute removed",
			change:  NewAttributeChange("Startup", ChangeRemoved, before, nil),
			wantOld: "0::3::neutral",
			wantNew: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantOld, tt.change.OldValue())
			assert.Equal(t, tt.wantNew, tt.change.NewValue())
		})
	}
}

func TestNewAttributeChange_Property(t *testing.T) {
	c := NewAttributeChange("On Block", ChangeNew, nil, &AttributeState{})
	assert.Equal(t, "attributes.On Block", c.Property)
}

func TestCountByType(t *testing.T) {
	plans := []Plan{
		{Type: ChangeNew},
		{Type: ChangeNew},
		{Type: ChangeNone},
		{Type: ChangeIgnoredNew},
	}
	counts := CountByType(plans)
	assert.Equal(t, 2, counts[ChangeNew])
	assert.Equal(t, 1, counts[ChangeNone])
	assert.Equal(t, 1, counts[ChangeIgnoredNew])
	assert.Equal(t, 0, counts[ChangeUpdated])
	assert.True(t, plans[0].IsActionable())
	assert.False(t, plans[3].IsActionable())
}

func TestProposalRef_String(t *testing.T) {
	assert.Equal(t, "abc/3", ProposalRef{ID: "abc", Version: "3"}.String())
}
