package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentType_Collection(t *testing.T) {
	tests := []struct {
		typ  DocumentType
		want string
	}{
		{DocumentTypeGame, "games"},
		{DocumentTypeCharacter, "chars"},
		{DocumentTypeMove, "moves"},
		{DocumentType("stage"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.typ.Collection())
		})
	}
}

func TestDocumentType_ParentType(t *testing.T) {
	parent, ok := DocumentTypeCharacter.ParentType()
	assert.True(t, ok)
	assert.Equal(t, DocumentTypeGame, parent)

	parent, ok = DocumentTypeMove.ParentType()
	assert.True(t, ok)
	assert.Equal(t, DocumentTypeCharacter, parent)

	_, ok = DocumentTypeGame.ParentType()
	assert.False(t, ok)
}

func TestDocumentType_IsValid(t *testing.T) {
	assert.True(t, DocumentTypeGame.IsValid())
	assert.True(t, DocumentTypeMove.IsValid())
	assert.False(t, DocumentType("").IsValid())
}

func TestSentiment_IsValid(t *testing.T) {
	assert.True(t, SentimentNeutral.IsValid())
	assert.True(t, SentimentNegative.IsValid())
	assert.False(t, Sentiment("angry").IsValid())
}

func TestDocument_Parent(t *testing.T) {
	assert.Equal(t, "", (&Document{Type: DocumentTypeGame}).Parent())
	assert.Equal(t, "sfv", (&Document{Type: DocumentTypeCharacter, Game: "sfv"}).Parent())
	assert.Equal(t, "sfv.ryu", (&Document{Type: DocumentTypeMove, Character: "sfv.ryu"}).Parent())
}

func TestProposal_JSONShape(t *testing.T) {
	p := Proposal{
		Target:   "sfv.ryu",
		ImportAs: "fat-sfv",
		Document: Document{
			Type:       DocumentTypeCharacter,
			Game:       "sfv",
			Title:      "Ryu",
			Attributes: []Attribute{{Title: "Health", Value: "1000", Sentiment: SentimentNeutral}},
			Media:      json.RawMessage(`{}`),
			Names:      []string{},
		},
	}

	b, err := json.Marshal(p)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(b, &raw))
	assert.Equal(t, "sfv.ryu", raw["target"])
	assert.Equal(t, "fat-sfv", raw["importAs"])

	doc := raw["document"].(map[string]any)
	assert.Equal(t, "character", doc["type"])
	assert.Equal(t, "sfv", doc["game"])
	assert.NotContains(t, doc, "character")
	assert.Equal(t, map[string]any{}, doc["media"])
}
