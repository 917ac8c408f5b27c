package domain

import "encoding/json"

// DocumentType identifies a level of the Game > Character > Move hierarchy.
type DocumentType string

// Available document types.
const (
	// DocumentTypeGame is the root of the hierarchy.
	DocumentTypeGame DocumentType = "game"

	// DocumentTypeCharacter belongs to a game.
	DocumentTypeCharacter DocumentType = "character"

	// DocumentTypeMove belongs to a character.
	DocumentTypeMove DocumentType = "move"
)

// IsValid returns true if the document type is recognised.
func (t DocumentType) IsValid() bool {
	switch t {
	case DocumentTypeGame, DocumentTypeCharacter, DocumentTypeMove:
		return true
	default:
		return false
	}
}

// Collection returns the document store collection that holds this type.
// Unknown types return an empty string.
func (t DocumentType) Collection() string {
	switch t {
	case DocumentTypeGame:
		return "games"
	case DocumentTypeCharacter:
		return "chars"
	case DocumentTypeMove:
		return "moves"
	default:
		return ""
	}
}

// ParentType returns the type one level up the hierarchy.
// The second return value is false for games, which have no parent.
func (t DocumentType) ParentType() (DocumentType, bool) {
	switch t {
	case DocumentTypeCharacter:
		return DocumentTypeGame, true
	case DocumentTypeMove:
		return DocumentTypeCharacter, true
	default:
		return "", false
	}
}

// String returns the string representation.
func (t DocumentType) String() string {
	return string(t)
}

// Sentiment is the display polarity attached to an attribute.
type Sentiment string

// Available sentiments.
const (
	SentimentNeutral  Sentiment = "neutral"
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
)

// IsValid returns true if the sentiment is recognised.
func (s Sentiment) IsValid() bool {
	switch s {
	case SentimentNeutral, SentimentPositive, SentimentNegative:
		return true
	default:
		return false
	}
}

// Attribute is a titled stat on a document.
// Titles are unique within one document and list order is display order.
type Attribute struct {
	// Title identifies the attribute within its document.
	Title string `json:"title"`

	// Value is the canonical display value.
	Value string `json:"value"`

	// Sentiment is the display polarity.
	Sentiment Sentiment `json:"sentiment"`
}

// Document is a game, character or move as stored remotely.
type Document struct {
	// Type is the hierarchy level of the document.
	Type DocumentType `json:"type"`

	// Game links a character to its parent game id.
	Game string `json:"game,omitempty"`

	// Character links a move to its parent character id.
	Character string `json:"character,omitempty"`

	// Title is the human-readable title.
	Title string `json:"title"`

	// Attributes is the ordered stat list.
	Attributes []Attribute `json:"attributes"`

	// Media is carried through untouched and never compared.
	Media json.RawMessage `json:"media,omitempty"`

	// Names are alternate names, compared as a set.
	Names []string `json:"names"`
}

// Parent returns the parent id recorded on the document.
// Games return an empty string.
func (d *Document) Parent() string {
	switch d.Type {
	case DocumentTypeCharacter:
		return d.Game
	case DocumentTypeMove:
		return d.Character
	default:
		return ""
	}
}

// Proposal is a candidate document state submitted for reconciliation.
type Proposal struct {
	// Target is the dot-separated hierarchical id, e.g. "sfv.ryu.hadoken".
	Target string `json:"target"`

	// ImportAs tags the import source that produced the proposal.
	ImportAs string `json:"importAs"`

	// Document is the proposed document state.
	Document Document `json:"document"`
}
