package domain

import (
	"encoding/json"
	"fmt"
)

// ChangeType classifies a plan or a single change within it.
type ChangeType string

// Available change types.
const (
	// ChangeNone means the stored document already matches the proposal.
	ChangeNone ChangeType = "none"

	// ChangeNew means the document or value does not exist yet.
	ChangeNew ChangeType = "new"

	// ChangeIgnoredNew means the document is new but its parent is missing.
	ChangeIgnoredNew ChangeType = "ignored_new"

	// ChangeRemoved means a value exists remotely but not in the proposal.
	ChangeRemoved ChangeType = "removed"

	// ChangeUpdated means a value exists on both sides and differs.
	ChangeUpdated ChangeType = "updated"
)

// String returns the string representation.
func (c ChangeType) String() string {
	return string(c)
}

// IsActionable returns true if a plan of this type should be applied.
func (c ChangeType) IsActionable() bool {
	return c == ChangeNew || c == ChangeUpdated
}

// Plan reasons.
const (
	ReasonParentMissing   = "This document cannot be applied. The parent does not exist"
	ReasonParentLink      = "This document cannot be applied. Its parent link does not match the target"
	ReasonInvalidDocument = "This document cannot be applied. The stored document could not be read"
	ReasonNewDocument     = "This is a new document"
	ReasonChangesDetected = "Changes detected"
	ReasonNoChanges       = "No changes detected"
)

// Change properties.
const (
	PropertyTitle           = "title"
	PropertyNames           = "names"
	AttributePropertyPrefix = "attributes."
)

// AttributeState is a snapshot of one attribute at a list position.
type AttributeState struct {
	Index     int       `json:"index"`
	Sentiment Sentiment `json:"sentiment"`
	Value     string    `json:"value"`
}

// JSON returns the snapshot serialised as a JSON object.
func (s AttributeState) JSON() string {
	b, err := json.Marshal(s)
	if err != nil {
		return s.String()
	}
	return string(b)
}

// String returns the compact index::value::sentiment form.
func (s AttributeState) String() string {
	return fmt.Sprintf("%d::%s::%s", s.Index, s.Value, s.Sentiment)
}

// Change is a single field-level difference between a stored and a proposed document.
//
// Title and name changes carry plain strings in Old and New.
// Attribute changes carry typed snapshots in Before and After and are
// only serialised when rendered through OldValue and NewValue.
type Change struct {
	// Property is "title", "names" or "attributes.<title>".
	Property string

	// Type is New, Removed or Updated.
	Type ChangeType

	// Old is the previous plain value for title and name changes.
	Old string

	// New is the proposed plain value for title and name changes.
	New string

	// Before is the stored attribute snapshot, nil for new attributes.
	Before *AttributeState

	// After is the proposed attribute snapshot, nil for removed attributes.
	After *AttributeState
}

// NewTitleChange returns an Updated change for a document title.
func NewTitleChange(oldTitle, newTitle string) Change {
	return Change{Property: PropertyTitle, Type: ChangeUpdated, Old: oldTitle, New: newTitle}
}

// NewNameAdded returns a New change for a name.
func NewNameAdded(name string) Change {
	return Change{Property: PropertyNames, Type: ChangeNew, New: name}
}

// NewNameRemoved returns a Removed change for a name.
func NewNameRemoved(name string) Change {
	return Change{Property: PropertyNames, Type: ChangeRemoved, Old: name}
}

// NewAttributeChange returns a change for the attribute with the given title.
func NewAttributeChange(title string, typ ChangeType, before, after *AttributeState) Change {
	return Change{
		Property: AttributePropertyPrefix + title,
		Type:     typ,
		Before:   before,
		After:    after,
	}
}

// OldValue returns the previous value as displayed to an operator.
// Removed attributes use the index::value::sentiment form and
// updated attributes use JSON.
func (c Change) OldValue() string {
	if c.Before == nil {
		return c.Old
	}
	if c.Type == ChangeRemoved {
		return c.Before.String()
	}
	return c.Before.JSON()
}

// NewValue returns the proposed value as displayed to an operator.
func (c Change) NewValue() string {
	if c.After == nil {
		return c.New
	}
	return c.After.JSON()
}

// Plan is the classified outcome of comparing one Proposal to the store.
type Plan struct {
	// Proposal is the input proposal, unchanged.
	Proposal Proposal

	// Reason is a human-readable explanation of Type.
	Reason string

	// Type is the plan classification.
	Type ChangeType

	// Changes is empty unless Type is Updated.
	Changes []Change
}

// IsActionable returns true if the plan should be sent to the document store.
func (p Plan) IsActionable() bool {
	return p.Type.IsActionable()
}

// CountByType tallies plans by classification.
func CountByType(plans []Plan) map[ChangeType]int {
	counts := make(map[ChangeType]int)
	for i := range plans {
		counts[plans[i].Type]++
	}
	return counts
}
