package services

import "github.com/rcashie/fb-web-import/internal/core/domain"

// Diff computes the field-level changes needed to turn old into proposed.
//
// Changes are ordered title first, then names, then attributes. Media is
// never compared.
func Diff(old, proposed *domain.Document) []domain.Change {
	var changes []domain.Change
	if old.Title != proposed.Title {
		changes = append(changes, domain.NewTitleChange(old.Title, proposed.Title))
	}

	changes = append(changes, diffNames(old.Names, proposed.Names)...)
	changes = append(changes, diffAttributes(old.Attributes, proposed.Attributes)...)
	return changes
}

// diffNames compares names as sets. Removed names come first in old order,
// then new names in proposed order.
func diffNames(old, proposed []string) []domain.Change {
	oldSet := toSet(old)
	proposedSet := toSet(proposed)

	var changes []domain.Change
	for _, name := range unique(old) {
		if _, ok := proposedSet[name]; !ok {
			changes = append(changes, domain.NewNameRemoved(name))
		}
	}
	for _, name := range unique(proposed) {
		if _, ok := oldSet[name]; !ok {
			changes = append(changes, domain.NewNameAdded(name))
		}
	}
	return changes
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}

func unique(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}

// attributeIndex maps attribute titles to snapshots, keeping first-seen
// title order. A repeated title keeps its first position in the order and
// takes the snapshot of its last occurrence.
type attributeIndex struct {
	titles []string
	states map[string]domain.AttributeState
}

func indexAttributes(attrs []domain.Attribute) attributeIndex {
	idx := attributeIndex{states: make(map[string]domain.AttributeState, len(attrs))}
	for i, attr := range attrs {
		if _, ok := idx.states[attr.Title]; !ok {
			idx.titles = append(idx.titles, attr.Title)
		}
		idx.states[attr.Title] = domain.AttributeState{
			Index:     i,
			Sentiment: attr.Sentiment,
			Value:     attr.Value,
		}
	}
	return idx
}

// diffAttributes keys attributes by title. New and updated attributes come
// first in proposed order, then removed attributes in old order. Position
// is part of equality, so a pure reorder is an update.
func diffAttributes(old, proposed []domain.Attribute) []domain.Change {
	oldIdx := indexAttributes(old)
	proposedIdx := indexAttributes(proposed)

	var changes []domain.Change
	for _, title := range proposedIdx.titles {
		after := proposedIdx.states[title]
		before, ok := oldIdx.states[title]
		switch {
		case !ok:
			changes = append(changes, domain.NewAttributeChange(title, domain.ChangeNew, nil, &after))
		case before != after:
			changes = append(changes, domain.NewAttributeChange(title, domain.ChangeUpdated, &before, &after))
		}
	}

	for _, title := range oldIdx.titles {
		if _, ok := proposedIdx.states[title]; ok {
			continue
		}
		before := oldIdx.states[title]
		changes = append(changes, domain.NewAttributeChange(title, domain.ChangeRemoved, &before, nil))
	}
	return changes
}
