package services

import "github.com/rcashie/fb-web-import/internal/core/domain"

// ParentRef identifies the parent of a proposal target.
type ParentRef struct {
	ID   string
	Type domain.DocumentType
}

// ResolveParent derives the parent id and type of a target.
// The second return value is false for types without a parent.
func ResolveParent(target string, typ domain.DocumentType) (ParentRef, bool) {
	parentType, ok := typ.ParentType()
	if !ok {
		return ParentRef{}, false
	}
	return ParentRef{ID: domain.ParentTarget(target), Type: parentType}, true
}
