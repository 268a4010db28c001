package services

import (
	"github.com/custodia-labs/relsync/internal/core/domain"
	"github.com/custodia-labs/relsync/internal/core/ports/driven"
	"github.com/custodia-labs/relsync/internal/core/ports/driving"
)

// Ensure FieldClassifier implements the interface.
var _ driving.FieldClassifier = (*FieldClassifier)(nil)

// FieldClassifier classifies field names against a FieldRegistry.
type FieldClassifier struct {
	registry driven.FieldRegistry
}

// NewFieldClassifier creates a classifier backed by registry.
func NewFieldClassifier(registry driven.FieldRegistry) *FieldClassifier {
	return &FieldClassifier{registry: registry}
}

// Classify reads the declared fields and classifies name.
// The registry is consulted on every call.
func (c *FieldClassifier) Classify(name string) domain.FieldKind {
	if c.registry == nil {
		return domain.FieldKindNone
	}
	return Classify(name, c.registry.PostRelationshipFields(), c.registry.TermRelationshipFields())
}

// Classify decides what kind of relationship field name is.
// Post fields win over term fields; for each set an exact match is tried
// before the hidden-prefix variant.
func Classify(name string, postFields, termFields []string) domain.FieldKind {
	if declared(name, postFields) {
		return domain.FieldKindPost
	}
	if declared(name, termFields) {
		return domain.FieldKindTerm
	}
	return domain.FieldKindNone
}

func declared(name string, fields []string) bool {
	if contains(fields, name) {
		return true
	}
	if stripped, ok := domain.StripHiddenPrefix(name); ok {
		return contains(fields, stripped)
	}
	return false
}

func contains(fields []string, name string) bool {
	for _, f := range fields {
		if f == name {
			return true
		}
	}
	return false
}
