package services

import (
	"fmt"
	"strings"
	"sync"

	"github.com/custodia-labs/relsync/internal/core/domain"
	"github.com/custodia-labs/relsync/internal/core/ports/driven"
	"github.com/custodia-labs/relsync/internal/core/ports/driving"
)

// Ensure FieldService implements the interfaces.
var (
	_ driving.FieldService = (*FieldService)(nil)
	_ driven.FieldRegistry = (*FieldService)(nil)
)

// Config keys for relationship field declarations.
const (
	keyPostFields = "relationships.post_fields"
	keyTermFields = "relationships.term_fields"
)

// FieldService keeps relationship field declarations in the config store.
// It also serves as the FieldRegistry; every read goes to the store,
// so fields registered by another process are seen once the store reloads.
type FieldService struct {
	// mu serialises read-modify-write of the declared field lists.
	mu          sync.Mutex
	configStore driven.ConfigStore
}

// NewFieldService creates a new field service.
func NewFieldService(configStore driven.ConfigStore) *FieldService {
	return &FieldService{configStore: configStore}
}

// PostRelationshipFields returns the declared post relationship fields.
func (s *FieldService) PostRelationshipFields() []string {
	return s.configStore.GetStringSlice(keyPostFields)
}

// TermRelationshipFields returns the declared term relationship fields.
func (s *FieldService) TermRelationshipFields() []string {
	return s.configStore.GetStringSlice(keyTermFields)
}

// List returns the currently declared fields.
func (s *FieldService) List() domain.RelationshipFields {
	return domain.RelationshipFields{
		Post: s.PostRelationshipFields(),
		Term: s.TermRelationshipFields(),
	}
}

// Register declares name as a relationship field of kind.
func (s *FieldService) Register(kind domain.FieldKind, name string) error {
	key, err := fieldsKey(kind)
	if err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: empty field name", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	fields := s.configStore.GetStringSlice(key)
	if contains(fields, name) {
		return nil
	}
	if other := s.otherKind(kind); contains(other, name) {
		return fmt.Errorf("%q is declared with the other kind: %w", name, domain.ErrAlreadyExists)
	}
	if err := s.configStore.Set(key, append(fields, name)); err != nil {
		return fmt.Errorf("save %s fields: %w", kind, err)
	}
	return nil
}

// Unregister removes name from the fields of kind.
func (s *FieldService) Unregister(kind domain.FieldKind, name string) error {
	key, err := fieldsKey(kind)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	fields := s.configStore.GetStringSlice(key)
	kept := make([]string, 0, len(fields))
	for _, f := range fields {
		if f != name {
			kept = append(kept, f)
		}
	}
	if len(kept) == len(fields) {
		return fmt.Errorf("%s field %q: %w", kind, name, domain.ErrNotFound)
	}
	if err := s.configStore.Set(key, kept); err != nil {
		return fmt.Errorf("save %s fields: %w", kind, err)
	}
	return nil
}

// otherKind returns the fields declared with the kind opposite to kind.
// Post declarations win during classification, so a name may hold one kind only.
func (s *FieldService) otherKind(kind domain.FieldKind) []string {
	if kind == domain.FieldKindPost {
		return s.TermRelationshipFields()
	}
	return s.PostRelationshipFields()
}

func fieldsKey(kind domain.FieldKind) (string, error) {
	switch kind {
	case domain.FieldKindPost:
		return keyPostFields, nil
	case domain.FieldKindTerm:
		return keyTermFields, nil
	default:
		return "", fmt.Errorf("%w: field kind %s", domain.ErrUnsupportedType, kind)
	}
}
