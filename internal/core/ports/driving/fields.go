package driving

import "github.com/custodia-labs/relsync/internal/core/domain"

// FieldService manages the declared relationship field names.
type FieldService interface {
	// List returns the currently declared fields.
	List() domain.RelationshipFields

	// Register declares name as a relationship field of kind.
	// Registering an existing name is a no-op; a name declared with the
	// other kind returns domain.ErrAlreadyExists.
	Register(kind domain.FieldKind, name string) error

	// Unregister removes name from the fields of kind.
	Unregister(kind domain.FieldKind, name string) error
}
