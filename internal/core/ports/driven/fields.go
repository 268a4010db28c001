package driven

// FieldRegistry supplies the declared relationship field names.
// Callers read it on every classification; fields may be registered
// at any time by other parts of the system.
type FieldRegistry interface {
	// PostRelationshipFields returns field names that hold local post IDs.
	PostRelationshipFields() []string

	// TermRelationshipFields returns field names that hold local term IDs.
	TermRelationshipFields() []string
}
