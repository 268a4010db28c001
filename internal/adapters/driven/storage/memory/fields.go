package memory

import (
	"sync"

	"github.com/custodia-labs/relsync/internal/core/domain"
	"github.com/custodia-labs/relsync/internal/core/ports/driven"
)

// Ensure FieldRegistry implements the interface.
var _ driven.FieldRegistry = (*FieldRegistry)(nil)

// FieldRegistry is an in-memory driven.FieldRegistry.
// Fields can be registered while resolutions are running.
type FieldRegistry struct {
	mu    sync.RWMutex
	post  []string
	term  []string
	reads int
}

// NewFieldRegistry creates a registry with the given declarations.
func NewFieldRegistry(post, term []string) *FieldRegistry {
	return &FieldRegistry{
		post: append([]string(nil), post...),
		term: append([]string(nil), term...),
	}
}

// Register adds name to the fields of kind.
func (r *FieldRegistry) Register(kind domain.FieldKind, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch kind {
	case domain.FieldKindPost:
		r.post = append(r.post, name)
	case domain.FieldKindTerm:
		r.term = append(r.term, name)
	}
}

// PostRelationshipFields returns the declared post relationship fields.
func (r *FieldRegistry) PostRelationshipFields() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reads++
	return append([]string(nil), r.post...)
}

// TermRelationshipFields returns the declared term relationship fields.
func (r *FieldRegistry) TermRelationshipFields() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reads++
	return append([]string(nil), r.term...)
}

// Reads returns how many times the declarations were read.
func (r *FieldRegistry) Reads() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.reads
}
