package services

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/relsync/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/relsync/internal/core/domain"
)

func TestFieldService_RegisterAndList(t *testing.T) {
	store := memory.NewConfigStore()
	svc := NewFieldService(store)

	require.NoError(t, svc.Register(domain.FieldKindPost, "related_posts"))
	require.NoError(t, svc.Register(domain.FieldKindPost, " upsells "))
	require.NoError(t, svc.Register(domain.FieldKindTerm, "colours"))

	fields := svc.List()
	assert.Equal(t, []string{"related_posts", "upsells"}, fields.Post)
	assert.Equal(t, []string{"colours"}, fields.Term)
	assert.Equal(t, []string{"colours"}, store.GetStringSlice("relationships.term_fields"))
}

func TestFieldService_RegisterIsIdempotent(t *testing.T) {
	svc := NewFieldService(memory.NewConfigStore())

	require.NoError(t, svc.Register(domain.FieldKindTerm, "colours"))
	require.NoError(t, svc.Register(domain.FieldKindTerm, "colours"))

	assert.Equal(t, []string{"colours"}, svc.TermRelationshipFields())
}

func TestFieldService_RegisterInvalid(t *testing.T) {
	svc := NewFieldService(memory.NewConfigStore())

	assert.ErrorIs(t, svc.Register(domain.FieldKindPost, "  "), domain.ErrInvalidInput)
	assert.ErrorIs(t, svc.Register(domain.FieldKindNone, "x"), domain.ErrUnsupportedType)
}

func TestFieldService_RegisterRejectsBothKinds(t *testing.T) {
	svc := NewFieldService(memory.NewConfigStore())
	require.NoError(t, svc.Register(domain.FieldKindPost, "related"))

	err := svc.Register(domain.FieldKindTerm, "related")

	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	assert.Empty(t, svc.TermRelationshipFields())
}

func TestFieldService_Unregister(t *testing.T) {
	svc := NewFieldService(memory.NewConfigStore())
	require.NoError(t, svc.Register(domain.FieldKindPost, "a"))
	require.NoError(t, svc.Register(domain.FieldKindPost, "b"))

	require.NoError(t, svc.Unregister(domain.FieldKindPost, "a"))

	assert.Equal(t, []string{"b"}, svc.PostRelationshipFields())
	assert.ErrorIs(t, svc.Unregister(domain.FieldKindPost, "a"), domain.ErrNotFound)
	assert.ErrorIs(t, svc.Unregister(domain.FieldKindNone, "b"), domain.ErrUnsupportedType)
}

func TestFieldService_AsRegistry(t *testing.T) {
	store := memory.NewConfigStore()
	svc := NewFieldService(store)
	classifier := NewFieldClassifier(svc)

	assert.Equal(t, domain.FieldKindNone, classifier.Classify("_colours"))

	// Written straight to the store, as a reload after another process would.
	require.NoError(t, store.Set("relationships.term_fields", []any{"colours"}))

	assert.Equal(t, domain.FieldKindTerm, classifier.Classify("_colours"))
}

func TestFieldService_ConcurrentRegister(t *testing.T) {
	svc := NewFieldService(memory.NewConfigStore())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, svc.Register(domain.FieldKindPost, fmt.Sprintf("field_%d", i)))
		}(i)
	}
	wg.Wait()

	assert.Len(t, svc.PostRelationshipFields(), 50)
}
