package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/relsync/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/relsync/internal/core/domain"
)

func TestClassify(t *testing.T) {
	post := []string{"related_posts", "upsell_ids"}
	term := []string{"colours", "related_posts"}

	tests := []struct {
		name     string
		field    string
		expected domain.FieldKind
	}{
		{"exact post", "related_posts", domain.FieldKindPost},
		{"prefixed post", "_upsell_ids", domain.FieldKindPost},
		{"exact term", "colours", domain.FieldKindTerm},
		{"prefixed term", "_colours", domain.FieldKindTerm},
		{"post wins over term", "_related_posts", domain.FieldKindPost},
		{"unknown", "price", domain.FieldKindNone},
		{"prefix only", "_", domain.FieldKindNone},
		{"double prefix", "__colours", domain.FieldKindNone},
		{"empty", "", domain.FieldKindNone},
		{"case sensitive", "Colours", domain.FieldKindNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.field, post, term))
		})
	}
}

func TestClassify_PrefixedDeclaration(t *testing.T) {
	// A declared name that itself carries the prefix matches exactly only.
	assert.Equal(t, domain.FieldKindPost, Classify("_hidden", []string{"_hidden"}, nil))
	assert.Equal(t, domain.FieldKindNone, Classify("hidden", []string{"_hidden"}, nil))
}

func TestClassify_PrefixAware(t *testing.T) {
	post := []string{"a"}
	term := []string{"b"}

	for _, name := range []string{"a", "b", "c"} {
		assert.Equal(t, Classify(name, post, term), Classify(domain.HiddenFieldPrefix+name, post, term), name)
	}
}

func TestFieldClassifier_ReadsRegistryEveryCall(t *testing.T) {
	registry := memory.NewFieldRegistry(nil, nil)
	classifier := NewFieldClassifier(registry)

	assert.Equal(t, domain.FieldKindNone, classifier.Classify("colours"))

	registry.Register(domain.FieldKindTerm, "colours")

	assert.Equal(t, domain.FieldKindTerm, classifier.Classify("colours"))
	assert.Equal(t, 4, registry.Reads())
}

func TestFieldClassifier_NilRegistry(t *testing.T) {
	assert.Equal(t, domain.FieldKindNone, NewFieldClassifier(nil).Classify("anything"))
}
