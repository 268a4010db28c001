package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/relsync/internal/adapters/driven/commerce"
	"github.com/custodia-labs/relsync/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/relsync/internal/core/domain"
	"github.com/custodia-labs/relsync/internal/core/services"
)

const testBlogURL = "https://shop.example"

// stubSearcher answers every slug lookup with ids.
type stubSearcher struct {
	ids   []int64
	calls int
}

func (s *stubSearcher) SearchTermsBySlug(_ context.Context, _ domain.Blog, _ string, _ []string) ([]int64, error) {
	s.calls++
	return s.ids, nil
}

type testEnv struct {
	config   *memory.ConfigStore
	mappings *memory.CrosspostMap
	content  *memory.ContentStore
	remote   *stubSearcher
	blog     *domain.Blog
}

// setupTestServices wires the commands to memory-backed services with one
// registered blog, and restores the unconfigured state afterwards.
func setupTestServices(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	env := &testEnv{
		config:   memory.NewConfigStore(),
		mappings: memory.NewCrosspostMap(),
		content:  memory.NewContentStore(),
		remote:   &stubSearcher{},
	}

	fields := services.NewFieldService(env.config)
	catalog := commerce.NewCatalog(true, env.content, env.mappings, env.mappings)
	blogs := services.NewBlogService(memory.NewBlogStore(), env.mappings)

	SetServices(&Services{
		Resolver:   services.NewRelationshipService(fields, env.mappings, env.content, env.remote, catalog),
		Classifier: services.NewFieldClassifier(fields),
		Fields:     fields,
		Blogs:      blogs,
		Mappings:   services.NewMappingService(env.mappings, catalog),
		Content:    services.NewContentService(env.content),
		Settings:   services.NewSettingsService(env.config),
	})
	t.Cleanup(func() { SetServices(&Services{}) })

	blog, err := blogs.Add(ctx, domain.Blog{URL: testBlogURL})
	require.NoError(t, err)
	env.blog = blog

	return env
}

// execute runs the root command with args and returns combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	err := rootCmd.Execute()
	return buf.String(), err
}
