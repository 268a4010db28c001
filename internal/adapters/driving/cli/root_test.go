package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/relsync/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/relsync/internal/core/services"
)

func TestRootCmd_PersistentFlags(t *testing.T) {
	for _, name := range []string{"verbose", "config-dir", "data-dir"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), name)
	}
	assert.Equal(t, "v", rootCmd.PersistentFlags().Lookup("verbose").Shorthand)
}

func TestRootCmd_HasCommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, name := range []string{"resolve", "classify", "fields", "blog", "map", "content", "settings", "version"} {
		assert.True(t, names[name], name)
	}
}

func TestExecute_WiresServicesWithFlags(t *testing.T) {
	var got Options
	cleaned := false
	w := func(o Options) (*Services, func(), error) {
		got = o
		fields := services.NewFieldService(memory.NewConfigStore())
		return &Services{Classifier: services.NewFieldClassifier(fields), Fields: fields},
			func() { cleaned = true }, nil
	}
	t.Cleanup(func() {
		wire = nil
		opts = Options{}
		SetServices(&Services{})
	})

	rootCmd.SetArgs([]string{"--config-dir", "/tmp/relsync-cfg", "--data-dir", "/tmp/relsync-data", "classify", "x"})
	defer rootCmd.SetArgs(nil)

	require.NoError(t, Execute(w))
	assert.Equal(t, "/tmp/relsync-cfg", got.ConfigDir)
	assert.Equal(t, "/tmp/relsync-data", got.DataDir)
	assert.True(t, cleaned)
}

func TestExecute_WireError(t *testing.T) {
	t.Cleanup(func() { wire = nil })

	rootCmd.SetArgs([]string{"classify", "x"})
	defer rootCmd.SetArgs(nil)

	err := Execute(func(Options) (*Services, func(), error) {
		return nil, nil, errors.New("database locked")
	})

	assert.EqualError(t, err, "database locked")
}

func TestCommands_NotConfigured(t *testing.T) {
	SetServices(&Services{})

	tests := [][]string{
		{"classify", "x"},
		{"fields", "list"},
		{"blog", "list"},
		{"map", "list", testBlogURL},
		{"content", "post", "1", "post"},
		{"settings", "show"},
		{"resolve", "--blog", testBlogURL, "--field", "x", "5"},
	}
	for _, args := range tests {
		_, err := execute(t, args...)
		require.Error(t, err, args)
		assert.Contains(t, err.Error(), "not configured", args)
	}
}

func TestParseID(t *testing.T) {
	id, err := parseID("local-id", " 42 ")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, bad := range []string{"", "0", "-3", "x", "1.5"} {
		_, err := parseID("local-id", bad)
		assert.Error(t, err, bad)
	}
}
