package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmpDir, ConfigFile), store.Path())
}

func TestNewConfigStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "relsync")

	_, err := NewConfigStore(dir)

	require.NoError(t, err)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestNewConfigStore_InvalidFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ConfigFile), []byte("not = [valid"), 0600))

	_, err := NewConfigStore(tmpDir)

	assert.Error(t, err)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("remote.timeout_seconds", 7))
	require.NoError(t, store.Set("commerce.enabled", true))
	require.NoError(t, store.Set("blog.default", "https://shop.example"))
	require.NoError(t, store.Set("relationships.post_fields", []string{"related", "upsell"}))

	assert.Equal(t, 7, store.GetInt("remote.timeout_seconds"))
	assert.True(t, store.GetBool("commerce.enabled"))
	assert.Equal(t, "https://shop.example", store.GetString("blog.default"))
	assert.Equal(t, []string{"related", "upsell"}, store.GetStringSlice("relationships.post_fields"))

	// Wrong types and missing keys yield zero values.
	assert.Equal(t, 0, store.GetInt("blog.default"))
	assert.False(t, store.GetBool("remote.timeout_seconds"))
	assert.Equal(t, "", store.GetString("missing"))
	assert.Nil(t, store.GetStringSlice("commerce.enabled"))
}

func TestConfigStore_PersistsNestedTables(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set("relationships.term_fields", []string{"colours"}))
	require.NoError(t, store.Set("remote.rate_limit", 3))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "[relationships]")
	assert.Contains(t, string(data), "[remote]")

	reloaded, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, []string{"colours"}, reloaded.GetStringSlice("relationships.term_fields"))
	assert.Equal(t, 3, reloaded.GetInt("remote.rate_limit"))
}

func TestConfigStore_LoadHandWrittenFile(t *testing.T) {
	tmpDir := t.TempDir()
	content := `
[relationships]
post_fields = ["related_products"]
term_fields = ["colours", 3]

[commerce]
enabled = true
`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ConfigFile), []byte(content), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, []string{"related_products"}, store.GetStringSlice("relationships.post_fields"))
	assert.Equal(t, []string{"colours"}, store.GetStringSlice("relationships.term_fields"))
	assert.True(t, store.GetBool("commerce.enabled"))
}

func TestConfigStore_GetStringSliceReturnsCopy(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("relationships.post_fields", []string{"related"}))

	fields := store.GetStringSlice("relationships.post_fields")
	fields[0] = "changed"

	assert.Equal(t, []string{"related"}, store.GetStringSlice("relationships.post_fields"))
}

func TestConfigStore_Watch(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan struct{}, 1)
	require.NoError(t, store.Watch(ctx, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	}))

	other, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, other.Set("relationships.post_fields", []string{"added_elsewhere"}))

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("config change was not observed")
	}
	assert.Equal(t, []string{"added_elsewhere"}, store.GetStringSlice("relationships.post_fields"))
}

func TestNestMap(t *testing.T) {
	nested := nestMap(map[string]any{
		"a.b":   1,
		"a.c.d": "x",
		"e":     true,
		"f":     2,
		"f.g":   3,
	})

	assert.Equal(t, map[string]any{
		"a": map[string]any{
			"b": 1,
			"c": map[string]any{"d": "x"},
		},
		"e": true,
		"f": 2,
	}, nested)
}

func TestFlattenMap(t *testing.T) {
	flat := flattenMap(map[string]any{
		"a": map[string]any{"b": int64(1), "c": map[string]any{"d": "x"}},
		"e": true,
	}, "")

	assert.Equal(t, map[string]any{"a.b": int64(1), "a.c.d": "x", "e": true}, flat)
}

func TestConfigStore_SetFailureKeepsMemory(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, store.Set("remote.timeout_seconds", 5))

	// A directory at the file path makes the write fail.
	require.NoError(t, os.Remove(store.Path()))
	require.NoError(t, os.Mkdir(store.Path(), 0700))

	err = store.Set("remote.timeout_seconds", 9)

	require.Error(t, err)
	assert.Equal(t, 5, store.GetInt("remote.timeout_seconds"))
	_, ok := store.Get("commerce.enabled")
	assert.False(t, ok)
	assert.Error(t, store.Set("commerce.enabled", true))
	_, ok = store.Get("commerce.enabled")
	assert.False(t, ok)
}
