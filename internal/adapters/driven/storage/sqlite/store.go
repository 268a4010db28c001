package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/relsync/internal/adapters/driven/storage"
	"github.com/custodia-labs/relsync/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/relsync/internal/core/domain"
	"github.com/custodia-labs/relsync/internal/core/ports/driven"
)

// DatabaseFile is the database file name inside the data directory.
const DatabaseFile = "relsync.db"

// Store is a SQLite-backed storage that provides access to
// the relsync store interfaces through wrapper types.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store in dataDir.
// If dataDir is empty, defaults to ~/.relsync/data.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".relsync", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, DatabaseFile)

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, path: dbPath}
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// BlogStore returns a BlogStore backed by this store.
func (s *Store) BlogStore() driven.BlogStore {
	return &blogStore{store: s}
}

// CrosspostMap returns the post mapping store.
func (s *Store) CrosspostMap() driven.CrosspostMap {
	return &crosspostMap{store: s}
}

// ProductMappingStore returns the independent product mapping store.
func (s *Store) ProductMappingStore() driven.ProductMappingStore {
	return &productMappingStore{store: s}
}

// ContentStore returns a ContentStore backed by this store.
func (s *Store) ContentStore() driven.ContentStore {
	return &contentStore{store: s}
}

// migrate applies every embedded *.up.sql newer than the recorded version.
func (s *Store) migrate(fsys fs.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var current int
	if err := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&current); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// "001_initial.up.sql" -> 1
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= current {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Blog Store ====================

type blogStore struct {
	store *Store
}

var _ driven.BlogStore = (*blogStore)(nil)

// Save stores or updates a blog.
func (s *blogStore) Save(ctx context.Context, blog domain.Blog) error {
	now := time.Now().UTC()
	if blog.CreatedAt.IsZero() {
		blog.CreatedAt = now
	}
	blog.UpdatedAt = now

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO blogs (id, url, login, password, token, product_sync, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			url = excluded.url,
			login = excluded.login,
			password = excluded.password,
			token = excluded.token,
			product_sync = excluded.product_sync,
			updated_at = excluded.updated_at
	`, blog.ID, blog.URL, blog.Login, blog.Password, blog.Token, string(blog.ProductSync),
		blog.CreatedAt, blog.UpdatedAt)
	if err != nil {
		return fmt.Errorf("saving blog: %w", err)
	}
	return nil
}

const blogColumns = `id, url, login, password, token, product_sync, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBlog(row rowScanner) (domain.Blog, error) {
	var blog domain.Blog
	var productSync string
	var createdAt, updatedAt sql.NullTime
	if err := row.Scan(&blog.ID, &blog.URL, &blog.Login, &blog.Password, &blog.Token,
		&productSync, &createdAt, &updatedAt); err != nil {
		return blog, err
	}
	blog.ProductSync = domain.ProductSync(productSync)
	if createdAt.Valid {
		blog.CreatedAt = createdAt.Time
	}
	if updatedAt.Valid {
		blog.UpdatedAt = updatedAt.Time
	}
	return blog, nil
}

// Get retrieves a blog by store identifier.
func (s *blogStore) Get(ctx context.Context, id string) (*domain.Blog, error) {
	row := s.store.db.QueryRowContext(ctx, `SELECT `+blogColumns+` FROM blogs WHERE id = ?`, id)
	blog, err := scanBlog(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning blog: %w", err)
	}
	return &blog, nil
}

// Delete removes a blog together with its mappings.
func (s *blogStore) Delete(ctx context.Context, id string) error {
	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range []string{
		"DELETE FROM crosspost_map WHERE blog_id = ?",
		"DELETE FROM product_map WHERE blog_id = ?",
		"DELETE FROM blogs WHERE id = ?",
	} {
		if _, err := tx.ExecContext(ctx, stmt, id); err != nil {
			return fmt.Errorf("deleting blog: %w", err)
		}
	}
	return tx.Commit()
}

// List returns all registered blogs ordered by URL.
func (s *blogStore) List(ctx context.Context) ([]domain.Blog, error) {
	rows, err := s.store.db.QueryContext(ctx, `SELECT `+blogColumns+` FROM blogs ORDER BY url`)
	if err != nil {
		return nil, fmt.Errorf("querying blogs: %w", err)
	}
	defer rows.Close()

	blogs := make([]domain.Blog, 0)
	for rows.Next() {
		blog, err := scanBlog(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning blog: %w", err)
		}
		blogs = append(blogs, blog)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating blogs: %w", err)
	}
	return blogs, nil
}

// ==================== Crosspost Map ====================

type crosspostMap struct {
	store *Store
}

var _ driven.CrosspostMap = (*crosspostMap)(nil)

// BlogID derives the store identifier for blog.
func (m *crosspostMap) BlogID(blog domain.Blog) string {
	return storage.BlogID(blog)
}

// RemoteID returns the remote post ID for localID on the blog.
func (m *crosspostMap) RemoteID(ctx context.Context, localID int64, blogID string) (int64, error) {
	return m.store.remoteID(ctx,
		"SELECT remote_id FROM crosspost_map WHERE local_id = ? AND blog_id = ?", localID, blogID)
}

// Save stores or updates a mapping.
func (m *crosspostMap) Save(ctx context.Context, mapping domain.CrosspostMapping) error {
	_, err := m.store.db.ExecContext(ctx, `
		INSERT INTO crosspost_map (local_id, blog_id, remote_id)
		VALUES (?, ?, ?)
		ON CONFLICT(local_id, blog_id) DO UPDATE SET remote_id = excluded.remote_id
	`, mapping.LocalID, mapping.BlogID, mapping.RemoteID)
	if err != nil {
		return fmt.Errorf("saving mapping: %w", err)
	}
	return nil
}

// Delete removes a mapping.
func (m *crosspostMap) Delete(ctx context.Context, localID int64, blogID string) error {
	_, err := m.store.db.ExecContext(ctx,
		"DELETE FROM crosspost_map WHERE local_id = ? AND blog_id = ?", localID, blogID)
	if err != nil {
		return fmt.Errorf("deleting mapping: %w", err)
	}
	return nil
}

// List returns all mappings for a blog ordered by local ID.
func (m *crosspostMap) List(ctx context.Context, blogID string) ([]domain.CrosspostMapping, error) {
	rows, err := m.store.db.QueryContext(ctx, `
		SELECT local_id, blog_id, remote_id FROM crosspost_map
		WHERE blog_id = ? ORDER BY local_id
	`, blogID)
	if err != nil {
		return nil, fmt.Errorf("querying mappings: %w", err)
	}
	defer rows.Close()

	mappings := make([]domain.CrosspostMapping, 0)
	for rows.Next() {
		var mapping domain.CrosspostMapping
		if err := rows.Scan(&mapping.LocalID, &mapping.BlogID, &mapping.RemoteID); err != nil {
			return nil, fmt.Errorf("scanning mapping: %w", err)
		}
		mappings = append(mappings, mapping)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating mappings: %w", err)
	}
	return mappings, nil
}

// ==================== Product Mapping Store ====================

type productMappingStore struct {
	store *Store
}

var _ driven.ProductMappingStore = (*productMappingStore)(nil)

// ProductRemoteID returns the remote product ID for productID on the blog.
func (p *productMappingStore) ProductRemoteID(ctx context.Context, productID int64, blogID string) (int64, error) {
	return p.store.remoteID(ctx,
		"SELECT remote_id FROM product_map WHERE product_id = ? AND blog_id = ?", productID, blogID)
}

// SaveProductMapping stores or updates a product mapping.
func (p *productMappingStore) SaveProductMapping(ctx context.Context, mapping domain.CrosspostMapping) error {
	_, err := p.store.db.ExecContext(ctx, `
		INSERT INTO product_map (product_id, blog_id, remote_id)
		VALUES (?, ?, ?)
		ON CONFLICT(product_id, blog_id) DO UPDATE SET remote_id = excluded.remote_id
	`, mapping.LocalID, mapping.BlogID, mapping.RemoteID)
	if err != nil {
		return fmt.Errorf("saving product mapping: %w", err)
	}
	return nil
}

func (s *Store) remoteID(ctx context.Context, query string, localID int64, blogID string) (int64, error) {
	var remoteID int64
	err := s.db.QueryRowContext(ctx, query, localID, blogID).Scan(&remoteID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, domain.ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("scanning mapping: %w", err)
	}
	return remoteID, nil
}

// ==================== Content Store ====================

type contentStore struct {
	store *Store
}

var _ driven.ContentStore = (*contentStore)(nil)

// Post retrieves a post by ID.
func (c *contentStore) Post(ctx context.Context, id int64) (*domain.Post, error) {
	post := domain.Post{ID: id}
	err := c.store.db.QueryRowContext(ctx, "SELECT post_type FROM posts WHERE id = ?", id).Scan(&post.Type)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning post: %w", err)
	}
	return &post, nil
}

// Term retrieves a term by ID.
func (c *contentStore) Term(ctx context.Context, id int64) (*domain.Term, error) {
	term := domain.Term{ID: id}
	err := c.store.db.QueryRowContext(ctx,
		"SELECT taxonomy, slug FROM terms WHERE id = ?", id).Scan(&term.Taxonomy, &term.Slug)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning term: %w", err)
	}
	return &term, nil
}

// Taxonomy retrieves a taxonomy by name.
func (c *contentStore) Taxonomy(ctx context.Context, name string) (*domain.Taxonomy, error) {
	tax := domain.Taxonomy{Name: name}
	err := c.store.db.QueryRowContext(ctx,
		"SELECT rest_base FROM taxonomies WHERE name = ?", name).Scan(&tax.RESTBase)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning taxonomy: %w", err)
	}
	return &tax, nil
}

// SavePost stores or updates a post.
func (c *contentStore) SavePost(ctx context.Context, post domain.Post) error {
	_, err := c.store.db.ExecContext(ctx, `
		INSERT INTO posts (id, post_type) VALUES (?, ?)
		ON CONFLICT(id) DO UPDATE SET post_type = excluded.post_type
	`, post.ID, post.Type)
	if err != nil {
		return fmt.Errorf("saving post: %w", err)
	}
	return nil
}

// SaveTerm stores or updates a term.
func (c *contentStore) SaveTerm(ctx context.Context, term domain.Term) error {
	_, err := c.store.db.ExecContext(ctx, `
		INSERT INTO terms (id, taxonomy, slug) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET taxonomy = excluded.taxonomy, slug = excluded.slug
	`, term.ID, term.Taxonomy, term.Slug)
	if err != nil {
		return fmt.Errorf("saving term: %w", err)
	}
	return nil
}

// SaveTaxonomy stores or updates a taxonomy.
func (c *contentStore) SaveTaxonomy(ctx context.Context, taxonomy domain.Taxonomy) error {
	_, err := c.store.db.ExecContext(ctx, `
		INSERT INTO taxonomies (name, rest_base) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET rest_base = excluded.rest_base
	`, taxonomy.Name, taxonomy.RESTBase)
	if err != nil {
		return fmt.Errorf("saving taxonomy: %w", err)
	}
	return nil
}
