// Package cli implements the relsync command line.
//
// Commands talk to the core through the driving ports only. The binary
// wires concrete services through a WireFunc that runs once the
// persistent flags are parsed, so --config-dir and --data-dir take effect.
package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/relsync/internal/core/domain"
	"github.com/custodia-labs/relsync/internal/core/ports/driving"
	"github.com/custodia-labs/relsync/internal/logger"
)

// version is set at build time with -ldflags "-X .../cli.version=...".
var version = "dev"

// Options are the values of the persistent flags.
type Options struct {
	Verbose   bool
	ConfigDir string
	DataDir   string
}

// WatchFunc reloads configuration on change until ctx is cancelled.
type WatchFunc func(ctx context.Context, onChange func()) error

// Services are the driving ports the commands use.
type Services struct {
	Resolver   driving.RelationshipResolver
	Classifier driving.FieldClassifier
	Fields     driving.FieldService
	Blogs      driving.BlogService
	Mappings   driving.MappingService
	Content    driving.ContentService
	Settings   driving.SettingsService
	Watch      WatchFunc
}

// WireFunc builds the services for opts. The returned cleanup runs after
// the command finishes.
type WireFunc func(opts Options) (*Services, func(), error)

var (
	opts    Options
	wire    WireFunc
	cleanup func()

	resolverService   driving.RelationshipResolver
	classifierService driving.FieldClassifier
	fieldService      driving.FieldService
	blogService       driving.BlogService
	mappingService    driving.MappingService
	contentService    driving.ContentService
	settingsService   driving.SettingsService
	watchConfig       WatchFunc
)

var rootCmd = &cobra.Command{
	Use:   "relsync",
	Short: "Resolve relationship fields for cross-posted content",
	Long: `relsync rewrites relationship custom fields (local post IDs and
taxonomy term IDs) into the IDs of the matching objects on a remote blog
that content has been cross-posted to.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if cleanup != nil {
			cleanup()
			cleanup = nil
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "print diagnostic output to stderr")
	rootCmd.PersistentFlags().StringVar(&opts.ConfigDir, "config-dir", "", "configuration directory (default ~/.relsync)")
	rootCmd.PersistentFlags().StringVar(&opts.DataDir, "data-dir", "", "data directory (default ~/.relsync/data)")
}

// Execute runs the root command with services built by w.
func Execute(w WireFunc) error {
	wire = w
	return rootCmd.Execute()
}

// SetServices installs services directly, bypassing the WireFunc.
func SetServices(s *Services) {
	resolverService = s.Resolver
	classifierService = s.Classifier
	fieldService = s.Fields
	blogService = s.Blogs
	mappingService = s.Mappings
	contentService = s.Content
	settingsService = s.Settings
	watchConfig = s.Watch
}

func setup(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(opts.Verbose)
	if wire == nil {
		return nil
	}

	s, done, err := wire(opts)
	if err != nil {
		return err
	}
	SetServices(s)
	cleanup = done
	return nil
}

// findBlog resolves a blog reference (store identifier or URL).
func findBlog(ctx context.Context, ref string) (*domain.Blog, error) {
	if blogService == nil {
		return nil, errors.New("blog service not configured")
	}
	blog, err := blogService.Find(ctx, ref)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("blog %q is not registered (see 'relsync blog add')", ref)
		}
		return nil, err
	}
	return blog, nil
}

// parseID parses a positive object ID argument.
func parseID(name, s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer, got %q", domain.ErrInvalidInput, name, s)
	}
	return id, nil
}
