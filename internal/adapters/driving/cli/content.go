package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/relsync/internal/core/domain"
)

var contentRESTBase string

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Record local posts, terms and taxonomies",
	Long: `The resolver routes post references by post type and term references
by slug and taxonomy. Record the local objects it should know about here.`,
}

var contentPostCmd = &cobra.Command{
	Use:   "post <id> <type>",
	Short: "Record a local post and its post type",
	Args:  cobra.ExactArgs(2),
	RunE:  runContentPost,
}

var contentTermCmd = &cobra.Command{
	Use:   "term <id> <taxonomy> <slug>",
	Short: "Record a local term",
	Args:  cobra.ExactArgs(3),
	RunE:  runContentTerm,
}

var contentTaxonomyCmd = &cobra.Command{
	Use:   "taxonomy <name>",
	Short: "Register a taxonomy",
	Args:  cobra.ExactArgs(1),
	RunE:  runContentTaxonomy,
}

func init() {
	contentTaxonomyCmd.Flags().StringVar(&contentRESTBase, "rest-base", "", "REST collection segment (default: the taxonomy name)")
	contentCmd.AddCommand(contentPostCmd)
	contentCmd.AddCommand(contentTermCmd)
	contentCmd.AddCommand(contentTaxonomyCmd)
	rootCmd.AddCommand(contentCmd)
}

func runContentPost(cmd *cobra.Command, args []string) error {
	if contentService == nil {
		return errors.New("content service not configured")
	}
	id, err := parseID("id", args[0])
	if err != nil {
		return err
	}
	if err := contentService.AddPost(context.Background(), domain.Post{ID: id, Type: args[1]}); err != nil {
		return fmt.Errorf("failed to save post: %w", err)
	}
	cmd.Printf("Recorded %s %d\n", args[1], id)
	return nil
}

func runContentTerm(cmd *cobra.Command, args []string) error {
	if contentService == nil {
		return errors.New("content service not configured")
	}
	id, err := parseID("id", args[0])
	if err != nil {
		return err
	}
	term := domain.Term{ID: id, Taxonomy: args[1], Slug: args[2]}
	if err := contentService.AddTerm(context.Background(), term); err != nil {
		return fmt.Errorf("failed to save term: %w", err)
	}
	cmd.Printf("Recorded %s term %d (%s)\n", term.Taxonomy, id, term.Slug)
	return nil
}

func runContentTaxonomy(cmd *cobra.Command, args []string) error {
	if contentService == nil {
		return errors.New("content service not configured")
	}
	tax := domain.Taxonomy{Name: args[0], RESTBase: contentRESTBase}
	if err := contentService.AddTaxonomy(context.Background(), tax); err != nil {
		return fmt.Errorf("failed to save taxonomy: %w", err)
	}
	cmd.Printf("Registered taxonomy %s (wp/v2/%s)\n", tax.Name, tax.CollectionPath())
	return nil
}
