package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/relsync/internal/core/domain"
	"github.com/custodia-labs/relsync/internal/logger"
	"github.com/custodia-labs/relsync/internal/metavalue"
)

var (
	resolveBlog   string
	resolveField  string
	resolveObject int64
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <value> [value...]",
	Short: "Resolve a relationship field value for a blog",
	Long: `Resolves a relationship field value into the IDs of the matching
objects on the blog and prints it in storage form.

A single argument is read like a stored value: "5", "5,6" or a serialized
array. Several arguments are treated as a list. A field that is not a
declared relationship field is printed unchanged.`,
	Example: `  relsync resolve --blog https://shop.example --field related_posts 5
  relsync resolve --blog https://shop.example --field colours "3,4"
  relsync resolve --blog https://shop.example --field related_posts 5 6 7`,
	Args: cobra.MinimumNArgs(1),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().StringVar(&resolveBlog, "blog", "", "target blog URL or identifier")
	resolveCmd.Flags().StringVar(&resolveField, "field", "", "custom field name")
	resolveCmd.Flags().Int64Var(&resolveObject, "object", 0, "ID of the object the field belongs to")
	_ = resolveCmd.MarkFlagRequired("blog")
	_ = resolveCmd.MarkFlagRequired("field")
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	if resolverService == nil || classifierService == nil {
		return errors.New("resolver service not configured")
	}

	ctx := context.Background()
	blog, err := findBlog(ctx, resolveBlog)
	if err != nil {
		return err
	}

	logger.Section("resolve " + resolveField)

	var raw any = args[0]
	if len(args) > 1 {
		raw = args
	}

	var res domain.Resolution
	switch kind := classifierService.Classify(resolveField); kind {
	case domain.FieldKindPost:
		res = resolverService.ResolvePosts(ctx, raw, *blog)
	case domain.FieldKindTerm:
		res = resolverService.ResolveTerms(ctx, raw, *blog)
	default:
		cmd.PrintErrf("%s is not a relationship field; value unchanged\n", resolveField)
		cmd.Println(resolverService.ProcessMeta(ctx, raw, resolveField, resolveObject, *blog))
		return nil
	}

	out, err := metavalue.Encode(res)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	cmd.Println(out)
	if res.IsUnresolved() {
		cmd.PrintErrf("no relation on %s\n", blog.URL)
	}
	return nil
}
