package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Manage cross-post mappings",
	Long:  `Record which remote post each local post was cross-posted to.`,
}

var mapSetCmd = &cobra.Command{
	Use:   "set <local-id> <blog> <remote-id>",
	Short: "Record a post mapping",
	Args:  cobra.ExactArgs(3),
	RunE:  runMapSet,
}

var mapGetCmd = &cobra.Command{
	Use:   "get <local-id> <blog>",
	Short: "Show the remote ID of a post",
	Args:  cobra.ExactArgs(2),
	RunE:  runMapGet,
}

var mapRemoveCmd = &cobra.Command{
	Use:   "remove <local-id> <blog>",
	Short: "Forget a post mapping",
	Args:  cobra.ExactArgs(2),
	RunE:  runMapRemove,
}

var mapListCmd = &cobra.Command{
	Use:   "list <blog>",
	Short: "List the post mappings of a blog",
	Args:  cobra.ExactArgs(1),
	RunE:  runMapList,
}

var mapProductCmd = &cobra.Command{
	Use:   "product",
	Short: "Manage product mappings",
}

var mapProductSetCmd = &cobra.Command{
	Use:   "set <product-id> <blog> <remote-id>",
	Short: "Record a product mapping",
	Long: `Records a product mapping. Blogs connecting products with "shared"
store it with the post mappings; "independent" blogs keep it separately.
Requires commerce.enabled.`,
	Args: cobra.ExactArgs(3),
	RunE: runMapProductSet,
}

func init() {
	mapProductCmd.AddCommand(mapProductSetCmd)
	mapCmd.AddCommand(mapSetCmd)
	mapCmd.AddCommand(mapGetCmd)
	mapCmd.AddCommand(mapRemoveCmd)
	mapCmd.AddCommand(mapListCmd)
	mapCmd.AddCommand(mapProductCmd)
	rootCmd.AddCommand(mapCmd)
}

func runMapSet(cmd *cobra.Command, args []string) error {
	if mappingService == nil {
		return errors.New("mapping service not configured")
	}
	localID, err := parseID("local-id", args[0])
	if err != nil {
		return err
	}
	remoteID, err := parseID("remote-id", args[2])
	if err != nil {
		return err
	}

	ctx := context.Background()
	blog, err := findBlog(ctx, args[1])
	if err != nil {
		return err
	}
	if err := mappingService.Set(ctx, *blog, localID, remoteID); err != nil {
		return fmt.Errorf("failed to save mapping: %w", err)
	}
	cmd.Printf("%d -> %d on %s\n", localID, remoteID, blog.URL)
	return nil
}

func runMapGet(cmd *cobra.Command, args []string) error {
	if mappingService == nil {
		return errors.New("mapping service not configured")
	}
	localID, err := parseID("local-id", args[0])
	if err != nil {
		return err
	}

	ctx := context.Background()
	blog, err := findBlog(ctx, args[1])
	if err != nil {
		return err
	}
	remoteID, err := mappingService.Get(ctx, *blog, localID)
	if err != nil {
		return fmt.Errorf("post %d on %s: %w", localID, blog.URL, err)
	}
	cmd.Println(remoteID)
	return nil
}

func runMapRemove(cmd *cobra.Command, args []string) error {
	if mappingService == nil {
		return errors.New("mapping service not configured")
	}
	localID, err := parseID("local-id", args[0])
	if err != nil {
		return err
	}

	ctx := context.Background()
	blog, err := findBlog(ctx, args[1])
	if err != nil {
		return err
	}
	if err := mappingService.Remove(ctx, *blog, localID); err != nil {
		return fmt.Errorf("failed to remove mapping: %w", err)
	}
	cmd.Printf("Removed mapping for %d on %s\n", localID, blog.URL)
	return nil
}

func runMapList(cmd *cobra.Command, args []string) error {
	if mappingService == nil {
		return errors.New("mapping service not configured")
	}

	ctx := context.Background()
	blog, err := findBlog(ctx, args[0])
	if err != nil {
		return err
	}
	mappings, err := mappingService.List(ctx, *blog)
	if err != nil {
		return fmt.Errorf("failed to list mappings: %w", err)
	}
	if len(mappings) == 0 {
		cmd.Printf("No mappings for %s.\n", blog.URL)
		return nil
	}
	for _, m := range mappings {
		cmd.Printf("%d -> %d\n", m.LocalID, m.RemoteID)
	}
	return nil
}

func runMapProductSet(cmd *cobra.Command, args []string) error {
	if mappingService == nil {
		return errors.New("mapping service not configured")
	}
	productID, err := parseID("product-id", args[0])
	if err != nil {
		return err
	}
	remoteID, err := parseID("remote-id", args[2])
	if err != nil {
		return err
	}

	ctx := context.Background()
	blog, err := findBlog(ctx, args[1])
	if err != nil {
		return err
	}
	if err := mappingService.SetProduct(ctx, *blog, productID, remoteID); err != nil {
		return fmt.Errorf("failed to save product mapping: %w", err)
	}
	cmd.Printf("product %d -> %d on %s (%s)\n", productID, remoteID, blog.URL, blog.ProductSync)
	return nil
}
