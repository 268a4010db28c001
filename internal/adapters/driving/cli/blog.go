package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/relsync/internal/core/domain"
)

var (
	blogLogin          string
	blogPassword       string
	blogPasswordPrompt bool
	blogToken          string
	blogProducts       string
)

// readPassword reads a secret from the terminal without echo.
// Swapped in tests.
var readPassword = func() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("--password-prompt needs an interactive terminal")
	}
	secret, err := term.ReadPassword(fd)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(secret)), nil
}

var blogCmd = &cobra.Command{
	Use:   "blog",
	Short: "Manage target blogs",
	Long:  `Register the remote blogs content is cross-posted to.`,
	RunE:  runBlogList,
}

var blogAddCmd = &cobra.Command{
	Use:   "add <url>",
	Short: "Register or update a blog",
	Long: `Registers a remote blog. Term lookups authenticate with --token
(bearer) when set, else with --login and an application password.

--products controls how products are connected to the blog:
  independent - products have their own mapping (default)
  shared      - products use the post mapping
  none        - products are never cross-posted`,
	Args: cobra.ExactArgs(1),
	RunE: runBlogAdd,
}

var blogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered blogs",
	RunE:  runBlogList,
}

var blogRemoveCmd = &cobra.Command{
	Use:   "remove <url|id>",
	Short: "Remove a blog and its mappings",
	Args:  cobra.ExactArgs(1),
	RunE:  runBlogRemove,
}

func init() {
	blogAddCmd.Flags().StringVar(&blogLogin, "login", "", "user for application password auth")
	blogAddCmd.Flags().StringVar(&blogPassword, "password", "", "application password")
	blogAddCmd.Flags().BoolVar(&blogPasswordPrompt, "password-prompt", false, "read the application password from the terminal")
	blogAddCmd.Flags().StringVar(&blogToken, "token", "", "bearer token")
	blogAddCmd.Flags().StringVar(&blogProducts, "products", "independent", "product connection: independent, shared or none")
	blogCmd.AddCommand(blogAddCmd)
	blogCmd.AddCommand(blogListCmd)
	blogCmd.AddCommand(blogRemoveCmd)
	rootCmd.AddCommand(blogCmd)
}

func runBlogAdd(cmd *cobra.Command, args []string) error {
	if blogService == nil {
		return errors.New("blog service not configured")
	}

	mode, err := domain.ParseProductSync(blogProducts)
	if err != nil {
		return fmt.Errorf("invalid --products %q", blogProducts)
	}

	password := blogPassword
	if blogPasswordPrompt {
		cmd.Print("Application password: ")
		password, err = readPassword()
		cmd.Println()
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
	}

	blog, err := blogService.Add(context.Background(), domain.Blog{
		URL:         args[0],
		Login:       blogLogin,
		Password:    password,
		Token:       blogToken,
		ProductSync: mode,
	})
	if err != nil {
		return fmt.Errorf("failed to add blog: %w", err)
	}

	cmd.Printf("Registered %s\n", blog.URL)
	cmd.Printf("  ID:       %s\n", blog.ID)
	cmd.Printf("  Auth:     %s\n", authLabel(*blog))
	cmd.Printf("  Products: %s\n", blog.ProductSync)
	return nil
}

func runBlogList(cmd *cobra.Command, _ []string) error {
	if blogService == nil {
		return errors.New("blog service not configured")
	}

	blogs, err := blogService.List(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list blogs: %w", err)
	}
	if len(blogs) == 0 {
		cmd.Println("No blogs registered.")
		return nil
	}

	for _, b := range blogs {
		cmd.Printf("%s  %s  auth=%s products=%s\n", b.ID, b.URL, authLabel(b), b.ProductSync)
	}
	return nil
}

func runBlogRemove(cmd *cobra.Command, args []string) error {
	if blogService == nil {
		return errors.New("blog service not configured")
	}
	if err := blogService.Remove(context.Background(), args[0]); err != nil {
		return fmt.Errorf("failed to remove blog: %w", err)
	}
	cmd.Printf("Removed %s\n", args[0])
	return nil
}

func authLabel(b domain.Blog) string {
	switch {
	case b.Token != "":
		return "token"
	case b.HasBasicAuth():
		return "application password (" + b.Login + ")"
	default:
		return "anonymous"
	}
}
