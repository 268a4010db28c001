package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/relsync/internal/core/domain"
)

var fieldsKind string

var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "Manage declared relationship fields",
	Long: `Declare which custom fields hold post IDs and which hold term IDs.
A field declared as "related" also matches "_related".`,
	RunE: runFieldsList,
}

var fieldsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List declared fields",
	RunE:  runFieldsList,
}

var fieldsAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Declare a relationship field",
	Args:  cobra.ExactArgs(1),
	RunE:  runFieldsAdd,
}

var fieldsRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a declared field",
	Args:  cobra.ExactArgs(1),
	RunE:  runFieldsRemove,
}

var fieldsWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print the declared fields whenever the configuration changes",
	Long:  `Watches the configuration file and prints the declared fields after every change until interrupted.`,
	RunE:  runFieldsWatch,
}

func init() {
	for _, c := range []*cobra.Command{fieldsAddCmd, fieldsRemoveCmd} {
		c.Flags().StringVar(&fieldsKind, "kind", "post", "field kind: post or term")
	}
	fieldsCmd.AddCommand(fieldsListCmd)
	fieldsCmd.AddCommand(fieldsAddCmd)
	fieldsCmd.AddCommand(fieldsRemoveCmd)
	fieldsCmd.AddCommand(fieldsWatchCmd)
	rootCmd.AddCommand(fieldsCmd)
}

func runFieldsList(cmd *cobra.Command, _ []string) error {
	if fieldService == nil {
		return errors.New("field service not configured")
	}
	printFields(cmd, fieldService.List())
	return nil
}

func printFields(cmd *cobra.Command, fields domain.RelationshipFields) {
	cmd.Printf("Post fields: %s\n", joinOrNone(fields.Post))
	cmd.Printf("Term fields: %s\n", joinOrNone(fields.Term))
}

func joinOrNone(names []string) string {
	if len(names) == 0 {
		return "(none)"
	}
	return strings.Join(names, ", ")
}

func runFieldsAdd(cmd *cobra.Command, args []string) error {
	if fieldService == nil {
		return errors.New("field service not configured")
	}
	kind, err := domain.ParseFieldKind(fieldsKind)
	if err != nil {
		return fmt.Errorf("invalid --kind %q: must be post or term", fieldsKind)
	}
	if err := fieldService.Register(kind, args[0]); err != nil {
		return fmt.Errorf("failed to add field: %w", err)
	}
	cmd.Printf("Declared %s as a %s relationship field\n", args[0], kind)
	return nil
}

func runFieldsRemove(cmd *cobra.Command, args []string) error {
	if fieldService == nil {
		return errors.New("field service not configured")
	}
	kind, err := domain.ParseFieldKind(fieldsKind)
	if err != nil {
		return fmt.Errorf("invalid --kind %q: must be post or term", fieldsKind)
	}
	if err := fieldService.Unregister(kind, args[0]); err != nil {
		return fmt.Errorf("failed to remove field: %w", err)
	}
	cmd.Printf("Removed %s field %s\n", kind, args[0])
	return nil
}

func runFieldsWatch(cmd *cobra.Command, _ []string) error {
	if fieldService == nil || watchConfig == nil {
		return errors.New("field service not configured")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	printFields(cmd, fieldService.List())
	if err := watchConfig(ctx, func() {
		cmd.Println("--")
		printFields(cmd, fieldService.List())
	}); err != nil {
		return fmt.Errorf("failed to watch configuration: %w", err)
	}

	<-ctx.Done()
	return nil
}
