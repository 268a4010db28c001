package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long:  `View and configure remote lookup and commerce settings.`,
	RunE:  runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsTimeoutCmd = &cobra.Command{
	Use:   "timeout <seconds>",
	Short: "Set the remote lookup timeout",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsTimeout,
}

var settingsRateLimitCmd = &cobra.Command{
	Use:   "rate-limit <requests-per-second>",
	Short: "Set the outbound request rate",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsRateLimit,
}

var settingsCommerceCmd = &cobra.Command{
	Use:       "commerce <on|off>",
	Short:     "Enable or disable product-aware lookups",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"on", "off"},
	RunE:      runSettingsCommerce,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsTimeoutCmd)
	settingsCmd.AddCommand(settingsRateLimitCmd)
	settingsCmd.AddCommand(settingsCommerceCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()
	cmd.Println("[Remote]")
	cmd.Printf("  Timeout: %s\n", settings.Remote.Timeout)
	cmd.Printf("  Rate limit: %d/s (burst %d)\n", settings.Remote.RateLimit, settings.Remote.Burst)
	cmd.Println()
	cmd.Println("[Commerce]")
	cmd.Printf("  Enabled: %t\n", settings.Commerce.Enabled)
	cmd.Println()
	cmd.Println("[Relationships]")
	cmd.Printf("  Post fields: %s\n", joinOrNone(settings.Fields.Post))
	cmd.Printf("  Term fields: %s\n", joinOrNone(settings.Fields.Term))
	return nil
}

func runSettingsTimeout(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	seconds, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid timeout %q", args[0])
	}
	if err := settingsService.SetRemoteTimeout(seconds); err != nil {
		return err
	}
	cmd.Printf("Remote timeout set to %ds\n", seconds)
	return nil
}

func runSettingsRateLimit(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	rps, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid rate limit %q", args[0])
	}
	if err := settingsService.SetRateLimit(rps); err != nil {
		return err
	}
	cmd.Printf("Rate limit set to %d requests per second\n", rps)
	return nil
}

func runSettingsCommerce(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	var enabled bool
	switch args[0] {
	case "on", "true", "1":
		enabled = true
	case "off", "false", "0":
	default:
		return fmt.Errorf("invalid value %q: use on or off", args[0])
	}
	if err := settingsService.SetCommerceEnabled(enabled); err != nil {
		return err
	}
	cmd.Printf("Commerce integration enabled: %t\n", enabled)
	return nil
}
