package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <field>",
	Short: "Show whether a field is a post or term relationship",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if classifierService == nil {
			return errors.New("classifier service not configured")
		}
		cmd.Println(classifierService.Classify(args[0]))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}
