package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify that the mapping resource loads",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := loadServices()
		if err != nil {
			return err
		}

		table := svc.Types()
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d type mappings\n", table.Source(), table.Len())

		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
