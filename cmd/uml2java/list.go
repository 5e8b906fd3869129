package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"uml2java-services/internal/typemap"
)

var listYAML bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all type mappings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := loadServices()
		if err != nil {
			return err
		}

		table := svc.Types()
		out := cmd.OutOrStdout()

		if listYAML {
			data, err := typemap.Marshal(table)
			if err != nil {
				return err
			}

			_, err = out.Write(data)

			return err
		}

		entries := table.Entries()
		for _, key := range table.Keys() {
			fmt.Fprintf(out, "%s -> %s\n", key, entries[key])
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listYAML, "yaml", false, "Output as YAML")
}
