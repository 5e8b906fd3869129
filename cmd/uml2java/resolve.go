package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"uml2java-services/internal/uml"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <qualified-name>...",
	Short: "Resolve UML types to Java types",
	Long: `Resolve each qualified UML type name to its Java type. Every name is
attempted; the command fails if any of them is unmapped.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := loadServices()
		if err != nil {
			return err
		}

		types := make([]uml.Type, len(args))
		for i, name := range args {
			types[i] = uml.DataType(name)
		}

		resolved, diags := svc.ResolveAll(types)

		out := cmd.OutOrStdout()
		for _, name := range args {
			if javaType, ok := resolved[name]; ok {
				fmt.Fprintf(out, "%s -> %s\n", name, javaType)
			}
		}

		for _, w := range diags.Warnings {
			fmt.Fprintln(cmd.ErrOrStderr(), "warning:", w.String())
		}

		return diags.Err()
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}
