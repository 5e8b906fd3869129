package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"uml2java-services/internal/services"
	"uml2java-services/internal/typemap"
)

var (
	verbose     bool
	mappingPath string
	noNamespace bool
)

var rootCmd = &cobra.Command{
	Use:   "uml2java",
	Short: "Inspect UML-to-Java type mappings",
	Long: `uml2java loads the type mapping resource used by the Java code-generation
templates and answers lookups against it. Without --mappings the bundled
JavaMappings.xml is used.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&mappingPath, "mappings", "", "Path to a mapping XML file (default: bundled)")
	rootCmd.PersistentFlags().BoolVar(&noNamespace, "no-namespace", false, "Do not prefix source types with "+typemap.Namespace)
}

// loadServices builds the services from the configured mapping resource.
func loadServices() (*services.Services, error) {
	opts := []typemap.Option{typemap.WithLogger(slog.Default())}
	if noNamespace {
		opts = append(opts, typemap.WithoutNamespace())
	}

	if mappingPath == "" {
		return services.NewDefault(opts...)
	}

	table, err := typemap.LoadFile(mappingPath, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize type mappings: %w", err)
	}

	return services.New(table), nil
}
