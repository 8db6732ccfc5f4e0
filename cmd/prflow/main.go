// Package main provides the command-line interface for the prflow application.
package main

import (
	"log"

	"github.com/spf13/cobra"

	"prflow/pkg/config"
	"prflow/pkg/dependencies"
	"prflow/pkg/forge"
	"prflow/pkg/logger"
)

var (
	quiet      bool
	verbose    bool
	configPath string
)

// resolveConfigPath prefers the --config flag over the default location.
func resolveConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return config.DefaultConfigPath()
}

func buildLogger() logger.Logger {
	switch {
	case quiet:
		return logger.NewNoopLogger()
	case verbose:
		return logger.NewVerboseLogger()
	default:
		return logger.NewDefaultLogger()
	}
}

func buildDependencies() *dependencies.Dependencies {
	log := buildLogger()
	return dependencies.New().
		WithConfig(config.NewManager(resolveConfigPath())).
		WithLogger(log).
		WithForge(forge.NewManager(log))
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "prflow",
		Short: "prflow - branch, push and open a PR in one step",
		Long: `prflow inspects the state of your repository, takes your local changes to ` +
			`a new branch, pushes it, opens a pull request and checks out a dedicated worktree for it.`,
	}

	// Add global flags
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Specify a custom config file path")

	// Add subcommands
	rootCmd.AddCommand(createStartCmd(), createInitCmd(), createHooksCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
