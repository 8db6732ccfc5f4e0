package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"prflow/pkg/config"
)

func createHooksCmd() *cobra.Command {
	hooksCmd := &cobra.Command{
		Use:   "hooks",
		Short: "List the configured hook commands",
		Long: `List the hook points that have commands configured, in the order the
workflow runs them, with each command's effective timeout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			manager := config.NewManager(resolveConfigPath())
			cfg, err := manager.GetConfigWithFallback()
			if err != nil {
				return err
			}

			configured := 0
			for _, name := range config.ValidHookNames() {
				commands := cfg.Hooks[name]
				if len(commands) == 0 {
					continue
				}
				configured++

				fmt.Printf("%s:\n", name)
				for _, hookCmd := range commands {
					fmt.Printf("  %s (timeout %s)\n", hookCmd.Command, effectiveTimeout(hookCmd, cfg.HookDefaults))
				}
			}

			if configured == 0 {
				fmt.Println("No hooks configured.")
			}
			return nil
		},
	}

	return hooksCmd
}

// effectiveTimeout mirrors the runner's timeout resolution: the command's
// own timeout, else the default, clamped to the maximum.
func effectiveTimeout(cmd config.HookCommand, defaults config.HookDefaults) time.Duration {
	timeout := cmd.Timeout.AsDuration()
	if timeout <= 0 {
		timeout = defaults.Timeout.AsDuration()
	}
	if max := defaults.MaxTimeout.AsDuration(); max > 0 && timeout > max {
		timeout = max
	}
	return timeout
}
