package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"prflow/pkg/workflow"
)

var (
	branchName     string
	actionName     string
	baseOverride   string
	nonInteractive bool
	noHooks        bool
	jsonOutput     bool
)

func createStartCmd() *cobra.Command {
	startCmd := &cobra.Command{
		Use:   "start <description>",
		Short: "Take your local changes to a branch and open a PR for it",
		Long: `Classify the state of the repository, take your local changes to a branch
(creating one when needed), push it, open a pull request and check out a
dedicated worktree for the branch.

Examples:
  prflow start "Fix login retry bug"
  prflow start "Fix login retry bug" --branch hotfix/login
  prflow start "Fix login retry bug" --non-interactive --action commit_all
  prflow start "Fix login retry bug" --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			wf := workflow.NewWorkflow(buildDependencies())
			result, err := wf.Run(cmd.Context(), workflow.RunParams{
				RepoPath:       ".",
				Description:    strings.Join(args, " "),
				Branch:         branchName,
				BaseBranch:     baseOverride,
				Action:         actionName,
				NonInteractive: nonInteractive,
				NoHooks:        noHooks,
			})
			if err != nil {
				return renderError(err)
			}
			return renderResult(result)
		},
	}

	startCmd.Flags().StringVarP(&branchName, "branch", "b", "",
		"Branch name (defaults to a slug derived from the description)")
	startCmd.Flags().StringVar(&baseOverride, "base", "",
		"Base branch for the PR (defaults to the configured base branch)")
	startCmd.Flags().StringVarP(&actionName, "action", "a", "",
		"Pick a remediation action by name instead of the scenario default")
	startCmd.Flags().BoolVarP(&nonInteractive, "non-interactive", "n", false,
		"Never prompt; fail where a prompt would be needed")
	startCmd.Flags().BoolVar(&noHooks, "no-hooks", false, "Skip configured hooks for this run")
	startCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the result as JSON")

	return startCmd
}

func renderResult(result *workflow.Result) error {
	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(result)
	}

	fmt.Printf("PR #%d: %s\n", result.PRNumber, result.PRURL)
	fmt.Printf("Branch: %s\n", result.Branch)
	if result.WorktreePath != "" {
		fmt.Printf("Worktree: %s\n", result.WorktreePath)
	}
	return nil
}

// errorPayload is the JSON shape of a failed run. It carries the same
// information as the text rendering.
type errorPayload struct {
	Success    bool          `json:"success"`
	Code       workflow.Code `json:"code"`
	Message    string        `json:"message"`
	Suggestion string        `json:"suggestion,omitempty"`
}

func renderError(err error) error {
	wErr := workflow.AsError(err)

	if jsonOutput {
		_ = json.NewEncoder(os.Stdout).Encode(errorPayload{
			Code:       wErr.Code,
			Message:    wErr.Message,
			Suggestion: wErr.Suggestion,
		})
	} else {
		fmt.Fprintf(os.Stderr, "error: %s\n", wErr.Message)
		if wErr.Suggestion != "" {
			fmt.Fprintf(os.Stderr, "hint: %s\n", wErr.Suggestion)
		}
	}

	os.Exit(1)
	return nil
}
