package cmd

import (
	"errors"
	"fmt"

	"github.com/KostasZigo/gitcat/internal/constants"
	"github.com/KostasZigo/gitcat/internal/repository"
	"github.com/KostasZigo/gitcat/utils"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init [directory]",
	Short: "Initialize a new Git repository",
	Long: `The 'init' command sets up a new Git repository in the current directory.
It creates a .git directory with objects/ and refs/ and a HEAD file pointing at main.
If a repository already exists, the command leaves it untouched.`,
	SilenceUsage: true,
	Args:         maximumArgs(1),
	RunE:         runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

// maximumArgs validates command receives at most n positional arguments.
// Returns error with usage help if argument limit exceeded.
func maximumArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) > n {
			cmd.SilenceUsage = false
			return fmt.Errorf("%s command accepts at most %d arg(s), received %d", cmd.Name(), n, len(args))
		}
		return nil
	}
}

// runInit executes repository initialization at specified or current directory.
func runInit(cmd *cobra.Command, args []string) error {
	dirPath := "."
	if len(args) > 0 {
		dirPath = args[0]
	}

	displayPath := utils.BuildDirPath(dirPath, constants.GitDir)

	err := repository.InitRepository(dirPath)
	if errors.Is(err, repository.ErrAlreadyInitialized) {
		fmt.Fprintf(cmd.OutOrStdout(), "Reinitialized existing Git repository in %s\n", displayPath)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to initialize repository - %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized empty Git repository in %s\n", displayPath)
	return nil
}
