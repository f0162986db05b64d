package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/KostasZigo/gitcat/internal/objects"
	"github.com/KostasZigo/gitcat/internal/repository"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var catFileCmd = &cobra.Command{
	Use:   "cat-file -p <object>",
	Short: "Print the content of a repository object",
	Long: `Print the content of a loose object stored in .git/objects.
The object is fully decoded and validated before anything is written.

Examples:
  # Print a blob
  gitcat cat-file -p e69de29bb2d1d6434b8b29ae775ad8c2e48c5391`,
	SilenceUsage: true,
	Args:         exactArgs(1),
	RunE:         runCatFile,
}

var prettyPrintFlag bool

// errPrettyPrintRequired is returned when cat-file runs without -p.
var errPrettyPrintRequired = errors.New("only pretty-printing (-p) is supported")

func init() {
	rootCmd.AddCommand(catFileCmd)

	catFileCmd.Flags().BoolVarP(&prettyPrintFlag, "pretty-print", "p", false, "Pretty-print the object's content")
}

// exactArgs validates command receives exactly n positional arguments.
// enables usage printing in case of error
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			cmd.SilenceUsage = false
			return fmt.Errorf("%s command requires exactly %d argument(s), received %d", cmd.Name(), n, len(args))
		}
		return nil
	}
}

// runCatFile decodes the object and writes it only once decoding succeeded.
func runCatFile(cmd *cobra.Command, args []string) error {
	if !prettyPrintFlag {
		cmd.SilenceUsage = false
		return errPrettyPrintRequired
	}

	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	gitDir, err := repository.FindGitDir(cwd)
	if err != nil {
		return err
	}

	store := objects.NewObjectStore(gitDir, zap.L())
	object, err := store.Read(args[0])
	if err != nil {
		return err
	}

	if err := object.Render(cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("failed to write object %s: %w", args[0], err)
	}
	return nil
}
