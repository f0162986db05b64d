package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// rootCmd defines the base command for the gitcat CLI.
// All subcommands (init, cat-file) register under this root.
// Uses cobra for command parsing, flag handling, and help generation.
var rootCmd = &cobra.Command{
	Use:   "gitcat",
	Short: "A minimal Git loose object reader in GO",
	Long: `GitCat is a minimal Git implementation developed in GO that can initialize
a repository and print the content of loose objects stored in it.`,
	PersistentPreRunE: setupLogger,
}

var verboseFlag bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Write debug logs to stderr")
}

// setupLogger installs the process-wide logger. Logs are discarded unless
// --verbose is set, so stdout only ever carries command output.
func setupLogger(cmd *cobra.Command, args []string) error {
	if !verboseFlag {
		zap.ReplaceGlobals(zap.NewNop())
		return nil
	}

	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	config.OutputPaths = []string{"stderr"}
	logger, err := config.Build()
	if err != nil {
		return err
	}

	zap.ReplaceGlobals(logger)
	return nil
}

// Execute runs the root command and handles exit codes.
// Called from main.go to start CLI execution.
func Execute() {
	err := rootCmd.Execute()

	// Flush before os.Exit skips deferred calls
	_ = zap.L().Sync()

	if err != nil {
		os.Exit(1)
	}
}
