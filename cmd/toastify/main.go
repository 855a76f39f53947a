// Command toastify wires a toast provider into a React, Next.js, or React
// Native project: it detects the stack, emits the provider component, and
// patches the root source file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Version is set at build time via -ldflags.
var Version = "0.1.0-dev"

var (
	// Global flags
	verbose    bool
	projectDir string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "toastify",
	Short: "Add a toast notification provider to a React project",
	Long: `toastify scaffolds toast notifications into an existing frontend project.

It detects the stack (Next.js, React Native/Expo, or plain React) from
package.json and marker files, writes a self-contained ToastProvider
component, and patches the project's root source file to import and mount
it. Run it from the project root, or point --dir elsewhere.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	// Bare `toastify` behaves like `toastify inject`.
	RunE: runInject,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&projectDir, "dir", "d", ".", "project directory")

	rootCmd.AddCommand(injectCmd)
	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(statusCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("error: ")+err.Error())
		os.Exit(exitCode(err))
	}
}
