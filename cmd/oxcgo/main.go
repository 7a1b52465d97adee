package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	verbose bool
	watch   bool

	logger *zap.Logger

	rootCmd = &cobra.Command{
		Use:   "oxcgo",
		Short: "Parse, resolve, fold, and print TypeScript/JavaScript source",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := zap.NewProductionConfig()
			if verbose {
				cfg = zap.NewDevelopmentConfig()
			} else {
				cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
			}
			l, err := cfg.Build()
			if err != nil {
				return fmt.Errorf("building logger: %w", err)
			}
			logger = l
			return nil
		},
	}
)

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&watch, "watch", "w", false, "re-run on file changes")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if logger != nil {
		_ = logger.Sync()
	}
}
