package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/reoring/govalues/i18n"
	"github.com/reoring/govalues/internal/logging"
	"github.com/reoring/govalues/loader"
)

var rootCmd = &cobra.Command{
	Use:   "values",
	Short: "Validate and sanitize value payloads against definition files",
	Long: `values loads a definition file (YAML) describing named values, applies
payloads to the resulting collection and prints the sanitized snapshot.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		lang, _ := cmd.Flags().GetString("lang")
		i18n.SetLanguage(lang)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("schema", "", "Definition file describing the values")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("lang", "en", "Message language (en, ja)")
}

func newLogger(cmd *cobra.Command) *slog.Logger {
	level, _ := cmd.Flags().GetString("log-level")
	return logging.New(logging.ParseLevel(level))
}

func readDefinitions(cmd *cobra.Command) (*loader.File, error) {
	path, _ := cmd.Flags().GetString("schema")
	if path == "" {
		return nil, fmt.Errorf("--schema is required")
	}
	return loader.Read(path)
}
