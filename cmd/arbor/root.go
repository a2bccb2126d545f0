package main

import (
	"fmt"
	"os"

	"github.com/aretw0/arbor/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var rootCmd = &cobra.Command{
	Use:   "arbor",
	Short: "Arbor builds decision trees by hand",
	Long:  `Arbor models decision trees as nodes alternating with action and chance spaces.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		return applyConfig(cmd.Flags(), cfg)
	},
	SilenceUsage: true,
}

// applyConfig fills every flag the user did not set from cfg.
// Flags the command does not define are skipped.
func applyConfig(flags *pflag.FlagSet, cfg config.Config) error {
	values := []struct {
		name  string
		value string
	}{
		{"log-level", cfg.LogLevel},
		{"log-format", cfg.LogFormat},
		{"format", cfg.Format},
		{"color", fmt.Sprint(cfg.Color)},
	}
	for _, v := range values {
		f := flags.Lookup(v.name)
		if f == nil || f.Changed {
			continue
		}
		if err := f.Value.Set(v.value); err != nil {
			return fmt.Errorf("apply %s=%q: %w", v.name, v.value, err)
		}
	}
	return nil
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
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format (text, json)")
}
