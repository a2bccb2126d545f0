package main

import (
	"fmt"
	"io"

	"github.com/aretw0/arbor/internal/demo"
	"github.com/aretw0/arbor/internal/logging"
	"github.com/aretw0/arbor/internal/presentation/graph"
	"github.com/aretw0/arbor/pkg/observability"
	"github.com/aretw0/arbor/pkg/tree"
	"github.com/muesli/termenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
)

// demoCmd builds the sample country/job scenario and prints it.
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Build the sample decision tree and print it",
	Long:  `Builds the country/job/reaction scenario and prints the node registry, an outline or a Mermaid diagram (graph TD).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		levelName, _ := cmd.Flags().GetString("log-level")
		logFormat, _ := cmd.Flags().GetString("log-format")
		format, _ := cmd.Flags().GetString("format")
		color, _ := cmd.Flags().GetBool("color")
		withMetrics, _ := cmd.Flags().GetBool("metrics")

		level, err := logging.ParseLevel(levelName)
		if err != nil {
			return err
		}
		logger := logging.New(cmd.ErrOrStderr(), level, logFormat)

		reg := prometheus.NewRegistry()
		metrics, err := observability.NewMetrics(reg)
		if err != nil {
			return err
		}

		sc, err := demo.Build(tree.WithLogger(logger), tree.WithHooks(metrics.Hooks()))
		if err != nil {
			return err
		}
		logger.Info("scenario built", "nodes", sc.Tree.NodeCount(), "spaces", sc.Tree.SpaceCount())

		out := cmd.OutOrStdout()
		if err := render(out, sc.Tree, format, color); err != nil {
			return err
		}
		if withMetrics {
			return dumpMetrics(out, reg)
		}
		return nil
	},
}

func render(w io.Writer, t *tree.Tree, format string, color bool) error {
	switch format {
	case "nodes":
		_, err := fmt.Fprintln(w, t.Nodes())
		return err
	case "mermaid":
		_, err := fmt.Fprint(w, graph.GenerateMermaid(t))
		return err
	case "text", "":
		profile := termenv.Ascii
		if color {
			profile = termenv.ColorProfile()
		}
		return graph.Outline(w, t, profile)
	default:
		return fmt.Errorf("unknown format %q (want text, mermaid or nodes)", format)
	}
}

func dumpMetrics(w io.Writer, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	demoCmd.Flags().String("format", "text", "Output format (text, mermaid, nodes)")
	demoCmd.Flags().Bool("color", true, "Colorize the text outline")
	demoCmd.Flags().Bool("metrics", false, "Print construction metrics after the tree")
	rootCmd.AddCommand(demoCmd)
}
