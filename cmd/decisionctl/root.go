package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/bibbank/decisioning/pkg/observability"
)

var version = "dev"

type rootOptions struct {
	manifest string
	output   string
	debug    bool
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "decisionctl",
		Short: "Offline tooling for the decisioning engine",
		Long: `decisionctl evaluates customer profiles against a local artifact manifest,
runs the repayment and maturity calculators, and verifies artifact sets before
they are published.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.manifest, "manifest", "artifacts/manifest.yaml", "Path to the artifact manifest")
	cmd.PersistentFlags().StringVarP(&opts.output, "output", "o", "json", "Output format: json | yaml")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")

	cmd.AddCommand(newEvaluateCommand(opts))
	cmd.AddCommand(newRepaymentCommand(opts))
	cmd.AddCommand(newMaturityCommand(opts))
	cmd.AddCommand(newArtifactsCommand(opts))
	cmd.AddCommand(newDevCommand(opts))

	return cmd
}

// logger writes to stderr so stdout stays machine readable.
func (o *rootOptions) logger() *slog.Logger {
	level := "warn"
	if o.debug {
		level = "debug"
	}
	return observability.InitLogger(observability.LogConfig{
		Level:   level,
		Format:  "text",
		Service: "decisionctl",
		Output:  os.Stderr,
	})
}
