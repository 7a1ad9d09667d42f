// Package cmd wires the command-line surface: a root command that
// generates exam versions from a run configuration, plus a version
// subcommand.
package cmd

import (
	"github.com/spf13/cobra"
)

// NewRootCmd builds a fresh root command. Tests construct their own
// instance so flag state never leaks between runs.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "examgen <config>",
		Short: "Generate randomized exam versions from question banks",
		Long: "Examgen loads question banks from YAML files, samples and shuffles\n" +
			"questions per exam version, and writes one LaTeX document per version.",
		Args:         cobra.ExactArgs(1),
		RunE:         runGenerate,
		SilenceUsage: true,
	}

	cmd.Flags().Int("versions", 1, "Number of exam versions to generate")
	cmd.Flags().String("output-dir", ".", "Output directory, created if absent")
	cmd.Flags().String("preamble", "", "Custom LaTeX preamble template file")
	cmd.Flags().Bool("no-shuffle", false, "Keep answer choices in declared order")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func Execute() error {
	return NewRootCmd().Execute()
}
