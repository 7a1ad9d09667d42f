package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"examgen/internal/config"
	"examgen/internal/exam"
)

// runGenerate loads the run configuration and its banks, then writes one
// exam_v<N>.tex per requested version. Any failure aborts the run; a
// version is either fully generated and written or nothing is.
func runGenerate(cmd *cobra.Command, args []string) error {
	versions, _ := cmd.Flags().GetInt("versions")
	outputDir, _ := cmd.Flags().GetString("output-dir")
	preamblePath, _ := cmd.Flags().GetString("preamble")
	noShuffle, _ := cmd.Flags().GetBool("no-shuffle")

	cfg, err := config.Load(args[0])
	if err != nil {
		return err
	}

	gen := exam.NewGenerator()
	gen.PreamblePath = preamblePath
	gen.Shuffle = !noShuffle
	gen.Stderr = cmd.ErrOrStderr()

	for _, path := range cfg.QuestionBanks {
		if err := gen.AddBank(path); err != nil {
			return fmt.Errorf("load bank: %w", err)
		}
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	for v := 1; v <= versions; v++ {
		doc, err := gen.Generate(cfg.Selections, v)
		if err != nil {
			return fmt.Errorf("generate version %d: %w", v, err)
		}
		out := filepath.Join(outputDir, fmt.Sprintf("exam_v%d.tex", v))
		if err := os.WriteFile(out, []byte(doc), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
	}
	return nil
}
