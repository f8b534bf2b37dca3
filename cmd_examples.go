package main

import (
	"fmt"
	"time"

	"malevich/artgen"
	"malevich/metrics"

	"github.com/spf13/cobra"
)

// newExamplesCommand builds the "examples" subcommand: one render per
// style, useful for comparing palettes and for seeding a gallery.
func newExamplesCommand() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "examples",
		Short: "Render one example artwork in every style",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			if outDir != "" {
				a.cfg.OutputDir = outDir
			}

			styles := artgen.StyleNames()
			failures := 0
			for i, style := range styles {
				start := time.Now()
				_, path, err := a.generate(style, "", 0)
				a.recordRunResult(metrics.RunTypeGenerate, style, start, err)
				if err != nil {
					failures++
					fmt.Printf("[%d/%d] %s: FAILED: %v\n", i+1, len(styles), style, err)
					continue
				}
				fmt.Printf("[%d/%d] %s: %s\n", i+1, len(styles), style, path)
			}

			if failures > 0 {
				return fmt.Errorf("%d of %d styles failed to render", failures, len(styles))
			}
			fmt.Printf("Rendered %d example artworks to %s\n", len(styles), a.cfg.OutputDir)
			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "out", "", "output directory (default from OUTPUT_DIR)")

	return cmd
}
