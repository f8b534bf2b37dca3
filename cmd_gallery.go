package main

import (
	"fmt"
	"time"

	"malevich/gallery"
	"malevich/metrics"

	"github.com/spf13/cobra"
)

// newGalleryCommand builds the "gallery" subcommand.
func newGalleryCommand() *cobra.Command {
	var (
		imagesDir  string
		outputFile string
		pdfFile    string
	)

	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Build an HTML gallery of the generated artworks",
		Long: `Scan the output directory and write a standalone HTML gallery with
the artworks grouped by style category. With --pdf a contact sheet
PDF is written as well.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			if imagesDir == "" {
				imagesDir = a.cfg.OutputDir
			}

			start := time.Now()
			count, err := gallery.BuildHTML(imagesDir, outputFile)
			a.recordRunResult(metrics.RunTypeGallery, "", start, err)
			if err != nil {
				return err
			}
			fmt.Printf("Gallery with %d artworks written to %s\n", count, outputFile)

			if pdfFile != "" {
				pdfCount, err := gallery.BuildContactSheet(imagesDir, pdfFile)
				if err != nil {
					return err
				}
				fmt.Printf("Contact sheet with %d artworks written to %s\n", pdfCount, pdfFile)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&imagesDir, "dir", "", "images directory to scan (default from OUTPUT_DIR)")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "gallery.html", "gallery output file")
	cmd.Flags().StringVar(&pdfFile, "pdf", "", "also write a contact sheet PDF to this file")

	return cmd
}
