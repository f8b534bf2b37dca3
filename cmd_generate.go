package main

import (
	"fmt"
	"time"

	"malevich/caption"
	"malevich/metrics"
	"malevich/social"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// newGenerateCommand builds the "generate" subcommand. It renders
// artworks without posting anything, so no credentials are needed.
func newGenerateCommand() *cobra.Command {
	var (
		paletteName string
		seed        int64
		count       int
		withCaption bool
		outDir      string
		width       int
		height      int
		asPNG       bool
		formatName  string
	)

	cmd := &cobra.Command{
		Use:   "generate [style]",
		Short: "Render one or more artworks to the output directory",
		Long: `Render artworks in the given style (or a random style when omitted)
and write them as PNG files to the output directory. Use "styles" to
list the available style names.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			if outDir != "" {
				a.cfg.OutputDir = outDir
			}
			if width > 0 {
				a.cfg.ImageWidth = width
			}
			if height > 0 {
				a.cfg.ImageHeight = height
			}
			if asPNG {
				a.cfg.SavePNG = true
			}

			var format social.Format
			if formatName != "" {
				format, err = social.ParseFormat(formatName)
				if err != nil {
					return err
				}
			}

			styleArg := ""
			if len(args) == 1 {
				styleArg = args[0]
			}

			if count < 1 {
				count = 1
			}
			if count > 1 && seed != 0 {
				// A fixed seed renders the same image every time.
				return fmt.Errorf("--seed cannot be combined with --count greater than 1")
			}

			for i := 0; i < count; i++ {
				start := time.Now()
				artwork, path, err := a.generate(styleArg, paletteName, seed)
				a.recordRunResult(metrics.RunTypeGenerate, styleArg, start, err)
				if err != nil {
					return err
				}

				fmt.Printf("Generated %s artwork: %s (seed %d)\n",
					artwork.Style, path, artwork.Seed)

				if formatName != "" {
					prepared, err := social.PrepareImage(path, format)
					if err != nil {
						return err
					}
					fmt.Printf("Prepared %s copy: %s\n", formatName, prepared)
				}

				if withCaption {
					gen := caption.NewGenerator(0)
					text, hashtags := gen.FullPost(string(artwork.Style))
					fmt.Println(caption.FormatPost(text, hashtags))
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&paletteName, "palette", "", "override the style palette by name")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed for a reproducible render (0 = random)")
	cmd.Flags().IntVar(&count, "count", 1, "number of artworks to render")
	cmd.Flags().BoolVar(&withCaption, "caption", false, "print a caption and hashtags for each artwork")
	cmd.Flags().StringVar(&outDir, "out", "", "output directory (default from OUTPUT_DIR)")
	cmd.Flags().IntVar(&width, "width", 0, "image width in pixels (default from IMAGE_WIDTH)")
	cmd.Flags().IntVar(&height, "height", 0, "image height in pixels (default from IMAGE_HEIGHT)")
	cmd.Flags().BoolVar(&asPNG, "png", false, "save lossless PNG instead of JPEG")
	cmd.Flags().StringVar(&formatName, "format", "", "also prepare an upload copy: square, portrait, landscape, or story")

	return cmd
}

// recordRunResult is a small convenience over recordRun for commands
// that do not track their own run IDs.
func (a *app) recordRunResult(runType, style string, start time.Time, err error) {
	a.recordRun(uuid.NewString(), runType, style, start, err)
}
