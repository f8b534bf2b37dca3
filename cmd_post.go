package main

import (
	"github.com/spf13/cobra"
)

// newPostCommand builds the "post" subcommand: render one artwork,
// caption it, and upload it immediately.
func newPostCommand() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "post [style]",
		Short: "Generate an artwork and post it to Instagram now",
		Long: `Run the full pipeline once: render an artwork in the given style (or
a random style when omitted), build a caption with hashtags, and upload
it. With --dry-run, or when no Instagram credentials are configured,
the image is rendered and prepared but nothing is uploaded.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			if dryRun {
				a.cfg.DryRun = true
			}

			// Missing credentials downgrade the post to a dry run, so
			// there is nothing for the credentials check to enforce.
			if !a.cfg.DryRun && a.cfg.RequireInstagram() == nil {
				if err := runStartupValidation(a); err != nil {
					return err
				}
			}

			database, err := a.openDatabase()
			if err != nil {
				return err
			}
			defer database.Close()

			history := a.newHistoryWriter()
			history.Start()
			defer history.Stop()

			styleArg := ""
			if len(args) == 1 {
				styleArg = args[0]
			}

			return a.postOnce(cmd.Context(), database, history, styleArg)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "prepare the post but do not upload it")

	return cmd
}
