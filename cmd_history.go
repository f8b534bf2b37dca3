package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

// newHistoryCommand builds the "history" subcommand, a view into the
// post history database.
func newHistoryCommand() *cobra.Command {
	var (
		limit   int
		byStyle bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent posts from the post history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			database, err := a.openDatabase()
			if err != nil {
				return err
			}
			defer database.Close()

			if byStyle {
				counts, err := database.Posts().CountByStyle()
				if err != nil {
					return err
				}
				if len(counts) == 0 {
					fmt.Println("No posts recorded yet.")
					return nil
				}

				styles := make([]string, 0, len(counts))
				for style := range counts {
					styles = append(styles, style)
				}
				sort.Strings(styles)

				fmt.Println("Posts by style:")
				for _, style := range styles {
					fmt.Printf("  %-22s %d\n", style, counts[style])
				}
				return nil
			}

			posts, err := database.Posts().Recent(limit)
			if err != nil {
				return err
			}
			if len(posts) == 0 {
				fmt.Println("No posts recorded yet.")
				return nil
			}

			for _, post := range posts {
				line := fmt.Sprintf("%s  %-8s  %-22s  %s",
					post.CreatedAt.Format("2006-01-02 15:04"),
					post.Status, post.Style, post.ImagePath)
				if post.MediaID != "" {
					line += fmt.Sprintf("  (media %s)", post.MediaID)
				}
				fmt.Println(line)
			}

			if last, err := database.Posts().LastPostedAt(); err == nil && !last.IsZero() {
				fmt.Printf("\nLast successful post: %s\n", last.Format("2006-01-02 15:04"))
			}

			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of posts to show")
	cmd.Flags().BoolVar(&byStyle, "by-style", false, "show post counts grouped by style")

	return cmd
}
