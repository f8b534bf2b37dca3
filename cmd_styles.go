package main

import (
	"fmt"

	"malevich/artgen"
	"malevich/palette"

	"github.com/spf13/cobra"
)

// newStylesCommand builds the "styles" subcommand.
func newStylesCommand() *cobra.Command {
	var showPalettes bool

	cmd := &cobra.Command{
		Use:   "styles",
		Short: "List the available artwork styles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("Available styles:")
			for _, name := range artgen.StyleNames() {
				fmt.Printf("  %s\n", name)
			}

			if showPalettes {
				fmt.Println()
				fmt.Println("Named palettes (for --palette):")
				for _, name := range palette.Names() {
					fmt.Printf("  %s\n", name)
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&showPalettes, "palettes", false, "also list the named palettes")

	return cmd
}
