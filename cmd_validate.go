package main

import (
	"fmt"
	"os"

	"malevich/core"
	"malevich/core/validation"

	"github.com/spf13/cobra"
)

// newValidateCommand builds the "validate" subcommand.
func newValidateCommand() *cobra.Command {
	var quick bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the configuration and report problems",
		Long: `Run the configuration checks the posting pipeline depends on:
environment file, output directory, disk space, posting schedule,
credentials, and API connectivity. Exits non-zero when any check
fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			allowSelfSigned := os.Getenv("ALLOW_SELF_SIGNED_CERTS") == "true"

			suite := validation.NewValidationSuite().
				WithAllowSelfSignedCerts(allowSelfSigned).
				WithShowProgress(true)

			var result validation.SuiteResult
			if quick {
				result = suite.ValidateQuick()
			} else {
				result = suite.Validate()
			}

			if !result.Success {
				os.Exit(core.ExitCodeError)
			}

			fmt.Println("Configuration is valid.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&quick, "quick", false, "skip the connectivity and disk space checks")

	return cmd
}
