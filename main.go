package main

import (
	"fmt"
	"os"

	"malevich/core"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	// Windows service control commands (install/start/stop/...) are
	// handled before the regular CLI.
	if HandleServiceCommand(os.Args) {
		return
	}

	// Running under the Windows service manager bypasses the CLI and
	// goes straight into the scheduler loop.
	if asService, err := RunAsService(); asService {
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(core.ExitCodeError)
		}
		return
	}

	if err := newRootCommand().Execute(); err != nil {
		os.Exit(core.ExitCodeError)
	}
}

// newRootCommand builds the CLI command tree.
func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "malevich",
		Short: "Generative art for Instagram",
		Long: `Malevich renders generative artworks in the styles of the great art
movements, writes captions for them, and posts them to Instagram on a
schedule. Run a subcommand directly for a single action, or "schedule"
for the unattended posting loop.`,
		Version:       core.GetVersion(),
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env if present; a missing file is fine because all
			// settings have environment or default fallbacks.
			if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
				fmt.Fprintf(os.Stderr, "Warning: could not load .env: %v\n", err)
			}
		},
	}

	root.SetVersionTemplate(core.GetVersionInfo() + "\n")

	root.AddCommand(
		newGenerateCommand(),
		newExamplesCommand(),
		newPostCommand(),
		newScheduleCommand(),
		newGalleryCommand(),
		newStylesCommand(),
		newHistoryCommand(),
		newValidateCommand(),
	)

	return root
}
