package main

import (
	"log"
	"os"

	"github.com/jpnorenam/usb-ids/cmd/cli/common"
	"github.com/jpnorenam/usb-ids/cmd/cli/config"
	"github.com/jpnorenam/usb-ids/cmd/cli/database"
	"github.com/jpnorenam/usb-ids/cmd/cli/lookup"
	"github.com/jpnorenam/usb-ids/cmd/cli/shell"
	"github.com/jpnorenam/usb-ids/pkg/storage"
	"github.com/spf13/cobra"
)

func main() {
	// disable logging timestamps
	log.SetFlags(0)

	cfg, err := storage.NewConfig()
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	ctx := &common.Context{
		Config: cfg,
	}

	// rootCmd is the base command
	// It gets populated with subcommands
	rootCmd := &cobra.Command{
		SilenceUsage: true,
		Long: "usb-ids looks up USB vendors, devices, classes and other\n" +
			"identifiers in the public registry.\n\n" +
			"Use this command to resolve ids seen in device listings, or to\n" +
			"keep a local snapshot of the registry up to date.",
		Use: "usb-ids",
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&ctx.Verbose, "verbose", "v", false, "Enable verbose logging")

	// Disable command sorting to keep commands sorted as added below
	cobra.EnableCommandSorting = false

	rootCmd.AddGroup(lookup.Group("Lookup Commands:"))
	rootCmd.AddCommand(
		lookup.VendorCommand(ctx),
		lookup.DeviceCommand(ctx),
		lookup.ClassCommand(ctx),
		lookup.SearchCommand(ctx),
	)

	rootCmd.AddGroup(database.Group("Database Commands:"))
	rootCmd.AddCommand(
		database.StatusCommand(ctx),
		database.UpdateCommand(ctx),
	)

	rootCmd.AddGroup(config.Group("Configuration Commands:"))
	rootCmd.AddCommand(
		config.GetCommand(ctx),
		config.SetCommand(ctx),
	)

	// other commands (help is added by default)
	rootCmd.AddCommand(
		shell.ShellCommand(ctx),
	)

	// Hide the 'completion' command from help text
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	err = rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
