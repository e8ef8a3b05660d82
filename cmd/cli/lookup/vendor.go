package lookup

import (
	"fmt"

	"github.com/jpnorenam/usb-ids/cmd/cli/common"
	"github.com/jpnorenam/usb-ids/pkg/types"
	"github.com/spf13/cobra"
)

type vendorCommand struct {
	*common.Context

	// flags
	format string
}

func VendorCommand(ctx *common.Context) *cobra.Command {
	var cmd vendorCommand
	cmd.Context = ctx

	cobraCmd := &cobra.Command{
		Use:               "vendor <vid>",
		Short:             "Look up a vendor by its id",
		Long:              "Look up a vendor by its 16-bit id and print it with all of its devices",
		GroupID:           groupID,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE:              cmd.run,
	}

	// flags
	cobraCmd.Flags().StringVar(&cmd.format, "format", "yaml", "output format")

	return cobraCmd
}

func (cmd *vendorCommand) run(_ *cobra.Command, args []string) error {
	vid, err := types.ParseHex16(args[0])
	if err != nil {
		return err
	}

	reg, _, err := common.LoadRegistry(cmd.Context)
	if err != nil {
		return fmt.Errorf("error loading database: %v", err)
	}

	vendor := reg.Vendor(vid)
	if vendor == nil {
		return fmt.Errorf("no vendor with id %04x in the database", vid)
	}

	return common.PrintFormatted(vendor, cmd.format)
}
