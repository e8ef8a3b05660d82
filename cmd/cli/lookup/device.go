package lookup

import (
	"fmt"

	"github.com/jpnorenam/usb-ids/cmd/cli/common"
	"github.com/jpnorenam/usb-ids/pkg/types"
	"github.com/spf13/cobra"
)

type deviceCommand struct {
	*common.Context

	// flags
	format string
}

func DeviceCommand(ctx *common.Context) *cobra.Command {
	var cmd deviceCommand
	cmd.Context = ctx

	cobraCmd := &cobra.Command{
		Use:               "device <vid> <pid>",
		Short:             "Look up a device by vendor and product id",
		GroupID:           groupID,
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE:              cmd.run,
	}

	// flags
	cobraCmd.Flags().StringVar(&cmd.format, "format", "yaml", "output format")

	return cobraCmd
}

func (cmd *deviceCommand) run(_ *cobra.Command, args []string) error {
	vid, err := types.ParseHex16(args[0])
	if err != nil {
		return err
	}
	pid, err := types.ParseHex16(args[1])
	if err != nil {
		return err
	}

	reg, _, err := common.LoadRegistry(cmd.Context)
	if err != nil {
		return fmt.Errorf("error loading database: %v", err)
	}

	device := reg.Device(vid, pid)
	if device == nil {
		return fmt.Errorf("no device %04x:%04x in the database", vid, pid)
	}

	// Pair the device with its vendor name; the ids alone are rarely what
	// the caller is after.
	result := struct {
		Vendor string `json:"vendor" yaml:"vendor"`
		Device any    `json:"device" yaml:"device"`
	}{
		Vendor: reg.Vendor(vid).Name,
		Device: device,
	}

	return common.PrintFormatted(result, cmd.format)
}
