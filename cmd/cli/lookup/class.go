package lookup

import (
	"fmt"

	"github.com/jpnorenam/usb-ids/cmd/cli/common"
	"github.com/jpnorenam/usb-ids/pkg/types"
	"github.com/spf13/cobra"
)

type classCommand struct {
	*common.Context

	// flags
	format string
}

func ClassCommand(ctx *common.Context) *cobra.Command {
	var cmd classCommand
	cmd.Context = ctx

	cobraCmd := &cobra.Command{
		Use:   "class <class> [<subclass> [<protocol>]]",
		Short: "Look up a device class, subclass or protocol",
		Long: "Look up a USB-IF device class by its 8-bit code.\n" +
			"With a subclass code, print only that subclass; with a protocol\n" +
			"code as well, print only that protocol.",
		GroupID:           groupID,
		Args:              cobra.RangeArgs(1, 3),
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE:              cmd.run,
	}

	// flags
	cobraCmd.Flags().StringVar(&cmd.format, "format", "yaml", "output format")

	return cobraCmd
}

func (cmd *classCommand) run(_ *cobra.Command, args []string) error {
	codes := make([]uint8, len(args))
	for i, arg := range args {
		code, err := types.ParseHex8(arg)
		if err != nil {
			return err
		}
		codes[i] = code
	}

	reg, _, err := common.LoadRegistry(cmd.Context)
	if err != nil {
		return fmt.Errorf("error loading database: %v", err)
	}

	switch len(codes) {
	case 1:
		class := reg.Class(codes[0])
		if class == nil {
			return fmt.Errorf("no class with code %02x in the database", codes[0])
		}
		return common.PrintFormatted(class, cmd.format)
	case 2:
		subclass := reg.SubClass(codes[0], codes[1])
		if subclass == nil {
			return fmt.Errorf("no subclass %02x:%02x in the database", codes[0], codes[1])
		}
		return common.PrintFormatted(subclass, cmd.format)
	default:
		protocol := reg.Protocol(codes[0], codes[1], codes[2])
		if protocol == nil {
			return fmt.Errorf("no protocol %02x:%02x:%02x in the database",
				codes[0], codes[1], codes[2])
		}
		return common.PrintFormatted(protocol, cmd.format)
	}
}
