package database

import (
	"fmt"

	"github.com/jpnorenam/usb-ids/cmd/cli/common"
	"github.com/jpnorenam/usb-ids/pkg/usbids"
	"github.com/spf13/cobra"
)

type statusCommand struct {
	*common.Context

	// flags
	format string
}

func StatusCommand(ctx *common.Context) *cobra.Command {
	var cmd statusCommand
	cmd.Context = ctx

	cobraCmd := &cobra.Command{
		Use:               "status",
		Short:             "Show the active snapshot and its contents",
		GroupID:           groupID,
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE:              cmd.run,
	}

	// flags
	cobraCmd.Flags().StringVar(&cmd.format, "format", "yaml", "output format")

	return cobraCmd
}

type statusReport struct {
	Version string       `json:"version" yaml:"version"`
	Date    string       `json:"date" yaml:"date"`
	Source  string       `json:"source" yaml:"source"`
	Stats   usbids.Stats `json:"stats" yaml:"stats"`
}

func (cmd *statusCommand) run(_ *cobra.Command, _ []string) error {
	reg, source, err := common.LoadRegistry(cmd.Context)
	if err != nil {
		return fmt.Errorf("error loading database: %v", err)
	}

	report := statusReport{
		Version: reg.Version,
		Date:    reg.Date,
		Source:  source.String(),
		Stats:   reg.Stats(),
	}

	return common.PrintFormatted(report, cmd.format)
}
