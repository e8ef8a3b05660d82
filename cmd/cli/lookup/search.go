package lookup

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/jpnorenam/usb-ids/cmd/cli/common"
	"github.com/jpnorenam/usb-ids/pkg/usbids"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
)

type searchCommand struct {
	*common.Context
}

func SearchCommand(ctx *common.Context) *cobra.Command {
	var cmd searchCommand
	cmd.Context = ctx

	cobraCmd := &cobra.Command{
		Use:               "search <query>",
		Short:             "Search vendors and devices by name",
		Long:              "Search the database for vendors and devices whose name contains the query, case-insensitively.",
		GroupID:           groupID,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE:              cmd.run,
	}

	return cobraCmd
}

func (cmd *searchCommand) run(_ *cobra.Command, args []string) error {
	reg, _, err := common.LoadRegistry(cmd.Context)
	if err != nil {
		return fmt.Errorf("error loading database: %v", err)
	}

	matches := reg.Search(args[0])

	err = cmd.printMatchesTable(matches)
	if err != nil {
		return fmt.Errorf("error printing matches: %v", err)
	}

	return nil
}

func (cmd *searchCommand) printMatchesTable(matches []usbids.Match) error {
	var headerRow = []string{"vid", "pid", "vendor", "device"}
	tableRows := [][]string{headerRow}

	var vendorNameMaxLen int

	for _, match := range matches {
		vendorNameMaxLen = max(vendorNameMaxLen, len(match.Vendor.Name))

		row := []string{fmt.Sprintf("%04x", uint16(match.Vendor.ID))}
		if match.Device != nil {
			row = append(row, fmt.Sprintf("%04x", uint16(match.Device.ID)), match.Vendor.Name, match.Device.Name)
		} else {
			// Vendor-level match
			row = append(row, "-", match.Vendor.Name, "")
		}

		tableRows = append(tableRows, row)
	}

	if len(tableRows) == 1 {
		fmt.Fprintln(os.Stderr, "No matches found.")
		return nil
	}

	tableMaxWidth := 100
	// Increase vendor column width to account for paddings
	vendorNameMaxLen += 2
	// Device column fills the remaining space
	deviceNameMaxLen := tableMaxWidth - vendorNameMaxLen
	// Reserve space for the vid and pid columns
	deviceNameMaxLen -= 2 * 5

	options := []tablewriter.Option{
		tablewriter.WithRenderer(renderer.NewColorized(renderer.ColorizedConfig{
			Header: renderer.Tint{
				FG: renderer.Colors{color.Bold}, // Bold headers
			},
			Column: renderer.Tint{
				FG: renderer.Colors{color.Reset},
				BG: renderer.Colors{color.Reset},
			},
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Separators: tw.Separators{ShowHeader: tw.Off, ShowFooter: tw.Off, BetweenRows: tw.Off, BetweenColumns: tw.Off},
				Lines: tw.Lines{
					ShowTop:        tw.Off,
					ShowBottom:     tw.Off,
					ShowHeaderLine: tw.Off,
					ShowFooterLine: tw.Off,
				},
				CompactMode: tw.On,
			},
		})),
		tablewriter.WithConfig(tablewriter.Config{
			MaxWidth: tableMaxWidth,
			Widths: tw.CellWidth{
				PerColumn: tw.Mapper[int, int]{
					0: 5,                // vid
					1: 5,                // pid
					2: vendorNameMaxLen, // vendor
					3: deviceNameMaxLen, // device
				},
			},
			Header: tw.CellConfig{
				Alignment: tw.CellAlignment{Global: tw.AlignLeft},
				Padding: tw.CellPadding{
					PerColumn: []tw.Padding{
						{Overwrite: true, Right: " "},
						{Overwrite: true, Right: " "},
						{Overwrite: true, Left: " ", Right: " "},
						{Overwrite: true},
					},
				},
			},
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoWrap: tw.WrapTruncate},
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
				Padding: tw.CellPadding{
					PerColumn: []tw.Padding{
						{Overwrite: true, Right: " "},
						{Overwrite: true, Right: " "},
						{Overwrite: true, Left: " ", Right: " "},
						{Overwrite: true},
					},
				},
			},
		}),
	}

	table := tablewriter.NewTable(os.Stdout, options...)
	table.Header(tableRows[0])
	err := table.Bulk(tableRows[1:])
	if err != nil {
		return fmt.Errorf("error adding data to table: %v", err)
	}
	err = table.Render()
	if err != nil {
		return fmt.Errorf("error rendering table: %v", err)
	}
	return nil
}
