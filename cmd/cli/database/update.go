package database

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/jpnorenam/usb-ids/cmd/cli/common"
	"github.com/jpnorenam/usb-ids/pkg/dbfile"
	"github.com/jpnorenam/usb-ids/pkg/storage"
	"github.com/jpnorenam/usb-ids/pkg/utils"
	"github.com/spf13/cobra"
)

type updateCommand struct {
	*common.Context

	// flags
	yes bool
	url string
}

func UpdateCommand(ctx *common.Context) *cobra.Command {
	var cmd updateCommand
	cmd.Context = ctx

	cobraCmd := &cobra.Command{
		Use:               "update",
		Short:             "Download the latest registry snapshot",
		Long:              "Download the latest registry snapshot and install it for future lookups.",
		GroupID:           groupID,
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE:              cmd.run,
	}

	// flags
	cobraCmd.Flags().BoolVar(&cmd.yes, "yes", false, "replace an existing snapshot without asking")
	cobraCmd.Flags().StringVar(&cmd.url, "url", "", "download from this URL instead of the configured one")

	return cobraCmd
}

func (cmd *updateCommand) run(_ *cobra.Command, _ []string) error {
	url, err := cmd.resolveURL()
	if err != nil {
		return err
	}

	path, err := dbfile.DefaultPath()
	if err != nil {
		return err
	}

	if _, statErr := os.Stat(path); statErr == nil && !cmd.yes {
		if !utils.IsTerminalOutput() {
			return fmt.Errorf("refusing to replace %s without --yes", path)
		}
		if !common.ConfirmationPrompt(fmt.Sprintf("Replace the snapshot at %s?", path)) {
			fmt.Println("Update cancelled.")
			return nil
		}
	}

	oldReg, _, err := common.LoadRegistry(cmd.Context)
	if err != nil {
		return fmt.Errorf("error loading current database: %v", err)
	}

	data, err := download(url)
	if err != nil {
		return fmt.Errorf("error downloading %s: %v", url, err)
	}

	newReg, err := dbfile.Install(data, path)
	if err != nil {
		return fmt.Errorf("error installing snapshot: %v", err)
	}

	fmt.Printf("Updated %s -> %s (%s)\n", oldReg.Version, newReg.Version, path)
	if cmd.Verbose {
		fmt.Println(utils.FmtPretty(newReg.Stats()))
	}

	return nil
}

// resolveURL picks the download URL: the --url flag wins, then the configured
// update-url, then the canonical one.
func (cmd *updateCommand) resolveURL() (string, error) {
	if cmd.url != "" {
		return cmd.url, nil
	}

	url, err := cmd.Config.Get(storage.KeyUpdateURL)
	if err != nil {
		if errors.Is(err, storage.ErrorNotFound) {
			return dbfile.DefaultUpdateURL, nil
		}
		return "", fmt.Errorf("error reading configuration: %v", err)
	}
	return url, nil
}

func download(url string) ([]byte, error) {
	stopProgress := common.StartProgressSpinner("Downloading")

	resp, httpErr := http.Get(url) //nolint:gosec // URL comes from authenticated CLI input
	if httpErr != nil {
		stopProgress()
		return nil, httpErr
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		stopProgress()
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	if resp.ContentLength > dbfile.MaxSnapshotSize {
		stopProgress()
		return nil, fmt.Errorf("snapshot too large: %d bytes", resp.ContentLength)
	}

	// Read body with size guard (MaxSnapshotSize+1 so we can detect oversize).
	data, readErr := io.ReadAll(io.LimitReader(resp.Body, dbfile.MaxSnapshotSize+1))
	stopProgress()
	if readErr != nil {
		return nil, fmt.Errorf("reading response body: %w", readErr)
	}
	if len(data) > dbfile.MaxSnapshotSize {
		return nil, fmt.Errorf("snapshot too large: over %d bytes", dbfile.MaxSnapshotSize)
	}

	return data, nil
}
