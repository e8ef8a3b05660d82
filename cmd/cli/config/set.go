package config

import (
	"fmt"
	"strings"

	"github.com/jpnorenam/usb-ids/cmd/cli/common"
	"github.com/spf13/cobra"
)

type setCommand struct {
	*common.Context
}

func SetCommand(ctx *common.Context) *cobra.Command {
	var cmd setCommand
	cmd.Context = ctx

	cobraCmd := &cobra.Command{
		Use:               "set <key=value>",
		Short:             "Set configurations",
		Long:              "Set a configuration. An empty value unsets the key.",
		GroupID:           groupID,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE:              cmd.run,
	}

	return cobraCmd
}

func (cmd *setCommand) run(_ *cobra.Command, args []string) error {
	return cmd.setValue(args[0])
}

func (cmd *setCommand) setValue(keyValue string) error {
	if keyValue[0] == '=' {
		return fmt.Errorf("key must not start with an equal sign")
	}

	// The value itself can contain an equal sign, so we split only on the first occurrence
	parts := strings.SplitN(keyValue, "=", 2)
	if len(parts) != 2 {
		return fmt.Errorf("expected key=value, got %q", keyValue)
	}
	key, value := parts[0], parts[1]

	if value == "" {
		if err := cmd.Config.Unset(key); err != nil {
			return fmt.Errorf("error unsetting %q: %v", key, err)
		}
		return nil
	}

	if err := cmd.Config.Set(key, value); err != nil {
		return fmt.Errorf("error setting value %q for %q: %v", value, key, err)
	}

	return nil
}
