package config

import (
	"fmt"

	"github.com/jpnorenam/usb-ids/cmd/cli/common"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type getCommand struct {
	*common.Context
}

func GetCommand(ctx *common.Context) *cobra.Command {
	var cmd getCommand
	cmd.Context = ctx

	cobraCmd := &cobra.Command{
		Use:               "get [<key>]",
		Short:             "Print configurations",
		Long:              "Print one or more configurations",
		GroupID:           groupID,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE:              cmd.run,
	}

	return cobraCmd
}

func (cmd *getCommand) run(_ *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.getValues()
	} else {
		return cmd.getValue(args[0])
	}
}

func (cmd *getCommand) getValue(key string) error {
	value, err := cmd.Config.Get(key)
	if err != nil {
		return fmt.Errorf("error getting value of %q: %v", key, err)
	}

	fmt.Println(value)

	return nil
}

func (cmd *getCommand) getValues() error {
	values, err := cmd.Config.GetAll()
	if err != nil {
		return fmt.Errorf("error getting values: %v", err)
	}

	// print config values
	yamlOutput, err := yaml.Marshal(values)
	if err != nil {
		return fmt.Errorf("error serializing values: %v", err)
	}
	fmt.Printf("%s", yamlOutput) // the yaml output ends with a newline

	return nil
}
