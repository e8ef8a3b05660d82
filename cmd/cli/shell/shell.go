package shell

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/jpnorenam/usb-ids/cmd/cli/common"
	"github.com/jpnorenam/usb-ids/pkg/types"
	"github.com/jpnorenam/usb-ids/pkg/usbids"
	"github.com/spf13/cobra"
)

type shellCommand struct {
	*common.Context
}

func ShellCommand(ctx *common.Context) *cobra.Command {
	var cmd shellCommand
	cmd.Context = ctx

	cobraCmd := &cobra.Command{
		Use:               "shell",
		Short:             "Interactive lookup shell",
		Long:              "Start an interactive shell for repeated lookups against the loaded database.",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE:              cmd.run,
	}

	return cobraCmd
}

func (cmd *shellCommand) run(_ *cobra.Command, _ []string) error {
	reg, source, err := common.LoadRegistry(cmd.Context)
	if err != nil {
		return fmt.Errorf("error loading database: %v", err)
	}

	fmt.Printf("Database version %s (%s)\n", reg.Version, source)
	fmt.Println("Type 'help' for the available commands. CTRL-C to quit.")

	rlConfig := &readline.Config{
		Prompt: color.RedString("» "),
		AutoComplete: readline.NewPrefixCompleter(
			readline.PcItem("vendor"),
			readline.PcItem("device"),
			readline.PcItem("class"),
			readline.PcItem("search"),
			readline.PcItem("help"),
			readline.PcItem("exit"),
		),
		DisableAutoSaveHistory: true,
		InterruptPrompt:        "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	}

	rl, err := readline.NewEx(rlConfig)
	if err != nil {
		return fmt.Errorf("error initializing readline: %w", err)
	}
	defer func() { rl.Close() }()
	log.SetOutput(rl.Stderr())

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if len(line) == 0 {
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" {
			break
		}

		rl.SaveHistory(line)
		if output, err := eval(reg, line); err != nil {
			fmt.Printf("Error: %v\n", err)
		} else {
			fmt.Println(output)
		}
	}

	return nil
}

// eval runs a single shell command against reg and returns a one-line answer.
func eval(reg *usbids.Registry, line string) (string, error) {
	fields := strings.Fields(line)
	command, args := fields[0], fields[1:]

	switch command {
	case "help":
		return strings.TrimSpace(helpText), nil
	case "vendor":
		if len(args) != 1 {
			return "", errors.New("usage: vendor <vid>")
		}
		vid, err := types.ParseHex16(args[0])
		if err != nil {
			return "", err
		}
		vendor := reg.Vendor(vid)
		if vendor == nil {
			return "", fmt.Errorf("no vendor with id %04x", vid)
		}
		return vendor.Name, nil
	case "device":
		if len(args) != 2 {
			return "", errors.New("usage: device <vid> <pid>")
		}
		vid, err := types.ParseHex16(args[0])
		if err != nil {
			return "", err
		}
		pid, err := types.ParseHex16(args[1])
		if err != nil {
			return "", err
		}
		return reg.Describe(vid, pid), nil
	case "class":
		return evalClass(reg, args)
	case "search":
		if len(args) == 0 {
			return "", errors.New("usage: search <query>")
		}
		return evalSearch(reg, strings.Join(args, " "))
	default:
		return "", fmt.Errorf("unknown command %q, try 'help'", command)
	}
}

func evalClass(reg *usbids.Registry, args []string) (string, error) {
	if len(args) == 0 {
		var lines []string
		for _, class := range reg.SortedClasses() {
			lines = append(lines, fmt.Sprintf("%02x  %s", uint8(class.ID), class.Name))
		}
		return strings.Join(lines, "\n"), nil
	}
	if len(args) > 3 {
		return "", errors.New("usage: class [<class> [<subclass> [<protocol>]]]")
	}

	codes := make([]uint8, len(args))
	for i, arg := range args {
		code, err := types.ParseHex8(arg)
		if err != nil {
			return "", err
		}
		codes[i] = code
	}

	switch len(codes) {
	case 1:
		class := reg.Class(codes[0])
		if class == nil {
			return "", fmt.Errorf("no class with code %02x", codes[0])
		}
		return class.Name, nil
	case 2:
		subclass := reg.SubClass(codes[0], codes[1])
		if subclass == nil {
			return "", fmt.Errorf("no subclass %02x:%02x", codes[0], codes[1])
		}
		return subclass.Name, nil
	default:
		protocol := reg.Protocol(codes[0], codes[1], codes[2])
		if protocol == nil {
			return "", fmt.Errorf("no protocol %02x:%02x:%02x", codes[0], codes[1], codes[2])
		}
		return protocol.Name, nil
	}
}

func evalSearch(reg *usbids.Registry, query string) (string, error) {
	matches := reg.Search(query)
	if len(matches) == 0 {
		return "", fmt.Errorf("no matches for %q", query)
	}

	var lines []string
	for _, match := range matches {
		if match.Device != nil {
			lines = append(lines, fmt.Sprintf("%04x:%04x  %s (%s)",
				uint16(match.Vendor.ID), uint16(match.Device.ID),
				match.Device.Name, match.Vendor.Name))
		} else {
			lines = append(lines, fmt.Sprintf("%04x       %s",
				uint16(match.Vendor.ID), match.Vendor.Name))
		}
	}
	return strings.Join(lines, "\n"), nil
}

const helpText = `
vendor <vid>                           look up a vendor by id
device <vid> <pid>                     look up a device by vendor and product id
class [<class> [<subclass> [<prot>]]]  look up a class, subclass or protocol;
                                       without arguments, list all classes
search <query>                         search vendors and devices by name
exit                                   leave the shell
`

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}
