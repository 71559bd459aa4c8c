package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BertoldVdb/gpiodevice/gpiodevice"
	"github.com/BertoldVdb/gpiodevice/linux-pio/gpio"
	"github.com/spf13/cobra"
)

const consumerName = "gpiodevice"

var getCmd = &cobra.Command{
	Use:   "get NAME...",
	Short: "Read lines by name",
	Long: `Find the chip that has all named lines free, request them as inputs
and print their values.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGet,
}

var setCmd = &cobra.Command{
	Use:   "set NAME=VALUE...",
	Short: "Drive lines by name",
	Long: `Find the chip that has all named lines free, request them as outputs
and drive them. The lines are released when the command exits.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSet,
}

func init() {
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(setCmd)
}

// lineRequests builds one request per name. values may be nil.
func lineRequests(names []string, values []uint8) []gpio.LineRequest {
	reqs := make([]gpio.LineRequest, len(names))
	for i, name := range names {
		reqs[i].Line.Name = name
		if values != nil {
			reqs[i].DefaultValue = values[i]
		}
	}
	return reqs
}

/* The names must already be split, the same slice is used for the chip search and the request */
func openLines(names []string, flags gpio.RequestFlag, values []uint8) (*gpio.Chip, *gpio.Lines, error) {
	s, err := newSession()
	if err != nil {
		return nil, nil, err
	}
	defer s.printEvents()

	found, err := s.resolver.FindChipByPins(names, false)
	if err != nil {
		return nil, nil, err
	}

	chip, ok := found.(*gpio.Chip)
	if !ok {
		found.Close()
		return nil, nil, errors.New("resolved chip does not support line requests")
	}

	lines, err := chip.OpenLines(consumerName, flags, lineRequests(names, values))
	if err != nil {
		chip.Close()
		return nil, nil, fmt.Errorf("failed to request lines: %w", err)
	}

	return chip, lines, nil
}

func runGet(cmd *cobra.Command, args []string) error {
	names := gpiodevice.ParseNames(args...)
	if len(names) == 0 {
		return errors.New("no line names given")
	}

	chip, lines, err := openLines(names, gpio.RequestInput, nil)
	if err != nil {
		return err
	}
	defer chip.Close()
	defer lines.Close()

	values, err := lines.GetValues()
	if err != nil {
		return err
	}

	for i, name := range names {
		v := 0
		if values[i] {
			v = 1
		}
		fmt.Printf("%s=%d\n", name, v)
	}

	return nil
}

// parseAssignments parses NAME=0 and NAME=1 arguments. A comma in a name is
// rejected because every assignment drives exactly one line.
func parseAssignments(args []string) ([]string, []bool, []uint8, error) {
	names := make([]string, len(args))
	values := make([]bool, len(args))
	defaults := make([]uint8, len(args))

	for i, arg := range args {
		parts := strings.SplitN(arg, "=", 2)
		if len(parts) != 2 || (parts[1] != "0" && parts[1] != "1") {
			return nil, nil, nil, fmt.Errorf("invalid assignment %q, expected NAME=0 or NAME=1", arg)
		}

		name := strings.TrimSpace(parts[0])
		if len(name) == 0 || strings.Contains(name, ",") {
			return nil, nil, nil, fmt.Errorf("invalid line name in %q", arg)
		}

		names[i] = name
		values[i] = parts[1] == "1"
		if values[i] {
			defaults[i] = 1
		}
	}

	return names, values, defaults, nil
}

func runSet(cmd *cobra.Command, args []string) error {
	names, values, defaults, err := parseAssignments(args)
	if err != nil {
		return err
	}

	chip, lines, err := openLines(names, gpio.RequestOutput, defaults)
	if err != nil {
		return err
	}
	defer chip.Close()
	defer lines.Close()

	return lines.SetValues(values)
}
