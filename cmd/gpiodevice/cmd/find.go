package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/BertoldVdb/gpiodevice/gpiodevice"
	"github.com/spf13/cobra"
)

var (
	findLabels        []string
	findLabelPins     []string
	findPins          []string
	findIgnoreClaimed bool
	findPlatform      bool
)

var findCmd = &cobra.Command{
	Use:   "find",
	Short: "Find a gpiochip device",
	Long: `Find a gpiochip device by label, by line names or by platform.

Examples:
  gpiodevice find --label pinctrl-rp1,pinctrl-bcm2711
  gpiodevice find --label INT3450:00 --pin led=GPP_B14 --pin button=12
  gpiodevice find --pins "GPIO17, GPIO27" --ignore-claimed
  gpiodevice find --platform`,
	Args: cobra.NoArgs,
	RunE: runFind,
}

func init() {
	rootCmd.AddCommand(findCmd)

	findCmd.Flags().StringSliceVarP(&findLabels, "label", "l", nil,
		"acceptable chip labels")
	findCmd.Flags().StringArrayVar(&findLabelPins, "pin", nil,
		"with --label: pin that must be free, as label=name or label=offset")
	findCmd.Flags().StringSliceVarP(&findPins, "pins", "p", nil,
		"line names the chip must have")
	findCmd.Flags().BoolVar(&findIgnoreClaimed, "ignore-claimed", false,
		"with --pins: accept lines claimed by other consumers")
	findCmd.Flags().BoolVar(&findPlatform, "platform", false,
		"use the labels expected for this platform")
}

func parsePin(s string) (gpiodevice.Pin, error) {
	parts := strings.SplitN(s, "=", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return gpiodevice.Pin{}, fmt.Errorf("invalid pin %q, expected label=name or label=offset", s)
	}

	if offset, err := strconv.ParseUint(parts[1], 10, 32); err == nil {
		return gpiodevice.ByOffset(parts[0], uint32(offset)), nil
	}
	return gpiodevice.ByName(parts[0], parts[1]), nil
}

func runFind(cmd *cobra.Command, args []string) error {
	modes := 0
	for _, set := range []bool{len(findLabels) > 0, len(findPins) > 0, findPlatform} {
		if set {
			modes++
		}
	}
	if modes != 1 {
		return errors.New("exactly one of --label, --pins or --platform is required")
	}

	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.printEvents()

	var chip gpiodevice.Chip
	switch {
	case len(findLabels) > 0:
		var pins gpiodevice.PinSpec
		for _, p := range findLabelPins {
			pin, err := parsePin(p)
			if err != nil {
				return err
			}
			pins = append(pins, pin)
		}
		chip, err = s.resolver.FindChipByLabel(findLabels, pins)

	case len(findPins) > 0:
		chip, err = s.resolver.FindChipByPins(findPins, findIgnoreClaimed)

	default:
		chip, err = s.resolver.FindChipByPlatform()
	}

	if err != nil {
		return err
	}
	defer chip.Close()

	info := chip.GetChipInfo()
	path := info.Name
	if p, ok := chip.(interface{ Path() string }); ok {
		path = p.Path()
	}
	fmt.Printf("%s %s (%d lines)\n", path, info.Label, info.Lines)

	return nil
}
