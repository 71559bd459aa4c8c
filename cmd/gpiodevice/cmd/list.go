package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List gpiochip devices",
	Long: `List every gpiochip device with its label, number of lines and line
layout checksum. Boards that share a chip label but are wired differently
usually have a different layout checksum.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.printEvents()

	for _, chip := range s.resolver.ListChips() {
		fmt.Printf("%-20s %-12s %-24s %4d lines  layout %02x\n", chip.Path, chip.Name, chip.Label, chip.Lines, chip.Layout)
	}

	return nil
}
