package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/registry"
)

var driversCmd = &cobra.Command{
	Use:   "drivers",
	Short: "List all available frame drivers",
	Long:  `Shows a list of all frame drivers that can run the game.`,
	Args:  cobra.NoArgs,
	Run:   runDrivers,
}

func runDrivers(_ *cobra.Command, _ []string) {
	drivers := registry.List()

	if len(drivers) == 0 {
		fmt.Println("No drivers available.")
		return
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("NAME", "DESCRIPTION")
	for _, d := range drivers {
		t.Row(d.Name, d.Description)
	}

	fmt.Println(t)
	fmt.Println()
	fmt.Println("Run 'breakout play --driver <name>' to use a driver.")
}
