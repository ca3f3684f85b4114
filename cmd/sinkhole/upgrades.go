package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sinkhole/internal/config"
	"github.com/vovakirdan/sinkhole/internal/games/sinkhole"
)

var upgradesCmd = &cobra.Command{
	Use:   "upgrades",
	Short: "Show the upgrade table",
	Long: `List every upgrade with the name and description the game will show.
Use --upgrades to check a custom table before playing with it.

Examples:
  sinkhole upgrades
  sinkhole upgrades --upgrades ./upgrades.csv`,
	Args: cobra.NoArgs,
	Run:  runUpgrades,
}

func init() {
	upgradesCmd.Flags().StringVar(&flagUpgrades, "upgrades", "", "Path to custom upgrade table (YAML or CSV)")
}

func runUpgrades(_ *cobra.Command, _ []string) {
	table, err := config.LoadUpgrades(flagUpgrades)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading upgrades: %v\n", err)
		os.Exit(1)
	}

	t := newTable("#", "Kind", "Name", "Description", "Repeatable")
	for _, k := range sinkhole.AllUpgrades() {
		info := table.Lookup(int(k))
		repeat := "no"
		if k.Repeatable() {
			repeat = "yes"
		}
		t.Row(strconv.Itoa(int(k)), k.String(), info.Name, info.Description, repeat)
	}

	fmt.Println(tableTitleStyle.Render("Upgrades"))
	fmt.Println()
	fmt.Println(t.Render())

	if extra := len(table) - len(sinkhole.AllUpgrades()); extra > 0 {
		fmt.Println()
		fmt.Println(tableDimStyle.Render(fmt.Sprintf("%d extra table rows are never offered.", extra)))
	}
}
