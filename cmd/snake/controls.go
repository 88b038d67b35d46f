package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/term-snake/internal/platform/tui"
)

var controlsCmd = &cobra.Command{
	Use:   "controls",
	Short: "Show key bindings",
	Args:  cobra.NoArgs,
	Run:   runControls,
}

func runControls(cmd *cobra.Command, args []string) {
	fmt.Fprintln(cmd.OutOrStdout(), controlsTable(tui.DefaultKeyMap()))
}

// controlsTable renders the key bindings as a table.
func controlsTable(km tui.KeyMap) string {
	rows := make([][]string, 0, len(km.Bindings()))
	for _, b := range km.Bindings() {
		rows = append(rows, []string{b.Help().Key, b.Help().Desc})
	}

	header := lipgloss.NewStyle().Bold(true)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderHeader(true).
		BorderRow(false).
		Headers("Key", "Action").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	return t.Render()
}
