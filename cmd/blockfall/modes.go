package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/registry"
)

var modesCmd = &cobra.Command{
	Use:     "modes",
	Aliases: []string{"list"},
	Short:   "List all play modes",
	Long:    `Shows the play modes: where pieces enter and how fast they fall.`,
	Args:    cobra.NoArgs,
	Run:     runModes,
}

func runModes(cmd *cobra.Command, _ []string) {
	modes := registry.Defaults().List()
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Available modes:")
	fmt.Fprintln(out)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  ID\tTitle\tSpawn row\tGravity\tDescription")
	fmt.Fprintln(tw, "  --\t-----\t---------\t-------\t-----------")
	for _, m := range modes {
		fmt.Fprintf(tw, "  %s\t%s\t%d\t%dms\t%s\n", m.ID, m.Title, m.SpawnY, m.TickMs, m.Description)
	}
	tw.Flush()

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'blockfall play --mode <id>' to play a mode.")
}
