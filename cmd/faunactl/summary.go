package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"fauna-field-log/internal/domain/summary"
)

func newSummaryCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print dashboard statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := summary.Compute(c.captures.List(cmd.Context()), c.now().In(c.loc))

			if c.jsonOutput {
				return c.printJSON(s)
			}

			c.printf("Total: %d\n", s.Total)
			for _, k := range s.ByKind {
				c.printf("  %-13s %4d  %3d%%\n", k.Kind, k.Count, k.Percent)
			}
			c.printf("Last %d days: %d\n", summary.RecentWindowDays, s.RecentCount)
			if s.AttackAlert {
				c.printf("ALERT: %d attack(s) in the last %d days\n", s.RecentAttacks, summary.AttackWindowDays)
			}

			if len(s.TopSpecies) > 0 {
				c.printf("Top species:\n")
				w := c.table()
				for i, sp := range s.TopSpecies {
					fmt.Fprintf(w, "  %d.\t%s\t%d\t%d%%\n", i+1, sp.Species, sp.Count, sp.Percent)
				}
				if err := w.Flush(); err != nil {
					return err
				}
			}
			if len(s.Monthly) > 0 {
				c.printf("Monthly:\n")
				for _, m := range s.Monthly {
					c.printf("  %-10s %d\n", m.Label, m.Count)
				}
			}
			return nil
		},
	}
}
