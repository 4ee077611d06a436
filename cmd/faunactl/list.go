package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"fauna-field-log/internal/domain/captures"
)

type listItem struct {
	ID           string  `json:"id"`
	Date         string  `json:"date"`
	Time         string  `json:"time"`
	Kind         string  `json:"kind"`
	Species      string  `json:"species"`
	Place        string  `json:"place"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Photos       int     `json:"photos"`
	Synchronized bool    `json:"synchronized"`
}

func newListCmd(c *cli) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored captures in insertion order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var filter captures.Kind
			if kind != "" {
				k, err := captures.ParseKind(kind)
				if err != nil {
					return err
				}
				filter = k
			}

			items := make([]listItem, 0)
			for _, e := range c.captures.List(cmd.Context()) {
				if filter != "" && e.Kind != filter {
					continue
				}
				items = append(items, listItem{
					ID:           e.ID,
					Date:         e.Date,
					Time:         e.Time,
					Kind:         string(e.Kind),
					Species:      e.Species,
					Place:        e.Place,
					Latitude:     e.Latitude,
					Longitude:    e.Longitude,
					Photos:       len(e.Photos),
					Synchronized: e.Synchronized,
				})
			}

			if c.jsonOutput {
				return c.printJSON(items)
			}
			if len(items) == 0 {
				c.printf("No captures.\n")
				return nil
			}

			w := c.table()
			fmt.Fprintln(w, "ID\tDATE\tTIME\tKIND\tSPECIES\tPLACE\tPHOTOS")
			for _, it := range items {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%d\n", it.ID, it.Date, it.Time, it.Kind, it.Species, it.Place, it.Photos)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "", "filter by kind (avistamiento, rastro, ataque)")
	return cmd
}
