package commands

import (
	"fmt"
	"time"

	"github.com/edu-tools/board-atlas/pkg/services/period"
	"github.com/spf13/cobra"
)

func NewPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the quick period presets and their current ranges",
		RunE: func(cmd *cobra.Command, _ []string) error {
			now := time.Now()
			for _, p := range period.Catalog() {
				rng := p.Compute(now)
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "%-14s %s to %s  (%s)\n",
					p.ID, period.FormatDate(rng.Start), period.FormatDate(rng.End), p.Description)
				if err != nil {
					return err
				}
			}
			return nil
		},
	}
}
