package commands

import (
	"github.com/spf13/cobra"

	"regiontrip/internal/domain"
)

// spots <code>: print the attractions recorded for a province or district code.
func spotsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "spots <code>",
		Short: "Print the attractions of a region code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := domain.RegionCode(args[0])
			appCtx.View(appCtx.Out).Attractions(appCtx.Catalog.Attractions(code))
			return nil
		},
	}
}
