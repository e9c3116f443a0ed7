package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"regiontrip/internal/domain"
	"regiontrip/internal/recommend"
)

// districtsCmd fetches one province's districts with the strict client, so API
// problems surface as errors instead of an empty list.
func districtsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "districts <province>",
		Short: "Fetch and print the districts of a province",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := domain.RegionCode(args[0])
			if _, ok := appCtx.Catalog.Province(code); !ok {
				return fmt.Errorf("unknown province code %q", code)
			}
			if err := appCtx.EnsureAppKey(); err != nil {
				return err
			}
			ds, err := appCtx.Client.FetchDistricts(cmd.Context(), code)
			if err != nil {
				return fmt.Errorf("fetching districts of %s: %w", code, err)
			}
			appCtx.View(appCtx.Out).Districts(recommend.FormatAll(ds))
			return nil
		},
	}
}
