package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func provincesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "provinces",
		Short: "Print the province codes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range appCtx.Catalog.Provinces() {
				fmt.Fprintf(appCtx.Out, "%s: %s\n", p.Code, p.Name)
			}
			return nil
		},
	}
}
