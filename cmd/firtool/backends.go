package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/cwbudde/algo-blockfir/dsp/filter/fir"
	"github.com/spf13/cobra"
)

func newBackendsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backends",
		Short: "List registered FIR kernel backends",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "Backend\tDefault\n")
			fmt.Fprintf(tw, "-------\t-------\n")

			def := fir.DefaultBackend()
			for _, name := range fir.Backends() {
				mark := ""
				if name == def {
					mark = "*"
				}

				fmt.Fprintf(tw, "%s\t%s\n", name, mark)
			}

			return tw.Flush()
		},
	}
}
