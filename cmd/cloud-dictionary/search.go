package main

import (
	"strings"

	"github.com/spf13/cobra"
)

func newSearchCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "search [query]",
		Short: "Search terms and definitions",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := opts.widget(cmd)
			w.SetQuery(strings.Join(args, " "))
			// Failures are logged by the widget; the prior (empty) results still render
			_ = w.Search(cmd.Context())
			return w.Render(cmd.OutOrStdout())
		},
	}
}
