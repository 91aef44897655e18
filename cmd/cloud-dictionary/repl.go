package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newReplCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Search interactively, one query per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := opts.widget(cmd)
			out := cmd.OutOrStdout()
			scanner := bufio.NewScanner(cmd.InOrStdin())

			fmt.Fprint(out, "> ")
			for scanner.Scan() {
				w.SetQuery(strings.TrimSpace(scanner.Text()))
				// Failures are logged by the widget; the last results are shown again
				_ = w.Search(cmd.Context())
				if err := w.Render(out); err != nil {
					return err
				}
				fmt.Fprint(out, "> ")
			}
			fmt.Fprintln(out)
			return scanner.Err()
		},
	}
}
