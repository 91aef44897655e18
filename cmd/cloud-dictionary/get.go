package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"cloud-dictionary-api/internal/models"
)

func newGetCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "get <term>",
		Short: "Look up one term by its exact name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			term, err := opts.client().Lookup(cmd.Context(), args[0])
			if errors.Is(err, models.ErrTermNotFound) {
				return fmt.Errorf("term %q not found", args[0])
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			color.New(color.Bold).Fprint(out, term.Term)
			fmt.Fprintf(out, ": %s\n", term.Definition)
			return nil
		},
	}
}
