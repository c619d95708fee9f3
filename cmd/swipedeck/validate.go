package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/swipe-deck/cards"
)

// newValidateCommand creates the "validate" subcommand that loads a deck and lists its cards
func newValidateCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [deck-file]",
		Short: "Load a deck file and report its cards",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.DeckFile
			if len(args) == 1 {
				path = args[0]
			}
			d, err := cards.Load(path)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			name := d.Name
			if name == "" {
				name = "(unnamed)"
			}
			fmt.Fprintf(out, "deck %s: %d cards\n", name, len(d.Cards))
			for i, c := range d.Cards {
				fmt.Fprintf(out, "%3d  %-36s  %s\n", i, c.ID, c.Title)
			}
			return nil
		},
	}
}
