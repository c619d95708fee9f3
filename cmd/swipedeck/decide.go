package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/swipe-deck/cards"
	"github.com/lixenwraith/swipe-deck/config"
	"github.com/lixenwraith/swipe-deck/deck"
)

// newDecideCommand creates the "decide" subcommand that evaluates a release offset
func newDecideCommand(opts *Options) *cobra.Command {
	var width, dx float64

	cmd := &cobra.Command{
		Use:   "decide",
		Short: "Show the decision and card rotation for a release at horizontal offset dx",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(opts.ConfigPath)
			if err != nil {
				return err
			}
			d, err := deck.New(cfg.DeckConfig(width), deck.Props[cards.Card]{})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "width=%g threshold=%g dx=%g rotation=%.2f decision=%s\n",
				d.Config().ScreenWidth, d.Threshold(), dx, d.Rotation(dx), deck.Decide(dx, d.Threshold()))
			return nil
		},
	}

	cmd.Flags().Float64Var(&width, "width", 400, "Screen width in length units")
	cmd.Flags().Float64Var(&dx, "dx", 0, "Horizontal release offset")

	return cmd
}
