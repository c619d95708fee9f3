package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/swipe-deck/app"
	"github.com/lixenwraith/swipe-deck/audio"
	"github.com/lixenwraith/swipe-deck/cards"
	"github.com/lixenwraith/swipe-deck/config"
	"github.com/lixenwraith/swipe-deck/deck"
	"github.com/lixenwraith/swipe-deck/logging"
	"github.com/lixenwraith/swipe-deck/metrics"
)

// soundVolume is the master volume of the audio cues
const soundVolume = 0.4

// Options stores global CLI options shared between commands
type Options struct {
	ConfigPath  string
	DeckFile    string
	LogLevel    string
	LogFile     string
	MetricsFile string
	NoAudio     bool
}

// Execute builds the root command, runs it with args and returns any error
func Execute(args []string, logger *slog.Logger) error {
	if logger == nil {
		logger = logging.NewLogger(os.Stderr, logging.LevelInfo)
	}
	cmd := newRootCommand(&Options{}, logger)
	cmd.SetArgs(args)
	return cmd.Execute()
}

func newRootCommand(opts *Options, logger *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "swipedeck",
		Short:         "Swipe through a deck of cards in the terminal",
		Long:          "swipedeck shows a stack of cards; drag the top card past a quarter of the screen width (or press h/l) to swipe it away.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			return runDeck(cmd, cfg, logger)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to YAML configuration file")
	cmd.PersistentFlags().StringVar(&opts.DeckFile, "deck", "", "Path to a YAML deck file (default: embedded deck)")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&opts.LogFile, "log-file", "", "Append logs to this file")
	cmd.Flags().StringVar(&opts.MetricsFile, "metrics-file", "", "Write Prometheus metrics to this file on exit")
	cmd.Flags().BoolVar(&opts.NoAudio, "no-audio", false, "Disable sound cues")

	cmd.AddCommand(
		newValidateCommand(opts),
		newDecideCommand(opts),
	)

	return cmd
}

// loadConfig layers CLI flags over file and environment configuration
func loadConfig(cmd *cobra.Command, opts *Options) (*config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("deck") {
		cfg.DeckFile = opts.DeckFile
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.LogLevel
	}
	if flags.Changed("log-file") {
		cfg.LogFile = opts.LogFile
	}
	if flags.Changed("metrics-file") {
		cfg.MetricsFile = opts.MetricsFile
	}
	if opts.NoAudio {
		cfg.Audio = false
	}
	return cfg, nil
}

func runDeck(cmd *cobra.Command, cfg *config.Config, cliLogger *slog.Logger) error {
	logger, closer, err := logging.Open(cfg.LogFile, logging.ParseLevel(cfg.LogLevel))
	if err != nil {
		return err
	}
	defer closer.Close()

	recorder := metrics.NewRecorder()
	observers := deck.Observers{recorder}

	var host *app.App
	if cfg.Audio {
		sound := audio.NewSoundManager(soundVolume)
		if err := sound.Initialize(); err != nil {
			logger.Warn("audio unavailable, continuing without sound", "error", err)
		} else {
			defer sound.Cleanup()
			observers = append(observers, audio.NewFeedback(sound, func() bool {
				return host != nil && host.Deck().Exhausted()
			}))
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := app.Options{
		Config:    cfg,
		Loader:    func() (cards.Deck, error) { return cards.Load(cfg.DeckFile) },
		Logger:    logger,
		Observers: observers,
	}
	err = runScreen(ctx, func(screen tcell.Screen) (*app.App, error) {
		a, err := app.New(screen, opts)
		host = a
		return a, err
	})
	if err != nil {
		return err
	}

	if cfg.MetricsFile != "" {
		if err := recorder.WriteFile(cfg.MetricsFile); err != nil {
			cliLogger.Warn("metrics not written", "path", cfg.MetricsFile, "error", err)
		}
	}

	left, right := host.Tally()
	fmt.Fprintf(cmd.OutOrStdout(), "swiped %d left, %d right\n", left, right)
	logger.Info("session finished", "left", left, "right", right)
	return nil
}

// runScreen owns the terminal for the lifetime of the app built by build
// A panic restores the terminal before propagating
func runScreen(ctx context.Context, build func(tcell.Screen) (*app.App, error)) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			panic(r)
		}
	}()

	screen.EnableMouse()
	screen.HideCursor()

	host, err := build(screen)
	if err != nil {
		return err
	}
	return host.Run(ctx)
}
