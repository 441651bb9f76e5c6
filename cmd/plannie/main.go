package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/csheth/plannie/internal/config"
	"github.com/csheth/plannie/internal/media"
	"github.com/csheth/plannie/internal/responder"
	"github.com/csheth/plannie/internal/tui"
)

type options struct {
	ConfigPath string
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opt := &options{}
	cmd := &cobra.Command{
		Use:           "plannie",
		Short:         "Chat-style assistant prototype for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opt.Run(cmd)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opt.ConfigPath, "config", "", "path to a plannie.yaml config file")
	flags.Duration("latency", responder.DefaultLatency, "simulated responder latency")
	flags.String("library-policy", string(config.PolicySubmit), "what picking a library question does (submit, populate)")
	flags.String("reasoning-style", string(config.StyleStaged), "pending indicator style (staged, rotating)")
	flags.String("log-file", "", "write JSON logs to this file")
	flags.Bool("no-alt-screen", false, "disable the alternate screen buffer")
	flags.Bool("no-images", false, "skip downloading answer images")
	return cmd
}

// Run loads configuration and blocks until the program exits.
func (o *options) Run(cmd *cobra.Command) error {
	cfg, err := config.Load(o.ConfigPath, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := cfg.Log.NewLogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	var images *media.Cache
	if cfg.Media.FetchImages {
		images, err = media.NewCache(media.Options{
			Dir:     cfg.Media.CacheDir,
			Timeout: cfg.Media.Timeout,
			Logger:  logger,
		})
		if err != nil {
			logger.Warn("image cache disabled", zap.Error(err))
		}
	}

	r := responder.New(responder.Config{Latency: cfg.Responder.Latency})
	logger.Info("starting",
		zap.String("responder", r.Name()),
		zap.String("library_policy", string(cfg.Library.OnSelect)),
		zap.String("reasoning_style", string(cfg.Reveal.ReasoningStyle)),
	)

	opts := []tea.ProgramOption{tea.WithMouseCellMotion()}
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	program := tea.NewProgram(
		tui.New(tui.Config{
			Settings:  cfg,
			Responder: r,
			Images:    images,
			Logger:    logger,
		}),
		opts...,
	)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("program error: %w", err)
	}
	return nil
}
