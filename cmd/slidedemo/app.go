package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/phanxgames/slidebutton"
	"github.com/phanxgames/slidebutton/internal/logging"
	"github.com/phanxgames/slidebutton/stage"
	"github.com/phanxgames/slidebutton/tui"
)

const defaultText = "Slide to confirm"

func newApp() *cli.Command {
	var closeLogger func() error
	return &cli.Command{
		Name:  "slidedemo",
		Usage: "drive a slide-to-confirm button",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "button config file (.toml, .yaml or .yml)",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "debug, info, warn or error",
				Sources: cli.EnvVars(logging.EnvLogLevel),
			},
			&cli.StringFlag{
				Name:    "log-format",
				Value:   "text",
				Usage:   "text or json",
				Sources: cli.EnvVars(logging.EnvLogFormat),
			},
			&cli.StringFlag{
				Name:    "log-file",
				Usage:   "write logs to a rotating file instead of stderr",
				Sources: cli.EnvVars(logging.EnvLogFile),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			cfg := logging.DefaultConfig()
			cfg.Level = cmd.String("log-level")
			cfg.Format = cmd.String("log-format")
			cfg.File = cmd.String("log-file")
			closeFn, err := logging.Init(cfg)
			if err != nil {
				return ctx, fmt.Errorf("init logging: %w", err)
			}
			closeLogger = closeFn
			return ctx, nil
		},
		After: func(ctx context.Context, cmd *cli.Command) error {
			if closeLogger == nil {
				return nil
			}
			err := closeLogger()
			closeLogger = nil
			return err
		},
		Commands: []*cli.Command{
			windowCommand(),
			tuiCommand(),
			scriptCommand(),
		},
	}
}

func windowCommand() *cli.Command {
	return &cli.Command{
		Name:  "window",
		Usage: "open the button in a window",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "auto-reset", Value: true, Usage: "reset after every confirmation"},
			&cli.BoolFlag{Name: "show-fps", Usage: "print FPS and TPS in the corner"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := buttonConfig(cmd)
			if err != nil {
				return err
			}
			const width, height = 480, 160
			style := stage.DefaultViewStyle()
			scene, err := stage.NewScene(style, cfg,
				stage.WithLogger(slog.Default()),
				stage.WithPosition((width-style.Width)/2, (height-style.Height)/2),
			)
			if err != nil {
				return err
			}
			addDemoListener(scene.Button(), cmd.Bool("auto-reset"))
			return stage.Run(scene, stage.RunConfig{
				Title:   "slidedemo",
				Width:   width,
				Height:  height,
				ShowFPS: cmd.Bool("show-fps"),
			})
		},
	}
}

func tuiCommand() *cli.Command {
	return &cli.Command{
		Name:  "tui",
		Usage: "run the button in the terminal",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "width", Value: tui.DefaultCellStyle().Width, Usage: "control width in cells"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := buttonConfig(cmd)
			if err != nil {
				return err
			}
			style := tui.DefaultCellStyle()
			if w := cmd.Int("width"); w > style.HandleWidth+style.LeadingMargin+style.TrailingMargin {
				style.Width = w
			}
			// Without a log file, log lines would scribble over the screen.
			logger := slog.Default()
			if cmd.String("log-file") == "" {
				logger = slog.New(slog.DiscardHandler)
			}
			m, err := tui.NewModel(style, cfg, tui.WithLogger(logger))
			if err != nil {
				return err
			}
			addDemoListener(m.Button(), false)
			return tui.Run(ctx, m)
		},
	}
}

func scriptCommand() *cli.Command {
	return &cli.Command{
		Name:      "script",
		Usage:     "run a JSON input script headlessly and report failed expectations",
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "max-frames", Value: 3600, Usage: "give up after this many frames"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.Args().First()
			if path == "" {
				return fmt.Errorf("script: missing FILE argument")
			}
			cfg, err := buttonConfig(cmd)
			if err != nil {
				return err
			}
			runner, err := stage.LoadTestScriptFile(path)
			if err != nil {
				return err
			}
			scene, err := stage.NewScene(stage.DefaultViewStyle(), cfg, stage.WithLogger(slog.Default()))
			if err != nil {
				return err
			}
			addDemoListener(scene.Button(), false)
			scene.SetTestRunner(runner)
			if err := scene.RunScript(cmd.Int("max-frames")); err != nil {
				return fmt.Errorf("script %s: %w", path, err)
			}
			fmt.Fprintf(cmd.Root().Writer, "%s: ok after %d frames\n", path, scene.Frame())
			return nil
		},
	}
}

// buttonConfig loads --config, or the defaults when it is not set.
func buttonConfig(cmd *cli.Command) (slidebutton.Config, error) {
	cfg := slidebutton.DefaultConfig()
	if path := cmd.String("config"); path != "" {
		loaded, err := slidebutton.LoadConfig(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if cfg.Text == "" {
		cfg.Text = defaultText
	}
	return cfg, nil
}

func addDemoListener(b *slidebutton.Button, autoReset bool) {
	confirmations := 0
	b.AddOnSlideListener(slidebutton.Listen(func(b *slidebutton.Button) error {
		confirmations++
		slog.Info("slide confirmed", "text", b.Text(), "count", confirmations)
		if autoReset {
			b.Reset()
		}
		return nil
	}))
}
