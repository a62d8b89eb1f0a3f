// internal/app/app.go

// Package app wires the ebony subcommands. Run takes argv and explicit
// writers so integration tests can drive the whole binary in-process.
package app

import (
	"context"
	"errors"
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"ebony/internal/config"
	"ebony/internal/version"
)

const configKey = "app-config"

var (
	debugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "print verbose logs",
	}
	configFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "path to ebony.yaml (missing file = defaults)",
		Value: "ebony.yaml",
	}
)

// Run executes argv and returns the process exit code: 0 success, 1 any
// failure, 130 cancellation.
func Run(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	initLogging(stderr)

	a := New(stdout, stderr)
	if err := a.RunContext(ctx, append([]string{a.Name}, argv...)); err != nil {
		if errors.Is(err, context.Canceled) {
			return 130
		}
		log.Errorf("%v", err)
		return 1
	}
	return 0
}

// New builds the CLI application.
func New(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:            "ebony",
		Version:         version.Version,
		Usage:           "train a dark/light haplotype classifier and score aligned sequences",
		HideHelpCommand: true,
		Writer:          stdout,
		ErrWriter:       stderr,
		Metadata:        map[string]interface{}{},
		Flags: []cli.Flag{
			debugFlag,
			configFlag,
		},
		Commands: []*cli.Command{
			trainCmd,
			scoreCmd,
			extractCmd,
			indexCmd,
		},
		Before: func(c *cli.Context) error {
			if c.Bool(debugFlag.Name) {
				log.SetLevel(log.DebugLevel)
			}
			cfg, err := config.Load(c.String(configFlag.Name))
			if err != nil {
				return err
			}
			c.App.Metadata[configKey] = cfg
			return nil
		},
	}
}

func getConfig(c *cli.Context) *config.Config {
	if cfg, ok := c.App.Metadata[configKey].(*config.Config); ok {
		return cfg
	}
	return config.Default()
}

func initLogging(stderr io.Writer) {
	log.SetOutput(stderr)
	log.SetLevel(log.InfoLevel)
	log.SetFormatter(&log.TextFormatter{
		DisableTimestamp:       true,
		DisableLevelTruncation: true,
		PadLevelText:           true,
	})
}
