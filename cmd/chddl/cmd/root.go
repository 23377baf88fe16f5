// Package cmd wires up the chddl command line interface.
package cmd

import (
	"context"
	"os"

	"github.com/tablekeeper/chddl/pkg/config"
	"github.com/tablekeeper/chddl/pkg/consts"
	"github.com/urfave/cli/v3"
)

var currentConfig = &config.Config{}

// Run creates and executes the chddl CLI application.
//
// A chddl.yaml in the working directory (or the file named by --config) is
// loaded before any command runs; commands fall back to built-in defaults
// when it is absent.
func Run(ctx context.Context, version string, args []string) error {
	app := &cli.Command{
		Name:    "chddl",
		Usage:   "Parse, format and dump ClickHouse DDL",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "the chddl config file",
				Sources: cli.EnvVars("CHDDL_CONFIG"),
				Value:   consts.DefaultConfigFile,
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			path := cmd.String("config")
			if _, err := os.Stat(path); os.IsNotExist(err) {
				return ctx, nil
			}

			cfg, err := config.LoadFile(path)
			if err != nil {
				return ctx, err
			}
			currentConfig = cfg
			return ctx, nil
		},
		Commands: []*cli.Command{
			fmtCmd(),
			checkCmd(),
			astCmd(),
			dumpCmd(),
		},
	}

	return app.Run(ctx, args)
}
