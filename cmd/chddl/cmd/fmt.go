package cmd

import (
	"context"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/tablekeeper/chddl/pkg/consts"
	"github.com/tablekeeper/chddl/pkg/format"
	"github.com/tablekeeper/chddl/pkg/parser"
	"github.com/urfave/cli/v3"
)

func fmtCmd() *cli.Command {
	return &cli.Command{
		Name:      "fmt",
		Usage:     "Reformat DDL files to the canonical style",
		ArgsUsage: "<file>...",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "write",
				Aliases: []string{"w"},
				Usage:   "write the result back to the file instead of stdout",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() == 0 {
				return errors.New("no input files")
			}

			opts := format.Defaults
			opts.OneLine = currentConfig.Format.OneLine

			for _, path := range cmd.Args().Slice() {
				src, err := os.ReadFile(path)
				if err != nil {
					return errors.Wrapf(err, "reading %s", path)
				}

				stmts, err := parser.ParseStatements(string(src))
				if err != nil {
					return errors.Wrapf(err, "parsing %s", path)
				}

				var out strings.Builder
				if err := format.Format(&out, opts, stmts...); err != nil {
					return err
				}
				out.WriteByte('\n')

				if cmd.Bool("write") {
					if err := os.WriteFile(path, []byte(out.String()), consts.ModeFile); err != nil {
						return errors.Wrapf(err, "writing %s", path)
					}
					continue
				}
				if _, err := cmd.Writer.Write([]byte(out.String())); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
