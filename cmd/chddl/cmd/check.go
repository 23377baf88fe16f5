package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/tablekeeper/chddl/pkg/parser"
	"github.com/urfave/cli/v3"
)

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Parse DDL files and report syntax errors",
		ArgsUsage: "<file>...",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() == 0 {
				return errors.New("no input files")
			}

			failed := false
			for _, path := range cmd.Args().Slice() {
				src, err := os.ReadFile(path)
				if err != nil {
					return errors.Wrapf(err, "reading %s", path)
				}

				stmts, err := parser.ParseStatements(string(src))
				if err != nil {
					failed = true
					fmt.Fprintf(cmd.ErrWriter, "%s: %v\n", path, err)
					continue
				}
				fmt.Fprintf(cmd.Writer, "%s: %d statement(s) OK\n", path, len(stmts))
			}

			if failed {
				return errors.New("syntax errors found")
			}
			return nil
		},
	}
}
