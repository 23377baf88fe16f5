package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/tablekeeper/chddl/pkg/ast"
	"github.com/tablekeeper/chddl/pkg/parser"
	"github.com/urfave/cli/v3"
)

func astCmd() *cli.Command {
	return &cli.Command{
		Name:      "ast",
		Usage:     "Parse DDL and dump the syntax tree",
		ArgsUsage: "<file>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return errors.New("expected exactly one input file")
			}
			path := cmd.Args().First()

			src, err := os.ReadFile(path)
			if err != nil {
				return errors.Wrapf(err, "reading %s", path)
			}

			stmts, err := parser.ParseStatements(string(src))
			if err != nil {
				return errors.Wrapf(err, "parsing %s", path)
			}

			for _, stmt := range stmts {
				dumpNode(cmd, stmt, 0)
			}
			return nil
		},
	}
}

func dumpNode(cmd *cli.Command, n ast.Node, depth int) {
	fmt.Fprintf(cmd.Writer, "%s%T %s\n",
		strings.Repeat("  ", depth), n, ast.String(n))
	for _, child := range n.Children() {
		dumpNode(cmd, child, depth+1)
	}
}
