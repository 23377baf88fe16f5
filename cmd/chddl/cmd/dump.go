package cmd

import (
	"context"

	"github.com/tablekeeper/chddl/pkg/clickhouse"
	"github.com/tablekeeper/chddl/pkg/consts"
	"github.com/tablekeeper/chddl/pkg/format"
	"github.com/urfave/cli/v3"
)

func dumpCmd() *cli.Command {
	return &cli.Command{
		Name:  "dump",
		Usage: "Dump the schema of a live ClickHouse server as formatted DDL",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "dsn",
				Usage:   "ClickHouse address (host:port)",
				Sources: cli.EnvVars("CHDDL_DSN"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dsn := cmd.String("dsn")
			if dsn == "" {
				dsn = currentConfig.ClickHouse.DSN
			}
			if dsn == "" {
				dsn = consts.DefaultClickHouseDSN
			}

			client, err := clickhouse.NewClient(ctx, dsn)
			if err != nil {
				return err
			}
			defer client.Close()

			stmts, err := clickhouse.DumpSchema(ctx, client)
			if err != nil {
				return err
			}

			if err := format.Format(cmd.Writer, format.Defaults, stmts...); err != nil {
				return err
			}
			_, err = cmd.Writer.Write([]byte("\n"))
			return err
		},
	}
}
