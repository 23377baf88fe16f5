// Package clickhouse extracts DDL from a live ClickHouse server and
// normalizes it through the parser.
package clickhouse

import (
	"context"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/pkg/errors"
)

// Client is a connection to a ClickHouse server.
type Client struct {
	conn driver.Conn
}

// NewClient connects to the server at dsn ("host:port") and verifies the
// connection with a ping.
func NewClient(ctx context.Context, dsn string) (*Client, error) {
	conn, err := clickhouse.Open(&clickhouse.Options{
		Addr: []string{dsn},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to connect to %s", dsn)
	}

	if err := conn.Ping(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to ping %s", dsn)
	}
	return &Client{conn: conn}, nil
}

// Close closes the connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// Exec runs a DDL statement against the server.
func (c *Client) Exec(ctx context.Context, sql string) error {
	return c.conn.Exec(ctx, sql)
}

func (c *Client) queryStrings(ctx context.Context, query string) ([]string, error) {
	rows, err := c.conn.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
