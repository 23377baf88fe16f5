package clickhouse

import (
	"context"

	"github.com/pkg/errors"
	"github.com/tablekeeper/chddl/pkg/ast"
	"github.com/tablekeeper/chddl/pkg/parser"
)

// DumpSchema retrieves the server's databases and tables as parsed
// CREATE statements, in a shape ready for re-serialization.
//
// Databases come first since they define the namespace. System objects and
// internal materialized-view backing tables are excluded. Every DDL string
// the server reports is run back through the parser, so the result is
// validated structure, not raw text.
func DumpSchema(ctx context.Context, client *Client) ([]*ast.CreateQuery, error) {
	var statements []*ast.CreateQuery

	databases, err := client.GetDatabases(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to extract databases")
	}
	statements = append(statements, databases...)

	tables, err := client.GetTables(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to extract tables")
	}
	statements = append(statements, tables...)

	return statements, nil
}

// GetDatabases returns CREATE DATABASE statements for every non-system
// database.
func (c *Client) GetDatabases(ctx context.Context) ([]*ast.CreateQuery, error) {
	names, err := c.queryStrings(ctx, `
		SELECT name
		FROM system.databases
		WHERE name NOT IN ('system', 'information_schema', 'INFORMATION_SCHEMA', 'default')
		ORDER BY name
	`)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query databases")
	}

	var statements []*ast.CreateQuery
	for _, name := range names {
		statements = append(statements, &ast.CreateQuery{Database: name})
	}
	return statements, nil
}

// GetTables returns the parsed CREATE statements for every non-system
// table and view.
func (c *Client) GetTables(ctx context.Context) ([]*ast.CreateQuery, error) {
	ddls, err := c.queryStrings(ctx, `
		SELECT create_table_query
		FROM system.tables
		WHERE database NOT IN ('system', 'information_schema', 'INFORMATION_SCHEMA')
		  AND is_temporary = 0
		  AND name NOT LIKE '.inner%'
		ORDER BY database, name
	`)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query tables")
	}

	var statements []*ast.CreateQuery
	for _, ddl := range ddls {
		if ddl == "" {
			continue
		}
		stmt, err := parser.ParseSQL(ddl)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse %q", ddl)
		}
		statements = append(statements, stmt)
	}
	return statements, nil
}
