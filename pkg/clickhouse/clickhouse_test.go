package clickhouse_test

import (
	"context"
	"os/exec"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcclickhouse "github.com/testcontainers/testcontainers-go/modules/clickhouse"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/tablekeeper/chddl/pkg/clickhouse"
	"github.com/tablekeeper/chddl/pkg/format"
)

// skipIfNoDocker skips the test if Docker is not available
func skipIfNoDocker(t *testing.T) {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	if _, err := exec.LookPath("docker"); err != nil {
		t.Skip("Docker not available")
	}
	if err := exec.Command("docker", "ps").Run(); err != nil {
		t.Skip("Docker daemon not running")
	}
}

func startClickHouse(t *testing.T, ctx context.Context) string {
	t.Helper()

	ctr, err := tcclickhouse.Run(ctx,
		"clickhouse/clickhouse-server:25.7-alpine",
		tcclickhouse.WithUsername("default"),
		tcclickhouse.WithPassword(""),
		testcontainers.WithWaitStrategyAndDeadline(
			5*time.Minute,
			wait.
				NewHTTPStrategy("/").
				WithPort(nat.Port("8123/tcp")).
				WithStatusCodeMatcher(func(status int) bool {
					return status == 200
				}),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, ctr.Terminate(context.Background()))
	})

	dsn, err := ctr.ConnectionHost(ctx)
	require.NoError(t, err)
	return dsn
}

func TestDumpSchema(t *testing.T) {
	skipIfNoDocker(t)

	ctx := context.Background()
	dsn := startClickHouse(t, ctx)

	client, err := clickhouse.NewClient(ctx, dsn)
	require.NoError(t, err)
	defer client.Close()

	require.NoError(t, client.Exec(ctx, "CREATE DATABASE chddl_test"))
	require.NoError(t, client.Exec(ctx, "CREATE TABLE chddl_test.events (id UInt64, name String) ENGINE = TinyLog"))
	require.NoError(t, client.Exec(ctx, "CREATE TABLE chddl_test.users (id UInt64) ENGINE = Log"))

	stmts, err := clickhouse.DumpSchema(ctx, client)
	require.NoError(t, err)
	require.Len(t, stmts, 3)

	// Databases first, then tables ordered by name.
	require.Equal(t, "chddl_test", stmts[0].Database)
	require.Empty(t, stmts[0].Table)
	require.Equal(t, "events", stmts[1].Table)
	require.Equal(t, "users", stmts[2].Table)

	// The dumped statements re-serialize cleanly.
	out := format.Statement(stmts[1])
	require.Contains(t, out, "CREATE TABLE chddl_test.events")
	require.Contains(t, out, "ENGINE = TinyLog")
}

func TestGetDatabasesExcludesSystem(t *testing.T) {
	skipIfNoDocker(t)

	ctx := context.Background()
	dsn := startClickHouse(t, ctx)

	client, err := clickhouse.NewClient(ctx, dsn)
	require.NoError(t, err)
	defer client.Close()

	dbs, err := client.GetDatabases(ctx)
	require.NoError(t, err)
	require.Empty(t, dbs)
}

func TestNewClientFailsFast(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := clickhouse.NewClient(ctx, "127.0.0.1:1")
	require.Error(t, err)
}
