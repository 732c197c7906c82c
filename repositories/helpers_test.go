package repositories

import (
	"log/slog"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) (*badger.DB, *slog.Logger) {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, logs.GetLoggerFromLevel(slog.LevelDebug)
}
