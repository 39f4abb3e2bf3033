package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := NewStore(dbPath, Options{})
	require.NoError(t, err)

	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Initialize(context.Background()))

	return store
}

func TestInitializeIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	// Re-running migrations on an initialized database is a no-op.
	require.NoError(t, store.Initialize(ctx))
	require.NoError(t, store.Initialize(ctx))

	exists, err := store.TableExists(ctx, "conversations")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = store.TableExists(ctx, "schema_migrations")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestQueryReturnsColumnsAndRows(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.DB().ExecContext(ctx, `
		CREATE TABLE visitor_details (id INTEGER PRIMARY KEY, vis_name TEXT, vis_village TEXT);
		INSERT INTO visitor_details (vis_name, vis_village) VALUES ('Ramesh', 'Udhna');
		INSERT INTO visitor_details (vis_name, vis_village) VALUES ('Suresh', 'Dindoli');
	`)
	require.NoError(t, err)

	result, err := store.Query(ctx, "SELECT vis_name, vis_village FROM visitor_details ORDER BY id")
	require.NoError(t, err)

	assert.Equal(t, []string{"vis_name", "vis_village"}, result.Columns)
	require.Equal(t, 2, result.RowCount())
	assert.Equal(t, "Ramesh", result.Rows[0][0])
	assert.Equal(t, "Udhna", result.Rows[0][1])
	assert.Equal(t, "Suresh", result.Rows[1][0])
}

func TestQueryRowCap(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cap.db")

	store, err := NewStore(dbPath, Options{MaxRows: 3})
	require.NoError(t, err)

	t.Cleanup(func() { _ = store.Close() })

	ctx := context.Background()
	require.NoError(t, store.Initialize(ctx))

	_, err = store.DB().ExecContext(ctx, "CREATE TABLE nums (n INTEGER)")
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		_, err = store.DB().ExecContext(ctx, "INSERT INTO nums (n) VALUES (?)", i)
		require.NoError(t, err)
	}

	_, err = store.Query(ctx, "SELECT n FROM nums")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "more than 3 rows")
}

func TestQueryInvalidSQL(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Query(context.Background(), "SELECT FROM nothing")
	assert.Error(t, err)
}

func TestSaveAndLoadHistory(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveMessage(ctx, "user", "how many visitors today?"))
	require.NoError(t, store.SaveMessage(ctx, "assistant", "There were 12 visitors today."))
	require.NoError(t, store.SaveMessage(ctx, "user", "what about yesterday?"))

	turns, err := store.RecentMessages(ctx, 10)
	require.NoError(t, err)
	require.Len(t, turns, 3)

	// Oldest first for replay into model context.
	assert.Equal(t, "user", turns[0].Role)
	assert.Equal(t, "how many visitors today?", turns[0].Message)
	assert.Equal(t, "assistant", turns[1].Role)
	assert.Equal(t, "what about yesterday?", turns[2].Message)
}

func TestRecentMessagesWindow(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, msg := range []string{"one", "two", "three", "four", "five"} {
		require.NoError(t, store.SaveMessage(ctx, "user", msg))
	}

	turns, err := store.RecentMessages(ctx, 2)
	require.NoError(t, err)
	require.Len(t, turns, 2)

	// The window keeps only the newest turns, still oldest first.
	assert.Equal(t, "four", turns[0].Message)
	assert.Equal(t, "five", turns[1].Message)
}

func TestRecentMessagesZeroWindow(t *testing.T) {
	store := newTestStore(t)

	turns, err := store.RecentMessages(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, turns)
}

func TestClearHistory(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveMessage(ctx, "user", "hello"))
	require.NoError(t, store.ClearHistory(ctx))

	count, err := store.HistoryCount(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestMigrateDown(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	mgr := NewMigrationManager(store.DB())
	require.NoError(t, mgr.MigrateDown(ctx, 0))

	exists, err := store.TableExists(ctx, "conversations")
	require.NoError(t, err)
	assert.False(t, exists)
}
