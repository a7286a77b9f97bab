package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/padraicbc/jrabrowser/comments"
	"github.com/padraicbc/jrabrowser/config"
	bundb "github.com/padraicbc/jrabrowser/db"
)

const export = `[
  {"id": 1712000000000, "name": "佐藤", "text": "ハルウララ頑張れ", "date": "2024-04-01T09:00:00.000Z",
   "replies": [{"id": 1712000100000, "name": "鈴木", "text": "同意", "date": "2024-04-01T09:05:00.000Z", "replies": []}]}
]`

func TestRunImportsExport(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "jraComments.json")
	require.NoError(t, os.WriteFile(src, []byte(export), 0o600))

	cfg := &config.Config{
		CommentsDriver: config.DriverSQLite,
		CommentsLimit:  50,
		SQLitePath:     filepath.Join(dir, "comments.db"),
	}
	ctx := context.Background()
	require.NoError(t, run(ctx, cfg, src, zaptest.NewLogger(t)))
	require.NoError(t, run(ctx, cfg, src, zaptest.NewLogger(t)))

	db, err := bundb.Open(ctx, cfg.CommentsDriver, cfg.CommentsDSN(), false)
	require.NoError(t, err)
	defer db.Close()

	threads, err := comments.NewStore(db, 0).List(ctx)
	require.NoError(t, err)
	require.Len(t, threads, 1)
	assert.Equal(t, "1712000000000", threads[0].ID)
	require.Len(t, threads[0].Replies, 1)
}

func TestRunMissingFile(t *testing.T) {
	cfg := &config.Config{CommentsDriver: config.DriverSQLite, SQLitePath: filepath.Join(t.TempDir(), "c.db")}
	assert.Error(t, run(context.Background(), cfg, "does-not-exist.json", zaptest.NewLogger(t)))
}

func TestCountAll(t *testing.T) {
	threads := []comments.Thread{
		{Replies: []comments.Thread{{Replies: []comments.Thread{{}}}, {}}},
		{},
	}
	assert.Equal(t, 5, countAll(threads))
}
