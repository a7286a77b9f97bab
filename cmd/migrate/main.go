// cmd/migrate/main.go
// Imports a browser "jraComments" export into the configured comment database.
//
// Usage:
//
//	COMMENTS_DRIVER=postgres DB_PASS="pgpass" \
//	go run ./cmd/migrate jraComments.json
package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/padraicbc/jrabrowser/comments"
	"github.com/padraicbc/jrabrowser/config"
	bundb "github.com/padraicbc/jrabrowser/db"
	applog "github.com/padraicbc/jrabrowser/logger"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: migrate <jraComments.json>")
		os.Exit(2)
	}

	cfg := config.Read()
	logger, err := applog.NewConsole(true)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(context.Background(), cfg, os.Args[1], logger); err != nil {
		logger.Fatal("import failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.Config, path string, logger *zap.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	threads, err := comments.ParseExport(f)
	if err != nil {
		return err
	}
	logger.Info("parsed export", zap.String("file", path), zap.Int("threads", len(threads)))

	db, err := bundb.Open(ctx, cfg.CommentsDriver, cfg.CommentsDSN(), cfg.Debug)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer db.Close()
	logger.Info("connected", zap.String("driver", cfg.CommentsDriver))

	if err := bundb.CreateTables(ctx, db); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}

	n, err := comments.NewStore(db, cfg.CommentsLimit).Import(ctx, threads)
	if err != nil {
		return err
	}
	logger.Info("import complete", zap.Int("written", n), zap.Int("skipped", countAll(threads)-n))
	return nil
}

func countAll(threads []comments.Thread) int {
	n := 0
	for _, t := range threads {
		n += 1 + countAll(t.Replies)
	}
	return n
}
