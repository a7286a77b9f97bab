package db

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	_ "github.com/go-sql-driver/mysql"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/mysqldialect"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"
	_ "modernc.org/sqlite"

	"github.com/padraicbc/jrabrowser/config"
	"github.com/padraicbc/jrabrowser/models"
)

// Setup opens the comment database described by cfg, exiting on failure.
func Setup(cfg *config.Config) *bun.DB {
	db, err := Open(context.Background(), cfg.CommentsDriver, cfg.CommentsDSN(), cfg.Debug)
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}
	return db
}

// Open connects to a sqlite, postgres or mysql database and pings it.
func Open(ctx context.Context, driver, dsn string, debug bool) (*bun.DB, error) {
	var db *bun.DB
	switch driver {
	case config.DriverPostgres:
		sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
		db = bun.NewDB(sqldb, pgdialect.New())
	case config.DriverMySQL:
		sqldb, err := sql.Open("mysql", dsn)
		if err != nil {
			return nil, fmt.Errorf("open mysql: %w", err)
		}
		db = bun.NewDB(sqldb, mysqldialect.New())
	case config.DriverSQLite:
		sqldb, err := sql.Open("sqlite", dsn)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		// sqlite allows one writer; a single connection also keeps
		// in-memory databases alive across queries.
		sqldb.SetMaxOpenConns(1)
		db = bun.NewDB(sqldb, sqlitedialect.New())
	default:
		return nil, fmt.Errorf("unknown driver %q", driver)
	}

	if debug {
		db.AddQueryHook(bundebug.NewQueryHook(bundebug.WithVerbose(true)))
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}
	return db, nil
}

// CreateTables creates the comment schema if it does not exist yet.
func CreateTables(ctx context.Context, db *bun.DB) error {
	tables := []interface{}{
		(*models.Comment)(nil),
	}

	for _, model := range tables {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("creating table for %T: %w", model, err)
		}
	}

	// mysql has no CREATE INDEX IF NOT EXISTS; a second run fails harmlessly.
	_, err := db.NewCreateIndex().
		Model((*models.Comment)(nil)).
		Index("comments_parent_idx").
		Column("parent_id").
		IfNotExists().
		Exec(ctx)
	if err != nil {
		log.Printf("index: %v", err)
	}

	return nil
}
