package storage

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"

	"github.com/Sandeshdahal10/Library-Management-System-Frontend/pkg/storage/migrations"
)

const tableName = "local_storage"

type SQLStore struct {
	db  *sqlx.DB
	qb  sq.StatementBuilderType
	log *zap.Logger
}

// NewSQL opens driver ("sqlite3" or "pgx") and applies migrations.
func NewSQL(ctx context.Context, driver, dsn string, log *zap.Logger) (*SQLStore, error) {
	db, err := sqlx.ConnectContext(ctx, driver, dsn)
	if err != nil {
		return nil, errors.Wrap(err, "connect storage")
	}
	if driver == DriverSQLite {
		// one writer; avoids SQLITE_BUSY between the CLI and a running shell
		db.SetMaxOpenConns(1)
	}
	if err := migrate(db.DB, driver, log); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &SQLStore{
		db:  db,
		qb:  builder(driver),
		log: log.Named("storage"),
	}, nil
}

func builder(driver string) sq.StatementBuilderType {
	var placeholder sq.PlaceholderFormat = sq.Question
	if driver == DriverPostgres {
		placeholder = sq.Dollar
	}
	return sq.StatementBuilder.PlaceholderFormat(placeholder)
}

func migrate(db *sql.DB, driver string, log *zap.Logger) error {
	dialect := "sqlite3"
	if driver == DriverPostgres {
		dialect = "postgres"
	}
	goose.SetBaseFS(migrations.MigrationFiles)
	goose.SetLogger(gooseLogger{log.Named("migrate").Sugar()})
	if err := goose.SetDialect(dialect); err != nil {
		return errors.Wrap(err, "goose dialect")
	}
	if err := goose.Up(db, "."); err != nil {
		return errors.Wrap(err, "migrate storage")
	}
	return nil
}

func (s *SQLStore) Get(ctx context.Context, key string) (string, bool, error) {
	query, args, err := s.qb.Select("item_value").
		From(tableName).
		Where(sq.Eq{"item_key": key}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", false, err
	}
	var value string
	if err := s.db.GetContext(ctx, &value, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, errors.Wrap(err, "storage get")
	}
	return value, true, nil
}

// Set inserts and falls back to an update when the key already exists, which
// behaves the same on both dialects.
func (s *SQLStore) Set(ctx context.Context, key, value string) error {
	query, args, err := s.qb.Insert(tableName).
		Columns("item_key", "item_value").
		Values(key, value).
		ToSql()
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, query, args...)
	if err == nil {
		return nil
	}
	if !isUniqueViolation(err) {
		return errors.Wrap(err, "storage insert")
	}

	query, args, err = s.qb.Update(tableName).
		Set("item_value", value).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"item_key": key}).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "storage update")
	}
	return nil
}

func (s *SQLStore) Remove(ctx context.Context, key string) error {
	query, args, err := s.qb.Delete(tableName).
		Where(sq.Eq{"item_key": key}).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "storage remove")
	}
	return nil
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey ||
			liteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}

type gooseLogger struct {
	s *zap.SugaredLogger
}

func (l gooseLogger) Fatal(v ...interface{})                 { l.s.Fatal(v...) }
func (l gooseLogger) Fatalf(format string, v ...interface{}) { l.s.Fatalf(format, v...) }
func (l gooseLogger) Print(v ...interface{})                 { l.s.Debug(v...) }
func (l gooseLogger) Println(v ...interface{})               { l.s.Debug(v...) }
func (l gooseLogger) Printf(format string, v ...interface{}) { l.s.Debugf(format, v...) }
