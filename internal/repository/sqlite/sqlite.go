package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/url"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// driverName is the database/sql name registered by modernc.org/sqlite
const driverName = "sqlite"

const connPragmas = "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"

// dsn turns a file path into an absolute file: URI. Characters such as ?
// and # are escaped so they stay part of the file name instead of starting
// the query.
func dsn(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve database path: %w", err)
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs), RawQuery: connPragmas}
	return u.String(), nil
}

// SQL is a parameterized statement template. Values are bound through
// positional ? placeholders, never spliced into the text.
type SQL string

// Statement is static SQL (DDL) that takes no arguments at all.
type Statement string

// Gateway is the single connection to the embedded database file
type Gateway struct {
	db     *sql.DB
	path   string
	logger *log.Logger
	trace  bool
	closed bool
}

// Option configures a Gateway
type Option func(*Gateway)

// WithLogger routes gateway log output to l
func WithLogger(l *log.Logger) Option {
	return func(g *Gateway) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithTrace logs every executed statement when on is true
func WithTrace(on bool) Option {
	return func(g *Gateway) {
		g.trace = on
	}
}

// Connect opens or creates the database file at path.
// The file is validated before returning so that an unreadable or corrupt
// database surfaces here as a *ConnectionError rather than on the first query.
func Connect(path string, opts ...Option) (*Gateway, error) {
	if strings.TrimSpace(path) == "" {
		return nil, &ConnectionError{Path: path, Err: fmt.Errorf("database path is required")}
	}

	g := &Gateway{path: path, logger: log.Default()}
	for _, opt := range opts {
		opt(g)
	}

	name, err := dsn(path)
	if err != nil {
		return nil, &ConnectionError{Path: path, Err: err}
	}

	db, err := sql.Open(driverName, name)
	if err != nil {
		return nil, &ConnectionError{Path: path, Err: fmt.Errorf("failed to open database: %w", err)}
	}

	// One interactive user, one connection
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, &ConnectionError{Path: path, Err: fmt.Errorf("failed to ping database: %w", err)}
	}

	var tables int
	if err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master`).Scan(&tables); err != nil {
		db.Close()
		return nil, &ConnectionError{Path: path, Err: fmt.Errorf("failed to read schema: %w", err)}
	}

	var version string
	if err := db.QueryRow(`SELECT sqlite_version()`).Scan(&version); err != nil {
		db.Close()
		return nil, &ConnectionError{Path: path, Err: fmt.Errorf("failed to read driver version: %w", err)}
	}

	g.db = db
	g.logger.Printf("Database connected: %s", path)
	g.logger.Printf("Database driver: modernc.org/sqlite (SQLite %s)", version)

	return g, nil
}

// Path returns the database file this gateway was opened on
func (g *Gateway) Path() string {
	return g.path
}

// Query runs a parameterized read and returns a forward-only cursor.
// The caller owns the returned rows and must close them on every path.
func (g *Gateway) Query(ctx context.Context, q SQL, args ...any) (*sql.Rows, error) {
	g.tracef("query: %s %v", q, args)

	rows, err := g.db.QueryContext(ctx, string(q), args...)
	if err != nil {
		g.logger.Printf("Query failed: %v", err)
		return nil, newQueryError(string(q), err)
	}
	return rows, nil
}

// Exec runs a parameterized write and returns the number of rows affected
func (g *Gateway) Exec(ctx context.Context, q SQL, args ...any) (int64, error) {
	return g.exec(ctx, string(q), args...)
}

// ExecStatic runs static DDL such as CREATE TABLE.
// It has no argument slot: anything carrying data goes through Exec.
func (g *Gateway) ExecStatic(ctx context.Context, stmt Statement) (int64, error) {
	return g.exec(ctx, string(stmt))
}

func (g *Gateway) exec(ctx context.Context, query string, args ...any) (int64, error) {
	result, err := g.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, newQueryError(query, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, newQueryError(query, err)
	}

	g.tracef("exec: %d rows affected: %s", affected, query)
	return affected, nil
}

// ListTables returns the user tables in the database, sorted by name
func (g *Gateway) ListTables(ctx context.Context) ([]string, error) {
	rows, err := g.Query(ctx, `
		SELECT name FROM sqlite_master
		WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan table name: %w", err)
		}
		tables = append(tables, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tables: %w", err)
	}

	g.tracef("found %d tables", len(tables))
	return tables, nil
}

// Close closes the database connection. Calling it again is a no-op.
func (g *Gateway) Close() error {
	if g == nil || g.db == nil || g.closed {
		return nil
	}
	g.closed = true

	if err := g.db.Close(); err != nil {
		g.logger.Printf("Failed to close database: %v", err)
		return err
	}
	g.logger.Printf("Database disconnected: %s", g.path)
	return nil
}

func (g *Gateway) tracef(format string, args ...any) {
	if g.trace {
		g.logger.Printf("sqlite: "+format, args...)
	}
}
