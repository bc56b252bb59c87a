package sqlite

import (
	"errors"
	"fmt"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// ConnectionError reports that the database file could not be opened or is
// not a usable SQLite database
type ConnectionError struct {
	Path string
	Err  error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connect %s: %v", e.Path, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// QueryError reports a statement that failed to compile, bind or execute
type QueryError struct {
	SQL string
	Err error
}

func newQueryError(query string, err error) *QueryError {
	return &QueryError{SQL: query, Err: err}
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query failed: %v", e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// Code returns the extended SQLite result code, or 0 if the underlying error
// did not come from the engine
func (e *QueryError) Code() int {
	var sqliteErr *msqlite.Error
	if errors.As(e.Err, &sqliteErr) {
		return sqliteErr.Code()
	}
	return 0
}

// Constraint reports whether the statement violated a schema constraint
// (NOT NULL, UNIQUE, FOREIGN KEY, ...)
func (e *QueryError) Constraint() bool {
	return e.Code()&0xff == sqlite3lib.SQLITE_CONSTRAINT
}

// IsConstraint reports whether err is a QueryError caused by a constraint
func IsConstraint(err error) bool {
	var qe *QueryError
	return errors.As(err, &qe) && qe.Constraint()
}
