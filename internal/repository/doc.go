// Package repository defines the data access interfaces for the roster.
//
// The actual implementation is in the sqlite subpackage.
//
// # SQLite Implementation
//
// The sqlite package is split in two layers:
//
// - Gateway owns the single connection to the database file and is the only
// code that talks to database/sql. Parameterized statements use the SQL type
// and bind values positionally; static DDL uses the Statement type and takes
// no arguments. Both types only accept constants without an explicit
// conversion, so request data cannot be concatenated into statement text by
// accident.
//
// - Repository implements Reader with fixed queries over the Faccion and
// Personaje tables and closes every cursor before returning.
//
// # Errors
//
// Connect returns *sqlite.ConnectionError when the file cannot be opened or
// is not a SQLite database. Statement failures are *sqlite.QueryError and
// report whether a schema constraint was violated.
//
// # Testing
//
// The sqlite package is tested against temporary database files.
package repository
