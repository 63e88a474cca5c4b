// Package postgres implements the store interfaces on PostgreSQL.
//
// Connections are opened through the pgx stdlib driver and shared between
// goose, which applies the embedded SQL migrations, and gorm, which the
// stores use for queries, transactions and the movies_actors association.
// Database errors are translated to the sentinel errors of the store package
// by MapError so callers never inspect driver types.
package postgres
