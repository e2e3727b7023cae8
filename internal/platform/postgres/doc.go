// Package postgres implements the store interfaces against a PostgreSQL
// database using the pgx driver through database/sql.
package postgres
