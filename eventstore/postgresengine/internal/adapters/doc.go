// Package adapters lets the Postgres engine run on pgxpool, database/sql or sqlx connections
// through one small DBAdapter interface.
package adapters
