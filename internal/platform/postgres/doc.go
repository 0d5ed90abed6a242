// Package postgres provides PostgreSQL-specific implementations for the data
// storage interfaces defined in the internal/store package.
// It handles query execution, the mapping between domain entities and
// database records, and the translation of PostgreSQL error codes into
// store errors. The schema itself lives in the migrations subpackage.
package postgres
