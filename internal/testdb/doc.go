// Package testdb provides utilities for Postgres integration tests: opening
// the test database, applying the embedded schema migrations, and isolating
// each test inside a rolled-back transaction.
package testdb
