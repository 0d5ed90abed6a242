// Package config handles configuration loading, parsing, and validation
// from environment variables, an optional .env file and an optional
// config.yaml. The resulting Config is built once at startup and passed
// explicitly to every component that needs it.
package config
