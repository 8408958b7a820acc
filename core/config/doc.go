// Package config assembles the application configuration from environment
// variables and an optional .env file.
//
// Each subsystem owns its partial config struct (server, database, storage,
// logger, sources); this package composes them and fills defaults declared
// in 'default' struct tags via reflection, so a bare environment still
// yields a runnable configuration.
package config
