// Package database provides the GORM connection layer.
//
// Connect opens a pooled MySQL connection with bounded setup and I/O
// timeouts and verifies it with an initial ping. The sqlite driver is
// supported for tests and local development, where the Name field carries
// the DSN (typically ":memory:").
package database
