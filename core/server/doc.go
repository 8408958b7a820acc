// Package server holds the HTTP server partial configuration.
//
// The actual Fiber app is assembled in the start command; this package only
// owns the settings that belong to the serving layer (port, API key, summary
// view size) so the config package can compose them.
package server
