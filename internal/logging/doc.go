// Package logging constructs the slog loggers the commands report through.
//
// Two formats exist: "console", a compact single-line form for interactive
// use, and "json" for scripted consumption. NewNop returns a logger that
// drops everything; tests use it to keep output quiet.
package logging
