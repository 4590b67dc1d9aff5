// Package logging wires log/slog handlers for the CLI. Console output is a
// text handler on stderr; the json format exists for machine consumers.
package logging
