// Package codegen writes Rust source for analyzed types.
//
// Output is produced with fmt into an io.Writer supplied by the caller.
// Each declaration (its leading blank line, optional #[cfg] guard and
// body) goes out in one Write, so a failing writer never leaves half a
// declaration behind. Write errors are returned unchanged.
package codegen
