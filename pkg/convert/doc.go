// Package convert turns text into strongly typed scalar values and back:
// booleans, signed and unsigned integers of any width, floating-point
// numbers, and enumerations described by explicit name/value tables.
//
// The package is a foundation layer for configuration loaders, request
// parameter binding, and CLI argument parsing. Conversions are strict,
// deterministic, and locale-independent: ASCII whitespace is trimmed,
// base-10 only, '.' is the only decimal separator, and case handling is
// ASCII-only. Every failure is reported as a *Error carrying a closed
// error kind, the original input, and an optional byte offset; no
// function in this package panics or allocates on the failure path.
//
// All functions are pure over their inputs and safe for concurrent use
// without synchronization.
package convert
