// FILE: clilogger/src/logger/doc.go

// Package logger is a structured logger that fans records out to several streams.
//
// A Logger is bound to one level table for its lifetime: the ordinal table (trace=10 up to
// none=70, a record is written when its level is at or above the stream threshold) or the
// bitwise table (trace=1 up to fatal=32, all=63, a record is written when every flag of its
// level is set in the stream threshold).
//
// Each stream either receives serialized lines (JSON or plain text) or, for raw streams,
// the *Record itself. Write listeners registered with OnWrite take over output: while any
// are registered, records are handed to them and nothing is written.
package logger
