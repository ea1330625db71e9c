// Package filesystem provides the file-backed implementation of
// driven.DocumentStore used by the gamefix CLI.
//
// Documents are read whole and written back in place. Writes truncate the
// previous content and keep the file's existing permissions; no backup or
// temporary file is created.
package filesystem
