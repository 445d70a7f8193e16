// Package filesystem provides the OS-backed implementation of types.FS.
// Tests use the in-memory implementation from pkg/testutil instead.
package filesystem
