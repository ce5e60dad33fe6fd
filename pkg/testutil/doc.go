// Package testutil provides small filesystem helpers shared by the
// wordstorm tests.
//
// Key helpers:
//   - CreateFile: write a fixture file, creating parent directories
//   - ReadLines / SplitLines: read a generated wordlist back as lines
//   - Blocker: a regular file to use where a directory is expected
//
// All helpers take a *testing.T and fail the test on error, so callers
// never need to check returned errors.
package testutil
