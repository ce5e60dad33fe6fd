// Package sink writes accepted candidates to the output artifact.
//
// A Sink is acquired once per run and must be closed on every exit path.
// Lines are buffered and only ever handed to the underlying writer as whole
// lines with their terminator, so output that survives a failure always
// ends on a line boundary.
package sink
