// Package sequencer orders the variant generators into the single stream a
// run consumes.
//
// The order is fixed: for each seed word in vocabulary order its numeric,
// symbol and special-year variants; then every paired-word variant; then the
// weak-password variants. A consumer that stops early has therefore seen all
// single-word candidates before any pair, and all pairs before any weak
// password.
package sequencer
