// Package collector drives a run: it pulls candidates, drops the ones below
// the minimum length, writes the rest and stops as soon as the target count
// is reached. It is the only consumer of the sequence, so stopping here is
// what stops generation.
package collector
