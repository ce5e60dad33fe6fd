// Package mutators holds the single-string transforms used by the variant
// generators: leet-speak substitution, random case mixing and random symbol
// insertion.
//
// Leet is deterministic. The randomized transforms live on Mutator, which
// carries an injected *rand.Rand so tests can replay a run by seeding it.
// None of the transforms modify their input; each returns a new string.
package mutators
