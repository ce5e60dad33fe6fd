// Package variants produces the candidate families derived from seed words.
//
// Each producer is an iter.Seq[string]: nothing is computed until the
// consumer pulls, and a consumer that stops ranging stops the producer. The
// paired-word family grows with the square of the vocabulary, so it must
// never be materialized.
package variants
