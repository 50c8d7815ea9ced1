// Package pipeline aligns every query record against every database record.
//
// Each database record is indexed once and the index is shared by the
// workers that align the queries against it. Results are re-ordered by job
// sequence, so output order does not depend on the number of threads.
//
// The only contract to implement is Aligner (BuildIndex + Align).
// This keeps the pipeline swappable and testable.
package pipeline
