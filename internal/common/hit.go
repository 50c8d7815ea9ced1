// internal/common/hit.go
package common

import "blastn-core/engine"

// Hit is one alignment record together with the records it came from.
type Hit struct {
	SourceFile string // database FASTA path
	DatabaseID string
	QueryID    string
	engine.Record
	Identity float64 // percent identical positions over the alignment

	// Aligned segments; filled only when the pipeline is asked for them.
	QuerySeq string
	DataSeq  string
}
