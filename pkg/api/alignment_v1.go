// pkg/api/alignment_v1.go
package api

// AlignmentV1 is the stable JSON/JSONL schema for one ungapped alignment.
// Coordinates are 0-based and inclusive. Keep fields, names, and types
// stable. Add new fields only with ",omitempty".
type AlignmentV1 struct {
	QueryID    string  `json:"query_id"`
	DatabaseID string  `json:"database_id"`
	QueryStart int     `json:"query_start"`
	QueryEnd   int     `json:"query_end"`
	DataStart  int     `json:"data_start"`
	DataEnd    int     `json:"data_end"`
	Length     int     `json:"length"`
	Score      int     `json:"score"`
	Identity   float64 `json:"identity"`
	SourceFile string  `json:"source_file,omitempty"`
	QuerySeq   string  `json:"query_seq,omitempty"`
	DataSeq    string  `json:"data_seq,omitempty"`
}

// IndexStatsV1 is the stable schema for `blastn index` reports.
type IndexStatsV1 struct {
	SourceFile   string `json:"source_file,omitempty"`
	DatabaseID   string `json:"database_id"`
	Length       int    `json:"length"`
	WordSize     int    `json:"word_size"`
	Buckets      int    `json:"buckets"`
	Used         int    `json:"used_buckets"`
	Nodes        int    `json:"nodes"`
	LongestChain int    `json:"longest_chain"`
	Stored       int    `json:"stored"`
	Truncated    int    `json:"truncated"`
}
