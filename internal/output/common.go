package output

// Output formats.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// TSVHeader is the canonical header row for text/TSV alignment output.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "query_id\tdatabase_id\tq_start\tq_end\td_start\td_end\tlength\tscore\tidentity"

// IndexTSVHeader is the header row of `blastn index` text output.
const IndexTSVHeader = "source_file\tdatabase_id\tlength\tword_size\tbuckets\tused_buckets\tnodes\tlongest_chain\tstored\ttruncated"
