package output

// Output formats.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
	FormatGFF   = "gff"
	FormatFASTA = "fasta"
)

// Formats lists every supported --output value.
var Formats = []string{FormatText, FormatJSON, FormatJSONL, FormatGFF, FormatFASTA}

// TSVHeader is the header row for text output (written only with --header).
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "sequence_id\tstart\tend\tupstream\tlength\tdownstream"
