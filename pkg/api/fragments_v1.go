// pkg/api/fragments_v1.go
package api

// FragmentV1 is the stable JSON/JSONL schema for digest fragments.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type FragmentV1 struct {
	SequenceID string `json:"sequence_id"`
	Start      int    `json:"start"`
	End        int    `json:"end"`
	Upstream   string `json:"upstream"`
	Length     int    `json:"length"`
	Downstream string `json:"downstream"`
	Seq        string `json:"seq,omitempty"`
}
