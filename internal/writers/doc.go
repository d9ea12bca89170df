// Package writers turns digest fragments into serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (TSV, JSON/JSONL, GFF3, FASTA).
//   - The digest core stays domain-only; the pipeline stays orchestration-only.
//   - JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
