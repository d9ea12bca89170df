// Package digest is the in-silico restriction digest core. It scans one
// sequence record at a time for enzyme recognition sites and pairs each site
// with the immediately preceding site of a different enzyme.
//
// It never imports fasta readers, writers or CLI code; keep it domain-only.
package digest
