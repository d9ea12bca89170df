// Package pipeline streams FASTA records through a fragment Scanner and
// calls a visit callback for every fragment, in input order.
//
// The only contract to implement is Scanner (Scan).
// This keeps the pipeline swappable and testable.
package pipeline
