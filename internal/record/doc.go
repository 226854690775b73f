// Package record models one ingested analytics row and the field conventions
// used to partition it.
//
// A Record keeps its fields in ingestion order and stores every value as a
// tagged Value (missing, text, scalar, sequence, structured) resolved once at
// the ingestion boundary. Structured and sequence values keep their compact
// JSON source so object key order survives display and share round trips.
// Normalize turns any Value into the canonical item sequence consumed by the
// pipeline stages.
package record
