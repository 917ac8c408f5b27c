// Package normalisers provides value normalisers used while building
// proposals from raw source data. Each normaliser converts heterogeneous
// textual encodings into the canonical form stored on documents.
package normalisers
