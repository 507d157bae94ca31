// Package document implements the canonical document model: the ordered
// record schema of spec §3 plus a fluent builder that produces an
// immutable, canonicalized Document.
//
// Unknown top-level fields are preserved verbatim through marshal/unmarshal
// and remain covered by the signature, the same way Ciphera's PrekeyBundle
// custom MarshalJSON/UnmarshalJSON pair flattens a fixed-size array field
// alongside its other members.
package document
