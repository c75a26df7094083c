package coproc

// Value is the word-sized unit that crosses a rendezvous: exactly one
// pointer-sized payload, transferred opaque (as an any) by send/recv.
// This alias documents where a future pointer-tagging scheme would
// attach to that word without committing this module to one.
type Value = uintptr

// A real front-end's values are not uniformly opaque words: small
// scalars are tagged inline (a 1-bit fixnum/boxed-bignum switch for
// ints; a handful of reserved low bits distinguishing crate-offset
// pseudo-pointers from real heap pointers), while everything larger
// than a word is boxed and passed by reference. This module only ever
// moves a single untagged word, so no tag scheme is implemented — the
// constants below exist purely as the documented attachment point,
// named after the reference runtime's rust_type_tag_t:
//
//	const (
//		valueTagNil = iota
//		valueTagBool
//		valueTagInt
//		valueTagChar
//		valueTagStr
//		valueTagOpaque
//	)
