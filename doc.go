// Package drax supports framed packet reading and writing.
//
// Drax is not an implementation of any protocol but a framework to build
// protocols on top of. Values are described by stateless delegates that
// satisfy the generic [Component] contract: each delegate knows how to
// decode a value from a byte stream, encode it back, and report the exact
// number of bytes the encoding produces without materializing it.
//
// Delegates compose: containers such as [Vec], [Map] and [Maybe] are
// written once over an arbitrary element component, and the caller-chosen
// context type is threaded by pointer through every nested call.
//
// Drax provides no backwards-compatibility mechanisms. Both peers are
// assumed to agree on the exact shape of every value ahead of time.
package drax
