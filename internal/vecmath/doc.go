// Package vecmath provides elementwise float32 and complex64 block
// operations used by the frame nodes.
//
// All functions require equal slice lengths and panic otherwise. Nodes slice
// their operands to the truncation length before calling in, so the panic is
// only reachable through a programming error inside this module.
package vecmath
