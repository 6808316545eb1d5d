// File: internal/concurrency/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Lock-free primitives for hioload-ring. ByteRing is a single-producer
// single-consumer byte ring: each cursor has exactly one writer goroutine,
// so plain atomic loads and stores order the hand-off and no CAS is needed.
package concurrency
