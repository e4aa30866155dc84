// Package capability decides whether arbitrary Go types structurally
// satisfy the I/O capability contracts of the surrounding library.
//
// A candidate type never opts in. Each contract is a fixed shape of
// operations (buffer sequences, synchronous and asynchronous streams,
// growable staging buffers, completion callables), and a candidate
// qualifies by exposing methods of that shape. Probing inspects
// reflect.Type values only: no instance of the candidate is ever
// constructed and none of its methods is ever invoked.
//
// # Queries
//
// Every contract is a pure boolean query, available in a generic form:
//
//	capability.IsStream[MyConn]()
//	capability.IsGrowableBuffer[ring.Buffer]()
//
// or against a reflect.Type:
//
//	capability.Satisfies(t, capability.SyncReadStream)
//
// Results are deterministic for a given (type, contract) pair, memoized,
// and safe for concurrent use. A query never panics, however ill-shaped
// the candidate: a probe that cannot be formed simply reports false.
//
// # Diagnosis
//
// The booleans carry no "why". When a caller wants to tell a user what
// was missing, Explain returns the first failing sub-probe as a
// diag.Failure, and Assert panics with it:
//
//	capability.Assert[MyConn](capability.Stream)
//
// # Contract conjunction
//
// Stream is exactly the conjunction of AsyncReadStream, AsyncWriteStream,
// SyncReadStream and SyncWriteStream; it exists so adaptor code queries
// one name instead of four.
package capability
